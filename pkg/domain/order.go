package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrUnknownCustomerSegment = errors.New("unknown customer segment")

// CustomerSegment classifies an order by its total value.
type CustomerSegment string

var (
	SegmentBargain CustomerSegment = "Bargain"
	SegmentRegular CustomerSegment = "Regular"
	SegmentPremium CustomerSegment = "Premium"
)

func (s CustomerSegment) String() string {
	return string(s)
}

func AsCustomerSegment(s string) (CustomerSegment, error) {
	switch CustomerSegment(s) {
	case SegmentBargain:
		return SegmentBargain, nil
	case SegmentRegular:
		return SegmentRegular, nil
	case SegmentPremium:
		return SegmentPremium, nil
	default:
		return CustomerSegment(s), fmt.Errorf("%w: %s", ErrUnknownCustomerSegment, s)
	}
}

// segment bins over total value: [0, 50) Bargain, [50, 200) Regular, [200, ∞) Premium.
func SegmentForValue(totalValue float64) CustomerSegment {
	switch {
	case totalValue < 50:
		return SegmentBargain
	case totalValue < 200:
		return SegmentRegular
	default:
		return SegmentPremium
	}
}

// Order is a single sales record as stored in the "sales" table.
type Order struct {
	OrderId     string
	ProductName string
	Category    string
	Quantity    int
	UnitPrice   float64
	TotalValue  float64
	OrderDate   time.Time
	CustomerId  int
	Country     string
	Segment     CustomerSegment
}

func (o *Order) Equal(other *Order) bool {
	if (o == nil) || (other == nil) {
		return (o == nil) && (other == nil)
	}

	return o.OrderId == other.OrderId &&
		o.ProductName == other.ProductName &&
		o.Category == other.Category &&
		o.Quantity == other.Quantity &&
		o.UnitPrice == other.UnitPrice &&
		o.TotalValue == other.TotalValue &&
		o.OrderDate.Equal(other.OrderDate) &&
		o.CustomerId == other.CustomerId &&
		o.Country == other.Country &&
		o.Segment == other.Segment
}

// ImportSummary is the headline statistics of the sales table.
type ImportSummary struct {
	TotalRecords    int
	TotalRevenue    float64
	UniqueCustomers int
	UniqueProducts  int
	MinOrderDate    time.Time
	MaxOrderDate    time.Time
}

// AvgOrderValue = TotalRevenue / TotalRecords. Zero when the table is empty.
func (s ImportSummary) AvgOrderValue() float64 {
	if s.TotalRecords == 0 {
		return 0
	}
	return s.TotalRevenue / float64(s.TotalRecords)
}

func (s ImportSummary) Equal(other ImportSummary) bool {
	return s.TotalRecords == other.TotalRecords &&
		s.TotalRevenue == other.TotalRevenue &&
		s.UniqueCustomers == other.UniqueCustomers &&
		s.UniqueProducts == other.UniqueProducts &&
		s.MinOrderDate.Equal(other.MinOrderDate) &&
		s.MaxOrderDate.Equal(other.MaxOrderDate)
}

// CategoryStat is one row of the per-category breakdown.
type CategoryStat struct {
	Category      string
	Orders        int
	Revenue       float64
	AvgOrderValue float64
}

func (c CategoryStat) Equal(other CategoryStat) bool {
	return c == other
}

// CustomerStat is one row of the "customer_stats" aggregate table.
type CustomerStat struct {
	CustomerId    int
	Orders        int
	TotalSpent    float64
	AvgOrderValue float64
	FirstOrder    time.Time
	LastOrder     time.Time
}

func (c CustomerStat) Equal(other CustomerStat) bool {
	return c.CustomerId == other.CustomerId &&
		c.Orders == other.Orders &&
		c.TotalSpent == other.TotalSpent &&
		c.AvgOrderValue == other.AvgOrderValue &&
		c.FirstOrder.Equal(other.FirstOrder) &&
		c.LastOrder.Equal(other.LastOrder)
}

// ProductStat is one row of the "product_stats" aggregate table.
type ProductStat struct {
	ProductName string
	Category    string
	Orders      int
	UnitsSold   int
	Revenue     float64
}

func (p ProductStat) Equal(other ProductStat) bool {
	return p == other
}
