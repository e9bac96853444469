// JSON representations of the sales analytics read endpoints.
package sales

import (
	"math"

	"github.com/cartload/cartload/pkg/domain"
	"github.com/cartload/cartload/pkg/utils/slices"
)

type Summary struct {
	TotalOrders     int     `json:"totalOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
	AvgOrderValue   float64 `json:"avgOrderValue"`
	UniqueCustomers int     `json:"uniqueCustomers"`
	UniqueProducts  int     `json:"uniqueProducts"`
	FirstOrderDate  string  `json:"firstOrderDate,omitempty"`
	LastOrderDate   string  `json:"lastOrderDate,omitempty"`
}

func ComposeSummary(s domain.ImportSummary) Summary {
	ret := Summary{
		TotalOrders:     s.TotalRecords,
		TotalRevenue:    s.TotalRevenue,
		AvgOrderValue:   round2(s.AvgOrderValue()),
		UniqueCustomers: s.UniqueCustomers,
		UniqueProducts:  s.UniqueProducts,
	}
	if !s.MinOrderDate.IsZero() {
		ret.FirstOrderDate = s.MinOrderDate.Format("2006-01-02")
		ret.LastOrderDate = s.MaxOrderDate.Format("2006-01-02")
	}
	return ret
}

type Order struct {
	OrderId     string  `json:"orderId"`
	ProductName string  `json:"productName"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TotalValue  float64 `json:"totalValue"`
	OrderDate   string  `json:"orderDate"`
	CustomerId  int     `json:"customerId"`
	Country     string  `json:"country"`
	Segment     string  `json:"customerSegment"`
}

func ComposeOrder(o domain.Order) Order {
	return Order{
		OrderId:     o.OrderId,
		ProductName: o.ProductName,
		Category:    o.Category,
		Quantity:    o.Quantity,
		UnitPrice:   o.UnitPrice,
		TotalValue:  o.TotalValue,
		OrderDate:   o.OrderDate.Format("2006-01-02"),
		CustomerId:  o.CustomerId,
		Country:     o.Country,
		Segment:     o.Segment.String(),
	}
}

type Category struct {
	Category      string  `json:"category"`
	Orders        int     `json:"orders"`
	Revenue       float64 `json:"revenue"`
	AvgOrderValue float64 `json:"avgOrderValue"`
}

func ComposeCategory(c domain.CategoryStat) Category {
	return Category{
		Category:      c.Category,
		Orders:        c.Orders,
		Revenue:       c.Revenue,
		AvgOrderValue: c.AvgOrderValue,
	}
}

func ComposeCategories(cs []domain.CategoryStat) []Category {
	return slices.Map(cs, ComposeCategory)
}

type Customer struct {
	CustomerId    int     `json:"customerId"`
	Orders        int     `json:"orders"`
	TotalSpent    float64 `json:"totalSpent"`
	AvgOrderValue float64 `json:"avgOrderValue"`
	FirstOrder    string  `json:"firstOrder"`
	LastOrder     string  `json:"lastOrder"`
}

func ComposeCustomer(c domain.CustomerStat) Customer {
	return Customer{
		CustomerId:    c.CustomerId,
		Orders:        c.Orders,
		TotalSpent:    c.TotalSpent,
		AvgOrderValue: c.AvgOrderValue,
		FirstOrder:    c.FirstOrder.Format("2006-01-02"),
		LastOrder:     c.LastOrder.Format("2006-01-02"),
	}
}

func ComposeCustomers(cs []domain.CustomerStat) []Customer {
	return slices.Map(cs, ComposeCustomer)
}

type Product struct {
	ProductName string  `json:"productName"`
	Category    string  `json:"category"`
	Orders      int     `json:"orders"`
	UnitsSold   int     `json:"unitsSold"`
	Revenue     float64 `json:"revenue"`
}

func ComposeProduct(p domain.ProductStat) Product {
	return Product{
		ProductName: p.ProductName,
		Category:    p.Category,
		Orders:      p.Orders,
		UnitsSold:   p.UnitsSold,
		Revenue:     p.Revenue,
	}
}

func ComposeProducts(ps []domain.ProductStat) []Product {
	return slices.Map(ps, ComposeProduct)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
