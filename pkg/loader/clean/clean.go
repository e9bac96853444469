package clean

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cartload/cartload/pkg/domain"
	kcsv "github.com/cartload/cartload/pkg/loader/csv"
	"github.com/cartload/cartload/pkg/loader/validate"
)

// Options steer the cleaning pass.
type Options struct {
	// TrimOutliers drops records whose total value falls outside
	// 1.5 IQR of the batch.
	TrimOutliers bool
}

// Stats counts what happened to the records during cleaning.
type Stats struct {
	Read              int
	Kept              int
	DroppedIncomplete int
	DroppedInvalid    int
	DroppedDuplicate  int
	DroppedOutlier    int
	FixedTotals       int
}

func (s Stats) Dropped() int {
	return s.DroppedIncomplete + s.DroppedInvalid + s.DroppedDuplicate + s.DroppedOutlier
}

var titler = cases.Title(language.English)

// Records converts raw CSV records into orders ready for loading.
//
// Records are dropped, never repaired in place, except for two cases:
// a total value disagreeing with quantity * price by more than a cent
// is recomputed, and a missing or unknown segment is derived from the
// total value.
func Records(raw []kcsv.RawOrder, opts Options) ([]domain.Order, Stats) {
	stats := Stats{Read: len(raw)}

	orders := []domain.Order{}
	seen := map[string]struct{}{}
	for _, rec := range raw {
		orderId := strings.TrimSpace(rec.OrderId)
		product := strings.TrimSpace(rec.Product)
		category := strings.TrimSpace(rec.Category)
		country := strings.TrimSpace(rec.Country)
		if orderId == "" || product == "" || category == "" || country == "" ||
			strings.TrimSpace(rec.Quantity) == "" ||
			strings.TrimSpace(rec.Price) == "" ||
			strings.TrimSpace(rec.OrderDate) == "" ||
			strings.TrimSpace(rec.CustomerId) == "" {
			stats.DroppedIncomplete += 1
			continue
		}

		quantity, err := strconv.Atoi(strings.TrimSpace(rec.Quantity))
		if err != nil || quantity <= 0 {
			stats.DroppedInvalid += 1
			continue
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(rec.Price), 64)
		if err != nil || price <= 0 {
			stats.DroppedInvalid += 1
			continue
		}
		customerId, err := strconv.Atoi(strings.TrimSpace(rec.CustomerId))
		if err != nil || customerId <= 0 {
			stats.DroppedInvalid += 1
			continue
		}
		orderDate, ok := validate.ParseDate(strings.TrimSpace(rec.OrderDate))
		if !ok {
			stats.DroppedInvalid += 1
			continue
		}

		product = titler.String(strings.ToLower(product))
		category = titler.String(strings.ToLower(category))
		country = titler.String(strings.ToLower(country))

		computed := roundMoney(float64(quantity) * price)
		total := computed
		if tv := strings.TrimSpace(rec.TotalValue); tv != "" {
			given, err := strconv.ParseFloat(tv, 64)
			if err != nil {
				stats.DroppedInvalid += 1
				continue
			}
			if math.Abs(given-computed) <= 0.01 {
				total = roundMoney(given)
			} else {
				// distrust the file, recompute
				stats.FixedTotals += 1
			}
		}

		segment, err := domain.AsCustomerSegment(strings.TrimSpace(rec.Segment))
		if err != nil {
			segment = domain.SegmentForValue(total)
		}

		key := fmt.Sprintf(
			"%s\x00%s\x00%s\x00%d\x00%.2f\x00%s\x00%d\x00%s",
			orderId, product, category, quantity, price,
			orderDate.Format("2006-01-02"), customerId, country,
		)
		if _, dup := seen[key]; dup {
			stats.DroppedDuplicate += 1
			continue
		}
		seen[key] = struct{}{}

		orders = append(orders, domain.Order{
			OrderId:     orderId,
			ProductName: product,
			Category:    category,
			Quantity:    quantity,
			UnitPrice:   roundMoney(price),
			TotalValue:  total,
			OrderDate:   orderDate,
			CustomerId:  customerId,
			Country:     country,
			Segment:     segment,
		})
	}

	if opts.TrimOutliers {
		orders = trimOutliers(orders, &stats)
	}

	stats.Kept = len(orders)
	return orders, stats
}

// trimOutliers removes orders whose total value lies outside
// [Q1 - 1.5 IQR, Q3 + 1.5 IQR] of the batch's total values.
func trimOutliers(orders []domain.Order, stats *Stats) []domain.Order {
	if len(orders) < 4 {
		return orders
	}

	totals := make([]float64, len(orders))
	for nth, o := range orders {
		totals[nth] = o.TotalValue
	}
	sort.Float64s(totals)

	q1 := quantile(totals, 0.25)
	q3 := quantile(totals, 0.75)
	iqr := q3 - q1
	lo := q1 - 1.5*iqr
	hi := q3 + 1.5*iqr

	kept := orders[:0]
	for _, o := range orders {
		if o.TotalValue < lo || hi < o.TotalValue {
			stats.DroppedOutlier += 1
			continue
		}
		kept = append(kept, o)
	}
	return kept
}

// quantile interpolates linearly between the closest ranks.
// sorted must be ascending and non-empty.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
