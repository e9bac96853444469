package clean_test

import (
	"testing"
	"time"

	"github.com/cartload/cartload/pkg/domain"
	"github.com/cartload/cartload/pkg/loader/clean"
	kcsv "github.com/cartload/cartload/pkg/loader/csv"
	"github.com/cartload/cartload/pkg/utils/cmp"
)

func rawOrder(mod func(*kcsv.RawOrder)) kcsv.RawOrder {
	rec := kcsv.RawOrder{
		OrderId: "ORD-1", Product: "laptop pro", Category: "ELECTRONICS",
		Quantity: "2", Price: "250.00", OrderDate: "2024-03-01",
		CustomerId: "42", Country: "germany",
	}
	if mod != nil {
		mod(&rec)
	}
	return rec
}

func TestRecords(t *testing.T) {
	t.Run("it normalizes text and derives total and segment", func(t *testing.T) {
		orders, stats := clean.Records([]kcsv.RawOrder{rawOrder(nil)}, clean.Options{})

		expected := []domain.Order{
			{
				OrderId: "ORD-1", ProductName: "Laptop Pro", Category: "Electronics",
				Quantity: 2, UnitPrice: 250.00, TotalValue: 500.00,
				OrderDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				CustomerId: 42, Country: "Germany",
				Segment: domain.SegmentPremium,
			},
		}
		if !cmp.SliceEqWith(orders, expected, func(a, b domain.Order) bool { return a.Equal(&b) }) {
			t.Errorf("unexpected orders:\n===actual===\n%+v\n===expected===\n%+v", orders, expected)
		}
		if stats.Read != 1 || stats.Kept != 1 || stats.Dropped() != 0 {
			t.Errorf("unexpected stats: %+v", stats)
		}
	})

	t.Run("it keeps a valid explicit segment", func(t *testing.T) {
		orders, _ := clean.Records([]kcsv.RawOrder{
			rawOrder(func(r *kcsv.RawOrder) { r.Segment = "Bargain" }),
		}, clean.Options{})

		if len(orders) != 1 || orders[0].Segment != domain.SegmentBargain {
			t.Errorf("explicit segment should survive: %+v", orders)
		}
	})

	t.Run("it derives the segment when the given one is unknown", func(t *testing.T) {
		orders, _ := clean.Records([]kcsv.RawOrder{
			rawOrder(func(r *kcsv.RawOrder) { r.Segment = "VIP" }),
		}, clean.Options{})

		if len(orders) != 1 || orders[0].Segment != domain.SegmentPremium {
			t.Errorf("unknown segment should be derived from the total: %+v", orders)
		}
	})

	t.Run("it drops incomplete records", func(t *testing.T) {
		orders, stats := clean.Records([]kcsv.RawOrder{
			rawOrder(func(r *kcsv.RawOrder) { r.OrderId = "  " }),
			rawOrder(func(r *kcsv.RawOrder) { r.Country = "" }),
			rawOrder(func(r *kcsv.RawOrder) { r.Price = "" }),
			rawOrder(nil),
		}, clean.Options{})

		if len(orders) != 1 {
			t.Errorf("unexpected orders: %+v", orders)
		}
		if stats.DroppedIncomplete != 3 || stats.Kept != 1 {
			t.Errorf("unexpected stats: %+v", stats)
		}
	})

	t.Run("it drops records with invalid values", func(t *testing.T) {
		for name, mod := range map[string]func(*kcsv.RawOrder){
			"non-numeric quantity": func(r *kcsv.RawOrder) { r.Quantity = "two" },
			"zero quantity":        func(r *kcsv.RawOrder) { r.Quantity = "0" },
			"negative quantity":    func(r *kcsv.RawOrder) { r.Quantity = "-1" },
			"non-numeric price":    func(r *kcsv.RawOrder) { r.Price = "free" },
			"zero price":           func(r *kcsv.RawOrder) { r.Price = "0" },
			"bad customer id":      func(r *kcsv.RawOrder) { r.CustomerId = "abc" },
			"non-positive customer": func(r *kcsv.RawOrder) { r.CustomerId = "0" },
			"bad date":             func(r *kcsv.RawOrder) { r.OrderDate = "soon" },
			"bad total value":      func(r *kcsv.RawOrder) { r.TotalValue = "lots" },
		} {
			t.Run(name, func(t *testing.T) {
				orders, stats := clean.Records(
					[]kcsv.RawOrder{rawOrder(mod)}, clean.Options{},
				)
				if len(orders) != 0 || stats.DroppedInvalid != 1 {
					t.Errorf("record should be dropped: orders=%+v stats=%+v", orders, stats)
				}
			})
		}
	})

	t.Run("it deduplicates identical records", func(t *testing.T) {
		orders, stats := clean.Records([]kcsv.RawOrder{
			rawOrder(nil),
			rawOrder(nil),
			rawOrder(func(r *kcsv.RawOrder) { r.OrderId = "ORD-2" }),
		}, clean.Options{})

		if len(orders) != 2 {
			t.Errorf("unexpected orders: %+v", orders)
		}
		if stats.DroppedDuplicate != 1 {
			t.Errorf("unexpected stats: %+v", stats)
		}
	})

	t.Run("it recomputes totals disagreeing by more than a cent", func(t *testing.T) {
		orders, stats := clean.Records([]kcsv.RawOrder{
			rawOrder(func(r *kcsv.RawOrder) { r.TotalValue = "123.45" }), // 2 * 250.00 = 500.00
		}, clean.Options{})

		if len(orders) != 1 || orders[0].TotalValue != 500.00 {
			t.Errorf("total should be recomputed: %+v", orders)
		}
		if stats.FixedTotals != 1 {
			t.Errorf("unexpected stats: %+v", stats)
		}
	})

	t.Run("it keeps totals within rounding tolerance", func(t *testing.T) {
		orders, stats := clean.Records([]kcsv.RawOrder{
			rawOrder(func(r *kcsv.RawOrder) { r.TotalValue = "500.004" }),
		}, clean.Options{})

		if len(orders) != 1 || orders[0].TotalValue != 500.00 {
			t.Errorf("tolerated total should round to two decimals: %+v", orders)
		}
		if stats.FixedTotals != 0 {
			t.Errorf("unexpected stats: %+v", stats)
		}
	})

	t.Run("it trims outliers when asked", func(t *testing.T) {
		raws := []kcsv.RawOrder{}
		for nth := 0; nth < 10; nth += 1 {
			n := nth
			raws = append(raws, rawOrder(func(r *kcsv.RawOrder) {
				r.OrderId = "ORD-" + string(rune('a'+n))
				r.Quantity = "1"
				r.Price = "100.00"
			}))
		}
		raws = append(raws, rawOrder(func(r *kcsv.RawOrder) {
			r.OrderId = "ORD-huge"
			r.Quantity = "1"
			r.Price = "100000.00"
		}))

		orders, stats := clean.Records(raws, clean.Options{TrimOutliers: true})

		if stats.DroppedOutlier != 1 {
			t.Errorf("unexpected stats: %+v", stats)
		}
		for _, o := range orders {
			if o.OrderId == "ORD-huge" {
				t.Errorf("outlier should be dropped: %+v", o)
			}
		}

		// without the option everything stays
		all, stats := clean.Records(raws, clean.Options{})
		if len(all) != len(raws) || stats.DroppedOutlier != 0 {
			t.Errorf("outliers should stay by default: %d records, stats=%+v", len(all), stats)
		}
	})
}
