package loader_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/cartload/cartload/internal/testutils/fixtures"
	"github.com/cartload/cartload/pkg/domain"
	mocks "github.com/cartload/cartload/pkg/domain/order/db/mock"
	"github.com/cartload/cartload/pkg/loader"
	"github.com/cartload/cartload/pkg/utils/cmp"
	"github.com/cartload/cartload/pkg/utils/try"
)

func salesCSV(records int) string {
	sb := new(strings.Builder)
	fmt.Fprintln(sb, "OrderID,Product,Category,Quantity,Price,OrderDate,CustomerID,Country")
	for nth := 0; nth < records; nth += 1 {
		fmt.Fprintf(
			sb, "ORD-%04d,Laptop,Electronics,1,99.99,2024-03-01,%d,Germany\n",
			nth, nth+1,
		)
	}
	return sb.String()
}

func quietLogger() logrus.FieldLogger {
	logger, _ := test.NewNullLogger()
	return logger
}

func TestImporter(t *testing.T) {
	ctx := context.Background()

	summary := domain.ImportSummary{
		TotalRecords: 7, TotalRevenue: 699.93,
		UniqueCustomers: 7, UniqueProducts: 1,
		MinOrderDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		MaxOrderDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	categories := []domain.CategoryStat{
		{Category: "Electronics", Orders: 7, Revenue: 699.93, AvgOrderValue: 99.99},
	}

	t.Run("it loads records in batches and refreshes aggregates", func(t *testing.T) {
		mock := mocks.NewOrderInterface()
		mock.Impl.BulkPut = func(_ context.Context, orders []domain.Order) (int, error) {
			return len(orders), nil
		}
		mock.Impl.Count = func(context.Context) (int, error) { return 7, nil }
		mock.Impl.RefreshAggregates = func(context.Context) error { return nil }
		mock.Impl.Summary = func(context.Context) (domain.ImportSummary, error) {
			return summary, nil
		}
		mock.Impl.CategoryBreakdown = func(context.Context) ([]domain.CategoryStat, error) {
			return categories, nil
		}

		im := loader.New(
			mock,
			loader.WithBatchSize(3),
			loader.WithLogger(quietLogger()),
		)
		result := try.To(im.Import(ctx, strings.NewReader(salesCSV(7)))).OrFatal(t)

		if result.Imported != 7 {
			t.Errorf("unexpected imported count: %d", result.Imported)
		}
		if batches := mock.Calls.BulkPut.Times(); batches != 3 { // 3 + 3 + 1
			t.Errorf("unexpected batch count: %d", batches)
		}
		for nth, call := range mock.Calls.BulkPut[:2] {
			if len(call.Orders) != 3 {
				t.Errorf("batch %d should carry 3 orders: %d", nth, len(call.Orders))
			}
		}
		if last := mock.Calls.BulkPut[2]; len(last.Orders) != 1 {
			t.Errorf("last batch should carry the remainder: %d", len(last.Orders))
		}

		if mock.Calls.Truncate.Times() != 0 {
			t.Error("truncate should not run unless asked")
		}
		if mock.Calls.RefreshAggregates.Times() != 1 {
			t.Error("aggregates should be refreshed once")
		}
		if !result.Summary.Equal(summary) {
			t.Errorf("unexpected summary: %+v", result.Summary)
		}
		if !cmp.SliceEqWith(result.Categories, categories, domain.CategoryStat.Equal) {
			t.Errorf("unexpected categories: %+v", result.Categories)
		}
	})

	t.Run("it truncates first when asked", func(t *testing.T) {
		mock := mocks.NewOrderInterface()
		order := []string{}
		mock.Impl.Truncate = func(context.Context) error {
			order = append(order, "truncate")
			return nil
		}
		mock.Impl.BulkPut = func(_ context.Context, orders []domain.Order) (int, error) {
			order = append(order, "bulkput")
			return len(orders), nil
		}
		mock.Impl.Count = func(context.Context) (int, error) { return 2, nil }
		mock.Impl.RefreshAggregates = func(context.Context) error { return nil }
		mock.Impl.Summary = func(context.Context) (domain.ImportSummary, error) {
			return summary, nil
		}
		mock.Impl.CategoryBreakdown = func(context.Context) ([]domain.CategoryStat, error) {
			return categories, nil
		}

		im := loader.New(
			mock,
			loader.WithTruncate(true),
			loader.WithLogger(quietLogger()),
		)
		try.To(im.Import(ctx, strings.NewReader(salesCSV(2)))).OrFatal(t)

		if !cmp.SliceEq(order, []string{"truncate", "bulkput"}) {
			t.Errorf("unexpected call order: %v", order)
		}
	})

	t.Run("it aborts on missing required columns", func(t *testing.T) {
		mock := mocks.NewOrderInterface()

		im := loader.New(mock, loader.WithLogger(quietLogger()))
		_, err := im.Import(ctx, strings.NewReader("OrderID,Product\nORD-1,Laptop\n"))

		if err == nil {
			t.Fatal("missing columns should abort the import")
		}
		if mock.Calls.BulkPut.Times() != 0 {
			t.Error("nothing should be loaded")
		}
	})

	t.Run("it records validation issues but keeps going", func(t *testing.T) {
		mock := mocks.NewOrderInterface()
		mock.Impl.BulkPut = func(_ context.Context, orders []domain.Order) (int, error) {
			return len(orders), nil
		}
		mock.Impl.Count = func(context.Context) (int, error) { return 2, nil }
		mock.Impl.RefreshAggregates = func(context.Context) error { return nil }
		mock.Impl.Summary = func(context.Context) (domain.ImportSummary, error) {
			return summary, nil
		}
		mock.Impl.CategoryBreakdown = func(context.Context) ([]domain.CategoryStat, error) {
			return categories, nil
		}

		source := salesCSV(2) +
			"ORD-bad,Laptop,Electronics,minus,99.99,2024-03-01,9,Germany\n"

		im := loader.New(mock, loader.WithLogger(quietLogger()))
		result := try.To(im.Import(ctx, strings.NewReader(source))).OrFatal(t)

		if len(result.Issues) == 0 {
			t.Error("issues should be recorded")
		}
		if result.Imported != 2 {
			t.Errorf("valid records should still load: %d", result.Imported)
		}
		if result.Cleaning.DroppedInvalid != 1 {
			t.Errorf("unexpected cleaning stats: %+v", result.Cleaning)
		}
	})

	t.Run("it stops loading when a batch fails", func(t *testing.T) {
		expectedErr := errors.New("fake error")
		mock := mocks.NewOrderInterface()
		mock.Impl.BulkPut = func(_ context.Context, orders []domain.Order) (int, error) {
			if 1 < mock.Calls.BulkPut.Times() {
				return 0, expectedErr
			}
			return len(orders), nil
		}

		im := loader.New(
			mock,
			loader.WithBatchSize(2),
			loader.WithLogger(quietLogger()),
		)
		_, err := im.Import(ctx, strings.NewReader(salesCSV(5)))

		if !errors.Is(err, expectedErr) {
			t.Errorf("unexpected error: %v", err)
		}
		if mock.Calls.BulkPut.Times() != 2 {
			t.Errorf("loading should stop at the failing batch: %d calls", mock.Calls.BulkPut.Times())
		}
		if mock.Calls.RefreshAggregates.Times() != 0 {
			t.Error("aggregates should not refresh after a failure")
		}
	})

	t.Run("it cleans and loads a generated dataset end to end", func(t *testing.T) {
		source, junk := fixtures.MessySalesCSV(100, 42)

		loaded := []domain.Order{}
		mock := mocks.NewOrderInterface()
		mock.Impl.BulkPut = func(_ context.Context, orders []domain.Order) (int, error) {
			loaded = append(loaded, orders...)
			return len(orders), nil
		}
		mock.Impl.Count = func(context.Context) (int, error) { return len(loaded), nil }
		mock.Impl.RefreshAggregates = func(context.Context) error { return nil }
		mock.Impl.Summary = func(context.Context) (domain.ImportSummary, error) {
			return domain.ImportSummary{}, nil
		}
		mock.Impl.CategoryBreakdown = func(context.Context) ([]domain.CategoryStat, error) {
			return nil, nil
		}

		im := loader.New(mock, loader.WithLogger(quietLogger()))
		result := try.To(im.Import(ctx, strings.NewReader(source))).OrFatal(t)

		if result.Imported != 100 {
			t.Errorf("only the valid records should load: %d", result.Imported)
		}
		if dropped := result.Cleaning.Dropped(); dropped != junk {
			t.Errorf("unexpected dropped count: (actual, expected) = (%d, %d)", dropped, junk)
		}
		for _, o := range loaded {
			if o.Quantity <= 0 || o.UnitPrice <= 0 {
				t.Errorf("invalid record reached the database: %+v", o)
			}
			if o.Segment != domain.SegmentForValue(o.TotalValue) {
				t.Errorf("segment is not derived from the total: %+v", o)
			}
		}
	})

	t.Run("it logs progress during large loads", func(t *testing.T) {
		mock := mocks.NewOrderInterface()
		mock.Impl.BulkPut = func(_ context.Context, orders []domain.Order) (int, error) {
			return len(orders), nil
		}
		mock.Impl.Count = func(context.Context) (int, error) { return 12000, nil }
		mock.Impl.RefreshAggregates = func(context.Context) error { return nil }
		mock.Impl.Summary = func(context.Context) (domain.ImportSummary, error) {
			return domain.ImportSummary{}, nil
		}
		mock.Impl.CategoryBreakdown = func(context.Context) ([]domain.CategoryStat, error) {
			return nil, nil
		}

		logger, hook := test.NewNullLogger()
		im := loader.New(mock, loader.WithLogger(logger))
		try.To(im.Import(ctx, strings.NewReader(salesCSV(12000)))).OrFatal(t)

		progress := 0
		for _, entry := range hook.AllEntries() {
			if entry.Message == "loading" {
				progress += 1
			}
		}
		if progress != 2 { // at 5000 and 10000
			t.Errorf("unexpected progress log count: %d", progress)
		}
	})
}

func TestResultRender(t *testing.T) {
	result := loader.Result{
		Imported: 7,
		Summary: domain.ImportSummary{
			TotalRecords: 7, TotalRevenue: 699.93,
			UniqueCustomers: 7, UniqueProducts: 1,
			MinOrderDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			MaxOrderDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		},
		Categories: []domain.CategoryStat{
			{Category: "Electronics", Orders: 7, Revenue: 699.93, AvgOrderValue: 99.99},
		},
	}

	report := result.Render()
	for _, want := range []string{
		"records imported:   7",
		"total revenue:      699.93",
		"Electronics",
		"2024-03-01 .. 2024-03-05",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report should contain %q:\n%s", want, report)
		}
	}
}
