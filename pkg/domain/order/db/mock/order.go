package mocks

import (
	"context"
	"errors"

	"github.com/cartload/cartload/pkg/domain"
	kdborder "github.com/cartload/cartload/pkg/domain/order/db"

	dbmock "github.com/cartload/cartload/pkg/domain/internal/db/mock"
)

type OrderInterface struct {
	Impl struct {
		BulkPut           func(context.Context, []domain.Order) (int, error)
		Truncate          func(context.Context) error
		Count             func(context.Context) (int, error)
		Get               func(context.Context, []string) (map[string]domain.Order, error)
		RefreshAggregates func(context.Context) error
		Summary           func(context.Context) (domain.ImportSummary, error)
		CategoryBreakdown func(context.Context) ([]domain.CategoryStat, error)
		CustomerStats     func(context.Context, int) ([]domain.CustomerStat, error)
		ProductStats      func(context.Context, int) ([]domain.ProductStat, error)
	}
	Calls struct {
		BulkPut           dbmock.CallLog[struct{ Orders []domain.Order }]
		Truncate          dbmock.CallLog[struct{}]
		Count             dbmock.CallLog[struct{}]
		Get               dbmock.CallLog[struct{ OrderIds []string }]
		RefreshAggregates dbmock.CallLog[struct{}]
		Summary           dbmock.CallLog[struct{}]
		CategoryBreakdown dbmock.CallLog[struct{}]
		CustomerStats     dbmock.CallLog[struct{ Limit int }]
		ProductStats      dbmock.CallLog[struct{ Limit int }]
	}
}

func NewOrderInterface() *OrderInterface {
	return &OrderInterface{}
}

var _ kdborder.OrderInterface = &OrderInterface{}

func (oi *OrderInterface) BulkPut(ctx context.Context, orders []domain.Order) (int, error) {
	oi.Calls.BulkPut = append(oi.Calls.BulkPut, struct{ Orders []domain.Order }{Orders: orders})
	if oi.Impl.BulkPut != nil {
		return oi.Impl.BulkPut(ctx, orders)
	}
	panic(errors.New("it should not be called"))
}

func (oi *OrderInterface) Truncate(ctx context.Context) error {
	oi.Calls.Truncate = append(oi.Calls.Truncate, struct{}{})
	if oi.Impl.Truncate != nil {
		return oi.Impl.Truncate(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (oi *OrderInterface) Count(ctx context.Context) (int, error) {
	oi.Calls.Count = append(oi.Calls.Count, struct{}{})
	if oi.Impl.Count != nil {
		return oi.Impl.Count(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (oi *OrderInterface) Get(ctx context.Context, orderIds []string) (map[string]domain.Order, error) {
	oi.Calls.Get = append(oi.Calls.Get, struct{ OrderIds []string }{OrderIds: orderIds})
	if oi.Impl.Get != nil {
		return oi.Impl.Get(ctx, orderIds)
	}
	panic(errors.New("it should not be called"))
}

func (oi *OrderInterface) RefreshAggregates(ctx context.Context) error {
	oi.Calls.RefreshAggregates = append(oi.Calls.RefreshAggregates, struct{}{})
	if oi.Impl.RefreshAggregates != nil {
		return oi.Impl.RefreshAggregates(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (oi *OrderInterface) Summary(ctx context.Context) (domain.ImportSummary, error) {
	oi.Calls.Summary = append(oi.Calls.Summary, struct{}{})
	if oi.Impl.Summary != nil {
		return oi.Impl.Summary(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (oi *OrderInterface) CategoryBreakdown(ctx context.Context) ([]domain.CategoryStat, error) {
	oi.Calls.CategoryBreakdown = append(oi.Calls.CategoryBreakdown, struct{}{})
	if oi.Impl.CategoryBreakdown != nil {
		return oi.Impl.CategoryBreakdown(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (oi *OrderInterface) CustomerStats(ctx context.Context, limit int) ([]domain.CustomerStat, error) {
	oi.Calls.CustomerStats = append(oi.Calls.CustomerStats, struct{ Limit int }{Limit: limit})
	if oi.Impl.CustomerStats != nil {
		return oi.Impl.CustomerStats(ctx, limit)
	}
	panic(errors.New("it should not be called"))
}

func (oi *OrderInterface) ProductStats(ctx context.Context, limit int) ([]domain.ProductStat, error) {
	oi.Calls.ProductStats = append(oi.Calls.ProductStats, struct{ Limit int }{Limit: limit})
	if oi.Impl.ProductStats != nil {
		return oi.Impl.ProductStats(ctx, limit)
	}
	panic(errors.New("it should not be called"))
}
