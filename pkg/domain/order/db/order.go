package db

import (
	"context"

	"github.com/cartload/cartload/pkg/domain"
)

type OrderInterface interface {
	// BulkPut stores orders in a single transaction.
	//
	// When any order id is already stored, it returns domain.ErrConflict
	// (wrapped) and nothing is inserted.
	//
	// Returns the number of inserted records.
	BulkPut(ctx context.Context, orders []domain.Order) (int, error)

	// Truncate removes all sales records and their aggregates.
	Truncate(ctx context.Context) error

	// Count returns the number of stored sales records.
	Count(ctx context.Context) (int, error)

	// Get retrieves orders identified by order ids.
	//
	// Ids not found are just omitted from the result.
	Get(ctx context.Context, orderIds []string) (map[string]domain.Order, error)

	// RefreshAggregates rebuilds the customer_stats and product_stats
	// tables from the sales table, in a single transaction.
	RefreshAggregates(ctx context.Context) error

	// Summary returns the headline statistics of the sales table.
	Summary(ctx context.Context) (domain.ImportSummary, error)

	// CategoryBreakdown returns per-category statistics,
	// ordered by revenue, descending.
	CategoryBreakdown(ctx context.Context) ([]domain.CategoryStat, error)

	// CustomerStats returns up to limit rows of the customer aggregate,
	// ordered by total spent, descending. limit <= 0 means no limit.
	CustomerStats(ctx context.Context, limit int) ([]domain.CustomerStat, error)

	// ProductStats returns up to limit rows of the product aggregate,
	// ordered by revenue, descending. limit <= 0 means no limit.
	ProductStats(ctx context.Context, limit int) ([]domain.ProductStat, error)
}
