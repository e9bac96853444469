package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgtype"

	kpool "github.com/cartload/cartload/pkg/conn/db/postgres/pool"
	"github.com/cartload/cartload/pkg/domain"
	kpgerr "github.com/cartload/cartload/pkg/domain/errors/dberrors/postgres"
	"github.com/cartload/cartload/pkg/utils/slices"
)

type orderPG struct { // implements db.OrderInterface
	pool kpool.Pool
}

func New(pool kpool.Pool) *orderPG {
	return &orderPG{pool: pool}
}

const dateLayout = "2006-01-02"

func (o *orderPG) BulkPut(ctx context.Context, orders []domain.Order) (int, error) {
	if len(orders) == 0 {
		return 0, nil
	}

	tx, err := o.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(
		ctx,
		`
		insert into "sales" (
			"order_id", "product_name", "category", "quantity",
			"unit_price", "total_value", "order_date",
			"customer_id", "country", "customer_segment"
		)
		select * from unnest(
			$1::varchar[], $2::varchar[], $3::varchar[], $4::int[],
			$5::numeric[], $6::numeric[], $7::date[],
			$8::int[], $9::varchar[], $10::varchar[]
		)
		`,
		slices.Map(orders, func(o domain.Order) string { return o.OrderId }),
		slices.Map(orders, func(o domain.Order) string { return o.ProductName }),
		slices.Map(orders, func(o domain.Order) string { return o.Category }),
		slices.Map(orders, func(o domain.Order) int32 { return int32(o.Quantity) }),
		slices.Map(orders, func(o domain.Order) float64 { return o.UnitPrice }),
		slices.Map(orders, func(o domain.Order) float64 { return o.TotalValue }),
		slices.Map(orders, func(o domain.Order) string { return o.OrderDate.Format(dateLayout) }),
		slices.Map(orders, func(o domain.Order) int32 { return int32(o.CustomerId) }),
		slices.Map(orders, func(o domain.Order) string { return o.Country }),
		slices.Map(orders, func(o domain.Order) string { return o.Segment.String() }),
	)
	if err != nil {
		if pgerr := new(pgconn.PgError); errors.As(err, &pgerr) &&
			pgerr.Code == pgerrcode.UniqueViolation {
			return 0, kpgerr.Conflict{Table: "sales", Identity: "order_id"}
		}
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	return int(tag.RowsAffected()), nil
}

func (o *orderPG) Truncate(ctx context.Context) error {
	conn, err := o.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(
		ctx, `truncate table "sales", "customer_stats", "product_stats"`,
	)
	return err
}

func (o *orderPG) Count(ctx context.Context) (int, error) {
	conn, err := o.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	var count int
	if err := conn.QueryRow(
		ctx, `select count(*) from "sales"`,
	).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (o *orderPG) Get(ctx context.Context, orderIds []string) (map[string]domain.Order, error) {
	result := map[string]domain.Order{}
	if len(orderIds) == 0 {
		return result, nil
	}

	conn, err := o.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(
		ctx,
		`
		select
			"order_id", "product_name", "category", "quantity",
			"unit_price", "total_value", "order_date",
			"customer_id", "country", "customer_segment"
		from "sales"
		where "order_id" = any($1::varchar[])
		`,
		orderIds,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			ord                  domain.Order
			unitPrice, totalValu pgtype.Numeric
			orderDate            pgtype.Date
			segment              string
		)
		if err := rows.Scan(
			&ord.OrderId, &ord.ProductName, &ord.Category, &ord.Quantity,
			&unitPrice, &totalValu, &orderDate,
			&ord.CustomerId, &ord.Country, &segment,
		); err != nil {
			return nil, err
		}
		if err := unitPrice.AssignTo(&ord.UnitPrice); err != nil {
			return nil, err
		}
		if err := totalValu.AssignTo(&ord.TotalValue); err != nil {
			return nil, err
		}
		ord.OrderDate = orderDate.Time
		ord.Segment = domain.CustomerSegment(segment)

		result[ord.OrderId] = ord
	}

	return result, nil
}

func (o *orderPG) RefreshAggregates(ctx context.Context) error {
	tx, err := o.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `truncate table "customer_stats"`); err != nil {
		return err
	}
	if _, err := tx.Exec(
		ctx,
		`
		insert into "customer_stats" (
			"customer_id", "orders", "total_spent", "avg_order_value",
			"first_order", "last_order"
		)
		select
			"customer_id", count(*), sum("total_value"),
			round(avg("total_value"), 2), min("order_date"), max("order_date")
		from "sales"
		group by "customer_id"
		`,
	); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `truncate table "product_stats"`); err != nil {
		return err
	}
	if _, err := tx.Exec(
		ctx,
		`
		insert into "product_stats" (
			"product_name", "category", "orders", "units_sold", "revenue"
		)
		select
			"product_name", min("category"), count(*),
			sum("quantity"), sum("total_value")
		from "sales"
		group by "product_name"
		`,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (o *orderPG) Summary(ctx context.Context) (domain.ImportSummary, error) {
	conn, err := o.pool.Acquire(ctx)
	if err != nil {
		return domain.ImportSummary{}, err
	}
	defer conn.Release()

	var (
		summary          domain.ImportSummary
		revenue          pgtype.Numeric
		minDate, maxDate pgtype.Date
	)
	if err := conn.QueryRow(
		ctx,
		`
		select
			count(*),
			coalesce(sum("total_value"), 0),
			count(distinct "customer_id"),
			count(distinct "product_name"),
			min("order_date"), max("order_date")
		from "sales"
		`,
	).Scan(
		&summary.TotalRecords, &revenue,
		&summary.UniqueCustomers, &summary.UniqueProducts,
		&minDate, &maxDate,
	); err != nil {
		return domain.ImportSummary{}, err
	}

	if err := revenue.AssignTo(&summary.TotalRevenue); err != nil {
		return domain.ImportSummary{}, err
	}
	summary.MinOrderDate = dateOrZero(minDate)
	summary.MaxOrderDate = dateOrZero(maxDate)

	return summary, nil
}

func dateOrZero(d pgtype.Date) time.Time {
	if d.Status != pgtype.Present {
		return time.Time{}
	}
	return d.Time
}

func (o *orderPG) CategoryBreakdown(ctx context.Context) ([]domain.CategoryStat, error) {
	conn, err := o.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(
		ctx,
		`
		select
			"category",
			count(*) as "orders",
			sum("total_value") as "revenue",
			round(avg("total_value"), 2) as "avg_order_value"
		from "sales"
		group by "category"
		order by "revenue" desc, "category"
		`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []domain.CategoryStat{}
	for rows.Next() {
		var (
			stat        domain.CategoryStat
			revenue, av pgtype.Numeric
		)
		if err := rows.Scan(&stat.Category, &stat.Orders, &revenue, &av); err != nil {
			return nil, err
		}
		if err := revenue.AssignTo(&stat.Revenue); err != nil {
			return nil, err
		}
		if err := av.AssignTo(&stat.AvgOrderValue); err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}

	return stats, nil
}

func (o *orderPG) CustomerStats(ctx context.Context, limit int) ([]domain.CustomerStat, error) {
	conn, err := o.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	if limit < 0 {
		limit = 0 // nullif makes zero mean "no limit"
	}

	rows, err := conn.Query(
		ctx,
		`
		select
			"customer_id", "orders", "total_spent", "avg_order_value",
			"first_order", "last_order"
		from "customer_stats"
		order by "total_spent" desc, "customer_id"
		limit nullif($1::int, 0)
		`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []domain.CustomerStat{}
	for rows.Next() {
		var (
			stat        domain.CustomerStat
			spent, av   pgtype.Numeric
			first, last pgtype.Date
		)
		if err := rows.Scan(
			&stat.CustomerId, &stat.Orders, &spent, &av, &first, &last,
		); err != nil {
			return nil, err
		}
		if err := spent.AssignTo(&stat.TotalSpent); err != nil {
			return nil, err
		}
		if err := av.AssignTo(&stat.AvgOrderValue); err != nil {
			return nil, err
		}
		stat.FirstOrder = dateOrZero(first)
		stat.LastOrder = dateOrZero(last)
		stats = append(stats, stat)
	}

	return stats, nil
}

func (o *orderPG) ProductStats(ctx context.Context, limit int) ([]domain.ProductStat, error) {
	conn, err := o.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	if limit < 0 {
		limit = 0
	}

	rows, err := conn.Query(
		ctx,
		`
		select
			"product_name", "category", "orders", "units_sold", "revenue"
		from "product_stats"
		order by "revenue" desc, "product_name"
		limit nullif($1::int, 0)
		`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []domain.ProductStat{}
	for rows.Next() {
		var (
			stat    domain.ProductStat
			revenue pgtype.Numeric
		)
		if err := rows.Scan(
			&stat.ProductName, &stat.Category, &stat.Orders,
			&stat.UnitsSold, &revenue,
		); err != nil {
			return nil, err
		}
		if err := revenue.AssignTo(&stat.Revenue); err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}

	return stats, nil
}
