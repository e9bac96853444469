package postgres

import (
	"context"

	kpool "github.com/cartload/cartload/pkg/conn/db/postgres/pool"
)

type pgSchema struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) *pgSchema {
	return &pgSchema{pool: pool}
}

// statements are "create ... if not exists" so Ensure can run on every start.
var statements = []string{
	`
	create table if not exists "sales" (
		"order_id" varchar(32) primary key,
		"product_name" varchar(100) not null,
		"category" varchar(50) not null,
		"quantity" int not null check ("quantity" > 0),
		"unit_price" numeric(12, 2) not null check ("unit_price" > 0),
		"total_value" numeric(14, 2) not null,
		"order_date" date not null,
		"customer_id" int not null check ("customer_id" > 0),
		"country" varchar(50) not null,
		"customer_segment" varchar(20) not null
	)
	`,
	`create index if not exists "idx_sales_category" on "sales" ("category")`,
	`create index if not exists "idx_sales_order_date" on "sales" ("order_date")`,
	`create index if not exists "idx_sales_customer_id" on "sales" ("customer_id")`,
	`
	create table if not exists "customer_stats" (
		"customer_id" int primary key,
		"orders" int not null,
		"total_spent" numeric(14, 2) not null,
		"avg_order_value" numeric(12, 2) not null,
		"first_order" date not null,
		"last_order" date not null
	)
	`,
	`
	create table if not exists "product_stats" (
		"product_name" varchar(100) primary key,
		"category" varchar(50) not null,
		"orders" int not null,
		"units_sold" int not null,
		"revenue" numeric(14, 2) not null
	)
	`,
	`
	create table if not exists "reaction_logs" (
		"id" serial primary key,
		"participant_id" varchar(50) not null,
		"timestamp" timestamp with time zone not null default current_timestamp,
		"obstacle_time" timestamp with time zone not null,
		"brake_time" timestamp with time zone not null,
		"reaction_time_ms" int not null,
		"scenario" varchar(100) not null,
		"error" boolean not null default false,
		"fatigue_level" int check ("fatigue_level" between 1 and 10),
		"session_duration" int,
		"weather_condition" varchar(50),
		"traffic_density" varchar(20)
	)
	`,
	`create index if not exists "idx_reaction_logs_participant" on "reaction_logs" ("participant_id")`,
	`create index if not exists "idx_reaction_logs_scenario" on "reaction_logs" ("scenario")`,
}

func (s *pgSchema) Ensure(ctx context.Context) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
