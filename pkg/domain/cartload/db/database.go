package db

import (
	"context"

	korder "github.com/cartload/cartload/pkg/domain/order/db"
	kschema "github.com/cartload/cartload/pkg/domain/schema/db"
	ktrial "github.com/cartload/cartload/pkg/domain/trial/db"
)

type CartloadDatabase interface {
	Order() korder.OrderInterface
	Trial() ktrial.TrialInterface
	Schema() kschema.SchemaInterface

	// Ping checks the database connection is alive.
	Ping(ctx context.Context) error

	Close() error
}
