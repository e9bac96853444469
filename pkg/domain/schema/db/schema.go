package db

import "context"

type SchemaInterface interface {
	// Ensure creates missing tables and indexes. It is idempotent.
	Ensure(ctx context.Context) error
}
