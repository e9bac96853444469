package postgres

import (
	"context"

	kpool "github.com/cartload/cartload/pkg/conn/db/postgres/pool"
	dbInterface "github.com/cartload/cartload/pkg/domain/cartload/db"
	korder "github.com/cartload/cartload/pkg/domain/order/db"
	kpgorder "github.com/cartload/cartload/pkg/domain/order/db/postgres"
	kschema "github.com/cartload/cartload/pkg/domain/schema/db"
	kpgschema "github.com/cartload/cartload/pkg/domain/schema/db/postgres"
	ktrial "github.com/cartload/cartload/pkg/domain/trial/db"
	kpgtrial "github.com/cartload/cartload/pkg/domain/trial/db/postgres"
	xe "github.com/cartload/cartload/pkg/errors"
)

type cartloadDBPostgres struct {
	pool   kpool.Pool
	order  korder.OrderInterface
	trial  ktrial.TrialInterface
	schema kschema.SchemaInterface
}

func New(ctx context.Context, url string) (dbInterface.CartloadDatabase, error) {
	pool, err := kpool.Connect(ctx, url)
	if err != nil {
		return nil, xe.Wrap(err)
	}

	return &cartloadDBPostgres{
		pool:   pool,
		order:  kpgorder.New(pool),
		trial:  kpgtrial.New(pool),
		schema: kpgschema.New(pool),
	}, nil
}

func (c *cartloadDBPostgres) Order() korder.OrderInterface {
	return c.order
}

func (c *cartloadDBPostgres) Trial() ktrial.TrialInterface {
	return c.trial
}

func (c *cartloadDBPostgres) Schema() kschema.SchemaInterface {
	return c.schema
}

func (c *cartloadDBPostgres) Ping(ctx context.Context) error {
	return c.pool.Ping(ctx)
}

func (c *cartloadDBPostgres) Close() error {
	c.pool.Close()
	return nil
}
