package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Temutjin2k/ride-fare-aggregator/pkg/trm"
)

type Querier interface {
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// TxorDB returns the transaction carried by ctx, or db when there is none.
func TxorDB(ctx context.Context, db Querier) Querier {
	if tx, ok := trm.TxFrom(ctx); ok {
		return tx
	}
	return db
}
