// Package pgx provides a Postgres-backed document store for mirrored user
// profiles.
//
// Expected schema:
//
//	CREATE TABLE public.user_profiles (
//	    user_id    text PRIMARY KEY,
//	    doc        jsonb NOT NULL,
//	    updated_at timestamptz NOT NULL DEFAULT now()
//	);
package pgx

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mrzain17/storefront/core"
)

type Adapter struct {
	pool *pgxpool.Pool
}

var _ core.DocumentStore = (*Adapter)(nil)

func New(pool *pgxpool.Pool) *Adapter {
	return &Adapter{
		pool: pool,
	}
}
