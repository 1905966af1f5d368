package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
	// Pool is the part of pgxpool.Pool the repository uses.
	Pool interface {
		Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
		Close()
	}
)
