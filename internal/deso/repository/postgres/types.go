package postgres

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// DB is the part of pgxpool.Pool the repository uses.
	DB interface {
		QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
		Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
		Begin(ctx context.Context) (pgx.Tx, error)
		Close()
	}

	// Row mirrors pgx.Row.
	Row interface {
		Scan(dest ...any) error
	}
)
