package clickhouse

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// Conn is the part of clickhouse.Conn the repository uses.
	Conn interface {
		QueryRow(ctx context.Context, query string, args ...any) driver.Row
		Select(ctx context.Context, dest any, query string, args ...any) error
		PrepareBatch(ctx context.Context, query string, opts ...driver.PrepareBatchOption) (driver.Batch, error)
		Close() error
	}

	// Row mirrors driver.Row.
	Row interface {
		Err() error
		Scan(dest ...any) error
		ScanStruct(dest any) error
	}
)
