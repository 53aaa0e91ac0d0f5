package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// HasTransaction reports whether a transaction with the given id is stored.
func (r *Repository) HasTransaction(ctx context.Context, txID string) (found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("has_transaction", err, start)
	}()

	const query = `
SELECT count() AS txs
FROM "transaction"
WHERE tx_id = ?`

	var txs uint64
	if err = r.conn.QueryRow(ctx, query, txID).Scan(&txs); err != nil {
		return false, fmt.Errorf("query transaction %s: %w", txID, err)
	}
	return txs > 0, nil
}
