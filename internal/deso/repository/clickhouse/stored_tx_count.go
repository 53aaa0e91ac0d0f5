package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// StoredTxCount returns the number of distinct transactions stored for a block.
func (r *Repository) StoredTxCount(ctx context.Context, hash string) (count uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("stored_tx_count", err, start)
	}()

	const query = `
SELECT uniqExact(tx_id) AS stored
FROM "transaction"
WHERE block_hash = ?`

	if err = r.conn.QueryRow(ctx, query, hash).Scan(&count); err != nil {
		return 0, fmt.Errorf("query stored tx count: %w", err)
	}
	return count, nil
}
