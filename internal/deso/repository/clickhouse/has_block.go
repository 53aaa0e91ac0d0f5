package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// HasBlock reports whether a block with the given hash is stored.
func (r *Repository) HasBlock(ctx context.Context, hash string) (found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("has_block", err, start)
	}()

	const query = `
SELECT count() AS blocks
FROM block
WHERE block_hash = ?`

	var blocks uint64
	if err = r.conn.QueryRow(ctx, query, hash).Scan(&blocks); err != nil {
		return false, fmt.Errorf("query block %s: %w", hash, err)
	}
	return blocks > 0, nil
}
