package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// MinBlockHeight returns the lowest stored block height. ok is false when no
// block is stored.
func (r *Repository) MinBlockHeight(ctx context.Context) (height uint64, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("min_block_height", err, start)
	}()

	const query = `
SELECT count() AS blocks, min(block_height) AS min_height
FROM block`

	var blocks uint64
	if err = r.conn.QueryRow(ctx, query).Scan(&blocks, &height); err != nil {
		return 0, false, fmt.Errorf("query min block height: %w", err)
	}
	if blocks == 0 {
		return 0, false, nil
	}
	return height, true, nil
}
