package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// MaxBlockHeight returns the highest stored block height. ok is false when no
// block is stored.
func (r *Repository) MaxBlockHeight(ctx context.Context) (height uint64, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_block_height", err, start)
	}()

	const query = `
SELECT count() AS blocks, max(block_height) AS max_height
FROM block`

	var blocks uint64
	if err = r.conn.QueryRow(ctx, query).Scan(&blocks, &height); err != nil {
		return 0, false, fmt.Errorf("query max block height: %w", err)
	}
	if blocks == 0 {
		return 0, false, nil
	}
	return height, true, nil
}
