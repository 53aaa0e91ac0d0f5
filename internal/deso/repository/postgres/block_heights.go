package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-deso/pkg/safe"
)

// MaxBlockHeight returns the highest stored block height. ok is false when no
// block is stored.
func (r *Repository) MaxBlockHeight(ctx context.Context) (height uint64, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_block_height", err, start)
	}()

	const query = `
SELECT count(*), coalesce(max(block_height), 0)
FROM block`

	height, ok, err = r.blockHeight(ctx, query)
	if err != nil {
		return 0, false, fmt.Errorf("query max block height: %w", err)
	}
	return height, ok, nil
}

// MinBlockHeight returns the lowest stored block height. ok is false when no
// block is stored.
func (r *Repository) MinBlockHeight(ctx context.Context) (height uint64, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("min_block_height", err, start)
	}()

	const query = `
SELECT count(*), coalesce(min(block_height), 0)
FROM block`

	height, ok, err = r.blockHeight(ctx, query)
	if err != nil {
		return 0, false, fmt.Errorf("query min block height: %w", err)
	}
	return height, ok, nil
}

func (r *Repository) blockHeight(ctx context.Context, query string) (uint64, bool, error) {
	var blocks, height int64
	if err := r.db.QueryRow(ctx, query).Scan(&blocks, &height); err != nil {
		return 0, false, err
	}
	if blocks == 0 {
		return 0, false, nil
	}
	h, err := safe.Uint64(height)
	if err != nil {
		return 0, false, err
	}
	return h, true, nil
}
