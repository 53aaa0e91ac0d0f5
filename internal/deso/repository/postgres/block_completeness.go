package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/goodnatureofminers/blockinsight7000-deso/internal/deso/model"
	"github.com/goodnatureofminers/blockinsight7000-deso/pkg/safe"
)

type completenessRow struct {
	Height   int64
	Hash     string
	Declared int64
	Stored   int64
}

// BlockCompleteness returns declared and stored transaction counts for every
// stored block with a height in [from, to], highest first.
func (r *Repository) BlockCompleteness(ctx context.Context, from, to uint64) (result []model.BlockCompleteness, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("block_completeness", err, start)
	}()

	if from > to {
		return nil, fmt.Errorf("invalid height range [%d, %d]", from, to)
	}
	lo, err := safe.Int64(from)
	if err != nil {
		return nil, fmt.Errorf("from height: %w", err)
	}
	hi, err := safe.Int64(to)
	if err != nil {
		return nil, fmt.Errorf("to height: %w", err)
	}

	const query = `
SELECT b.block_height, b.block_hash, b.tx_number, count(t.tx_id)
FROM block b
LEFT JOIN "transaction" t ON t.block_hash = b.block_hash
WHERE b.block_height BETWEEN $1 AND $2
GROUP BY b.block_height, b.block_hash, b.tx_number
ORDER BY b.block_height DESC, b.block_hash`

	rows, err := r.db.Query(ctx, query, lo, hi)
	if err != nil {
		return nil, fmt.Errorf("query block completeness: %w", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByPos[completenessRow])
	if err != nil {
		return nil, fmt.Errorf("scan block completeness: %w", err)
	}

	result = make([]model.BlockCompleteness, 0, len(collected))
	for _, row := range collected {
		c, convErr := toCompleteness(row)
		if convErr != nil {
			return nil, convErr
		}
		result = append(result, c)
	}
	return result, nil
}

func toCompleteness(row completenessRow) (model.BlockCompleteness, error) {
	height, err := safe.Uint64(row.Height)
	if err != nil {
		return model.BlockCompleteness{}, fmt.Errorf("block %s height: %w", row.Hash, err)
	}
	declared, err := safe.Uint64(row.Declared)
	if err != nil {
		return model.BlockCompleteness{}, fmt.Errorf("block %s tx count: %w", row.Hash, err)
	}
	stored, err := safe.Uint64(row.Stored)
	if err != nil {
		return model.BlockCompleteness{}, fmt.Errorf("block %s stored tx count: %w", row.Hash, err)
	}
	return model.BlockCompleteness{Height: height, Hash: row.Hash, Declared: declared, Stored: stored}, nil
}
