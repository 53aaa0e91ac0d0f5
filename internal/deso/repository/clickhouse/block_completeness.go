package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-deso/internal/deso/model"
)

type completenessRow struct {
	Height   uint64 `ch:"height"`
	Hash     string `ch:"hash"`
	Declared uint64 `ch:"declared"`
	Stored   uint64 `ch:"stored"`
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

	const query = `
SELECT
	b.block_height AS height,
	b.block_hash AS hash,
	b.tx_number AS declared,
	t.stored AS stored
FROM (
	SELECT block_hash, block_height, tx_number
	FROM block FINAL
	WHERE block_height BETWEEN ? AND ?
) AS b
LEFT JOIN (
	SELECT block_hash, uniqExact(tx_id) AS stored
	FROM "transaction"
	WHERE block_hash IN (
		SELECT block_hash
		FROM block
		WHERE block_height BETWEEN ? AND ?
	)
	GROUP BY block_hash
) AS t ON t.block_hash = b.block_hash
ORDER BY height DESC, hash`

	var rows []completenessRow
	if err = r.conn.Select(ctx, &rows, query, from, to, from, to); err != nil {
		return nil, fmt.Errorf("query block completeness: %w", err)
	}

	result = make([]model.BlockCompleteness, 0, len(rows))
	for _, row := range rows {
		result = append(result, model.BlockCompleteness{
			Height:   row.Height,
			Hash:     row.Hash,
			Declared: row.Declared,
			Stored:   row.Stored,
		})
	}
	return result, nil
}
