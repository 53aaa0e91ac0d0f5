package clickhouse

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-deso/internal/deso/model"
)

// PrevBlockHash returns the previous block hash of a stored block, or an empty
// string for genesis.
func (r *Repository) PrevBlockHash(ctx context.Context, hash string) (prev string, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("prev_block_hash", err, start)
	}()

	const query = `
SELECT prev_block_hash
FROM block FINAL
WHERE block_hash = ?
LIMIT 1`

	var value *string
	if err = r.conn.QueryRow(ctx, query, hash).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("block %s: %w", hash, model.ErrNotFound)
		}
		return "", fmt.Errorf("query prev block hash: %w", err)
	}
	if value == nil {
		return "", nil
	}
	return *value, nil
}
