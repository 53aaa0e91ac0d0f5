package clickhouse

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-deso/internal/deso/model"
)

// BlockTxCount returns the transaction count declared by a stored block.
func (r *Repository) BlockTxCount(ctx context.Context, hash string) (count uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("block_tx_count", err, start)
	}()

	const query = `
SELECT tx_number
FROM block FINAL
WHERE block_hash = ?
LIMIT 1`

	if err = r.conn.QueryRow(ctx, query, hash).Scan(&count); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("block %s: %w", hash, model.ErrNotFound)
		}
		return 0, fmt.Errorf("query block tx count: %w", err)
	}
	return count, nil
}
