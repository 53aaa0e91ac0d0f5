package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/goodnatureofminers/blockinsight7000-deso/internal/deso/model"
	"github.com/goodnatureofminers/blockinsight7000-deso/pkg/safe"
)

// HasBlock reports whether a block with the given hash is stored.
func (r *Repository) HasBlock(ctx context.Context, hash string) (found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("has_block", err, start)
	}()

	const query = `SELECT EXISTS (SELECT 1 FROM block WHERE block_hash = $1)`

	if err = r.db.QueryRow(ctx, query, hash).Scan(&found); err != nil {
		return false, fmt.Errorf("query block %s: %w", hash, err)
	}
	return found, nil
}

// HasTransaction reports whether a transaction with the given id is stored.
func (r *Repository) HasTransaction(ctx context.Context, txID string) (found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("has_transaction", err, start)
	}()

	const query = `SELECT EXISTS (SELECT 1 FROM "transaction" WHERE tx_id = $1)`

	if err = r.db.QueryRow(ctx, query, txID).Scan(&found); err != nil {
		return false, fmt.Errorf("query transaction %s: %w", txID, err)
	}
	return found, nil
}

// BlockTxCount returns the transaction count declared by a stored block.
func (r *Repository) BlockTxCount(ctx context.Context, hash string) (count uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("block_tx_count", err, start)
	}()

	const query = `SELECT tx_number FROM block WHERE block_hash = $1`

	var declared int64
	if err = r.db.QueryRow(ctx, query, hash).Scan(&declared); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("block %s: %w", hash, model.ErrNotFound)
		}
		return 0, fmt.Errorf("query block tx count: %w", err)
	}
	if count, err = safe.Uint64(declared); err != nil {
		return 0, fmt.Errorf("block %s tx count: %w", hash, err)
	}
	return count, nil
}

// StoredTxCount returns the number of transactions stored for a block.
func (r *Repository) StoredTxCount(ctx context.Context, hash string) (count uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("stored_tx_count", err, start)
	}()

	const query = `SELECT count(*) FROM "transaction" WHERE block_hash = $1`

	var stored int64
	if err = r.db.QueryRow(ctx, query, hash).Scan(&stored); err != nil {
		return 0, fmt.Errorf("query stored tx count: %w", err)
	}
	if count, err = safe.Uint64(stored); err != nil {
		return 0, fmt.Errorf("block %s stored tx count: %w", hash, err)
	}
	return count, nil
}

// PrevBlockHash returns the previous block hash of a stored block, or an empty
// string for genesis.
func (r *Repository) PrevBlockHash(ctx context.Context, hash string) (prev string, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("prev_block_hash", err, start)
	}()

	const query = `SELECT prev_block_hash FROM block WHERE block_hash = $1`

	var value *string
	if err = r.db.QueryRow(ctx, query, hash).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("block %s: %w", hash, model.ErrNotFound)
		}
		return "", fmt.Errorf("query prev block hash: %w", err)
	}
	if value == nil {
		return "", nil
	}
	return *value, nil
}
