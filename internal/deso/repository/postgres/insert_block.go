package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/goodnatureofminers/blockinsight7000-deso/internal/deso/model"
	"github.com/goodnatureofminers/blockinsight7000-deso/pkg/safe"
)

const insertBlockQuery = `
INSERT INTO block (
	block_hash,
	version,
	tx_number,
	prev_block_hash,
	timestamp,
	block_height,
	tx_merkle_root,
	block_nonce,
	extra_nonce
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (block_hash) DO NOTHING`

// InsertBlock stores a block together with its decoded transactions in one
// database transaction.
func (r *Repository) InsertBlock(ctx context.Context, in model.InsertBlock) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_block", err, start)
	}()

	args, err := blockArgs(in.Block)
	if err != nil {
		return err
	}
	batch := &pgx.Batch{}
	batch.Queue(insertBlockQuery, args...)
	if err = queueTransactions(batch, in.Block.Hash, in.Txs); err != nil {
		return err
	}

	if err = r.sendBatch(ctx, batch); err != nil {
		return fmt.Errorf("insert block %s: %w", in.Block.Hash, err)
	}
	return nil
}

func (r *Repository) sendBatch(ctx context.Context, batch *pgx.Batch) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		return tx.SendBatch(ctx, batch).Close()
	})
}

func blockArgs(block model.Block) ([]any, error) {
	txNumber, err := safe.Int64(block.TxNumber)
	if err != nil {
		return nil, fmt.Errorf("block %s tx number: %w", block.Hash, err)
	}
	timestamp, err := safe.Int64(block.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("block %s timestamp: %w", block.Hash, err)
	}
	height, err := safe.Int64(block.Height)
	if err != nil {
		return nil, fmt.Errorf("block %s height: %w", block.Hash, err)
	}

	return []any{
		block.Hash,
		int64(block.Version),
		txNumber,
		block.PrevBlockHash,
		timestamp,
		height,
		block.MerkleRoot,
		block.Nonce,
		block.ExtraNonce,
	}, nil
}
