package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-deso/internal/deso/model"
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
) VALUES`

// InsertBlock stores a block together with its decoded transactions. The
// block row is sent last and marks the block as committed.
func (r *Repository) InsertBlock(ctx context.Context, in model.InsertBlock) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_block", err, start)
	}()

	if err = r.insertTransactions(ctx, in.Block.Hash, in.Txs); err != nil {
		return err
	}

	batch, err := r.conn.PrepareBatch(ctx, insertBlockQuery)
	if err != nil {
		return fmt.Errorf("prepare block batch: %w", err)
	}

	block := in.Block
	if err = batch.Append(
		block.Hash,
		block.Version,
		block.TxNumber,
		block.PrevBlockHash,
		block.Timestamp,
		block.Height,
		block.MerkleRoot,
		block.Nonce,
		block.ExtraNonce,
	); err != nil {
		return fmt.Errorf("append block %s: %w", block.Hash, err)
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert block %s: %w", block.Hash, err)
	}
	return nil
}
