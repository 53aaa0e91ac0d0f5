package ingester

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-deso/internal/deso/chain"
	"github.com/goodnatureofminers/blockinsight7000-deso/internal/deso/model"
	"github.com/goodnatureofminers/blockinsight7000-deso/pkg/workerpool"
)

var errMissingHeader = errors.New("full block without header")

// WriteResult describes a block handled by a BlockWriter.
type WriteResult struct {
	Height   uint64
	Hash     string
	PrevHash string
	// Txs is the number of transaction rows written.
	Txs int
}

type blockWriter struct {
	repo          Repository
	source        ChainSource
	decoder       TxDecoder
	logger        *zap.Logger
	lookupWorkers int
}

func newBlockWriter(repo Repository, source ChainSource, decoder TxDecoder, logger *zap.Logger) *blockWriter {
	return &blockWriter{
		repo:          repo,
		source:        source,
		decoder:       decoder,
		logger:        logger,
		lookupWorkers: DefaultRepairLookupWorkers,
	}
}

// FullInsert fetches a block and stores its row together with every decodable
// transaction in one commit.
func (w *blockWriter) FullInsert(ctx context.Context, hash string) (WriteResult, error) {
	full, err := w.source.FetchFullBlock(ctx, hash)
	if err != nil {
		return WriteResult{}, fmt.Errorf("fetch full block %s: %w", hash, err)
	}
	if full.Header == nil {
		return WriteResult{}, fmt.Errorf("block %s: %w", hash, errMissingHeader)
	}
	header := *full.Header

	txs := make([]model.Transaction, 0, len(full.Transactions))
	for _, raw := range full.Transactions {
		tx, ok, err := w.decode(header, raw)
		if err != nil {
			return WriteResult{}, err
		}
		if ok {
			txs = append(txs, tx)
		}
	}

	block := blockFromHeader(header, uint64(len(txs)))
	if err = w.repo.InsertBlock(ctx, model.InsertBlock{Block: block, Txs: txs}); err != nil {
		return WriteResult{}, fmt.Errorf("insert block %s at height %d: %w", hash, header.Height, err)
	}

	w.logger.Info("block inserted",
		zap.Uint64("height", header.Height),
		zap.String("hash", header.BlockHashHex),
		zap.Int("txs", len(txs)),
	)
	return WriteResult{Height: header.Height, Hash: header.BlockHashHex, PrevHash: block.PrevHash(), Txs: len(txs)}, nil
}

// RepairInsert fetches a stored block and adds only the transactions missing
// from the store. The block row is left untouched.
func (w *blockWriter) RepairInsert(ctx context.Context, hash string) (WriteResult, error) {
	full, err := w.source.FetchFullBlock(ctx, hash)
	if err != nil {
		return WriteResult{}, fmt.Errorf("fetch full block %s: %w", hash, err)
	}
	if full.Header == nil {
		return WriteResult{}, fmt.Errorf("block %s: %w", hash, errMissingHeader)
	}
	header := *full.Header

	stored, err := workerpool.Map(ctx, w.lookupWorkers, full.Transactions,
		func(ctx context.Context, raw chain.RawTransaction) (bool, error) {
			found, err := w.repo.HasTransaction(ctx, raw.TransactionIDBase58Check)
			if err != nil {
				return false, fmt.Errorf("lookup transaction %s: %w", raw.TransactionIDBase58Check, err)
			}
			return found, nil
		})
	if err != nil {
		return WriteResult{}, err
	}

	var missing []model.Transaction
	for i, raw := range full.Transactions {
		if stored[i] {
			continue
		}
		tx, ok, err := w.decode(header, raw)
		if err != nil {
			return WriteResult{}, err
		}
		if ok {
			missing = append(missing, tx)
		}
	}

	if err = w.repo.InsertTransactions(ctx, header.BlockHashHex, missing); err != nil {
		return WriteResult{}, fmt.Errorf("repair block %s at height %d: %w", hash, header.Height, err)
	}

	w.logger.Info("block repaired",
		zap.Uint64("height", header.Height),
		zap.String("hash", header.BlockHashHex),
		zap.Int("inserted_txs", len(missing)),
	)
	return WriteResult{
		Height:   header.Height,
		Hash:     header.BlockHashHex,
		PrevHash: prevHash(header),
		Txs:      len(missing),
	}, nil
}

func (w *blockWriter) decode(header chain.Header, raw chain.RawTransaction) (model.Transaction, bool, error) {
	tx, ok, err := w.decoder.Decode(header, raw)
	if err != nil {
		return model.Transaction{}, false, fmt.Errorf("block %s at height %d: %w", header.BlockHashHex, header.Height, err)
	}
	if !ok {
		txnType := raw.TransactionType
		if raw.TransactionMetadata != nil {
			txnType = raw.TransactionMetadata.TxnType
		}
		w.logger.Warn("skipping transaction of unknown type",
			zap.String("txn_type", txnType),
			zap.String("tx_id", raw.TransactionIDBase58Check),
			zap.Uint64("height", header.Height),
		)
	}
	return tx, ok, nil
}

// blockFromHeader builds the block row. txNumber counts the transactions that
// decode to a record, so a block is complete once all of them are stored.
func blockFromHeader(header chain.Header, txNumber uint64) model.Block {
	var prev *string
	if p := prevHash(header); p != "" {
		prev = &p
	}
	return model.Block{
		Hash:          header.BlockHashHex,
		Version:       header.Version,
		TxNumber:      txNumber,
		PrevBlockHash: prev,
		Timestamp:     header.TstampSecs,
		Height:        header.Height,
		MerkleRoot:    header.TransactionMerkleRootHex,
		Nonce:         strconv.FormatUint(header.Nonce, 10),
		ExtraNonce:    strconv.FormatUint(header.ExtraNonce, 10),
	}
}

// prevHash is empty at genesis, whose header carries an all zero predecessor.
func prevHash(header chain.Header) string {
	if header.Height == 0 {
		return ""
	}
	return header.PrevBlockHashHex
}
