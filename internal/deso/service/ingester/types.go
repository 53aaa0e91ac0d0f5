package ingester

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-deso/internal/deso/chain"
	"github.com/goodnatureofminers/blockinsight7000-deso/internal/deso/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		MaxBlockHeight(ctx context.Context) (uint64, bool, error)
		MinBlockHeight(ctx context.Context) (uint64, bool, error)
		HasBlock(ctx context.Context, hash string) (bool, error)
		BlockTxCount(ctx context.Context, hash string) (uint64, error)
		StoredTxCount(ctx context.Context, hash string) (uint64, error)
		PrevBlockHash(ctx context.Context, hash string) (string, error)
		HasTransaction(ctx context.Context, txID string) (bool, error)
		InsertBlock(ctx context.Context, b model.InsertBlock) error
		InsertTransactions(ctx context.Context, blockHash string, txs []model.Transaction) error
		BlockCompleteness(ctx context.Context, from, to uint64) ([]model.BlockCompleteness, error)
	}
	ChainSource interface {
		FetchTip(ctx context.Context) (chain.Header, error)
		FetchHeader(ctx context.Context, hash string) (chain.Header, error)
		FetchFullBlock(ctx context.Context, hash string) (chain.FullBlock, error)
	}
	TxDecoder interface {
		Decode(header chain.Header, raw chain.RawTransaction) (model.Transaction, bool, error)
	}
	BlockWriter interface {
		FullInsert(ctx context.Context, hash string) (WriteResult, error)
		RepairInsert(ctx context.Context, hash string) (WriteResult, error)
	}

	BackfillIngesterMetrics interface {
		ObserveProcessHeight(err error, action string, started time.Time)
		ObserveProgress(height, tip uint64)
	}
	FollowerIngesterMetrics interface {
		ObserveCycle(err error, inserted int, started time.Time)
	}
	VerifierMetrics interface {
		ObserveChunk(err error, heights int, started time.Time)
		ObserveViolation(height uint64)
	}
)
