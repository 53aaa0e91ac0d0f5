package ingester

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-deso/internal/deso/chain"
)

// BackfillIngesterService walks the chain from the remote tip (or a given
// start hash) down to genesis and brings every height to the fully inserted
// state. Re-running it against the same store only repairs what is missing.
type BackfillIngesterService struct {
	logger      *zap.Logger
	repo        Repository
	source      ChainSource
	blockWriter BlockWriter
	metrics     BackfillIngesterMetrics
	progress    *Progress
	startHash   string
}

func NewBackfillIngesterService(
	repo Repository,
	source ChainSource,
	decoder TxDecoder,
	metrics BackfillIngesterMetrics,
	progress *Progress,
	startHash string,
	repairLookupWorkers int,
	logger *zap.Logger,
) (*BackfillIngesterService, error) {
	if metrics == nil {
		return nil, errors.New("backfill ingester metrics is required")
	}
	if progress == nil {
		progress = NewProgress()
	}
	logger = logger.Named("backfill")

	writer := newBlockWriter(repo, source, decoder, logger.Named("blockWriter"))
	if repairLookupWorkers > 0 {
		writer.lookupWorkers = repairLookupWorkers
	}

	return &BackfillIngesterService{
		logger:      logger,
		repo:        repo,
		source:      source,
		blockWriter: writer,
		metrics:     metrics,
		progress:    progress,
		startHash:   startHash,
	}, nil
}

// Run performs one complete walk. Any store error aborts it.
func (s *BackfillIngesterService) Run(ctx context.Context) error {
	s.progress.SetPhase(PhaseBackfill)

	start, err := s.startHeader(ctx)
	if err != nil {
		return err
	}
	stored, err := loadStoredRange(ctx, s.repo)
	if err != nil {
		return err
	}
	s.progress.SetTip(start.Height)

	s.logger.Info("backfill started",
		zap.Uint64("start_height", start.Height),
		zap.String("start_hash", start.BlockHashHex),
		zap.Bool("store_empty", stored.empty),
		zap.Uint64("stored_min", stored.min),
		zap.Uint64("stored_max", stored.max),
	)

	hash, height := start.BlockHashHex, start.Height
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		prev, err := s.processHeight(ctx, stored, height, hash, start.Height)
		if err != nil {
			return err
		}
		if height == 0 {
			break
		}
		if prev == "" {
			return fmt.Errorf("block %s at height %d has no previous block", hash, height)
		}
		hash = prev
		height--
	}

	s.logger.Info("backfill finished", zap.Uint64("from_height", start.Height))
	return nil
}

func (s *BackfillIngesterService) startHeader(ctx context.Context) (chain.Header, error) {
	if s.startHash != "" {
		header, err := s.source.FetchHeader(ctx, s.startHash)
		if err != nil {
			return chain.Header{}, fmt.Errorf("fetch start block %s: %w", s.startHash, err)
		}
		return header, nil
	}

	tip, err := s.source.FetchTip(ctx)
	if err != nil {
		return chain.Header{}, fmt.Errorf("fetch chain tip: %w", err)
	}
	return tip, nil
}

// processHeight classifies one height, applies the matching action and
// returns the hash of the previous block.
func (s *BackfillIngesterService) processHeight(
	ctx context.Context,
	stored storedRange,
	height uint64,
	hash string,
	tip uint64,
) (prev string, err error) {
	started := time.Now()
	var action Action
	defer func() {
		s.metrics.ObserveProcessHeight(err, string(action), started)
	}()

	state, err := classify(ctx, s.repo, stored, height, hash)
	if err != nil {
		return "", fmt.Errorf("classify height %d: %w", height, err)
	}
	action = state.Action()

	switch action {
	case ActionFullInsert, ActionRepairInsert:
		var res WriteResult
		if action == ActionFullInsert {
			res, err = s.blockWriter.FullInsert(ctx, hash)
		} else {
			res, err = s.blockWriter.RepairInsert(ctx, hash)
		}
		if err != nil {
			return "", err
		}
		if res.Height != height {
			s.logger.Warn("remote block height differs from walked height",
				zap.String("hash", hash),
				zap.Uint64("walked_height", height),
				zap.Uint64("block_height", res.Height),
			)
		}
		prev = res.PrevHash
	default:
		if prev, err = s.repo.PrevBlockHash(ctx, hash); err != nil {
			return "", fmt.Errorf("read previous hash of %s: %w", hash, err)
		}
		s.logger.Debug("height fully inserted; skipping", zap.Uint64("height", height), zap.String("hash", hash))
	}

	s.metrics.ObserveProgress(height, tip)
	s.progress.ObserveHeight(height, action)
	return prev, nil
}
