package ingester

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-deso/internal/deso/model"
)

// IntegrityError reports the first stored height whose transaction rows do
// not match its block header.
type IntegrityError struct {
	Height   uint64
	Hash     string
	Declared uint64
	Stored   uint64
	// Missing is set when no block is stored at Height.
	Missing bool
}

func (e *IntegrityError) Error() string {
	if e.Missing {
		return fmt.Sprintf("integrity check failed: no block stored at height %d", e.Height)
	}
	return fmt.Sprintf("integrity check failed: block %s at height %d declares %d transactions, %d stored",
		e.Hash, e.Height, e.Declared, e.Stored)
}

// VerifierService asserts that every stored height in [min, max] is fully inserted.
type VerifierService struct {
	logger    *zap.Logger
	repo      Repository
	metrics   VerifierMetrics
	progress  *Progress
	chunkSize uint64
}

func NewVerifierService(
	repo Repository,
	metrics VerifierMetrics,
	progress *Progress,
	chunkSize uint64,
	logger *zap.Logger,
) (*VerifierService, error) {
	if metrics == nil {
		return nil, errors.New("verifier metrics is required")
	}
	if chunkSize == 0 {
		chunkSize = DefaultVerifyChunkSize
	}
	if progress == nil {
		progress = NewProgress()
	}

	return &VerifierService{
		logger:    logger.Named("verifier"),
		repo:      repo,
		metrics:   metrics,
		progress:  progress,
		chunkSize: chunkSize,
	}, nil
}

// Run scans the stored range from max down to min and returns an
// *IntegrityError on the first violation.
func (s *VerifierService) Run(ctx context.Context) error {
	s.progress.SetPhase(PhaseVerify)

	maxHeight, ok, err := s.repo.MaxBlockHeight(ctx)
	if err != nil {
		return fmt.Errorf("read stored max height: %w", err)
	}
	if !ok {
		s.logger.Info("store is empty; nothing to verify")
		return nil
	}
	minHeight, ok, err := s.repo.MinBlockHeight(ctx)
	if err != nil {
		return fmt.Errorf("read stored min height: %w", err)
	}
	if !ok {
		return errors.New("store reported a max height without a min height")
	}

	for hi := maxHeight; ; {
		if err := ctx.Err(); err != nil {
			return err
		}

		lo := minHeight
		if hi-minHeight >= s.chunkSize {
			lo = hi - s.chunkSize + 1
		}
		if err := s.verifyChunk(ctx, lo, hi); err != nil {
			return err
		}
		if lo == minHeight {
			break
		}
		hi = lo - 1
	}

	s.logger.Info("every stored block is fully inserted",
		zap.Uint64("min_height", minHeight),
		zap.Uint64("max_height", maxHeight),
	)
	return nil
}

func (s *VerifierService) verifyChunk(ctx context.Context, lo, hi uint64) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveChunk(err, int(hi-lo+1), started)
	}()

	rows, err := s.repo.BlockCompleteness(ctx, lo, hi)
	if err != nil {
		return fmt.Errorf("read block completeness [%d, %d]: %w", lo, hi, err)
	}

	byHeight := make(map[uint64][]model.BlockCompleteness, len(rows))
	for _, row := range rows {
		byHeight[row.Height] = append(byHeight[row.Height], row)
	}

	for h := hi; ; h-- {
		blocks := byHeight[h]
		if len(blocks) == 0 {
			return s.violation(&IntegrityError{Height: h, Missing: true})
		}
		for _, b := range blocks {
			if !b.Complete() {
				return s.violation(&IntegrityError{Height: h, Hash: b.Hash, Declared: b.Declared, Stored: b.Stored})
			}
		}
		if h == lo {
			break
		}
	}

	s.logger.Debug("chunk verified", zap.Uint64("from", lo), zap.Uint64("to", hi))
	return nil
}

func (s *VerifierService) violation(e *IntegrityError) error {
	s.metrics.ObserveViolation(e.Height)
	s.logger.Error("integrity violation", zap.Uint64("height", e.Height), zap.String("hash", e.Hash), zap.Bool("missing", e.Missing))
	return e
}
