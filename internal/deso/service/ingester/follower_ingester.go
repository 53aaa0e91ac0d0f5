package ingester

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-deso/internal/clock"
)

// FollowerIngesterService is the tail daemon. Each cycle it full-inserts the
// blocks between the stored maximum and the remote tip, newest first, then
// sleeps for the poll interval.
type FollowerIngesterService struct {
	logger       *zap.Logger
	repo         Repository
	source       ChainSource
	blockWriter  BlockWriter
	metrics      FollowerIngesterMetrics
	progress     *Progress
	sleep        clock.SleepFunc
	pollInterval time.Duration
}

func NewFollowerIngesterService(
	repo Repository,
	source ChainSource,
	decoder TxDecoder,
	metrics FollowerIngesterMetrics,
	progress *Progress,
	pollInterval time.Duration,
	logger *zap.Logger,
) (*FollowerIngesterService, error) {
	if metrics == nil {
		return nil, errors.New("follower ingester metrics is required")
	}
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	if progress == nil {
		progress = NewProgress()
	}
	logger = logger.Named("follower")

	return &FollowerIngesterService{
		logger:       logger,
		repo:         repo,
		source:       source,
		blockWriter:  newBlockWriter(repo, source, decoder, logger.Named("blockWriter")),
		metrics:      metrics,
		progress:     progress,
		sleep:        clock.SleepWithContext,
		pollInterval: pollInterval,
	}, nil
}

// Run polls until the context is canceled or a cycle fails.
func (s *FollowerIngesterService) Run(ctx context.Context) error {
	s.progress.SetPhase(PhaseFollow)
	s.logger.Info("following chain tip", zap.Duration("poll_interval", s.pollInterval))
	return clock.Loop(ctx, s.pollInterval, s.sleep, s.run)
}

func (s *FollowerIngesterService) run(ctx context.Context) (err error) {
	started := time.Now()
	inserted := 0
	defer func() {
		s.metrics.ObserveCycle(err, inserted, started)
	}()

	storedMax, ok, err := s.repo.MaxBlockHeight(ctx)
	if err != nil {
		return fmt.Errorf("read stored max height: %w", err)
	}
	tip, err := s.source.FetchTip(ctx)
	if err != nil {
		return fmt.Errorf("fetch chain tip: %w", err)
	}
	s.progress.SetTip(tip.Height)

	hash, height := tip.BlockHashHex, tip.Height
	for !ok || height > storedMax {
		res, err := s.blockWriter.FullInsert(ctx, hash)
		if err != nil {
			return err
		}
		inserted++
		s.progress.ObserveFollowed(height)

		if height == 0 {
			break
		}
		hash = res.PrevHash
		height--
	}

	if inserted == 0 {
		s.logger.Debug("no new blocks", zap.Uint64("tip_height", tip.Height))
	} else {
		s.logger.Info("caught up with tip", zap.Uint64("tip_height", tip.Height), zap.Int("inserted", inserted))
	}
	return nil
}
