package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-deso/internal/deso/decoder"
	"github.com/goodnatureofminers/blockinsight7000-deso/internal/deso/node"
	"github.com/goodnatureofminers/blockinsight7000-deso/internal/deso/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-deso/internal/deso/repository/postgres"
	"github.com/goodnatureofminers/blockinsight7000-deso/internal/deso/service/ingester"
	"github.com/goodnatureofminers/blockinsight7000-deso/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-deso/internal/transport"
	"github.com/goodnatureofminers/blockinsight7000-deso/migrations"
)

type config struct {
	Store             string        `long:"store" env:"DESO_INDEXER_STORE" default:"clickhouse" choice:"clickhouse" choice:"postgres" description:"store backend"`
	ClickhouseDSN     string        `long:"clickhouse-dsn" env:"DESO_INDEXER_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	PostgresDSN       string        `long:"postgres-dsn" env:"DESO_INDEXER_POSTGRES_DSN" description:"PostgreSQL DSN"`
	NodeURL           string        `long:"node-url" env:"DESO_INDEXER_NODE_URL" description:"DeSo node API URL" default:"https://bitclout.com/api/v1"`
	HTTPTimeout       time.Duration `long:"http-timeout" env:"DESO_INDEXER_HTTP_TIMEOUT" description:"timeout of a single node request" default:"30s"`
	RequestsPerSecond int           `long:"requests-per-second" env:"DESO_INDEXER_REQUESTS_PER_SECOND" description:"node request rate limit, 0 disables it" default:"0"`
	RetryBaseDelay    time.Duration `long:"retry-base-delay" env:"DESO_INDEXER_RETRY_BASE_DELAY" description:"first retry delay, doubled on every attempt" default:"1s"`
	RetryJitter       time.Duration `long:"retry-jitter" env:"DESO_INDEXER_RETRY_JITTER" description:"upper bound of the random retry jitter" default:"10ms"`
	RetryMaxAttempts  uint64        `long:"retry-max-attempts" env:"DESO_INDEXER_RETRY_MAX_ATTEMPTS" description:"attempts per node request, 0 retries forever" default:"0"`
	HeaderCacheSize   int           `long:"header-cache-size" env:"DESO_INDEXER_HEADER_CACHE_SIZE" description:"number of cached block headers" default:"1024"`
	Recreate          bool          `short:"n" long:"recreate" env:"DESO_INDEXER_RECREATE" description:"drop and recreate the store schema before running"`
	StartHash         string        `long:"start-hash" env:"DESO_INDEXER_START_HASH" description:"start the backfill from this block instead of the chain tip"`
	SkipBackfill      bool          `long:"skip-backfill" env:"DESO_INDEXER_SKIP_BACKFILL" description:"do not walk the chain before following the tip"`
	SkipVerify        bool          `long:"skip-verify" env:"DESO_INDEXER_SKIP_VERIFY" description:"do not run the integrity check after the backfill"`
	PollInterval      time.Duration `long:"poll-interval" env:"DESO_INDEXER_POLL_INTERVAL" description:"tail daemon poll interval" default:"5m"`
	RepairWorkers     int           `long:"repair-lookup-workers" env:"DESO_INDEXER_REPAIR_LOOKUP_WORKERS" description:"concurrent transaction lookups while repairing a block" default:"1"`
	VerifyChunkSize   uint64        `long:"verify-chunk-size" env:"DESO_INDEXER_VERIFY_CHUNK_SIZE" description:"heights checked per integrity query" default:"10000"`
	MetricsAddr       string        `long:"metrics-addr" env:"DESO_INDEXER_METRICS_ADDR" description:"address for metrics and status server" default:":2112"`
	GRPCAddr          string        `long:"grpc-addr" env:"DESO_INDEXER_GRPC_ADDR" description:"address for the gRPC health server" default:":8000"`
}

type repository interface {
	ingester.Repository
	Close() error
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		var integrityErr *ingester.IntegrityError
		if errors.As(err, &integrityErr) {
			logger.Fatal("stored chain is not fully inserted",
				zap.Uint64("height", integrityErr.Height),
				zap.String("hash", integrityErr.Hash),
				zap.Uint64("declared", integrityErr.Declared),
				zap.Uint64("stored", integrityErr.Stored),
				zap.Bool("missing", integrityErr.Missing),
			)
		}
		logger.Fatal("deso indexer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) (err error) {
	progress := ingester.NewProgress()
	defer func() {
		if err != nil {
			progress.Fail(err)
		}
	}()

	healthHandler := transport.NewHealthHandler()
	defer healthHandler.Shutdown()
	startStatusServer(ctx, cfg.MetricsAddr, progress, logger)
	if err := startGRPCServer(ctx, cfg.GRPCAddr, healthHandler, logger); err != nil {
		return err
	}

	store := migrations.Store(cfg.Store)
	dsn := cfg.dsn()
	if dsn == "" {
		return fmt.Errorf("%s DSN is required", store)
	}
	if cfg.Recreate {
		logger.Warn("recreating store schema", zap.String("store", cfg.Store))
		if err := migrations.Recreate(store, dsn); err != nil {
			return fmt.Errorf("recreate store: %w", err)
		}
	}

	repo, err := openRepository(ctx, store, dsn)
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			logger.Error("failed to close repository", zap.Error(closeErr))
		}
	}()

	client, err := node.NewClient(node.Config{
		URL:               cfg.NodeURL,
		Timeout:           cfg.HTTPTimeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
		HeaderCacheSize:   cfg.HeaderCacheSize,
		Policy: node.Policy{
			BaseDelay:   cfg.RetryBaseDelay,
			Jitter:      cfg.RetryJitter,
			MaxAttempts: cfg.RetryMaxAttempts,
		},
	}, metrics.NewNodeClient(), logger)
	if err != nil {
		return fmt.Errorf("init node client: %w", err)
	}
	dec := decoder.New()
	logger = logger.With(zap.String("store", cfg.Store))

	if !cfg.SkipBackfill {
		backfill, err := ingester.NewBackfillIngesterService(repo, client, dec, metrics.NewBackfillIngester(), progress, cfg.StartHash, cfg.RepairWorkers, logger)
		if err != nil {
			return err
		}
		if err := backfill.Run(ctx); err != nil {
			return canceled(err)
		}
	}

	if !cfg.SkipVerify {
		verifier, err := ingester.NewVerifierService(repo, metrics.NewVerifier(), progress, cfg.VerifyChunkSize, logger)
		if err != nil {
			return err
		}
		if err := verifier.Run(ctx); err != nil {
			return canceled(err)
		}
	}

	follower, err := ingester.NewFollowerIngesterService(repo, client, dec, metrics.NewFollowerIngester(), progress, cfg.PollInterval, logger)
	if err != nil {
		return err
	}
	healthHandler.SetServing(true)
	return canceled(follower.Run(ctx))
}

func (c config) dsn() string {
	if migrations.Store(c.Store) == migrations.Postgres {
		return c.PostgresDSN
	}
	return c.ClickhouseDSN
}

func openRepository(ctx context.Context, store migrations.Store, dsn string) (repository, error) {
	repoMetrics := metrics.NewRepository(string(store))
	switch store {
	case migrations.ClickHouse:
		return clickhouse.NewRepository(dsn, repoMetrics)
	case migrations.Postgres:
		return postgres.NewRepository(ctx, dsn, repoMetrics)
	default:
		return nil, fmt.Errorf("unsupported store %q", store)
	}
}

// canceled treats a shutdown signal as a clean exit.
func canceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func startGRPCServer(ctx context.Context, addr string, healthHandler *transport.HealthHandler, logger *zap.Logger) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen grpc on %s: %w", addr, err)
	}
	server := transport.NewGRPCServer(healthHandler, logger)
	go func() {
		if err := transport.ServeGRPC(ctx, server, lis, logger); err != nil {
			logger.Error("gRPC server failed", zap.Error(err))
		}
	}()
	return nil
}

func startStatusServer(ctx context.Context, addr string, progress *ingester.Progress, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           transport.NewHTTPHandler(progress, logger),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
