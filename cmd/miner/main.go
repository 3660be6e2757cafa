package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/powsim7000/internal/chain"
	"github.com/goodnatureofminers/powsim7000/internal/metrics"
	"github.com/goodnatureofminers/powsim7000/internal/render"
	"github.com/goodnatureofminers/powsim7000/internal/service"
	"github.com/goodnatureofminers/powsim7000/internal/transport"
	"github.com/goodnatureofminers/powsim7000/pkg/safe"
	"github.com/goodnatureofminers/powsim7000/pkg/throttle"
)

type config struct {
	TargetBlockTime     time.Duration `long:"target-block-time" env:"MINER_TARGET_BLOCK_TIME" description:"desired average time between blocks" default:"10s"`
	StatusAddr          string        `long:"status-addr" env:"MINER_STATUS_ADDR" description:"address of the status/metrics HTTP server" default:":8080"`
	RefreshPerSecond    int           `long:"refresh-per-second" env:"MINER_REFRESH_PER_SECOND" description:"live table refresh rate" default:"4"`
	MaxAttemptsPerRound int64         `long:"max-attempts-per-round" env:"MINER_MAX_ATTEMPTS_PER_ROUND" description:"abort a round after this many nonces, 0 searches forever" default:"0"`
	NoLive              bool          `long:"no-live" env:"MINER_NO_LIVE" description:"disable the live table"`
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

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("miner failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	maxAttempts, err := safe.Uint64(cfg.MaxAttemptsPerRound)
	if err != nil {
		return fmt.Errorf("max attempts per round: %w", err)
	}
	if cfg.RefreshPerSecond <= 0 {
		return fmt.Errorf("refresh per second must be positive, got %d", cfg.RefreshPerSecond)
	}

	ledger, err := chain.NewChain(cfg.TargetBlockTime, chain.WithMaxAttempts(maxAttempts))
	if err != nil {
		return fmt.Errorf("init chain: %w", err)
	}

	var reporter chain.ProgressReporter
	if !cfg.NoLive {
		live := render.NewLiveTable(os.Stdout)
		frames := throttle.New(logger.Named("render"), live.Render, cfg.RefreshPerSecond)
		frames.Start(ctx)
		defer frames.Stop()
		reporter = chain.ReporterFunc(frames.Update)
	}

	svc, err := service.NewMinerService(ledger, metrics.NewMiner(), reporter, logger)
	if err != nil {
		return err
	}

	statusServer := newStatusServer(cfg.StatusAddr, ledger, logger)
	go func() {
		if serveErr := statusServer.ListenAndServe(); !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Error("status server failed", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("shutting down status server")
		if shutdownErr := statusServer.Shutdown(context.Background()); shutdownErr != nil {
			logger.Error("status server shutdown", zap.Error(shutdownErr))
		}
	}()

	logger.Info("mining started",
		zap.Duration("target_block_time", cfg.TargetBlockTime),
		zap.String("status_addr", cfg.StatusAddr),
	)
	return svc.Run(ctx)
}

func newStatusServer(addr string, ledger *chain.Chain, logger *zap.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/chain", transport.NewStatusHandler(ledger, logger.Named("status")))
	mux.Handle("/metrics", promhttp.Handler())

	return &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
}
