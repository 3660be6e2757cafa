// Package service drives the mining loop over the chain.
package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/powsim7000/internal/chain"
	"github.com/goodnatureofminers/powsim7000/internal/clock"
)

// MinerService mines blocks back to back until its context is canceled.
type MinerService struct {
	logger   *zap.Logger
	ledger   Ledger
	metrics  MinerMetrics
	reporter chain.ProgressReporter
	sleep    func(context.Context, time.Duration) error
	backoff  time.Duration
}

// NewMinerService builds a MinerService with dependencies. The reporter may
// be nil when no presentation is attached.
func NewMinerService(ledger Ledger, metrics MinerMetrics, reporter chain.ProgressReporter, logger *zap.Logger) (*MinerService, error) {
	if ledger == nil {
		return nil, errors.New("ledger is required")
	}
	if metrics == nil {
		return nil, errors.New("miner metrics is required")
	}

	return &MinerService{
		logger:   logger.Named("miner"),
		ledger:   ledger,
		metrics:  metrics,
		reporter: reporter,
		sleep:    clock.SleepWithContext,
		backoff:  backoffDuration,
	}, nil
}

// Run mines rounds until the context ends. A failed round (an exhausted
// attempt cap) is logged and retried after a backoff; the retry re-reads
// the required difficulty from the ledger.
func (s *MinerService) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			s.logger.Warn("mining round failed, backing off", zap.Error(err), zap.Duration("sleep", s.backoff))
			if sleepErr := s.sleep(ctx, s.backoff); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (s *MinerService) run(ctx context.Context) error {
	difficulty := s.ledger.RequiredDifficulty()
	started := time.Now()

	hash, err := s.ledger.Mine(ctx, s.reporter)
	if err != nil {
		s.metrics.ObserveRound(err, 0, started)
		return err
	}

	block := s.ledger.LastBlock()
	s.metrics.ObserveRound(nil, block.Nonce()+1, started)
	s.metrics.SetChainState(s.ledger.Height(), s.ledger.RequiredDifficulty())

	s.logger.Info("block committed",
		zap.Uint64("index", block.Index()),
		zap.Uint64("nonce", block.Nonce()),
		zap.Int("difficulty", difficulty),
		zap.String("hash", hash),
		zap.Duration("took", time.Since(started)),
	)
	return nil
}
