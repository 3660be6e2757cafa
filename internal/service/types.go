package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/powsim7000/internal/chain"
	"github.com/goodnatureofminers/powsim7000/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Ledger interface {
		Mine(ctx context.Context, reporter chain.ProgressReporter) (string, error)
		RequiredDifficulty() int
		Height() uint64
		LastBlock() model.Block
	}

	MinerMetrics interface {
		ObserveRound(err error, attempts uint64, started time.Time)
		SetChainState(height uint64, difficulty int)
	}
)
