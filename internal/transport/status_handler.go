// Package transport exposes the read-only HTTP surface of the chain.
package transport

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/powsim7000/internal/chain"
	"github.com/goodnatureofminers/powsim7000/internal/model"
)

// SnapshotSource provides the chain view served to clients.
type SnapshotSource interface {
	Snapshot(candidate *model.Block) chain.Snapshot
}

// StatusHandler serves chain snapshots as JSON.
type StatusHandler struct {
	source SnapshotSource
	logger *zap.Logger
}

// NewStatusHandler returns a StatusHandler reading from source.
func NewStatusHandler(source SnapshotSource, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{source: source, logger: logger}
}

// ServeHTTP writes the current snapshot. Only committed blocks are
// included; in-flight candidates stay on the live display.
func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.source.Snapshot(nil)); err != nil {
		h.logger.Error("encode snapshot", zap.Error(err))
	}
}
