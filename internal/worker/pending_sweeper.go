package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/quickbite/quickbite/internal/domain/model"
)

// StorefrontFacade exposes the subset of application functionality required by the sweeper.
type StorefrontFacade interface {
	StalePending(ctx context.Context, olderThan time.Time, limit int) ([]model.Order, error)
}

// PendingSweeper periodically reports pending orders that outlived the
// payment TTL. Checkout keeps such orders when the provider session fails or
// the customer abandons payment; the sweeper only surfaces them, it never
// mutates state.
type PendingSweeper struct {
	facade       StorefrontFacade
	pollInterval time.Duration
	pendingTTL   time.Duration
	batchSize    int
	logger       *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewPendingSweeper constructs the stale order sweeper.
func NewPendingSweeper(facade StorefrontFacade, pollInterval, pendingTTL time.Duration, batchSize int, logger *slog.Logger) *PendingSweeper {
	if batchSize <= 0 {
		batchSize = 1
	}
	return &PendingSweeper{
		facade:       facade,
		pollInterval: pollInterval,
		pendingTTL:   pendingTTL,
		batchSize:    batchSize,
		logger:       logger,
	}
}

// Start launches background sweeping.
func (s *PendingSweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(runCtx)
}

// Stop waits for the sweep loop to finish.
func (s *PendingSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *PendingSweeper) run(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *PendingSweeper) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.pendingTTL)
	orders, err := s.facade.StalePending(ctx, cutoff, s.batchSize)
	if err != nil {
		s.logger.Error("stale pending sweep failed", slog.String("error", err.Error()))
		return
	}

	for _, order := range orders {
		s.logger.Warn("order pending past ttl",
			slog.String("order", order.ID),
			slog.String("customer", order.CustomerID),
			slog.Int64("amount", order.TotalAmount),
			slog.Time("created_at", order.CreatedAt),
		)
	}
	if len(orders) == s.batchSize {
		s.logger.Info("stale pending sweep truncated", slog.Int("batch", s.batchSize))
	}
}
