package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/quickbite/quickbite/internal/domain/model"
	testhelpers "github.com/quickbite/quickbite/internal/test"
)

func TestNewPendingSweeperDefaults(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	sweeper := NewPendingSweeper(&testhelpers.SweeperFacadeStub{}, time.Second, time.Minute, 0, logger)
	if sweeper.batchSize != 1 {
		t.Fatalf("expected batch size default to 1, got %d", sweeper.batchSize)
	}
}

func TestPendingSweeperReportsStaleOrders(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.SweeperFacadeStub{
		Batches: [][]model.Order{{{ID: "order-1", CustomerID: "user-1", Status: model.OrderStatusPending}}},
	}
	sweeper := NewPendingSweeper(facade, 10*time.Millisecond, time.Minute, 5, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for facade.Calls() == 0 {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for sweep")
		case <-time.After(10 * time.Millisecond):
		}
	}

	sweeper.Stop()
	if facade.Calls() == 0 {
		t.Fatalf("expected at least one sweep")
	}
}

func TestPendingSweeperCutoffHonoursTTL(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	ttl := time.Hour
	cutoffCh := make(chan time.Time, 1)
	facade := &testhelpers.SweeperFacadeStub{
		StaleFn: func(ctx context.Context, olderThan time.Time, limit int) ([]model.Order, error) {
			select {
			case cutoffCh <- olderThan:
			default:
			}
			return nil, nil
		},
	}
	sweeper := NewPendingSweeper(facade, 10*time.Millisecond, ttl, 3, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper.Start(ctx)

	select {
	case cutoff := <-cutoffCh:
		age := time.Since(cutoff)
		if age < ttl-time.Minute || age > ttl+time.Minute {
			t.Fatalf("expected cutoff near %v before now, got %v", ttl, age)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timeout waiting for sweep")
	}
	sweeper.Stop()
}

func TestPendingSweeperContinuesAfterError(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.SweeperFacadeStub{
		StaleFn: func(ctx context.Context, olderThan time.Time, limit int) ([]model.Order, error) {
			return nil, errors.New("database unavailable")
		},
	}
	sweeper := NewPendingSweeper(facade, 5*time.Millisecond, time.Minute, 1, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for facade.Calls() < 2 {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for repeated sweeps")
		case <-time.After(10 * time.Millisecond):
		}
	}
	sweeper.Stop()
}

func TestPendingSweeperStopWithoutStart(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	sweeper := NewPendingSweeper(&testhelpers.SweeperFacadeStub{}, time.Second, time.Minute, 1, logger)
	sweeper.Stop()
}
