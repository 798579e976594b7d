package generator

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pulse-retail/pulse/internal/model"
)

type countingWriter struct {
	calls atomic.Int64
	err   error
}

func (w *countingWriter) CreateOrder(ctx context.Context, order *model.Order) error {
	w.calls.Add(1)
	return w.err
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestRunnerAppendsAndStops(t *testing.T) {
	writer := &countingWriter{}
	runner := NewRunner(writer, quietLogger(), Config{Interval: time.Millisecond, Seed: 1})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := runner.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if writer.calls.Load() < 2 {
		t.Errorf("Expected multiple appends, got %d", writer.calls.Load())
	}
}

func TestRunnerSurvivesAppendFailure(t *testing.T) {
	writer := &countingWriter{err: errors.New("store unavailable")}
	runner := NewRunner(writer, quietLogger(), Config{Interval: time.Millisecond, Seed: 1})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := runner.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if writer.calls.Load() < 2 {
		t.Errorf("Expected the loop to keep firing after failures, got %d appends", writer.calls.Load())
	}
}
