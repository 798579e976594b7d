package generator

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/pulse-retail/pulse/internal/model"
)

// OrderWriter is the single store operation the simulator needs.
type OrderWriter interface {
	CreateOrder(ctx context.Context, order *model.Order) error
}

// Config holds runner settings.
type Config struct {
	// Interval is the delay between firings.
	Interval time.Duration

	// Seed seeds the random source; zero means time-seeded.
	Seed int64
}

// Runner appends one synthetic order per firing at a fixed cadence. Firings
// never overlap: the limiter is not waited on again until the previous
// append has returned or been abandoned.
type Runner struct {
	writer OrderWriter
	logger *logrus.Logger
	rng    *rand.Rand
	cfg    Config
}

func NewRunner(writer OrderWriter, logger *logrus.Logger, cfg Config) *Runner {
	return &Runner{
		writer: writer,
		logger: logger,
		rng:    NewRand(cfg.Seed),
		cfg:    cfg,
	}
}

// Run blocks until ctx is cancelled. A failed append is logged and skipped;
// the next firing proceeds on schedule without retrying.
func (r *Runner) Run(ctx context.Context) error {
	limiter := rate.NewLimiter(rate.Every(r.cfg.Interval), 1)

	for {
		if err := limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		order := Build(r.rng, time.Now())

		appendCtx, cancel := context.WithTimeout(ctx, r.cfg.Interval)
		err := r.writer.CreateOrder(appendCtx, order)
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			r.logger.WithError(err).Error("append failed, skipping firing")
			continue
		}

		r.logger.WithFields(logrus.Fields{
			"category": order.Category,
			"product":  order.ProductName,
			"amount":   order.OrderAmount,
		}).Info("order appended")
	}
}
