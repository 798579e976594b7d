package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/pulse-retail/pulse/config"
	"github.com/pulse-retail/pulse/internal/generator"
	"github.com/pulse-retail/pulse/internal/repository"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	db, err := gorm.Open(mysql.Open(cfg.MySQLDSN), &gorm.Config{})
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}
	orderRepo := repository.NewGormOrderRepository(db)

	runner := generator.NewRunner(orderRepo, logger, generator.Config{
		Interval: cfg.SimInterval,
		Seed:     cfg.SimSeed,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.WithField("interval", cfg.SimInterval).Info("Simulator started")

	if err := runner.Run(ctx); err != nil {
		logger.WithError(err).Fatal("Simulator stopped with error")
	}

	logger.Info("Simulator shutdown complete")
}
