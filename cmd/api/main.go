package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/pressly/goose/v3"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/pulse-retail/pulse/config"
	"github.com/pulse-retail/pulse/internal/handler"
	"github.com/pulse-retail/pulse/internal/repository"
	"github.com/pulse-retail/pulse/internal/router"
	"github.com/pulse-retail/pulse/internal/service"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	db, err := gorm.Open(mysql.Open(cfg.MySQLDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	migrateFlag := flag.Bool("migrate", false, "Run database migrations before serving")
	flag.Parse()

	if *migrateFlag {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatalf("Failed to get sql.DB: %v", err)
		}
		if err := goose.SetDialect("mysql"); err != nil {
			log.Fatalf("Goose: failed to set dialect: %v", err)
		}
		log.Println("Running database migrations...")
		if err := goose.Up(sqlDB, "migrations"); err != nil {
			log.Fatalf("Goose migration failed: %v", err)
		}
	}

	orderRepo := repository.NewGormOrderRepository(db)
	analyticsService := service.NewAnalyticsService(orderRepo)
	logisticsService := service.NewLogisticsService(orderRepo)

	routerConfig := &router.Config{
		SalesHandler:     handler.NewSalesHandler(analyticsService, logger),
		CategoryHandler:  handler.NewCategoryHandler(analyticsService, logger),
		LogisticsHandler: handler.NewLogisticsHandler(logisticsService, logger),
	}

	router := router.NewRouter(routerConfig)

	if err := router.Run(fmt.Sprintf(":%s", cfg.ServerPort)); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
