package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pulse-retail/pulse/internal/handler"
)

type Config struct {
	SalesHandler     *handler.SalesHandler
	CategoryHandler  *handler.CategoryHandler
	LogisticsHandler *handler.LogisticsHandler
}

func NewRouter(cfg *Config) *gin.Engine {
	router := gin.Default()

	api := router.Group("/api")
	registerSalesRoutes(api, cfg.SalesHandler)
	registerCategoryRoutes(api, cfg.CategoryHandler)
	registerLogisticsRoutes(api, cfg.LogisticsHandler)

	return router
}
