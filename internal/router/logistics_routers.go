package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pulse-retail/pulse/internal/handler"
)

func registerLogisticsRoutes(router *gin.RouterGroup, logisticsHandler *handler.LogisticsHandler) {
	logistics := router.Group("/logistics")
	{
		logistics.GET("/shipments", logisticsHandler.Shipments)
		logistics.GET("/summary", logisticsHandler.Summary)
		logistics.GET("/shipping-paths", logisticsHandler.ShippingPaths)
		logistics.GET("/shipping-points", logisticsHandler.ShippingPoints)
		logistics.GET("/province-counts", logisticsHandler.ProvinceCounts)
		logistics.GET("/route-top10", logisticsHandler.RouteTop10)
		logistics.GET("/courier-status-counts", logisticsHandler.CourierStatusCounts)
		logistics.GET("/status-counts", logisticsHandler.StatusCounts)
		logistics.GET("/category-counts", logisticsHandler.CategoryCounts)
	}
}
