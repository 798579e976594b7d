package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pulse-retail/pulse/internal/handler"
)

func registerSalesRoutes(router *gin.RouterGroup, salesHandler *handler.SalesHandler) {
	router.GET("/category-sales", salesHandler.CategorySales)
	router.GET("/hourly-sales", salesHandler.HourlySales)
	router.GET("/brand-wordcloud", salesHandler.BrandWordCloud)
	router.GET("/time-of-day-orders", salesHandler.TimeOfDayOrders)
	router.GET("/province-sales", salesHandler.ProvinceSales)
	router.GET("/total-sales", salesHandler.TotalSales)
}
