package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pulse-retail/pulse/internal/handler"
)

func registerCategoryRoutes(router *gin.RouterGroup, categoryHandler *handler.CategoryHandler) {
	categories := router.Group("/categories/:category")
	{
		categories.GET("/total-sales", categoryHandler.TotalSales)
		categories.GET("/total-profit", categoryHandler.TotalProfit)
		categories.GET("/total-quantity", categoryHandler.TotalQuantity)
		categories.GET("/product-type-sales", categoryHandler.ProductTypeSales)
		categories.GET("/brand-sales", categoryHandler.BrandSales)
		categories.GET("/hourly-sales", categoryHandler.HourlySales)
		categories.GET("/daily-sales", categoryHandler.DailySales)
		categories.GET("/sales-trend", categoryHandler.SalesTrend)
		categories.GET("/refund-trend", categoryHandler.RefundTrend)
		categories.GET("/top-products", categoryHandler.TopProducts)
		categories.GET("/top-brands", categoryHandler.TopBrands)
		categories.GET("/product-type-ratio", categoryHandler.ProductTypeRatio)
		categories.GET("/brand-ratio", categoryHandler.BrandRatio)
		categories.GET("/composite-top5", categoryHandler.CompositeTop5)
	}
}
