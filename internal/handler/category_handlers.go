package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pulse-retail/pulse/internal/model"
	"github.com/pulse-retail/pulse/internal/service"
)

// CategoryHandler serves the per-category dashboard pages. Every route
// carries a :category path segment which is checked against the closed
// category enum before any query runs.
type CategoryHandler struct {
	analytics *service.AnalyticsService
	logger    *slog.Logger
}

func NewCategoryHandler(analytics *service.AnalyticsService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		analytics: analytics,
		logger:    logger,
	}
}

func (h *CategoryHandler) category(c *gin.Context) (string, bool) {
	category := c.Param("category")
	if !model.ValidCategory(category) {
		respondError(c, http.StatusBadRequest, "unknown category: "+category)
		return "", false
	}
	return category, true
}

func (h *CategoryHandler) fail(c *gin.Context, what string, err error) {
	h.logger.Error(what+" query failed", "category", c.Param("category"), "error", err)
	respondError(c, http.StatusInternalServerError, "query failed")
}

func (h *CategoryHandler) TotalSales(c *gin.Context) {
	category, ok := h.category(c)
	if !ok {
		return
	}
	ctx, cancel := queryContext(c)
	defer cancel()

	total, err := h.analytics.TotalSales(ctx, category)
	if err != nil {
		h.fail(c, "total sales", err)
		return
	}
	respondOK(c, gin.H{"total_sales": total})
}

func (h *CategoryHandler) TotalProfit(c *gin.Context) {
	category, ok := h.category(c)
	if !ok {
		return
	}
	ctx, cancel := queryContext(c)
	defer cancel()

	total, err := h.analytics.TotalProfit(ctx, category)
	if err != nil {
		h.fail(c, "total profit", err)
		return
	}
	respondOK(c, gin.H{"total_profit": total})
}

func (h *CategoryHandler) TotalQuantity(c *gin.Context) {
	category, ok := h.category(c)
	if !ok {
		return
	}
	ctx, cancel := queryContext(c)
	defer cancel()

	total, err := h.analytics.TotalQuantity(ctx, category)
	if err != nil {
		h.fail(c, "total quantity", err)
		return
	}
	respondOK(c, gin.H{"total_quantity": total})
}

func (h *CategoryHandler) ProductTypeSales(c *gin.Context) {
	category, ok := h.category(c)
	if !ok {
		return
	}
	ctx, cancel := queryContext(c)
	defer cancel()

	rows, err := h.analytics.ProductTypeSales(ctx, category)
	if err != nil {
		h.fail(c, "product type sales", err)
		return
	}
	respondOK(c, rows)
}

func (h *CategoryHandler) BrandSales(c *gin.Context) {
	category, ok := h.category(c)
	if !ok {
		return
	}
	ctx, cancel := queryContext(c)
	defer cancel()

	rows, err := h.analytics.BrandSales(ctx, category)
	if err != nil {
		h.fail(c, "brand sales", err)
		return
	}
	respondOK(c, rows)
}

func (h *CategoryHandler) HourlySales(c *gin.Context) {
	category, ok := h.category(c)
	if !ok {
		return
	}
	ctx, cancel := queryContext(c)
	defer cancel()

	rows, err := h.analytics.HourlySales(ctx, category)
	if err != nil {
		h.fail(c, "hourly sales", err)
		return
	}
	respondOK(c, rows)
}

func (h *CategoryHandler) DailySales(c *gin.Context) {
	category, ok := h.category(c)
	if !ok {
		return
	}
	ctx, cancel := queryContext(c)
	defer cancel()

	rows, err := h.analytics.DailySales(ctx, category)
	if err != nil {
		h.fail(c, "daily sales", err)
		return
	}
	respondOK(c, rows)
}

func (h *CategoryHandler) SalesTrend(c *gin.Context) {
	category, ok := h.category(c)
	if !ok {
		return
	}
	ctx, cancel := queryContext(c)
	defer cancel()

	points, err := h.analytics.SalesTrend(ctx, category)
	if err != nil {
		h.fail(c, "sales trend", err)
		return
	}
	respondOK(c, points)
}

func (h *CategoryHandler) RefundTrend(c *gin.Context) {
	category, ok := h.category(c)
	if !ok {
		return
	}
	ctx, cancel := queryContext(c)
	defer cancel()

	points, err := h.analytics.RefundTrend(ctx, category)
	if err != nil {
		h.fail(c, "refund trend", err)
		return
	}
	respondOK(c, points)
}

func (h *CategoryHandler) TopProducts(c *gin.Context) {
	category, ok := h.category(c)
	if !ok {
		return
	}
	ctx, cancel := queryContext(c)
	defer cancel()

	rows, err := h.analytics.TopProducts(ctx, category)
	if err != nil {
		h.fail(c, "top products", err)
		return
	}
	respondOK(c, rows)
}

func (h *CategoryHandler) TopBrands(c *gin.Context) {
	category, ok := h.category(c)
	if !ok {
		return
	}
	ctx, cancel := queryContext(c)
	defer cancel()

	rows, err := h.analytics.TopBrands(ctx, category)
	if err != nil {
		h.fail(c, "top brands", err)
		return
	}
	respondOK(c, rows)
}

func (h *CategoryHandler) ProductTypeRatio(c *gin.Context) {
	category, ok := h.category(c)
	if !ok {
		return
	}
	ctx, cancel := queryContext(c)
	defer cancel()

	rows, err := h.analytics.ProductTypeRatio(ctx, category)
	if err != nil {
		h.fail(c, "product type ratio", err)
		return
	}
	respondOK(c, rows)
}

func (h *CategoryHandler) BrandRatio(c *gin.Context) {
	category, ok := h.category(c)
	if !ok {
		return
	}
	ctx, cancel := queryContext(c)
	defer cancel()

	rows, err := h.analytics.BrandRatio(ctx, category)
	if err != nil {
		h.fail(c, "brand ratio", err)
		return
	}
	respondOK(c, rows)
}

func (h *CategoryHandler) CompositeTop5(c *gin.Context) {
	category, ok := h.category(c)
	if !ok {
		return
	}
	ctx, cancel := queryContext(c)
	defer cancel()

	rows, err := h.analytics.CompositeTop5(ctx, category)
	if err != nil {
		h.fail(c, "composite top5", err)
		return
	}
	respondOK(c, rows)
}
