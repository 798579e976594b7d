package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pulse-retail/pulse/internal/service"
)

// SalesHandler serves the store-wide aggregates on the main dashboard page.
type SalesHandler struct {
	analytics *service.AnalyticsService
	logger    *slog.Logger
}

func NewSalesHandler(analytics *service.AnalyticsService, logger *slog.Logger) *SalesHandler {
	return &SalesHandler{
		analytics: analytics,
		logger:    logger,
	}
}

func (h *SalesHandler) CategorySales(c *gin.Context) {
	ctx, cancel := queryContext(c)
	defer cancel()

	rows, err := h.analytics.CategorySales(ctx)
	if err != nil {
		h.logger.Error("category sales query failed", "error", err)
		respondError(c, http.StatusInternalServerError, "query failed")
		return
	}
	respondOK(c, rows)
}

func (h *SalesHandler) HourlySales(c *gin.Context) {
	ctx, cancel := queryContext(c)
	defer cancel()

	rows, err := h.analytics.HourlySales(ctx, "")
	if err != nil {
		h.logger.Error("hourly sales query failed", "error", err)
		respondError(c, http.StatusInternalServerError, "query failed")
		return
	}
	respondOK(c, rows)
}

func (h *SalesHandler) BrandWordCloud(c *gin.Context) {
	ctx, cancel := queryContext(c)
	defer cancel()

	rows, err := h.analytics.BrandWordCloud(ctx)
	if err != nil {
		h.logger.Error("brand word cloud query failed", "error", err)
		respondError(c, http.StatusInternalServerError, "query failed")
		return
	}
	respondOK(c, rows)
}

func (h *SalesHandler) TimeOfDayOrders(c *gin.Context) {
	ctx, cancel := queryContext(c)
	defer cancel()

	rows, err := h.analytics.TimeOfDayOrders(ctx)
	if err != nil {
		h.logger.Error("time-of-day orders query failed", "error", err)
		respondError(c, http.StatusInternalServerError, "query failed")
		return
	}
	respondOK(c, rows)
}

func (h *SalesHandler) ProvinceSales(c *gin.Context) {
	ctx, cancel := queryContext(c)
	defer cancel()

	rows, err := h.analytics.ProvinceSales(ctx)
	if err != nil {
		h.logger.Error("province sales query failed", "error", err)
		respondError(c, http.StatusInternalServerError, "query failed")
		return
	}
	respondOK(c, rows)
}

func (h *SalesHandler) TotalSales(c *gin.Context) {
	ctx, cancel := queryContext(c)
	defer cancel()

	total, err := h.analytics.TotalSales(ctx, "")
	if err != nil {
		h.logger.Error("total sales query failed", "error", err)
		respondError(c, http.StatusInternalServerError, "query failed")
		return
	}
	respondOK(c, gin.H{"total_sales": total})
}
