package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pulse-retail/pulse/internal/service"
)

// LogisticsHandler serves the logistics dashboard: route maps, province
// tables and shipment status breakdowns.
type LogisticsHandler struct {
	logistics *service.LogisticsService
	logger    *slog.Logger
}

func NewLogisticsHandler(logistics *service.LogisticsService, logger *slog.Logger) *LogisticsHandler {
	return &LogisticsHandler{
		logistics: logistics,
		logger:    logger,
	}
}

func (h *LogisticsHandler) fail(c *gin.Context, what string, err error) {
	h.logger.Error(what+" query failed", "error", err)
	respondError(c, http.StatusInternalServerError, "query failed")
}

func (h *LogisticsHandler) Shipments(c *gin.Context) {
	ctx, cancel := queryContext(c)
	defer cancel()

	rows, err := h.logistics.RecentShipments(ctx)
	if err != nil {
		h.fail(c, "recent shipments", err)
		return
	}
	respondOK(c, rows)
}

func (h *LogisticsHandler) Summary(c *gin.Context) {
	ctx, cancel := queryContext(c)
	defer cancel()

	summary, err := h.logistics.Summary(ctx)
	if err != nil {
		h.fail(c, "shipment summary", err)
		return
	}
	respondOK(c, summary)
}

func (h *LogisticsHandler) ShippingPaths(c *gin.Context) {
	ctx, cancel := queryContext(c)
	defer cancel()

	rows, err := h.logistics.ShippingPaths(ctx)
	if err != nil {
		h.fail(c, "shipping paths", err)
		return
	}
	respondOK(c, rows)
}

func (h *LogisticsHandler) ShippingPoints(c *gin.Context) {
	ctx, cancel := queryContext(c)
	defer cancel()

	rows, err := h.logistics.ShippingPoints(ctx)
	if err != nil {
		h.fail(c, "shipping points", err)
		return
	}
	respondOK(c, rows)
}

func (h *LogisticsHandler) ProvinceCounts(c *gin.Context) {
	ctx, cancel := queryContext(c)
	defer cancel()

	rows, err := h.logistics.ProvinceCounts(ctx)
	if err != nil {
		h.fail(c, "province counts", err)
		return
	}
	respondOK(c, rows)
}

func (h *LogisticsHandler) RouteTop10(c *gin.Context) {
	ctx, cancel := queryContext(c)
	defer cancel()

	rows, err := h.logistics.RouteTop10(ctx)
	if err != nil {
		h.fail(c, "route top10", err)
		return
	}
	respondOK(c, rows)
}

func (h *LogisticsHandler) CourierStatusCounts(c *gin.Context) {
	ctx, cancel := queryContext(c)
	defer cancel()

	rows, err := h.logistics.CourierStatusCounts(ctx)
	if err != nil {
		h.fail(c, "courier status counts", err)
		return
	}
	respondOK(c, rows)
}

func (h *LogisticsHandler) StatusCounts(c *gin.Context) {
	ctx, cancel := queryContext(c)
	defer cancel()

	rows, err := h.logistics.StatusCounts(ctx)
	if err != nil {
		h.fail(c, "status counts", err)
		return
	}
	respondOK(c, rows)
}

func (h *LogisticsHandler) CategoryCounts(c *gin.Context) {
	ctx, cancel := queryContext(c)
	defer cancel()

	rows, err := h.logistics.CategoryCounts(ctx)
	if err != nil {
		h.fail(c, "category counts", err)
		return
	}
	respondOK(c, rows)
}
