package router

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/pulse-retail/pulse/internal/handler"
	"github.com/pulse-retail/pulse/internal/model"
	"github.com/pulse-retail/pulse/internal/repository"
	"github.com/pulse-retail/pulse/internal/service"
)

type stubRepo struct {
	repository.OrderRepository

	dateTotals     []model.DateTotal
	provinceCounts []model.ProvinceCount
	sum            float64
	err            error
}

func (s *stubRepo) SumAmountByDate(ctx context.Context, category string) ([]model.DateTotal, error) {
	return s.dateTotals, s.err
}

func (s *stubRepo) CountByProvince(ctx context.Context) ([]model.ProvinceCount, error) {
	return s.provinceCounts, s.err
}

func (s *stubRepo) SumAmount(ctx context.Context, category string) (float64, error) {
	return s.sum, s.err
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(repo repository.OrderRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	analytics := service.NewAnalyticsService(repo)
	logistics := service.NewLogisticsService(repo)
	return NewRouter(&Config{
		SalesHandler:     handler.NewSalesHandler(analytics, logger),
		CategoryHandler:  handler.NewCategoryHandler(analytics, logger),
		LogisticsHandler: handler.NewLogisticsHandler(logistics, logger),
	})
}

func doGet(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("Response is not an envelope: %v (%s)", err, w.Body.String())
	}
	return w, env
}

func TestSalesTrendEndpoint(t *testing.T) {
	router := newTestRouter(&stubRepo{dateTotals: []model.DateTotal{
		{Date: "2026-08-01", Total: 150},
		{Date: "2026-08-02", Total: 200},
	}})

	w, env := doGet(t, router, "/api/categories/apparel/sales-trend")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var points []service.TrendPoint
	if err := json.Unmarshal(env.Data, &points); err != nil {
		t.Fatalf("Bad data payload: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("Expected 2 points, got %d", len(points))
	}
	if points[0].Growth != nil {
		t.Error("Expected null growth for first bucket")
	}
	if points[1].Growth == nil || math.Abs(*points[1].Growth-1.0/3.0) > 1e-9 {
		t.Errorf("Expected growth 0.3333, got %v", points[1].Growth)
	}
}

func TestUnknownCategoryRejected(t *testing.T) {
	router := newTestRouter(&stubRepo{})

	w, env := doGet(t, router, "/api/categories/garden/sales-trend")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	if env.Message == "" {
		t.Error("Expected an error message in the envelope")
	}
}

func TestTotalSalesEmptyStore(t *testing.T) {
	router := newTestRouter(&stubRepo{sum: 0})

	w, env := doGet(t, router, "/api/total-sales")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var data map[string]float64
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("Bad data payload: %v", err)
	}
	if data["total_sales"] != 0 {
		t.Errorf("Expected 0 total sales, got %v", data["total_sales"])
	}
}

func TestProvinceCountsAlwaysFull(t *testing.T) {
	router := newTestRouter(&stubRepo{})

	w, env := doGet(t, router, "/api/logistics/province-counts")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var rows []model.ProvinceCount
	if err := json.Unmarshal(env.Data, &rows); err != nil {
		t.Fatalf("Bad data payload: %v", err)
	}
	if len(rows) != 34 {
		t.Fatalf("Expected 34 provinces, got %d", len(rows))
	}
	for _, row := range rows {
		if row.Count != 0 {
			t.Errorf("Expected zero count for %s on empty store, got %d", row.Province, row.Count)
		}
	}
}

func TestStoreFailureIsServerError(t *testing.T) {
	router := newTestRouter(&stubRepo{err: errors.New("connection refused")})

	w, env := doGet(t, router, "/api/categories/food/sales-trend")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", w.Code)
	}
	if env.Code != http.StatusInternalServerError {
		t.Errorf("Expected envelope code 500, got %d", env.Code)
	}
}
