package service

import (
	"context"
	"sort"

	"github.com/pulse-retail/pulse/internal/model"
	"github.com/pulse-retail/pulse/internal/repository"
)

// ShippingPoint is a named map point, used for rendering route endpoints.
type ShippingPoint struct {
	Name      string  `json:"name"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// RouteRank is one shipping route's summed quantity, keyed start-end.
type RouteRank struct {
	Route string  `json:"route"`
	Total float64 `json:"total"`
}

const (
	recentShipmentLimit = 10
	routeTopN           = 10
)

type LogisticsService struct {
	repo repository.OrderRepository
}

func NewLogisticsService(repo repository.OrderRepository) *LogisticsService {
	return &LogisticsService{repo: repo}
}

// RecentShipments returns the newest shipment rows for the ticker board.
func (s *LogisticsService) RecentShipments(ctx context.Context) ([]model.Order, error) {
	return s.repo.RecentShipments(ctx, recentShipmentLimit)
}

func (s *LogisticsService) Summary(ctx context.Context) (model.ShipmentSummary, error) {
	return s.repo.ShipmentSummary(ctx)
}

// ShippingPaths returns the distinct start/end pairs with both coordinate
// pairs, ready for path rendering.
func (s *LogisticsService) ShippingPaths(ctx context.Context) ([]model.RoutePath, error) {
	return s.repo.DistinctRoutes(ctx)
}

// ShippingPoints flattens the distinct routes into a de-duplicated list of
// named endpoints, sorted by name.
func (s *LogisticsService) ShippingPoints(ctx context.Context) ([]ShippingPoint, error) {
	routes, err := s.repo.DistinctRoutes(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(routes)*2)
	points := make([]ShippingPoint, 0, len(routes)*2)
	add := func(name string, lon, lat float64) {
		if seen[name] {
			return
		}
		seen[name] = true
		points = append(points, ShippingPoint{Name: name, Longitude: lon, Latitude: lat})
	}
	for _, r := range routes {
		add(r.ShippingStart, r.StartLongitude, r.StartLatitude)
		add(r.ShippingEnd, r.EndLongitude, r.EndLatitude)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Name < points[j].Name })
	return points, nil
}

// ProvinceCounts overlays the store's per-province order counts onto a
// zero-valued table built from the fixed region enumeration, so the result
// always has exactly one row per known province, in enumeration order.
func (s *LogisticsService) ProvinceCounts(ctx context.Context) ([]model.ProvinceCount, error) {
	rows, err := s.repo.CountByProvince(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Province] = row.Count
	}
	out := make([]model.ProvinceCount, 0, len(model.Regions))
	for _, region := range model.Regions {
		out = append(out, model.ProvinceCount{Province: region.Name, Count: counts[region.Name]})
	}
	return out, nil
}

// RouteTop10 ranks routes by summed quantity under a start-end key.
func (s *LogisticsService) RouteTop10(ctx context.Context) ([]RouteRank, error) {
	rows, err := s.repo.SumQuantityByRoute(ctx)
	if err != nil {
		return nil, err
	}
	ranks := make([]RouteRank, 0, len(rows))
	for _, row := range rows {
		ranks = append(ranks, RouteRank{
			Route: row.ShippingStart + "-" + row.ShippingEnd,
			Total: row.Total,
		})
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Total != ranks[j].Total {
			return ranks[i].Total > ranks[j].Total
		}
		return ranks[i].Route < ranks[j].Route
	})
	if len(ranks) > routeTopN {
		ranks = ranks[:routeTopN]
	}
	return ranks, nil
}

func (s *LogisticsService) CourierStatusCounts(ctx context.Context) ([]model.CourierStatusCount, error) {
	rows, err := s.repo.CountByCourierStatus(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CourierCompany != rows[j].CourierCompany {
			return rows[i].CourierCompany < rows[j].CourierCompany
		}
		return rows[i].Status < rows[j].Status
	})
	return rows, nil
}

// StatusCounts returns one row per shipment lifecycle status present in the
// enumeration, zero-filled, in lifecycle order.
func (s *LogisticsService) StatusCounts(ctx context.Context) ([]model.StatusCount, error) {
	rows, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	out := make([]model.StatusCount, 0, len(model.ShipmentStatuses))
	for _, status := range model.ShipmentStatuses {
		out = append(out, model.StatusCount{Status: status, Count: counts[status]})
	}
	return out, nil
}

func (s *LogisticsService) CategoryCounts(ctx context.Context) ([]model.CategoryCount, error) {
	rows, err := s.repo.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Category < rows[j].Category })
	return rows, nil
}
