// Package service implements the aggregation engine. Repositories return raw
// grouped sums; everything order-dependent or arithmetically delicate (lag,
// ratios, rankings, refund rates) is computed here with explicit policies for
// the degenerate cases.
package service

import (
	"context"
	"math"
	"sort"

	"github.com/pulse-retail/pulse/internal/model"
	"github.com/pulse-retail/pulse/internal/repository"
)

// TrendPoint is one date bucket of a sales trend. Growth is nil for the
// first bucket and whenever the previous bucket sums to zero.
type TrendPoint struct {
	Date   string   `json:"date"`
	Total  float64  `json:"total"`
	Growth *float64 `json:"growth"`
}

// RatioRow is one group's share of the scoped total, rounded to 4 decimals.
type RatioRow struct {
	Key   string  `json:"key"`
	Ratio float64 `json:"ratio"`
}

// RefundPoint is one date bucket of the refund trend.
type RefundPoint struct {
	Date         string  `json:"date"`
	RefundAmount float64 `json:"refund_amount"`
	RefundRate   float64 `json:"refund_rate"`
}

// ScoredProduct ranks a product by the weighted composite of its summed
// order amount and summed profit.
type ScoredProduct struct {
	ProductName string  `json:"product_name"`
	Score       float64 `json:"score"`
}

// DaySegmentCount is the order count of one fixed six-hour day segment.
type DaySegmentCount struct {
	Segment string `json:"segment"`
	Count   int64  `json:"count"`
}

var daySegments = []string{"early-morning", "morning", "afternoon", "evening"}

const (
	topN          = 5
	wordCloudSize = 50

	scoreAmountWeight = 0.6
	scoreProfitWeight = 0.4
)

type AnalyticsService struct {
	repo repository.OrderRepository
}

func NewAnalyticsService(repo repository.OrderRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

func (s *AnalyticsService) CategorySales(ctx context.Context) ([]model.CategoryTotal, error) {
	return s.repo.SumAmountByCategory(ctx)
}

func (s *AnalyticsService) HourlySales(ctx context.Context, category string) ([]model.HourTotal, error) {
	return s.repo.SumAmountByHour(ctx, category)
}

func (s *AnalyticsService) ProvinceSales(ctx context.Context) ([]model.ProvinceTotal, error) {
	return s.repo.SumAmountByProvince(ctx)
}

// BrandWordCloud returns the top brands by summed order amount across all
// categories, sized for the word cloud widget.
func (s *AnalyticsService) BrandWordCloud(ctx context.Context) ([]model.BrandTotal, error) {
	rows, err := s.repo.SumAmountByBrand(ctx, "")
	if err != nil {
		return nil, err
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return rows[i].BrandName < rows[j].BrandName
	})
	if len(rows) > wordCloudSize {
		rows = rows[:wordCloudSize]
	}
	return rows, nil
}

// TimeOfDayOrders folds hourly order counts into the four fixed day
// segments. All four segments are always present, zero-filled.
func (s *AnalyticsService) TimeOfDayOrders(ctx context.Context) ([]DaySegmentCount, error) {
	hours, err := s.repo.CountByHour(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(daySegments))
	for _, h := range hours {
		if h.Hour < 0 || h.Hour > 23 {
			continue
		}
		counts[daySegments[h.Hour/6]] += h.Count
	}
	out := make([]DaySegmentCount, 0, len(daySegments))
	for _, seg := range daySegments {
		out = append(out, DaySegmentCount{Segment: seg, Count: counts[seg]})
	}
	return out, nil
}

func (s *AnalyticsService) TotalSales(ctx context.Context, category string) (float64, error) {
	return s.repo.SumAmount(ctx, category)
}

func (s *AnalyticsService) TotalProfit(ctx context.Context, category string) (float64, error) {
	return s.repo.SumProfit(ctx, category)
}

func (s *AnalyticsService) TotalQuantity(ctx context.Context, category string) (float64, error) {
	return s.repo.SumQuantity(ctx, category)
}

func (s *AnalyticsService) ProductTypeSales(ctx context.Context, category string) ([]model.TypeTotal, error) {
	return s.repo.SumQuantityByProductType(ctx, category)
}

func (s *AnalyticsService) BrandSales(ctx context.Context, category string) ([]model.BrandTotal, error) {
	return s.repo.SumQuantityByBrand(ctx, category)
}

func (s *AnalyticsService) DailySales(ctx context.Context, category string) ([]model.DateTotal, error) {
	return s.repo.SumAmountByDate(ctx, category)
}

// SalesTrend returns per-date sales with period-over-period growth, computed
// by a single scan over the date-sorted buckets.
func (s *AnalyticsService) SalesTrend(ctx context.Context, category string) ([]TrendPoint, error) {
	rows, err := s.repo.SumAmountByDate(ctx, category)
	if err != nil {
		return nil, err
	}
	return growthSeries(rows), nil
}

// growthSeries carries the previous bucket's value through one pass; it never
// divides by a zero previous bucket.
func growthSeries(rows []model.DateTotal) []TrendPoint {
	points := make([]TrendPoint, 0, len(rows))
	for i, row := range rows {
		p := TrendPoint{Date: row.Date, Total: row.Total}
		if i > 0 && rows[i-1].Total != 0 {
			g := (row.Total - rows[i-1].Total) / rows[i-1].Total
			p.Growth = &g
		}
		points = append(points, p)
	}
	return points
}

// RefundTrend buckets orders by date and computes the refunded amount plus
// the average refund rate. Non-returned orders contribute a zero rate, and a
// zero total_amount contributes zero instead of dividing.
func (s *AnalyticsService) RefundTrend(ctx context.Context, category string) ([]RefundPoint, error) {
	facts, err := s.repo.FindRefundFacts(ctx, category)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		amount  float64
		rateSum float64
		n       int
	}
	order := make([]string, 0)
	buckets := make(map[string]*bucket)
	for _, f := range facts {
		b, ok := buckets[f.Date]
		if !ok {
			b = &bucket{}
			buckets[f.Date] = b
			order = append(order, f.Date)
		}
		b.n++
		if f.ReturnStatus != model.ReturnReturned {
			continue
		}
		b.amount += f.TotalAmount
		if f.TotalAmount != 0 {
			b.rateSum += 1 - f.Profit/f.TotalAmount
		}
	}

	points := make([]RefundPoint, 0, len(order))
	for _, date := range order {
		b := buckets[date]
		points = append(points, RefundPoint{
			Date:         date,
			RefundAmount: b.amount,
			RefundRate:   b.rateSum / float64(b.n),
		})
	}
	return points, nil
}

// TopProducts ranks (product type, product name) pairs by summed quantity.
func (s *AnalyticsService) TopProducts(ctx context.Context, category string) ([]model.GroupedQuantity, error) {
	rows, err := s.repo.SumQuantityByTypeAndProduct(ctx, category)
	if err != nil {
		return nil, err
	}
	return rankQuantities(rows, topN), nil
}

// TopBrands ranks (product type, brand) pairs by summed quantity.
func (s *AnalyticsService) TopBrands(ctx context.Context, category string) ([]model.GroupedQuantity, error) {
	rows, err := s.repo.SumQuantityByTypeAndBrand(ctx, category)
	if err != nil {
		return nil, err
	}
	return rankQuantities(rows, topN), nil
}

// rankQuantities sorts descending by total and breaks ties by ascending
// group key so rankings never depend on store row order.
func rankQuantities(rows []model.GroupedQuantity, n int) []model.GroupedQuantity {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		if rows[i].ProductType != rows[j].ProductType {
			return rows[i].ProductType < rows[j].ProductType
		}
		return rows[i].Name < rows[j].Name
	})
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// ProductTypeRatio returns each product type's share of the category's
// summed quantity.
func (s *AnalyticsService) ProductTypeRatio(ctx context.Context, category string) ([]RatioRow, error) {
	rows, err := s.repo.SumQuantityByProductType(ctx, category)
	if err != nil {
		return nil, err
	}
	pairs := make([]RatioRow, 0, len(rows))
	total := 0.0
	for _, row := range rows {
		total += row.Total
		pairs = append(pairs, RatioRow{Key: row.ProductType})
	}
	for i, row := range rows {
		pairs[i].Ratio = shareOf(row.Total, total)
	}
	return pairs, nil
}

// BrandRatio returns each brand's share of the category's summed quantity.
func (s *AnalyticsService) BrandRatio(ctx context.Context, category string) ([]RatioRow, error) {
	rows, err := s.repo.SumQuantityByBrand(ctx, category)
	if err != nil {
		return nil, err
	}
	pairs := make([]RatioRow, 0, len(rows))
	total := 0.0
	for _, row := range rows {
		total += row.Total
		pairs = append(pairs, RatioRow{Key: row.BrandName})
	}
	for i, row := range rows {
		pairs[i].Ratio = shareOf(row.Total, total)
	}
	return pairs, nil
}

// shareOf is value/total rounded to 4 decimals, 0 when the total is zero.
func shareOf(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(value/total*10000) / 10000
}

// CompositeTop5 ranks products by 0.6 x summed order amount plus 0.4 x
// summed profit.
func (s *AnalyticsService) CompositeTop5(ctx context.Context, category string) ([]ScoredProduct, error) {
	rows, err := s.repo.AmountProfitByProduct(ctx, category)
	if err != nil {
		return nil, err
	}
	scored := make([]ScoredProduct, 0, len(rows))
	for _, row := range rows {
		scored = append(scored, ScoredProduct{
			ProductName: row.ProductName,
			Score:       scoreAmountWeight*row.Amount + scoreProfitWeight*row.Profit,
		})
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].ProductName < scored[j].ProductName
	})
	if len(scored) > topN {
		scored = scored[:topN]
	}
	return scored, nil
}
