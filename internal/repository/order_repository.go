// Package repository is the query layer over the orders fact table. All
// grouping and filtering happens here; lag, ratio and ranking math is done by
// the services so nothing depends on the store's window-function support.
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pulse-retail/pulse/internal/model"
)

// OrderRepository is the single data access interface shared by the
// analytics services and the simulator. The simulator is the only writer.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *model.Order) error

	SumAmountByCategory(ctx context.Context) ([]model.CategoryTotal, error)
	SumAmountByHour(ctx context.Context, category string) ([]model.HourTotal, error)
	SumAmountByBrand(ctx context.Context, category string) ([]model.BrandTotal, error)
	SumAmountByProvince(ctx context.Context) ([]model.ProvinceTotal, error)
	SumAmountByDate(ctx context.Context, category string) ([]model.DateTotal, error)
	CountByHour(ctx context.Context) ([]model.HourCount, error)

	SumAmount(ctx context.Context, category string) (float64, error)
	SumProfit(ctx context.Context, category string) (float64, error)
	SumQuantity(ctx context.Context, category string) (float64, error)

	SumQuantityByProductType(ctx context.Context, category string) ([]model.TypeTotal, error)
	SumQuantityByBrand(ctx context.Context, category string) ([]model.BrandTotal, error)
	SumQuantityByTypeAndProduct(ctx context.Context, category string) ([]model.GroupedQuantity, error)
	SumQuantityByTypeAndBrand(ctx context.Context, category string) ([]model.GroupedQuantity, error)
	AmountProfitByProduct(ctx context.Context, category string) ([]model.ProductMoney, error)
	FindRefundFacts(ctx context.Context, category string) ([]model.RefundFact, error)

	RecentShipments(ctx context.Context, limit int) ([]model.Order, error)
	ShipmentSummary(ctx context.Context) (model.ShipmentSummary, error)
	DistinctRoutes(ctx context.Context) ([]model.RoutePath, error)
	SumQuantityByRoute(ctx context.Context) ([]model.RouteQuantity, error)
	CountByProvince(ctx context.Context) ([]model.ProvinceCount, error)
	CountByCourierStatus(ctx context.Context) ([]model.CourierStatusCount, error)
	CountByStatus(ctx context.Context) ([]model.StatusCount, error)
	CountByCategory(ctx context.Context) ([]model.CategoryCount, error)
}

type gormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &gormOrderRepository{db: db}
}

// scoped starts an orders query, filtered to one category when category is
// non-empty.
func (r *gormOrderRepository) scoped(ctx context.Context, category string) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Order{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	return q
}

func (r *gormOrderRepository) CreateOrder(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *gormOrderRepository) SumAmountByCategory(ctx context.Context) ([]model.CategoryTotal, error) {
	var rows []model.CategoryTotal
	err := r.scoped(ctx, "").
		Select("category, SUM(order_amount) AS total").
		Group("category").
		Scan(&rows).Error
	return rows, err
}

func (r *gormOrderRepository) SumAmountByHour(ctx context.Context, category string) ([]model.HourTotal, error) {
	var rows []model.HourTotal
	err := r.scoped(ctx, category).
		Select("HOUR(order_date) AS hour, SUM(order_amount) AS total").
		Group("HOUR(order_date)").
		Order("hour").
		Scan(&rows).Error
	return rows, err
}

func (r *gormOrderRepository) SumAmountByBrand(ctx context.Context, category string) ([]model.BrandTotal, error) {
	var rows []model.BrandTotal
	err := r.scoped(ctx, category).
		Select("brand_name, SUM(order_amount) AS total").
		Group("brand_name").
		Scan(&rows).Error
	return rows, err
}

func (r *gormOrderRepository) SumAmountByProvince(ctx context.Context) ([]model.ProvinceTotal, error) {
	var rows []model.ProvinceTotal
	err := r.scoped(ctx, "").
		Select("province, SUM(order_amount) AS total").
		Group("province").
		Scan(&rows).Error
	return rows, err
}

func (r *gormOrderRepository) SumAmountByDate(ctx context.Context, category string) ([]model.DateTotal, error) {
	var rows []model.DateTotal
	err := r.scoped(ctx, category).
		Select("DATE_FORMAT(order_date, '%Y-%m-%d') AS date, SUM(order_amount) AS total").
		Group("DATE_FORMAT(order_date, '%Y-%m-%d')").
		Order("date").
		Scan(&rows).Error
	return rows, err
}

func (r *gormOrderRepository) CountByHour(ctx context.Context) ([]model.HourCount, error) {
	var rows []model.HourCount
	err := r.scoped(ctx, "").
		Select("HOUR(order_date) AS hour, COUNT(*) AS count").
		Group("HOUR(order_date)").
		Order("hour").
		Scan(&rows).Error
	return rows, err
}

func (r *gormOrderRepository) sumColumn(ctx context.Context, expr, category string) (float64, error) {
	var total float64
	err := r.scoped(ctx, category).Select(expr).Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *gormOrderRepository) SumAmount(ctx context.Context, category string) (float64, error) {
	return r.sumColumn(ctx, "COALESCE(SUM(order_amount), 0)", category)
}

func (r *gormOrderRepository) SumProfit(ctx context.Context, category string) (float64, error) {
	return r.sumColumn(ctx, "COALESCE(SUM(profit), 0)", category)
}

func (r *gormOrderRepository) SumQuantity(ctx context.Context, category string) (float64, error) {
	return r.sumColumn(ctx, "COALESCE(SUM(product_quantity), 0)", category)
}

func (r *gormOrderRepository) SumQuantityByProductType(ctx context.Context, category string) ([]model.TypeTotal, error) {
	var rows []model.TypeTotal
	err := r.scoped(ctx, category).
		Select("product_type, SUM(product_quantity) AS total").
		Group("product_type").
		Scan(&rows).Error
	return rows, err
}

func (r *gormOrderRepository) SumQuantityByBrand(ctx context.Context, category string) ([]model.BrandTotal, error) {
	var rows []model.BrandTotal
	err := r.scoped(ctx, category).
		Select("brand_name, SUM(product_quantity) AS total").
		Group("brand_name").
		Scan(&rows).Error
	return rows, err
}

func (r *gormOrderRepository) SumQuantityByTypeAndProduct(ctx context.Context, category string) ([]model.GroupedQuantity, error) {
	var rows []model.GroupedQuantity
	err := r.scoped(ctx, category).
		Select("product_type, product_name AS name, SUM(product_quantity) AS total").
		Group("product_type, product_name").
		Scan(&rows).Error
	return rows, err
}

func (r *gormOrderRepository) SumQuantityByTypeAndBrand(ctx context.Context, category string) ([]model.GroupedQuantity, error) {
	var rows []model.GroupedQuantity
	err := r.scoped(ctx, category).
		Select("product_type, brand_name AS name, SUM(product_quantity) AS total").
		Group("product_type, brand_name").
		Scan(&rows).Error
	return rows, err
}

func (r *gormOrderRepository) AmountProfitByProduct(ctx context.Context, category string) ([]model.ProductMoney, error) {
	var rows []model.ProductMoney
	err := r.scoped(ctx, category).
		Select("product_name, SUM(order_amount) AS amount, SUM(profit) AS profit").
		Group("product_name").
		Scan(&rows).Error
	return rows, err
}

func (r *gormOrderRepository) FindRefundFacts(ctx context.Context, category string) ([]model.RefundFact, error) {
	var rows []model.RefundFact
	err := r.scoped(ctx, category).
		Select("DATE_FORMAT(order_date, '%Y-%m-%d') AS date, total_amount, profit, return_status").
		Order("order_date").
		Scan(&rows).Error
	return rows, err
}

func (r *gormOrderRepository) RecentShipments(ctx context.Context, limit int) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Order("order_date DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}

func (r *gormOrderRepository) ShipmentSummary(ctx context.Context) (model.ShipmentSummary, error) {
	var summary model.ShipmentSummary
	err := r.scoped(ctx, "").
		Select("COUNT(*) AS shipments, COALESCE(SUM(product_quantity), 0) AS total_quantity, COALESCE(SUM(shipping_fee), 0) AS total_shipping_fee").
		Scan(&summary).Error
	return summary, err
}

func (r *gormOrderRepository) DistinctRoutes(ctx context.Context) ([]model.RoutePath, error) {
	var rows []model.RoutePath
	err := r.scoped(ctx, "").
		Distinct("shipping_start", "shipping_end", "start_longitude", "start_latitude", "end_longitude", "end_latitude").
		Scan(&rows).Error
	return rows, err
}

func (r *gormOrderRepository) SumQuantityByRoute(ctx context.Context) ([]model.RouteQuantity, error) {
	var rows []model.RouteQuantity
	err := r.scoped(ctx, "").
		Select("shipping_start, shipping_end, SUM(product_quantity) AS total").
		Group("shipping_start, shipping_end").
		Scan(&rows).Error
	return rows, err
}

func (r *gormOrderRepository) CountByProvince(ctx context.Context) ([]model.ProvinceCount, error) {
	var rows []model.ProvinceCount
	err := r.scoped(ctx, "").
		Select("province, COUNT(*) AS count").
		Group("province").
		Scan(&rows).Error
	return rows, err
}

func (r *gormOrderRepository) CountByCourierStatus(ctx context.Context) ([]model.CourierStatusCount, error) {
	var rows []model.CourierStatusCount
	err := r.scoped(ctx, "").
		Select("courier_company, status, COUNT(*) AS count").
		Group("courier_company, status").
		Scan(&rows).Error
	return rows, err
}

func (r *gormOrderRepository) CountByStatus(ctx context.Context) ([]model.StatusCount, error) {
	var rows []model.StatusCount
	err := r.scoped(ctx, "").
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	return rows, err
}

func (r *gormOrderRepository) CountByCategory(ctx context.Context) ([]model.CategoryCount, error) {
	var rows []model.CategoryCount
	err := r.scoped(ctx, "").
		Select("category, COUNT(*) AS count").
		Group("category").
		Scan(&rows).Error
	return rows, err
}
