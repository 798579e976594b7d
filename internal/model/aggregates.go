package model

// Query-time aggregate rows scanned out of GROUP BY queries. None of these
// are persisted; every request recomputes them from the orders table.

type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type HourTotal struct {
	Hour  int     `json:"hour"`
	Total float64 `json:"total"`
}

type HourCount struct {
	Hour  int   `json:"hour"`
	Count int64 `json:"count"`
}

type BrandTotal struct {
	BrandName string  `json:"brand_name"`
	Total     float64 `json:"total"`
}

type ProvinceTotal struct {
	Province string  `json:"province"`
	Total    float64 `json:"total"`
}

type ProvinceCount struct {
	Province string `json:"province"`
	Count    int64  `json:"count"`
}

type TypeTotal struct {
	ProductType string  `json:"product_type"`
	Total       float64 `json:"total"`
}

type DateTotal struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// RefundFact is one order's refund-relevant columns, bucketed by calendar
// date in the engine.
type RefundFact struct {
	Date         string  `json:"date"`
	TotalAmount  float64 `json:"total_amount"`
	Profit       float64 `json:"profit"`
	ReturnStatus string  `json:"return_status"`
}

// GroupedQuantity is a two-dimension quantity sum; Name is either a product
// name or a brand name depending on the query.
type GroupedQuantity struct {
	ProductType string  `json:"product_type"`
	Name        string  `json:"name"`
	Total       float64 `json:"total"`
}

// ProductMoney carries the two measures the composite score weighs.
type ProductMoney struct {
	ProductName string  `json:"product_name"`
	Amount      float64 `json:"amount"`
	Profit      float64 `json:"profit"`
}

type RoutePath struct {
	ShippingStart  string  `json:"shipping_start"`
	ShippingEnd    string  `json:"shipping_end"`
	StartLongitude float64 `json:"start_longitude"`
	StartLatitude  float64 `json:"start_latitude"`
	EndLongitude   float64 `json:"end_longitude"`
	EndLatitude    float64 `json:"end_latitude"`
}

type RouteQuantity struct {
	ShippingStart string  `json:"shipping_start"`
	ShippingEnd   string  `json:"shipping_end"`
	Total         float64 `json:"total"`
}

type CourierStatusCount struct {
	CourierCompany string `json:"courier_company"`
	Status         string `json:"status"`
	Count          int64  `json:"count"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type ShipmentSummary struct {
	Shipments        int64   `json:"shipments"`
	TotalQuantity    int64   `json:"total_quantity"`
	TotalShippingFee float64 `json:"total_shipping_fee"`
}
