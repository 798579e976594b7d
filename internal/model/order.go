package model

import "time"

// Order is one immutable row in the orders fact table. Rows are appended by
// the simulator (or an external bulk load) and never updated or deleted.
type Order struct {
	ID              uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrderDate       time.Time `gorm:"column:order_date;type:datetime" json:"order_date"`
	ProductName     string    `gorm:"column:product_name" json:"product_name"`
	BrandName       string    `gorm:"column:brand_name" json:"brand_name"`
	Category        string    `gorm:"column:category;index" json:"category"`
	ProductType     string    `gorm:"column:product_type" json:"product_type"`
	CustomerID      int       `gorm:"column:customer_id" json:"customer_id"`
	Province        string    `gorm:"column:province" json:"province"`
	ShippingStart   string    `gorm:"column:shipping_start" json:"shipping_start"`
	ShippingEnd     string    `gorm:"column:shipping_end" json:"shipping_end"`
	StartLongitude  float64   `gorm:"column:start_longitude;type:decimal(9,2)" json:"start_longitude"`
	StartLatitude   float64   `gorm:"column:start_latitude;type:decimal(9,2)" json:"start_latitude"`
	EndLongitude    float64   `gorm:"column:end_longitude;type:decimal(9,2)" json:"end_longitude"`
	EndLatitude     float64   `gorm:"column:end_latitude;type:decimal(9,2)" json:"end_latitude"`
	Status          string    `gorm:"column:status" json:"status"`
	OrderAmount     float64   `gorm:"column:order_amount;type:decimal(10,2)" json:"order_amount"`
	Discount        float64   `gorm:"column:discount;type:decimal(10,2)" json:"discount"`
	ShippingFee     float64   `gorm:"column:shipping_fee;type:decimal(10,2)" json:"shipping_fee"`
	TotalAmount     float64   `gorm:"column:total_amount;type:decimal(10,2)" json:"total_amount"`
	Profit          float64   `gorm:"column:profit;type:decimal(10,2)" json:"profit"`
	PaymentMethod   string    `gorm:"column:payment_method" json:"payment_method"`
	CourierCompany  string    `gorm:"column:courier_company" json:"courier_company"`
	TrackingNumber  string    `gorm:"column:tracking_number" json:"tracking_number"`
	OrderSource     string    `gorm:"column:order_source" json:"order_source"`
	PaymentTime     time.Time `gorm:"column:payment_time;type:datetime" json:"payment_time"`
	ShippingTime    time.Time `gorm:"column:shipping_time;type:datetime" json:"shipping_time"`
	RecipientName   string    `gorm:"column:recipient_name" json:"recipient_name"`
	RecipientPhone  string    `gorm:"column:recipient_phone" json:"recipient_phone"`
	RecipientAddr   string    `gorm:"column:recipient_address" json:"recipient_address"`
	ReturnStatus    string    `gorm:"column:return_status" json:"return_status"`
	ReturnReason    *string   `gorm:"column:return_reason" json:"return_reason"`
	ProductQuantity int       `gorm:"column:product_quantity" json:"product_quantity"`
}

func (Order) TableName() string {
	return "orders"
}
