// Package model defines the orders fact row and the closed vocabularies the
// simulator draws from. Every categorical column takes its values from one of
// the lists below, so the analytics queries can treat them as enums.
package model

// Top-level product categories. Every order belongs to exactly one.
const (
	CategoryElectronics  = "electronics"
	CategoryHomeGoods    = "home-goods"
	CategoryApparel      = "apparel"
	CategoryFood         = "food"
	CategoryBabyProducts = "baby-products"
)

var Categories = []string{
	CategoryElectronics,
	CategoryHomeGoods,
	CategoryApparel,
	CategoryFood,
	CategoryBabyProducts,
}

// ValidCategory reports whether name is one of the five known categories.
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// CategoryVocab holds the closed word lists owned by one category.
type CategoryVocab struct {
	Products []string
	Brands   []string
	Types    []string
}

var CategoryVocabs = map[string]CategoryVocab{
	CategoryElectronics: {
		Products: []string{"Smartphone", "Laptop", "Tablet", "Smartwatch", "Wireless Earbuds"},
		Brands:   []string{"Apple", "Samsung", "Huawei", "Xiaomi", "Sony"},
		Types:    []string{"Consumer Electronics", "Digital Devices", "Computer Hardware"},
	},
	CategoryHomeGoods: {
		Products: []string{"Sofa", "Bed", "Dining Table", "Wardrobe", "Bookshelf"},
		Brands:   []string{"IKEA", "QuMei", "Quanyou", "Markor", "Kuka"},
		Types:    []string{"Furniture", "Home Decor", "Household Essentials"},
	},
	CategoryApparel: {
		Products: []string{"T-Shirt", "Jeans", "Sneakers", "Down Jacket", "Hat"},
		Brands:   []string{"Nike", "Adidas", "Uniqlo", "ZARA", "H&M"},
		Types:    []string{"Clothing", "Footwear", "Accessories"},
	},
	CategoryFood: {
		Products: []string{"Milk", "Chocolate", "Snack Box", "Biscuits", "Potato Chips"},
		Brands:   []string{"Mengniu", "Yili", "Nestle", "Three Squirrels", "Be & Cheery"},
		Types:    []string{"Dairy", "Snacks", "Baked Goods"},
	},
	CategoryBabyProducts: {
		Products: []string{"Diapers", "Formula", "Stroller", "Child Seat", "Crib"},
		Brands:   []string{"Huggies", "Merries", "Firmus", "Friso", "GOO.N"},
		Types:    []string{"Baby Care", "Kids Furniture", "Feeding"},
	},
}

// Return status of an order. ReturnReason is set iff the status is not none.
const (
	ReturnNone      = "none"
	ReturnReturned  = "returned"
	ReturnReturning = "returning"
)

var ReturnStatuses = []string{ReturnNone, ReturnReturned, ReturnReturning}

// Shipment lifecycle states.
var ShipmentStatuses = []string{
	"collected",
	"in-transit",
	"out-for-delivery",
	"delivered",
	"returned-to-sender",
	"voided",
}

var CourierCompanies = []string{"YTO Express", "ZTO Express", "SF Express", "Yunda Express"}

var PaymentMethods = []string{"Alipay", "WeChat Pay", "Credit Card", "Debit Card", "Cash"}

var OrderSources = []string{"Marketplace App", "Official Site", "Cross-Border Store", "Other"}

var ReturnReasons = []string{
	"item damaged in transit",
	"wrong size or model delivered",
	"quality below expectation",
	"ordered by mistake",
	"arrived later than promised",
}
