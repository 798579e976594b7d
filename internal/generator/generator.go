// Package generator synthesizes order facts for the demo stream. Every draw
// comes from the closed vocabularies in the model package, and the derived
// money columns are computed from the draws so each row satisfies the fact
// table's invariants on its own.
package generator

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pulse-retail/pulse/internal/model"
)

const trackingChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var profitMargin = decimal.NewFromFloat(0.3)

var recipientGivenNames = []string{"Wei", "Fang", "Jun", "Min", "Lei", "Yan", "Tao", "Jing", "Qiang", "Li"}

var recipientSurnames = []string{"Wang", "Li", "Zhang", "Liu", "Chen", "Yang", "Zhao", "Huang", "Zhou", "Wu"}

var streetNames = []string{"Renmin Road", "Jiefang Street", "Zhongshan Avenue", "Heping Road", "Xinhua Street"}

// NewRand returns the simulator's random source. A zero seed means
// time-seeded; any other seed reproduces the same record stream.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1))
}

// Build draws one internally consistent order dated within the three days
// before now.
func Build(rng *rand.Rand, now time.Time) *model.Order {
	category := pick(rng, model.Categories)
	vocab := model.CategoryVocabs[category]

	province := pick(rng, model.Regions)
	start := pick(rng, model.Regions)
	end := pick(rng, model.Regions)

	orderAmount := randMoney(rng, 100, 10000)
	discount := randMoney(rng, 0, 200)
	shippingFee := randMoney(rng, 10, 50)
	totalAmount := orderAmount.Add(shippingFee).Sub(discount)
	profit := orderAmount.Mul(profitMargin).Round(2)

	returnStatus := pick(rng, model.ReturnStatuses)
	var returnReason *string
	if returnStatus != model.ReturnNone {
		reason := pick(rng, model.ReturnReasons)
		returnReason = &reason
	}

	return &model.Order{
		OrderDate:       recentTime(rng, now, 3*24*time.Hour),
		ProductName:     pick(rng, vocab.Products),
		BrandName:       pick(rng, vocab.Brands),
		Category:        category,
		ProductType:     pick(rng, vocab.Types),
		CustomerID:      1 + rng.IntN(1000),
		Province:        province.Name,
		ShippingStart:   start.Name,
		ShippingEnd:     end.Name,
		StartLongitude:  start.Longitude,
		StartLatitude:   start.Latitude,
		EndLongitude:    end.Longitude,
		EndLatitude:     end.Latitude,
		Status:          pick(rng, model.ShipmentStatuses),
		OrderAmount:     orderAmount.InexactFloat64(),
		Discount:        discount.InexactFloat64(),
		ShippingFee:     shippingFee.InexactFloat64(),
		TotalAmount:     totalAmount.InexactFloat64(),
		Profit:          profit.InexactFloat64(),
		PaymentMethod:   pick(rng, model.PaymentMethods),
		CourierCompany:  pick(rng, model.CourierCompanies),
		TrackingNumber:  trackingNumber(rng),
		OrderSource:     pick(rng, model.OrderSources),
		PaymentTime:     recentTime(rng, now, 24*time.Hour),
		ShippingTime:    recentTime(rng, now, 24*time.Hour),
		RecipientName:   pick(rng, recipientSurnames) + " " + pick(rng, recipientGivenNames),
		RecipientPhone:  recipientPhone(rng),
		RecipientAddr:   recipientAddress(rng, province.Name),
		ReturnStatus:    returnStatus,
		ReturnReason:    returnReason,
		ProductQuantity: 1 + rng.IntN(10),
	}
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

// randMoney draws a uniform 2-decimal amount in [lo, hi).
func randMoney(rng *rand.Rand, lo, hi float64) decimal.Decimal {
	return decimal.NewFromFloat(lo + rng.Float64()*(hi-lo)).Round(2)
}

func recentTime(rng *rand.Rand, now time.Time, window time.Duration) time.Time {
	return now.Add(-time.Duration(rng.Int64N(int64(window)))).Truncate(time.Second)
}

func trackingNumber(rng *rand.Rand) string {
	b := make([]byte, 10)
	for i := range b {
		b[i] = trackingChars[rng.IntN(len(trackingChars))]
	}
	return string(b)
}

func recipientPhone(rng *rand.Rand) string {
	return fmt.Sprintf("1%010d", rng.Int64N(10_000_000_000))
}

func recipientAddress(rng *rand.Rand, province string) string {
	return fmt.Sprintf("%d %s, %s", 1+rng.IntN(200), pick(rng, streetNames), province)
}
