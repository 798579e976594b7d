package generator

import (
	"math"
	"testing"
	"time"

	"github.com/pulse-retail/pulse/internal/model"
)

func TestBuildInvariants(t *testing.T) {
	rng := NewRand(42)
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 200; i++ {
		order := Build(rng, now)

		if !model.ValidCategory(order.Category) {
			t.Fatalf("Unknown category %q", order.Category)
		}
		vocab := model.CategoryVocabs[order.Category]
		if !contains(vocab.Products, order.ProductName) {
			t.Errorf("Product %q not in %s vocabulary", order.ProductName, order.Category)
		}
		if !contains(vocab.Brands, order.BrandName) {
			t.Errorf("Brand %q not in %s vocabulary", order.BrandName, order.Category)
		}
		if !contains(vocab.Types, order.ProductType) {
			t.Errorf("Type %q not in %s vocabulary", order.ProductType, order.Category)
		}

		derived := order.OrderAmount + order.ShippingFee - order.Discount
		if math.Abs(order.TotalAmount-derived) > 0.005 {
			t.Errorf("total_amount %v != amount+fee-discount %v", order.TotalAmount, derived)
		}
		if math.Abs(order.Profit-roundCents(order.OrderAmount*0.3)) > 0.005 {
			t.Errorf("profit %v is not 30%% of %v", order.Profit, order.OrderAmount)
		}
		if order.OrderAmount < 100 || order.OrderAmount >= 10000 {
			t.Errorf("order_amount %v out of range", order.OrderAmount)
		}
		if order.ProductQuantity < 1 || order.ProductQuantity > 10 {
			t.Errorf("product_quantity %d out of range", order.ProductQuantity)
		}

		if order.ReturnStatus == model.ReturnNone && order.ReturnReason != nil {
			t.Error("return_reason set without a return")
		}
		if order.ReturnStatus != model.ReturnNone && order.ReturnReason == nil {
			t.Errorf("return_reason missing for status %s", order.ReturnStatus)
		}

		start, ok := model.RegionByName(order.ShippingStart)
		if !ok {
			t.Fatalf("Unknown shipping start %q", order.ShippingStart)
		}
		if order.StartLongitude != start.Longitude || order.StartLatitude != start.Latitude {
			t.Errorf("Start coordinates do not match %s", order.ShippingStart)
		}
		end, ok := model.RegionByName(order.ShippingEnd)
		if !ok {
			t.Fatalf("Unknown shipping end %q", order.ShippingEnd)
		}
		if order.EndLongitude != end.Longitude || order.EndLatitude != end.Latitude {
			t.Errorf("End coordinates do not match %s", order.ShippingEnd)
		}

		if order.OrderDate.After(now) || order.OrderDate.Before(now.Add(-3*24*time.Hour)) {
			t.Errorf("order_date %v outside the 3-day window", order.OrderDate)
		}
		if len(order.TrackingNumber) != 10 {
			t.Errorf("Tracking number %q is not 10 characters", order.TrackingNumber)
		}
	}
}

func TestBuildDeterministicWithSeed(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	a := Build(NewRand(7), now)
	b := Build(NewRand(7), now)

	if a.Category != b.Category || a.ProductName != b.ProductName ||
		a.OrderAmount != b.OrderAmount || a.TrackingNumber != b.TrackingNumber {
		t.Errorf("Same seed produced different orders: %+v vs %+v", a, b)
	}
}

func contains(items []string, v string) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
