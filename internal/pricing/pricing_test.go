package pricing

import (
	"math"
	"testing"
	"time"
)

func at(hour, minute int) *time.Time {
	t := time.Date(2026, 10, 20, hour, minute, 0, 0, time.UTC)
	return &t
}

func TestDurationHours(t *testing.T) {
	cases := []struct {
		name       string
		start, end *time.Time
		want       float64
	}{
		{"two hours", at(9, 0), at(11, 0), 2},
		{"ninety minutes", at(9, 0), at(10, 30), 1.5},
		{"equal bounds", at(9, 0), at(9, 0), 0},
		{"end before start", at(11, 0), at(9, 0), 0},
		{"missing start", nil, at(9, 0), 0},
		{"missing end", at(9, 0), nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DurationHours(tc.start, tc.end); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestComputeReversedRangeHasNoRoomPrice(t *testing.T) {
	b := Compute(Input{
		Rate:      StudioRate{StudioID: "s1", BasePricePerHour: 500000},
		StartTime: at(11, 0),
		EndTime:   at(9, 0),
		Lines:     []Line{{Kind: KindEquipment, RefID: "e1", UnitPrice: 100000, Quantity: 1}},
	})
	if b.RoomPrice != 0 || b.EquipmentTotal != 0 {
		t.Fatalf("expected zero time-scaled prices, got %#v", b)
	}
}

func TestComputeAdditivity(t *testing.T) {
	lineSets := [][]Line{
		nil,
		{{Kind: KindEquipment, RefID: "e1", UnitPrice: 120000, Quantity: 2}},
		{{Kind: KindService, RefID: "s1", UnitPrice: 90000, Quantity: 3}},
		{
			{Kind: KindEquipment, RefID: "e1", UnitPrice: 120000, Quantity: 1},
			{Kind: KindEquipment, RefID: "e2", UnitPrice: 75000, Quantity: 2},
			{Kind: KindService, RefID: "s1", UnitPrice: 150000, Quantity: 1},
			{Kind: KindService, RefID: "s2", UnitPrice: 33333, Quantity: 1},
		},
	}
	for i, lines := range lineSets {
		b := Compute(Input{
			Rate:      StudioRate{BasePricePerHour: 450000},
			StartTime: at(8, 0),
			EndTime:   at(10, 20),
			Lines:     lines,
		})
		if b.Subtotal != b.RoomPrice+b.EquipmentTotal+b.ServiceTotal {
			t.Fatalf("set %d: subtotal %v != parts %v", i, b.Subtotal, b.RoomPrice+b.EquipmentTotal+b.ServiceTotal)
		}
	}
}

func TestServicesNotScaledByDuration(t *testing.T) {
	b := Compute(Input{
		StartTime: at(9, 0),
		EndTime:   at(14, 0),
		Lines:     []Line{{Kind: KindService, RefID: "makeup", UnitPrice: 150000, Quantity: 2}},
	})
	if b.ServiceTotal != 300000 {
		t.Fatalf("expected per-use service total 300000, got %v", b.ServiceTotal)
	}
}

func TestDiscountBound(t *testing.T) {
	for _, discount := range []float64{-10, 0, 1000, 1_000_000, 5_000_000, math.NaN()} {
		b := Compute(Input{
			Rate:      StudioRate{BasePricePerHour: 500000},
			StartTime: at(9, 0),
			EndTime:   at(11, 0),
			Discount:  discount,
		})
		if b.DiscountAmount < 0 || b.DiscountAmount > b.Subtotal {
			t.Fatalf("discount %v out of bounds: %#v", discount, b)
		}
		if b.FinalTotal != math.Max(0, b.Subtotal-b.DiscountAmount) {
			t.Fatalf("final total mismatch for %v: %#v", discount, b)
		}
	}
}

func TestResolvePriceFallsBackToSnapshot(t *testing.T) {
	lookup := func(kind LineKind, id string) (float64, bool) {
		if kind == KindEquipment && id == "e1" {
			return 110000, true
		}
		return 0, false
	}

	if got := ResolvePrice(Line{Kind: KindEquipment, RefID: "e1", UnitPrice: 100000}, lookup); got != 110000 {
		t.Fatalf("expected live catalogue price, got %v", got)
	}
	if got := ResolvePrice(Line{Kind: KindEquipment, RefID: "gone", UnitPrice: 100000}, lookup); got != 100000 {
		t.Fatalf("expected snapshot price, got %v", got)
	}
	if got := ResolvePrice(Line{Kind: KindService, RefID: "s1", UnitPrice: 5}, nil); got != 5 {
		t.Fatalf("expected snapshot with nil lookup, got %v", got)
	}
}

func TestEndToEndExample(t *testing.T) {
	maxDiscount := 100000.0
	in := Input{
		Rate:      StudioRate{StudioID: "s1", BasePricePerHour: 500000},
		StartTime: at(9, 0),
		EndTime:   at(11, 0),
		Lines: []Line{
			{Kind: KindEquipment, RefID: "light", UnitPrice: 100000, Quantity: 1},
			{Kind: KindService, RefID: "makeup", UnitPrice: 150000, Quantity: 1},
		},
	}

	before := Compute(in)
	if before.DurationHours != 2 || before.RoomPrice != 1_000_000 || before.EquipmentTotal != 200_000 ||
		before.ServiceTotal != 150_000 || before.Subtotal != 1_350_000 {
		t.Fatalf("unexpected breakdown: %#v", before)
	}

	in.Discount = EstimateDiscount(DiscountRule{DiscountType: DiscountPercentage, DiscountValue: 10, MaxDiscount: &maxDiscount}, before.Subtotal)
	after := Compute(in)
	if after.DiscountAmount != 100_000 || after.FinalTotal != 1_250_000 {
		t.Fatalf("expected capped discount and 1,250,000 total, got %#v", after)
	}
}

func TestEstimateDiscount(t *testing.T) {
	cap50 := 50.0
	cases := []struct {
		name     string
		rule     DiscountRule
		subtotal float64
		want     float64
	}{
		{"percentage uncapped", DiscountRule{DiscountType: DiscountPercentage, DiscountValue: 10}, 1000, 100},
		{"percentage capped", DiscountRule{DiscountType: DiscountPercentage, DiscountValue: 10, MaxDiscount: &cap50}, 1000, 50},
		{"fixed below subtotal", DiscountRule{DiscountType: DiscountFixed, DiscountValue: 200}, 1000, 200},
		{"fixed above subtotal", DiscountRule{DiscountType: DiscountFixed, DiscountValue: 2000}, 1000, 1000},
		{"zero subtotal", DiscountRule{DiscountType: DiscountFixed, DiscountValue: 200}, 0, 0},
		{"unknown type", DiscountRule{DiscountType: "special", DiscountValue: 200}, 1000, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EstimateDiscount(tc.rule, tc.subtotal); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
