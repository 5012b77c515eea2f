package analytics

import (
	"reflect"
	"testing"

	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/domain"
)

func TestRate_ZeroDenominator(t *testing.T) {
	t.Parallel()

	if got := Rate(5, 0); got != 0 {
		t.Fatalf("rate with zero denominator should be 0, got %v", got)
	}
}

func TestRate_Bounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		num, den int
		want     float64
	}{
		{0, 10, 0},
		{10, 10, 100},
		{6, 100, 6.00},
		{1, 3, 33.33},
		{2, 3, 66.67},
	}
	for _, tc := range cases {
		got := Rate(tc.num, tc.den)
		if got != tc.want {
			t.Fatalf("Rate(%d,%d) = %v, want %v", tc.num, tc.den, got, tc.want)
		}
		if tc.num <= tc.den && (got < 0 || got > 100) {
			t.Fatalf("Rate(%d,%d) = %v out of [0,100]", tc.num, tc.den, got)
		}
	}
}

func TestAverage_EmptyInput(t *testing.T) {
	t.Parallel()

	if got := Average(nil); got != 0 {
		t.Fatalf("average of empty input should be 0, got %v", got)
	}
}

func TestAverage_Rounding(t *testing.T) {
	t.Parallel()

	if got := Average([]float64{1, 2}); got != 1.5 {
		t.Fatalf("expected 1.5, got %v", got)
	}
	if got := Average([]float64{1, 1, 2}); got != 1.33 {
		t.Fatalf("expected 1.33, got %v", got)
	}
}

func TestCountByStatus_Partition(t *testing.T) {
	t.Parallel()

	orders := []domain.Order{
		{Status: domain.StatusDelivered},
		{Status: domain.StatusDelivered},
		{Status: domain.StatusCancelled},
		{Status: domain.StatusPlaced},
		{Status: domain.StatusDelivered},
	}

	delivered := CountByStatus(orders, domain.StatusDelivered)
	cancelled := CountByStatus(orders, domain.StatusCancelled)
	placed := CountByStatus(orders, domain.StatusPlaced)

	if delivered+cancelled+placed != len(orders) {
		t.Fatalf("statuses do not partition orders: %d+%d+%d != %d",
			delivered, cancelled, placed, len(orders))
	}
}

func TestAccumulator_PartitionsRows(t *testing.T) {
	t.Parallel()

	zones := []string{"North", "South", "North", "East", "South", "North"}
	acc := NewAccumulator[string]()
	for i, z := range zones {
		acc.Observe(z, float64(i))
	}

	total := 0
	for _, g := range acc.Stats() {
		total += g.Count
	}
	if total != len(zones) {
		t.Fatalf("per-group counts sum to %d, want %d", total, len(zones))
	}
	if acc.Len() != 3 {
		t.Fatalf("expected 3 groups, got %d", acc.Len())
	}
}

func TestAccumulator_PreservesScanOrder(t *testing.T) {
	t.Parallel()

	acc := NewAccumulator[string]()
	for _, z := range []string{"West", "Central", "West", "North"} {
		acc.Hit(z)
	}

	stats := acc.Stats()
	order := []string{stats[0].Key, stats[1].Key, stats[2].Key}
	want := []string{"West", "Central", "North"}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("group order %v, want %v", order, want)
	}
}

func TestTopN_TieKeepsScanOrder(t *testing.T) {
	t.Parallel()

	acc := NewAccumulator[string]()
	acc.Observe("first", 10)
	acc.Observe("second", 10) // same average as "first"
	acc.Observe("third", 20)

	top := TopN(acc.Stats(), 2, ByAvgDesc)
	if top[0].Key != "third" {
		t.Fatalf("expected 'third' ranked first, got %q", top[0].Key)
	}
	if top[1].Key != "first" {
		t.Fatalf("tie must keep scan order: expected 'first', got %q", top[1].Key)
	}
}

func TestTopN_Deterministic(t *testing.T) {
	t.Parallel()

	acc := NewAccumulator[int]()
	for i := 0; i < 50; i++ {
		acc.Observe(i%7, float64(i%3))
	}

	a := TopN(acc.Stats(), 5, ByAvgDesc)
	b := TopN(acc.Stats(), 5, ByAvgDesc)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("TopN is not deterministic: %v vs %v", a, b)
	}
}

func TestTopN_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	acc := NewAccumulator[string]()
	acc.Observe("a", 1)
	acc.Observe("b", 9)

	before := append([]GroupStat[string](nil), acc.Stats()...)
	_ = TopN(acc.Stats(), 1, ByAvgDesc)
	if !reflect.DeepEqual(before, acc.Stats()) {
		t.Fatal("TopN mutated its input")
	}
}

func TestClassifyDelay_Boundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		minutes float64
		want    DelaySeverity
	}{
		{0, SeverityOnTime},
		{5, SeverityOnTime},
		{5.01, SeveritySlight},
		{15, SeveritySlight},
		{15.5, SeverityModerate},
		{30, SeverityModerate},
		{30.1, SeveritySevere},
	}
	for _, tc := range cases {
		if got := ClassifyDelay(tc.minutes); got != tc.want {
			t.Fatalf("ClassifyDelay(%v) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}

func TestClassifyPicking_Boundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		minutes float64
		want    PickingSpeed
	}{
		{9.99, PickingFast},
		{10, PickingMedium},
		{15, PickingMedium},
		{15.01, PickingSlow},
	}
	for _, tc := range cases {
		if got := ClassifyPicking(tc.minutes); got != tc.want {
			t.Fatalf("ClassifyPicking(%v) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}
