package seed

import (
	"reflect"
	"testing"
	"time"

	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/domain"
)

func fixedNow() time.Time {
	return time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
}

func TestGenerator_DatasetShape(t *testing.T) {
	t.Parallel()

	g := NewGenerator(Options{Orders: 200, Seed: 42, Now: fixedNow()})
	snap := g.Snapshot()

	if len(snap.Stores) != storeCount {
		t.Fatalf("expected %d stores, got %d", storeCount, len(snap.Stores))
	}
	if len(snap.Products) != productCount {
		t.Fatalf("expected %d products, got %d", productCount, len(snap.Products))
	}
	if len(snap.Riders) != riderCount {
		t.Fatalf("expected %d riders, got %d", riderCount, len(snap.Riders))
	}
	if len(snap.Orders) != 200 {
		t.Fatalf("expected 200 orders, got %d", len(snap.Orders))
	}
	if len(snap.LineItems) == 0 {
		t.Fatal("expected line items to be generated")
	}
}

func TestGenerator_DefaultsApplied(t *testing.T) {
	t.Parallel()

	g := NewGenerator(Options{})
	if g.opts.Orders != defaultOrders {
		t.Fatalf("expected default order count %d, got %d", defaultOrders, g.opts.Orders)
	}
	if g.opts.Days != defaultDays {
		t.Fatalf("expected default day span %d, got %d", defaultDays, g.opts.Days)
	}
}

func TestGenerator_DeterministicForSeed(t *testing.T) {
	t.Parallel()

	opts := Options{Orders: 50, Seed: 7, Now: fixedNow()}
	a := NewGenerator(opts).Snapshot()
	b := NewGenerator(opts).Snapshot()

	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed must produce identical snapshots")
	}

	c := NewGenerator(Options{Orders: 50, Seed: 8, Now: fixedNow()}).Snapshot()
	if reflect.DeepEqual(a.Orders, c.Orders) {
		t.Fatal("different seeds should produce different orders")
	}
}

func TestGenerator_OrderInvariants(t *testing.T) {
	t.Parallel()

	g := NewGenerator(Options{Orders: 300, Seed: 1, Now: fixedNow()})
	snap := g.Snapshot()

	reasons := make(map[string]bool, len(cancellationReasons))
	for _, r := range cancellationReasons {
		reasons[r] = true
	}

	itemsPerOrder := make(map[int64]int)
	for _, li := range snap.LineItems {
		itemsPerOrder[li.OrderID]++
		if li.Quantity < 1 || li.Quantity > 5 {
			t.Fatalf("line item quantity out of range: %d", li.Quantity)
		}
	}

	for _, o := range snap.Orders {
		if !o.Status.Valid() {
			t.Fatalf("order %d has invalid status %q", o.ID, o.Status)
		}
		if !o.PromisedAt.After(o.PlacedAt) {
			t.Fatalf("order %d promised before placed", o.ID)
		}
		if got := itemsPerOrder[o.ID]; got != o.TotalItems {
			t.Fatalf("order %d has %d line items, total_items says %d", o.ID, got, o.TotalItems)
		}

		switch o.Status {
		case domain.StatusDelivered:
			if o.DeliveredAt == nil || o.DelayMinutes == nil || o.DeliveryTimeMinutes == nil {
				t.Fatalf("delivered order %d missing delivery fields", o.ID)
			}
			if o.CancellationReason != nil {
				t.Fatalf("delivered order %d has a cancellation reason", o.ID)
			}
		case domain.StatusCancelled:
			if o.CancellationReason == nil || !reasons[*o.CancellationReason] {
				t.Fatalf("cancelled order %d has unexpected reason %v", o.ID, o.CancellationReason)
			}
			if o.DeliveredAt != nil {
				t.Fatalf("cancelled order %d has a delivery time", o.ID)
			}
		case domain.StatusPlaced:
			if o.DeliveredAt != nil || o.CancellationReason != nil {
				t.Fatalf("placed order %d has terminal fields set", o.ID)
			}
		}
	}
}

func TestGenerator_StatusMixRoughlyMatchesWeights(t *testing.T) {
	t.Parallel()

	g := NewGenerator(Options{Orders: 2000, Seed: 3, Now: fixedNow()})
	snap := g.Snapshot()

	var delivered int
	for _, o := range snap.Orders {
		if o.Status == domain.StatusDelivered {
			delivered++
		}
	}
	share := float64(delivered) / float64(len(snap.Orders))
	if share < 0.70 || share > 0.80 {
		t.Fatalf("delivered share %v outside expected band around 0.75", share)
	}
}
