// Package seed generates realistic sample data for the analytics
// database.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jaswdr/faker"

	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/domain"
)

// Dataset shape constants.
const (
	defaultOrders = 5000
	defaultDays   = 90

	storeCount   = 10
	productCount = 200
	riderCount   = 30
)

var zones = []string{"North", "South", "East", "West", "Central"}

var departments = []string{
	"Fresh Produce", "Dairy", "Bakery", "Beverages", "Snacks",
	"Frozen Foods", "Personal Care", "Household", "Meat & Seafood",
}

var cancellationReasons = []string{
	"Out of stock", "Customer requested", "Delivery delay",
	"Payment issue", "Address not found", "Weather conditions",
}

// Options controls the generated dataset. Zero values fall back to the
// defaults of 5000 orders over 90 days.
type Options struct {
	Orders int
	Days   int
	Seed   int64
	Now    time.Time
}

// Generator produces deterministic sample snapshots for a given seed.
type Generator struct {
	opts Options
	rng  *rand.Rand
	fake faker.Faker
}

// NewGenerator creates a generator for the given options.
func NewGenerator(opts Options) *Generator {
	if opts.Orders <= 0 {
		opts.Orders = defaultOrders
	}
	if opts.Days <= 0 {
		opts.Days = defaultDays
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	return &Generator{
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
		fake: faker.NewWithSeed(rand.NewSource(opts.Seed)),
	}
}

// Snapshot generates a full dataset: stores, products, riders, orders
// and their line items.
func (g *Generator) Snapshot() *domain.Snapshot {
	snap := &domain.Snapshot{
		Stores:   g.stores(),
		Products: g.products(),
		Riders:   g.riders(),
	}
	g.orders(snap)
	return snap
}

func (g *Generator) stores() []domain.Store {
	stores := make([]domain.Store, 0, storeCount)
	for i := 1; i <= storeCount; i++ {
		stores = append(stores, domain.Store{
			ID:             int64(i),
			Name:           fmt.Sprintf("QuickMart %s", g.fake.Address().City()),
			Zone:           zones[g.rng.Intn(len(zones))],
			AvgPickingTime: g.uniform(5, 20),
		})
	}
	return stores
}

func (g *Generator) products() []domain.Product {
	products := make([]domain.Product, 0, productCount)
	for i := 1; i <= productCount; i++ {
		products = append(products, domain.Product{
			ID:         int64(i),
			Name:       fmt.Sprintf("Product %d", i),
			Department: departments[g.rng.Intn(len(departments))],
			Aisle:      fmt.Sprintf("Aisle %d", g.rng.Intn(20)+1),
			Price:      g.uniform(2, 50),
		})
	}
	return products
}

func (g *Generator) riders() []domain.Rider {
	riders := make([]domain.Rider, 0, riderCount)
	for i := 1; i <= riderCount; i++ {
		riders = append(riders, domain.Rider{
			ID:          int64(i),
			Name:        g.fake.Person().Name(),
			Zone:        zones[g.rng.Intn(len(zones))],
			MaxCapacity: g.rng.Intn(4) + 3,
		})
	}
	return riders
}

func (g *Generator) orders(snap *domain.Snapshot) {
	start := g.opts.Now.AddDate(0, 0, -g.opts.Days)
	var lineItemID int64

	for i := 1; i <= g.opts.Orders; i++ {
		placed := start.AddDate(0, 0, g.rng.Intn(g.opts.Days)).
			Truncate(24 * time.Hour).
			Add(time.Duration(g.rng.Intn(17)+6) * time.Hour).
			Add(time.Duration(g.rng.Intn(60)) * time.Minute)
		promised := placed.Add(time.Duration(g.rng.Intn(26)+20) * time.Minute)

		totalItems := g.rng.Intn(23) + 3
		o := domain.Order{
			ID:                 int64(i),
			UserID:             int64(g.rng.Intn(1000) + 1),
			StoreID:            snap.Stores[g.rng.Intn(len(snap.Stores))].ID,
			RiderID:            snap.Riders[g.rng.Intn(len(snap.Riders))].ID,
			PlacedAt:           placed,
			PromisedAt:         promised,
			TotalItems:         totalItems,
			TotalAmount:        g.uniform(20, 200),
			PickingTimeMinutes: g.uniform(3, 25),
		}

		switch r := g.rng.Float64(); {
		case r < 0.75:
			o.Status = domain.StatusDelivered
			delay := g.uniform(5, 45)
			if g.rng.Float64() < 0.6 {
				delay = g.uniform(-5, 5)
			}
			delivered := promised.Add(time.Duration(delay * float64(time.Minute)))
			deliveryTime := delivered.Sub(placed).Minutes()
			o.DeliveredAt = &delivered
			o.DelayMinutes = &delay
			o.DeliveryTimeMinutes = &deliveryTime
		case r < 0.90:
			o.Status = domain.StatusCancelled
			reason := cancellationReasons[g.rng.Intn(len(cancellationReasons))]
			o.CancellationReason = &reason
		default:
			o.Status = domain.StatusPlaced
		}

		snap.Orders = append(snap.Orders, o)

		for _, idx := range g.rng.Perm(len(snap.Products))[:totalItems] {
			lineItemID++
			snap.LineItems = append(snap.LineItems, domain.OrderLineItem{
				ID:            lineItemID,
				OrderID:       o.ID,
				ProductID:     snap.Products[idx].ID,
				Quantity:      g.rng.Intn(5) + 1,
				WasOutOfStock: g.rng.Float64() < 0.05,
			})
		}
	}
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}
