package analytics

import (
	"sort"
	"time"

	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/domain"
)

// OverviewView holds the headline metrics of the dataset.
type OverviewView struct {
	TotalOrders      int     `json:"total_orders"`
	DeliveredOrders  int     `json:"delivered_orders"`
	CancelledOrders  int     `json:"cancelled_orders"`
	CancellationRate float64 `json:"cancellation_rate"`
	AvgDeliveryTime  float64 `json:"avg_delivery_time"`
	AvgDelay         float64 `json:"avg_delay"`
	OnTimeRate       float64 `json:"on_time_rate"`
	StockoutRate     float64 `json:"stockout_rate"`
}

// ComposeOverview computes the overview metrics in a single pass over
// orders and line items.
func ComposeOverview(s *domain.Snapshot) OverviewView {
	var (
		delivered, cancelled, onTime int
		deliveryTimes, delays        []float64
	)
	for _, o := range s.Orders {
		switch o.Status {
		case domain.StatusDelivered:
			delivered++
			if o.DeliveryTimeMinutes != nil {
				deliveryTimes = append(deliveryTimes, *o.DeliveryTimeMinutes)
			}
			if o.DelayMinutes != nil {
				delays = append(delays, *o.DelayMinutes)
				if *o.DelayMinutes <= OnTimeDelayLimit {
					onTime++
				}
			}
		case domain.StatusCancelled:
			cancelled++
		}
	}

	stockouts := 0
	for _, li := range s.LineItems {
		if li.WasOutOfStock {
			stockouts++
		}
	}

	return OverviewView{
		TotalOrders:      len(s.Orders),
		DeliveredOrders:  delivered,
		CancelledOrders:  cancelled,
		CancellationRate: Rate(cancelled, len(s.Orders)),
		AvgDeliveryTime:  Average(deliveryTimes),
		AvgDelay:         Average(delays),
		OnTimeRate:       Rate(onTime, delivered),
		StockoutRate:     Rate(stockouts, len(s.LineItems)),
	}
}

// DelayDistribution counts delivered orders per severity bucket. The
// buckets are mutually exclusive and exhaustive.
type DelayDistribution struct {
	OnTime   int `json:"on_time"`
	Slight   int `json:"slight_delay"`
	Moderate int `json:"moderate_delay"`
	Severe   int `json:"severe_delay"`
}

// ZoneDelay is the average delay and order count for one zone.
type ZoneDelay struct {
	Zone     string  `json:"zone"`
	AvgDelay float64 `json:"avg_delay"`
	Count    int     `json:"count"`
}

// HourDelay is the average delay for one hour of the day.
type HourDelay struct {
	Hour     int     `json:"hour"`
	AvgDelay float64 `json:"avg_delay"`
	Count    int     `json:"count"`
}

// StoreDelay is the average delay for one store.
type StoreDelay struct {
	Store    string  `json:"store"`
	AvgDelay float64 `json:"avg_delay"`
}

// DelaysView breaks delivery delays down by severity, zone, hour of
// day and store.
type DelaysView struct {
	Distribution     DelayDistribution `json:"delay_distribution"`
	ByZone           []ZoneDelay       `json:"delays_by_zone"`
	ByHour           []HourDelay       `json:"hourly_delays"`
	TopDelayedStores []StoreDelay      `json:"top_delayed_stores"`
}

// ComposeDelays analyzes delivered orders with a known delay.
func ComposeDelays(s *domain.Snapshot) DelaysView {
	stores := s.StoresByID()

	var dist DelayDistribution
	zones := NewAccumulator[string]()
	hours := NewAccumulator[int]()
	byStore := NewAccumulator[string]()

	for _, o := range s.Orders {
		if o.Status != domain.StatusDelivered || o.DelayMinutes == nil {
			continue
		}
		delay := *o.DelayMinutes

		switch ClassifyDelay(delay) {
		case SeverityOnTime:
			dist.OnTime++
		case SeveritySlight:
			dist.Slight++
		case SeverityModerate:
			dist.Moderate++
		case SeveritySevere:
			dist.Severe++
		}

		st, ok := stores[o.StoreID]
		if ok {
			zones.Observe(st.Zone, delay)
			byStore.Observe(st.Name, delay)
		}
		hours.Observe(o.PlacedAt.Hour(), delay)
	}

	byZone := make([]ZoneDelay, 0, zones.Len())
	for _, g := range zones.Stats() {
		byZone = append(byZone, ZoneDelay{Zone: g.Key, AvgDelay: g.Avg(), Count: g.Count})
	}

	// every hour of the day is present, zero-count hours included
	byHour := make([]HourDelay, 0, 24)
	for h := 0; h < 24; h++ {
		g, _ := hours.Get(h)
		byHour = append(byHour, HourDelay{Hour: h, AvgDelay: g.Avg(), Count: g.Count})
	}

	top := make([]StoreDelay, 0, 5)
	for _, g := range TopN(byStore.Stats(), 5, ByAvgDesc) {
		top = append(top, StoreDelay{Store: g.Key, AvgDelay: g.Avg()})
	}

	return DelaysView{
		Distribution:     dist,
		ByZone:           byZone,
		ByHour:           byHour,
		TopDelayedStores: top,
	}
}

// ReasonCount is a cancellation count for one reason.
type ReasonCount struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

// ZoneCount is a count attached to one zone.
type ZoneCount struct {
	Zone  string `json:"zone"`
	Count int    `json:"count"`
}

// DateCount is a count for one calendar date (YYYY-MM-DD).
type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// CancellationsView breaks cancelled orders down by reason, zone and
// date.
type CancellationsView struct {
	ByReason []ReasonCount `json:"cancellation_reasons"`
	ByZone   []ZoneCount   `json:"cancellations_by_zone"`
	Trend    []DateCount   `json:"cancellation_trend"`
}

// ComposeCancellations analyzes cancelled orders. Orders missing a
// cancellation reason (an upstream invariant violation) are absent
// from the reason breakdown but still counted elsewhere.
func ComposeCancellations(s *domain.Snapshot) CancellationsView {
	stores := s.StoresByID()

	reasons := NewAccumulator[string]()
	zones := NewAccumulator[string]()
	dates := NewAccumulator[string]()

	for _, o := range s.Orders {
		if o.Status != domain.StatusCancelled {
			continue
		}
		if o.CancellationReason != nil {
			reasons.Hit(*o.CancellationReason)
		}
		if st, ok := stores[o.StoreID]; ok {
			zones.Hit(st.Zone)
		}
		dates.Hit(o.PlacedAt.Format(time.DateOnly))
	}

	byReason := make([]ReasonCount, 0, reasons.Len())
	for _, g := range reasons.Stats() {
		byReason = append(byReason, ReasonCount{Reason: g.Key, Count: g.Count})
	}

	byZone := make([]ZoneCount, 0, zones.Len())
	for _, g := range zones.Stats() {
		byZone = append(byZone, ZoneCount{Zone: g.Key, Count: g.Count})
	}

	trend := make([]DateCount, 0, dates.Len())
	for _, g := range dates.Stats() {
		trend = append(trend, DateCount{Date: g.Key, Count: g.Count})
	}
	// chronological; the date format sorts lexically
	sort.SliceStable(trend, func(i, j int) bool { return trend[i].Date < trend[j].Date })

	return CancellationsView{ByReason: byReason, ByZone: byZone, Trend: trend}
}

// ProductStockouts is a stockout count for one product.
type ProductStockouts struct {
	Product    string `json:"product_name"`
	Department string `json:"department"`
	Count      int    `json:"stockout_count"`
}

// DepartmentCount is a stockout count for one department.
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"stockout_count"`
}

// StoreStockouts is a stockout count for one store.
type StoreStockouts struct {
	Store string `json:"store"`
	Zone  string `json:"zone"`
	Count int    `json:"stockout_count"`
}

// StockoutsView breaks out-of-stock line items down by product,
// department and store.
type StockoutsView struct {
	TopProducts  []ProductStockouts `json:"top_stockout_products"`
	ByDepartment []DepartmentCount  `json:"stockouts_by_department"`
	ByStore      []StoreStockouts   `json:"stockouts_by_store"`
}

// ComposeStockouts analyzes line items flagged out of stock.
func ComposeStockouts(s *domain.Snapshot) StockoutsView {
	products := s.ProductsByID()
	orders := s.OrdersByID()
	stores := s.StoresByID()

	byProduct := NewAccumulator[int64]()
	byDept := NewAccumulator[string]()
	byStore := NewAccumulator[int64]()

	for _, li := range s.LineItems {
		if !li.WasOutOfStock {
			continue
		}
		if p, ok := products[li.ProductID]; ok {
			byProduct.Hit(p.ID)
			byDept.Hit(p.Department)
		}
		if o, ok := orders[li.OrderID]; ok {
			if _, ok := stores[o.StoreID]; ok {
				byStore.Hit(o.StoreID)
			}
		}
	}

	top := make([]ProductStockouts, 0, 10)
	for _, g := range TopN(byProduct.Stats(), 10, ByCountDesc) {
		p := products[g.Key]
		top = append(top, ProductStockouts{Product: p.Name, Department: p.Department, Count: g.Count})
	}

	depts := make([]DepartmentCount, 0, byDept.Len())
	for _, g := range byDept.Stats() {
		depts = append(depts, DepartmentCount{Department: g.Key, Count: g.Count})
	}

	perStore := make([]StoreStockouts, 0, byStore.Len())
	for _, g := range byStore.Stats() {
		st := stores[g.Key]
		perStore = append(perStore, StoreStockouts{Store: st.Name, Zone: st.Zone, Count: g.Count})
	}

	return StockoutsView{TopProducts: top, ByDepartment: depts, ByStore: perStore}
}

// RiderStats is one rider's delivery record.
type RiderStats struct {
	RiderID         int64   `json:"rider_id"`
	Name            string  `json:"name"`
	Zone            string  `json:"zone"`
	MaxCapacity     int     `json:"max_capacity"`
	TotalDeliveries int     `json:"total_deliveries"`
	AvgDeliveryTime float64 `json:"avg_delivery_time"`
	AvgDelay        float64 `json:"avg_delay"`
	LoadEfficiency  float64 `json:"load_efficiency"`
}

// RidersView holds per-rider stats plus the derived rankings.
type RidersView struct {
	Riders            []RiderStats `json:"riders"`
	TopPerformers     []RiderStats `json:"top_performers"`
	Overloaded        []RiderStats `json:"overloaded_riders"`
	ZoneDistribution  []ZoneCount  `json:"zone_distribution"`
	AvgLoadEfficiency float64      `json:"avg_load_efficiency"`
}

type riderAcc struct {
	deliveries   int
	deliverySum  float64
	deliveryCnt  int
	delaySum     float64
	delayCnt     int
}

// ComposeRiders aggregates delivered orders per rider. Riders without
// a delivered order do not appear, matching the per-rider delivery
// join.
func ComposeRiders(s *domain.Snapshot) RidersView {
	riders := s.RidersByID()

	accs := make(map[int64]*riderAcc, len(riders))
	var order []int64 // first-encounter order of rider ids

	for _, o := range s.Orders {
		if o.Status != domain.StatusDelivered {
			continue
		}
		if _, ok := riders[o.RiderID]; !ok {
			continue
		}
		acc, ok := accs[o.RiderID]
		if !ok {
			acc = &riderAcc{}
			accs[o.RiderID] = acc
			order = append(order, o.RiderID)
		}
		acc.deliveries++
		if o.DeliveryTimeMinutes != nil {
			acc.deliverySum += *o.DeliveryTimeMinutes
			acc.deliveryCnt++
		}
		if o.DelayMinutes != nil {
			acc.delaySum += *o.DelayMinutes
			acc.delayCnt++
		}
	}

	stats := make([]RiderStats, 0, len(order))
	zones := NewAccumulator[string]()
	effSum := 0.0
	for _, id := range order {
		r := riders[id]
		acc := accs[id]
		rs := RiderStats{
			RiderID:         id,
			Name:            r.Name,
			Zone:            r.Zone,
			MaxCapacity:     r.MaxCapacity,
			TotalDeliveries: acc.deliveries,
		}
		if acc.deliveryCnt > 0 {
			rs.AvgDeliveryTime = round2(acc.deliverySum / float64(acc.deliveryCnt))
		}
		if acc.delayCnt > 0 {
			rs.AvgDelay = round2(acc.delaySum / float64(acc.delayCnt))
		}
		if r.MaxCapacity > 0 {
			rs.LoadEfficiency = round2(float64(acc.deliveries) / float64(r.MaxCapacity))
		}
		effSum += rs.LoadEfficiency
		stats = append(stats, rs)
		zones.Hit(r.Zone)
	}

	top := topRiders(stats, 10, func(a, b RiderStats) bool { return a.AvgDelay < b.AvgDelay })
	overloaded := topRiders(stats, 10, func(a, b RiderStats) bool { return a.TotalDeliveries > b.TotalDeliveries })

	dist := make([]ZoneCount, 0, zones.Len())
	for _, g := range zones.Stats() {
		dist = append(dist, ZoneCount{Zone: g.Key, Count: g.Count})
	}

	avgEff := 0.0
	if len(stats) > 0 {
		avgEff = round2(effSum / float64(len(stats)))
	}

	return RidersView{
		Riders:            stats,
		TopPerformers:     top,
		Overloaded:        overloaded,
		ZoneDistribution:  dist,
		AvgLoadEfficiency: avgEff,
	}
}

func topRiders(stats []RiderStats, n int, less func(a, b RiderStats) bool) []RiderStats {
	out := append([]RiderStats(nil), stats...)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// StorePicking is one store's average picking time.
type StorePicking struct {
	Store          string  `json:"store"`
	Zone           string  `json:"zone"`
	AvgPickingTime float64 `json:"avg_picking_time"`
	OrderCount     int     `json:"order_count"`
}

// SizePicking is the average picking time for one order size.
type SizePicking struct {
	TotalItems     int     `json:"total_items"`
	AvgPickingTime float64 `json:"avg_picking_time"`
}

// PickingTimeView breaks picking times down by store and order size.
type PickingTimeView struct {
	SlowestStores  []StorePicking `json:"slowest_stores"`
	ByOrderSize    []SizePicking  `json:"picking_time_by_order_size"`
	AvgPickingTime float64        `json:"avg_picking_time"`
}

// ComposePickingTime analyzes picking times over delivered orders.
func ComposePickingTime(s *domain.Snapshot) PickingTimeView {
	stores := s.StoresByID()

	byStore := NewAccumulator[int64]()
	bySize := NewAccumulator[int]()
	var all []float64

	for _, o := range s.Orders {
		if o.Status != domain.StatusDelivered {
			continue
		}
		if _, ok := stores[o.StoreID]; ok {
			byStore.Observe(o.StoreID, o.PickingTimeMinutes)
		}
		bySize.Observe(o.TotalItems, o.PickingTimeMinutes)
		all = append(all, o.PickingTimeMinutes)
	}

	slowest := make([]StorePicking, 0, 10)
	for _, g := range TopN(byStore.Stats(), 10, ByAvgDesc) {
		st := stores[g.Key]
		slowest = append(slowest, StorePicking{
			Store:          st.Name,
			Zone:           st.Zone,
			AvgPickingTime: g.Avg(),
			OrderCount:     g.Count,
		})
	}

	sizes := make([]SizePicking, 0, bySize.Len())
	for _, g := range bySize.Stats() {
		sizes = append(sizes, SizePicking{TotalItems: g.Key, AvgPickingTime: g.Avg()})
	}
	sort.SliceStable(sizes, func(i, j int) bool { return sizes[i].TotalItems < sizes[j].TotalItems })

	return PickingTimeView{
		SlowestStores:  slowest,
		ByOrderSize:    sizes,
		AvgPickingTime: Average(all),
	}
}

// Views bundles the six analytic views computed from one snapshot.
type Views struct {
	Overview      OverviewView      `json:"overview"`
	Delays        DelaysView        `json:"delays"`
	Cancellations CancellationsView `json:"cancellations"`
	Stockouts     StockoutsView     `json:"stockouts"`
	Riders        RidersView        `json:"riders"`
	PickingTime   PickingTimeView   `json:"picking_time"`
}

// ComposeViews computes all six views from the snapshot.
func ComposeViews(s *domain.Snapshot) Views {
	return Views{
		Overview:      ComposeOverview(s),
		Delays:        ComposeDelays(s),
		Cancellations: ComposeCancellations(s),
		Stockouts:     ComposeStockouts(s),
		Riders:        ComposeRiders(s),
		PickingTime:   ComposePickingTime(s),
	}
}

// Report is the full analytic output for one snapshot: the six views
// plus the recommendation list.
type Report struct {
	GeneratedAt     time.Time        `json:"generated_at"`
	Views
	Recommendations []Recommendation `json:"recommendations"`
}
