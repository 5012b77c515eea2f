package analytics

import (
	"math"
	"sort"

	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/domain"
)

// OnTimeDelayLimit is the largest delay, in minutes, still counted as
// an on-time delivery. A delay of exactly 5 minutes is on time.
const OnTimeDelayLimit = 5.0

// round2 rounds to 2 decimal places; all published averages and rates
// use this precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CountByStatus counts orders with the given status.
func CountByStatus(orders []domain.Order, status domain.OrderStatus) int {
	n := 0
	for _, o := range orders {
		if o.Status == status {
			n++
		}
	}
	return n
}

// Rate returns num/den as a percentage rounded to 2 decimals.
// A zero denominator yields 0, never an error.
func Rate(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return round2(float64(num) / float64(den) * 100)
}

// Average returns the mean of values rounded to 2 decimals, or 0 for
// an empty input.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return round2(sum / float64(len(values)))
}

// GroupStat is one group's accumulated count and sum.
type GroupStat[K comparable] struct {
	Key   K
	Count int
	Sum   float64
}

// Avg finalizes the group's average, rounded to 2 decimals. An empty
// group yields 0.
func (g GroupStat[K]) Avg() float64 {
	if g.Count == 0 {
		return 0
	}
	return round2(g.Sum / float64(g.Count))
}

// Accumulator groups observations by key in a single pass, preserving
// first-encounter order. The stable order is what makes every "top N"
// ranking deterministic across runs on the same dataset.
type Accumulator[K comparable] struct {
	index map[K]int
	stats []GroupStat[K]
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator[K comparable]() *Accumulator[K] {
	return &Accumulator[K]{index: make(map[K]int)}
}

func (a *Accumulator[K]) at(key K) *GroupStat[K] {
	if i, ok := a.index[key]; ok {
		return &a.stats[i]
	}
	a.index[key] = len(a.stats)
	a.stats = append(a.stats, GroupStat[K]{Key: key})
	return &a.stats[len(a.stats)-1]
}

// Observe adds a value to the key's group.
func (a *Accumulator[K]) Observe(key K, v float64) {
	g := a.at(key)
	g.Count++
	g.Sum += v
}

// Hit increments the key's group count without a value (count-only
// groupings).
func (a *Accumulator[K]) Hit(key K) {
	a.at(key).Count++
}

// Add adds n to the key's group count.
func (a *Accumulator[K]) Add(key K, n int) {
	a.at(key).Count += n
}

// Stats returns the groups in first-encounter order.
func (a *Accumulator[K]) Stats() []GroupStat[K] {
	return a.stats
}

// Len returns the number of groups.
func (a *Accumulator[K]) Len() int { return len(a.stats) }

// Get returns the group for key, if present.
func (a *Accumulator[K]) Get(key K) (GroupStat[K], bool) {
	i, ok := a.index[key]
	if !ok {
		return GroupStat[K]{}, false
	}
	return a.stats[i], true
}

// TopN returns the first n entries of stats ordered by less. The sort
// is stable: equal entries keep their original scan order. The input
// is not modified.
func TopN[K comparable](stats []GroupStat[K], n int, less func(a, b GroupStat[K]) bool) []GroupStat[K] {
	out := append([]GroupStat[K](nil), stats...)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// ByAvgDesc orders groups by descending average.
func ByAvgDesc[K comparable](a, b GroupStat[K]) bool { return a.Avg() > b.Avg() }

// ByAvgAsc orders groups by ascending average.
func ByAvgAsc[K comparable](a, b GroupStat[K]) bool { return a.Avg() < b.Avg() }

// ByCountDesc orders groups by descending count.
func ByCountDesc[K comparable](a, b GroupStat[K]) bool { return a.Count > b.Count }
