package analytics

import "fmt"

// Priority is the presentation priority of a finding.
type Priority string

// Priorities, from most to least urgent. They group findings for
// presentation only; rule evaluation order is fixed by declaration.
const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
)

// Recommendation is one prioritized finding produced by the rule set.
type Recommendation struct {
	Category       string   `json:"category"`
	Priority       Priority `json:"priority"`
	Issue          string   `json:"issue"`
	Recommendation string   `json:"recommendation"`
}

// Thresholds are the policy knobs of the rule set. Defaults carry the
// documented operational policy; see DefaultThresholds.
type Thresholds struct {
	AvgDelayMinutes     float64
	CancellationRatePct float64
	StockoutRatePct     float64
	AvgPickingMinutes   float64
	RiderOverloadFactor float64
	OnTimeRatePct       float64
}

// DefaultThresholds returns the documented rule policy: delay above 10
// minutes, cancellations above 10%, stockouts above 5%, picking above
// 15 minutes, rider load above 2x the cohort average, on-time rate
// below 70%.
func DefaultThresholds() Thresholds {
	return Thresholds{
		AvgDelayMinutes:     10,
		CancellationRatePct: 10,
		StockoutRatePct:     5,
		AvgPickingMinutes:   15,
		RiderOverloadFactor: 2.0,
		OnTimeRatePct:       70,
	}
}

// rule is one declarative threshold rule. eval inspects the views and
// returns the issue and recommendation texts when the condition is
// met. A rule fires at most once per run.
type rule struct {
	category string
	priority Priority
	eval     func(v *Views, t Thresholds) (issue, advice string, fired bool)
}

// rules is the fixed rule set. Findings are emitted in this
// declaration order, not sorted by priority; the order is part of the
// output contract.
var rules = []rule{
	{
		category: "Delivery Delays",
		priority: PriorityHigh,
		eval: func(v *Views, t Thresholds) (string, string, bool) {
			if v.Overview.AvgDelay <= t.AvgDelayMinutes {
				return "", "", false
			}
			issue := fmt.Sprintf("Average delay is %.2f minutes", v.Overview.AvgDelay)
			advice := "Increase rider capacity during peak hours and optimize routing algorithms"
			if zone, ok := worstZoneByDelay(v.Delays.ByZone); ok {
				issue = fmt.Sprintf("%s, worst in zone '%s'", issue, zone)
			}
			return issue, advice, true
		},
	},
	{
		category: "Order Cancellations",
		priority: PriorityHigh,
		eval: func(v *Views, t Thresholds) (string, string, bool) {
			if v.Overview.CancellationRate <= t.CancellationRatePct {
				return "", "", false
			}
			reason, ok := dominantReason(v.Cancellations.ByReason)
			if !ok {
				return "", "", false
			}
			issue := fmt.Sprintf("Cancellation rate is %.2f%%, mainly due to '%s'", v.Overview.CancellationRate, reason)
			advice := fmt.Sprintf("Address '%s' issue through improved inventory management or customer communication", reason)
			return issue, advice, true
		},
	},
	{
		category: "Inventory Stockouts",
		priority: PriorityCritical,
		eval: func(v *Views, t Thresholds) (string, string, bool) {
			if v.Overview.StockoutRate <= t.StockoutRatePct {
				return "", "", false
			}
			issue := fmt.Sprintf("Stockout rate is %.2f%%", v.Overview.StockoutRate)
			if dept, ok := worstDepartment(v.Stockouts.ByDepartment); ok {
				issue = fmt.Sprintf("%s, concentrated in '%s'", issue, dept)
			}
			advice := "Implement predictive inventory management and increase safety stock for high-demand items"
			return issue, advice, true
		},
	},
	{
		category: "Store Operations",
		priority: PriorityMedium,
		eval: func(v *Views, t Thresholds) (string, string, bool) {
			if v.PickingTime.AvgPickingTime <= t.AvgPickingMinutes {
				return "", "", false
			}
			issue := fmt.Sprintf("Average picking time is %.2f minutes", v.PickingTime.AvgPickingTime)
			if len(v.PickingTime.SlowestStores) > 0 {
				s := v.PickingTime.SlowestStores[0]
				issue = fmt.Sprintf("%s, slowest at '%s' (zone '%s')", issue, s.Store, s.Zone)
			}
			advice := "Optimize store layout, train staff on efficient picking, and consider automation tools"
			return issue, advice, true
		},
	},
	{
		category: "Rider Management",
		priority: PriorityMedium,
		eval: func(v *Views, t Thresholds) (string, string, bool) {
			overloaded := overloadedRiders(v.Riders.Riders, t.RiderOverloadFactor)
			if overloaded == 0 {
				return "", "", false
			}
			issue := fmt.Sprintf("%d riders handle more than %.1fx the average delivery load", overloaded, t.RiderOverloadFactor)
			advice := "Hire additional riders and implement better load balancing across zones"
			return issue, advice, true
		},
	},
	{
		category: "Customer Experience",
		priority: PriorityCritical,
		eval: func(v *Views, t Thresholds) (string, string, bool) {
			if v.Overview.DeliveredOrders == 0 || v.Overview.OnTimeRate >= t.OnTimeRatePct {
				return "", "", false
			}
			issue := fmt.Sprintf("Only %.2f%% of orders delivered on time", v.Overview.OnTimeRate)
			advice := "Review entire fulfillment process, increase buffer time in delivery estimates, and optimize operations"
			return issue, advice, true
		},
	},
}

// Recommend evaluates the rule set against the views and returns the
// findings in declaration order. An empty dataset yields an empty
// list, never an error.
func Recommend(v *Views, t Thresholds) []Recommendation {
	out := []Recommendation{}
	for _, r := range rules {
		issue, advice, fired := r.eval(v, t)
		if !fired {
			continue
		}
		out = append(out, Recommendation{
			Category:       r.category,
			Priority:       r.priority,
			Issue:          issue,
			Recommendation: advice,
		})
	}
	return out
}

// worstZoneByDelay picks the zone with the highest average delay; the
// first zone encountered wins a tie.
func worstZoneByDelay(zones []ZoneDelay) (string, bool) {
	if len(zones) == 0 {
		return "", false
	}
	worst := zones[0]
	for _, z := range zones[1:] {
		if z.AvgDelay > worst.AvgDelay {
			worst = z
		}
	}
	return worst.Zone, true
}

// dominantReason picks the most frequent cancellation reason; the
// first reason encountered wins a tie.
func dominantReason(reasons []ReasonCount) (string, bool) {
	if len(reasons) == 0 {
		return "", false
	}
	top := reasons[0]
	for _, rc := range reasons[1:] {
		if rc.Count > top.Count {
			top = rc
		}
	}
	return top.Reason, true
}

// worstDepartment picks the department with the most stockouts.
func worstDepartment(depts []DepartmentCount) (string, bool) {
	if len(depts) == 0 {
		return "", false
	}
	top := depts[0]
	for _, d := range depts[1:] {
		if d.Count > top.Count {
			top = d
		}
	}
	return top.Department, true
}

// overloadedRiders counts riders whose deliveries exceed factor times
// the cohort average.
func overloadedRiders(riders []RiderStats, factor float64) int {
	if len(riders) == 0 || factor <= 0 {
		return 0
	}
	total := 0
	for _, r := range riders {
		total += r.TotalDeliveries
	}
	mean := float64(total) / float64(len(riders))
	n := 0
	for _, r := range riders {
		if float64(r.TotalDeliveries) > factor*mean {
			n++
		}
	}
	return n
}
