package analytics

// DelaySeverity classifies a delivered order's delay.
type DelaySeverity string

// Delay severity buckets. Boundaries are inclusive on the upper edge:
// exactly 5 is on time, exactly 15 is slight, exactly 30 is moderate.
const (
	SeverityOnTime   DelaySeverity = "on_time"
	SeveritySlight   DelaySeverity = "slight_delay"
	SeverityModerate DelaySeverity = "moderate_delay"
	SeveritySevere   DelaySeverity = "severe_delay"
)

// ClassifyDelay places a delay (minutes) into exactly one severity
// bucket.
func ClassifyDelay(minutes float64) DelaySeverity {
	switch {
	case minutes <= OnTimeDelayLimit:
		return SeverityOnTime
	case minutes <= 15:
		return SeveritySlight
	case minutes <= 30:
		return SeverityModerate
	default:
		return SeveritySevere
	}
}

// PickingSpeed classifies a store's picking time.
type PickingSpeed string

// Picking speed buckets. The boundary values 10 and 15 both belong to
// "medium".
const (
	PickingFast   PickingSpeed = "fast"
	PickingMedium PickingSpeed = "medium"
	PickingSlow   PickingSpeed = "slow"
)

// ClassifyPicking places a picking time (minutes) into exactly one
// speed bucket.
func ClassifyPicking(minutes float64) PickingSpeed {
	switch {
	case minutes < 10:
		return PickingFast
	case minutes <= 15:
		return PickingMedium
	default:
		return PickingSlow
	}
}
