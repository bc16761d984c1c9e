package analysis

// Kind tells how the values of a metric are rendered.
type Kind string

const (
	KindPercentage Kind = "percentage"
	KindFloat      Kind = "float"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindPercentage || k == KindFloat
}

// MetricSpec identifies a metric. Key is the name the series is stored under, Name the
// name displayed in reports.
type MetricSpec struct {
	Key  string
	Name string
	Kind Kind
}

// DefaultStageMetric is the key of the curriculum stage signal.
const DefaultStageMetric = "Stage__Current"

// DefaultMetrics returns the metrics recorded by the drone training environment.
func DefaultMetrics() []MetricSpec {
	return []MetricSpec{
		{Key: "Drone__Success", Name: "Success Rate", Kind: KindPercentage},
		{Key: "Drone__Collisions", Name: "Collision Rate", Kind: KindPercentage},
		{Key: "Environment__Cumulative_Reward", Name: "Cumulative Reward", Kind: KindFloat},
		{Key: "Drone__EpisodeLength", Name: "Episode Length", Kind: KindFloat},
		{Key: "Drone__MinDistance", Name: "Min Distance to Goal", Kind: KindFloat},
	}
}
