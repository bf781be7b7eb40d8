package recommend

import (
	"math"

	"github.com/kailas-cloud/stayrec/internal/domain/activity"
)

// Recommendation is one ranked entry of an engine response. It denormalizes
// the activity fields a client needs for display, carries the score that
// ranked it and the human-readable reasons derived from the same signals.
// Recommendations are transient: produced per request, never persisted.
type Recommendation struct {
	Activity activity.Activity
	Category activity.Category
	// Score is in [0,1] for content scoring and unbounded for blended
	// hybrid scores.
	Score   float64
	Reasons []string
}

// New creates a recommendation with the score rounded to three decimals,
// matching the precision the API reports.
func New(a activity.Activity, score float64, reasons []string) Recommendation {
	return Recommendation{
		Activity: a,
		Category: a.Category(),
		Score:    Round3(score),
		Reasons:  reasons,
	}
}

// WithScore returns a copy with the score replaced (re-rounded).
func (r Recommendation) WithScore(score float64) Recommendation {
	r.Score = Round3(score)
	return r
}

// WithReasons returns a copy with the reasons replaced.
func (r Recommendation) WithReasons(reasons []string) Recommendation {
	r.Reasons = reasons
	return r
}

// Round3 rounds to three decimal places.
func Round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
