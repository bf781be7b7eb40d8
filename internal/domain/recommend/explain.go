package recommend

import (
	"strings"

	"github.com/kailas-cloud/stayrec/internal/domain/activity"
	"github.com/kailas-cloud/stayrec/internal/domain/profile"
)

// Reason strings shared by scoring and ranking. Clients display them verbatim.
const (
	ReasonPopular       = "Popular activity"
	ReasonSimilar       = "Similar to your selected activity"
	ReasonPreferences   = "Based on your preferences"
	ReasonSimilarUsers  = "Popular among similar users"
	ReasonBothSources   = "Based on preferences and similar users"
	reasonBudgetLow     = "Fits your budget preferences"
	reasonBudgetMedium  = "Good value for money"
	reasonBudgetHigh    = "Premium experience matching your preferences"
	reasonAvailability  = "Good availability"
	reasonHighScore     = "Highly recommended based on your profile"
	reasonGoodScore     = "Good match for your preferences"
)

// Explain derives the justification strings for one scored activity. It is a
// pure function of its inputs and emits reasons in a fixed order: interest
// match, budget fit, availability, then the overall-score tier.
func Explain(a activity.Activity, p profile.Profile, category activity.Category, score float64) []string {
	reasons := make([]string, 0, 4)

	if p.HasInterest(category) {
		reasons = append(reasons, "Matches your interest in "+strings.ToLower(string(category))+" activities")
	}

	price := a.Price()
	switch {
	case p.Budget == profile.BudgetLow && price <= 30:
		reasons = append(reasons, reasonBudgetLow)
	case p.Budget == profile.BudgetHigh && price >= 40:
		reasons = append(reasons, reasonBudgetHigh)
	case p.Budget == profile.BudgetMedium && price >= 20 && price <= 60:
		reasons = append(reasons, reasonBudgetMedium)
	}

	if float64(a.AvailableSlots()) > float64(a.Capacity())*0.5 {
		reasons = append(reasons, reasonAvailability)
	}

	switch {
	case score >= 0.8:
		reasons = append(reasons, reasonHighScore)
	case score >= 0.6:
		reasons = append(reasons, reasonGoodScore)
	}

	return reasons
}
