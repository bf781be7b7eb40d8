package recommend

import (
	"sort"

	"github.com/kailas-cloud/stayrec/internal/domain/activity"
	"github.com/kailas-cloud/stayrec/internal/domain/catalog"
	"github.com/kailas-cloud/stayrec/internal/domain/profile"
	domrec "github.com/kailas-cloud/stayrec/internal/domain/recommend"
)

// Content score decomposition. The four factors and their weights are a
// contract: ranking determinism and the explanation tiers depend on them.
const (
	weightInterest     = 0.40
	weightBudget       = 0.25
	weightAvailability = 0.20
	weightNovelty      = 0.15
	// freeItemBonus replaces the budget contribution for zero-priced
	// activities so free offerings are not penalized for fitting no tier.
	freeItemBonus = 0.15
)

// scoreContent rates one activity against a preference profile in [0,1].
func scoreContent(a activity.Activity, category activity.Category, p profile.Profile) float64 {
	score := 0.0

	if p.HasInterest(category) {
		score += weightInterest
	}

	price := a.Price()
	switch {
	case price == 0:
		score += freeItemBonus
	case p.Budget == profile.BudgetLow && price <= 30:
		score += weightBudget
	case p.Budget == profile.BudgetMedium && price >= 20 && price <= 60:
		score += weightBudget
	case p.Budget == profile.BudgetHigh && price >= 40:
		score += weightBudget
	}

	score += weightAvailability * a.AvailabilityRatio()

	if !p.HasVisited(a.ID()) {
		score += weightNovelty
	}

	if score > 1 {
		score = 1
	}
	return score
}

// contentRecommendations scores every indexed activity against the profile
// and returns the topN descending by score, with reasons attached. Ties keep
// catalog insertion order, so identical requests rank identically.
func contentRecommendations(ix *catalog.Index, p profile.Profile, topN int) []domrec.Recommendation {
	if topN <= 0 {
		return nil
	}

	recs := make([]domrec.Recommendation, 0, ix.Len())
	for _, a := range ix.Activities() {
		category := a.Category()
		score := scoreContent(a, category, p)
		recs = append(recs, domrec.New(a, score, domrec.Explain(a, p, category, score)))
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	if len(recs) > topN {
		recs = recs[:topN]
	}
	return recs
}
