package recommend

import (
	"github.com/kailas-cloud/stayrec/internal/domain/catalog"
	domrec "github.com/kailas-cloud/stayrec/internal/domain/recommend"
)

// collaborativeRecommendations propagates similarity from the guest's history
// to unseen activities: for each history item its similarity row is walked in
// descending order (the item itself excluded) and candidates accumulate in
// first-seen order, deduplicated by id, up to topN. History ids absent from
// the catalog are skipped, never an error. An empty (or fully unknown)
// history degrades to the top-rated catalog activities so the collaborative
// leg is only empty when the catalog is.
func collaborativeRecommendations(ix *catalog.Index, history []int64, topN int) []domrec.Recommendation {
	if topN <= 0 {
		return nil
	}

	seen := make(map[int64]struct{}, topN)
	recs := make([]domrec.Recommendation, 0, topN)

	for _, id := range history {
		if len(recs) >= topN {
			break
		}
		neighbors, err := ix.Neighbors(id, topN)
		if err != nil {
			// History can reference activities removed from the catalog.
			continue
		}
		for _, nb := range neighbors {
			if _, dup := seen[nb.Activity.ID()]; dup {
				continue
			}
			seen[nb.Activity.ID()] = struct{}{}
			recs = append(recs, domrec.New(nb.Activity, nb.Score, []string{domrec.ReasonSimilarUsers}))
			if len(recs) >= topN {
				break
			}
		}
	}

	if len(recs) == 0 {
		for _, a := range ix.TopRated(topN) {
			recs = append(recs, domrec.New(a, a.Rating(), []string{domrec.ReasonSimilarUsers}))
		}
	}
	return recs
}
