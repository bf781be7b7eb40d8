package recommend

import (
	"sort"

	"github.com/kailas-cloud/stayrec/internal/domain/catalog"
	domrec "github.com/kailas-cloud/stayrec/internal/domain/recommend"
)

// Default blend weights. Deployments may override them via configuration;
// the defaults are the compatibility contract.
const (
	DefaultContentWeight = 0.6
	DefaultCollabWeight  = 0.4
)

// mergeHybrid blends the two ranked legs into one list. A recommendation at
// rank i (0-indexed) in a leg of length n contributes (n-i) * weight; the
// contributions of both legs sum per activity id. Items backed by both legs
// get their reasons augmented with the dual-source reason, content-only items
// with the preferences reason; collaborative-only items keep their
// similar-users reason. The result is stable-sorted by
// descending blended score and truncated to topN, so ties resolve in
// first-contribution order and identical inputs merge identically. When both
// legs are empty the top-rated catalog activities are returned instead,
// tagged as popular picks.
func mergeHybrid(ix *catalog.Index, content, collab []domrec.Recommendation, wContent, wCollab float64, topN int) []domrec.Recommendation {
	if topN <= 0 {
		return nil
	}

	if len(content) == 0 && len(collab) == 0 {
		out := make([]domrec.Recommendation, 0, topN)
		for _, a := range ix.TopRated(topN) {
			out = append(out, domrec.New(a, a.Rating(), []string{domrec.ReasonPopular}))
		}
		return out
	}

	type blended struct {
		rec       domrec.Recommendation
		score     float64
		inContent bool
		inCollab  bool
	}

	order := make([]int64, 0, len(content)+len(collab))
	merged := make(map[int64]*blended, len(content)+len(collab))

	for i, rec := range content {
		id := rec.Activity.ID()
		contribution := float64(len(content)-i) * wContent
		merged[id] = &blended{rec: rec, score: contribution, inContent: true}
		order = append(order, id)
	}

	for i, rec := range collab {
		id := rec.Activity.ID()
		contribution := float64(len(collab)-i) * wCollab
		if b, ok := merged[id]; ok {
			b.score += contribution
			b.inCollab = true
			continue
		}
		merged[id] = &blended{rec: rec, score: contribution, inCollab: true}
		order = append(order, id)
	}

	out := make([]domrec.Recommendation, 0, len(order))
	for _, id := range order {
		b := merged[id]
		rec := b.rec.WithScore(b.score)
		switch {
		case b.inContent && b.inCollab:
			rec = rec.WithReasons(append(append([]string{}, b.rec.Reasons...), domrec.ReasonBothSources))
		case b.inContent:
			rec = rec.WithReasons(append(append([]string{}, b.rec.Reasons...), domrec.ReasonPreferences))
		}
		out = append(out, rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}
