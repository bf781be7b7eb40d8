package catalog

import (
	"fmt"
	"math"
	"sort"

	"github.com/kailas-cloud/stayrec/internal/domain"
	"github.com/kailas-cloud/stayrec/internal/domain/activity"
)

// Index is an immutable snapshot of the activity catalog plus a precomputed
// description-similarity matrix. It is built once per catalog version and
// swapped atomically by its holder; readers never see a partial build.
type Index struct {
	items []activity.Activity
	pos   map[int64]int
	sim   [][]float64
}

// Neighbor pairs an activity with its similarity to a reference activity.
type Neighbor struct {
	Activity activity.Activity
	Score    float64
}

// Build indexes the catalog: resolves categories, computes TF-IDF weighted
// term vectors over the descriptions and the pairwise cosine similarity
// matrix. Fails with domain.ErrEmptyCatalog on an empty input so the holder
// can keep serving the previous snapshot.
func Build(items []activity.Activity) (*Index, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	docs := make([][]string, len(items))
	for i, a := range items {
		docs[i] = tokenize(a.Name() + " " + a.Description())
	}
	return BuildFromVectors(items, tfidfVectors(docs))
}

// BuildFromVectors indexes the catalog using externally supplied description
// vectors (one per item, same order), e.g. embeddings from a remote model.
// Vectors are compared by cosine similarity clamped to [0,1]; self-similarity
// is pinned to exactly 1.0.
func BuildFromVectors(items []activity.Activity, vectors [][]float64) (*Index, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyCatalog
	}
	if len(vectors) != len(items) {
		return nil, fmt.Errorf("vector count %d does not match item count %d", len(vectors), len(items))
	}

	resolved := make([]activity.Activity, len(items))
	pos := make(map[int64]int, len(items))
	for i, a := range items {
		if _, dup := pos[a.ID()]; dup {
			return nil, fmt.Errorf("duplicate activity id %d", a.ID())
		}
		resolved[i] = a.WithCategory(activity.Resolve(a))
		pos[a.ID()] = i
	}

	norm := make([][]float64, len(vectors))
	for i, v := range vectors {
		norm[i] = l2Normalize(v)
	}

	n := len(items)
	sim := make([][]float64, n)
	for i := range sim {
		sim[i] = make([]float64, n)
		sim[i][i] = 1.0
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s := clamp01(dot(norm[i], norm[j]))
			sim[i][j] = s
			sim[j][i] = s
		}
	}

	return &Index{items: resolved, pos: pos, sim: sim}, nil
}

// Len returns the number of indexed activities.
func (ix *Index) Len() int { return len(ix.items) }

// Activities returns the indexed activities in catalog insertion order.
// The returned slice is shared and must be treated as read-only.
func (ix *Index) Activities() []activity.Activity { return ix.items }

// ByID looks up an activity by id.
func (ix *Index) ByID(id int64) (activity.Activity, bool) {
	i, ok := ix.pos[id]
	if !ok {
		return activity.Activity{}, false
	}
	return ix.items[i], true
}

// Contains reports whether the id is indexed.
func (ix *Index) Contains(id int64) bool {
	_, ok := ix.pos[id]
	return ok
}

// SimilarityOf returns the description similarity of two activities in [0,1].
// Fails with domain.ErrUnknownActivity when either id is not indexed.
func (ix *Index) SimilarityOf(a, b int64) (float64, error) {
	i, ok := ix.pos[a]
	if !ok {
		return 0, fmt.Errorf("activity %d: %w", a, domain.ErrUnknownActivity)
	}
	j, ok := ix.pos[b]
	if !ok {
		return 0, fmt.Errorf("activity %d: %w", b, domain.ErrUnknownActivity)
	}
	return ix.sim[i][j], nil
}

// Neighbors returns up to n activities most similar to the given one,
// descending by similarity, the reference activity itself excluded.
// Ties keep catalog insertion order so output is deterministic.
func (ix *Index) Neighbors(id int64, n int) ([]Neighbor, error) {
	i, ok := ix.pos[id]
	if !ok {
		return nil, fmt.Errorf("activity %d: %w", id, domain.ErrUnknownActivity)
	}
	if n <= 0 {
		return nil, nil
	}

	out := make([]Neighbor, 0, len(ix.items)-1)
	for j, a := range ix.items {
		if j == i {
			continue
		}
		out = append(out, Neighbor{Activity: a, Score: ix.sim[i][j]})
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Score > out[b].Score
	})
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

// TopRated returns up to n activities descending by rating, ties kept in
// catalog insertion order. This is the content-agnostic popularity fallback.
func (ix *Index) TopRated(n int) []activity.Activity {
	out := make([]activity.Activity, len(ix.items))
	copy(out, ix.items)
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Rating() > out[b].Rating()
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var s float64
	for i := 0; i < n; i++ {
		s += a[i] * b[i]
	}
	return s
}

func l2Normalize(v []float64) []float64 {
	var ss float64
	for _, x := range v {
		ss += x * x
	}
	if ss == 0 {
		return v
	}
	inv := 1 / math.Sqrt(ss)
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x * inv
	}
	return out
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
