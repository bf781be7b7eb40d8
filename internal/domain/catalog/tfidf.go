package catalog

import (
	"math"
	"strings"
	"unicode"
)

// stopwords is a compact english stopword list; terms carrying no signal for
// activity descriptions are dropped before weighting.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "have": {}, "in": {}, "is": {},
	"it": {}, "its": {}, "of": {}, "on": {}, "or": {}, "our": {}, "that": {},
	"the": {}, "their": {}, "this": {}, "to": {}, "was": {}, "were": {},
	"will": {}, "with": {}, "you": {}, "your": {},
}

// tokenize lowercases the text and splits it into terms on non-alphanumeric
// runes, dropping stopwords and single-rune fragments.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		if _, stop := stopwords[f]; stop {
			continue
		}
		out = append(out, f)
	}
	return out
}

// tfidfVectors builds one sparse term-weight vector per document, materialized
// as dense vectors over the corpus vocabulary. Weight = tf * idf with the
// smoothed idf ln((1+n)/(1+df)) + 1, so terms rare across the catalog weigh
// more and corpus-wide terms still contribute.
func tfidfVectors(docs [][]string) [][]float64 {
	vocab := make(map[string]int)
	df := make(map[string]int)
	for _, terms := range docs {
		seen := make(map[string]struct{}, len(terms))
		for _, t := range terms {
			if _, ok := vocab[t]; !ok {
				vocab[t] = len(vocab)
			}
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				df[t]++
			}
		}
	}

	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for t, i := range vocab {
		idf[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}

	vectors := make([][]float64, len(docs))
	for d, terms := range docs {
		vec := make([]float64, len(vocab))
		for _, t := range terms {
			i := vocab[t]
			vec[i] += idf[i]
		}
		vectors[d] = vec
	}
	return vectors
}
