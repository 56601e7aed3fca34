package verify

import (
	"strings"

	"github.com/agext/levenshtein"
)

// NormalizeName strips non-alphabetic characters, lowercases, and collapses
// whitespace so OCR noise and formatting do not affect matching.
func NormalizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == ' ', r == '\t', r == '\n':
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(strings.ToLower(b.String())), " ")
}

// NameSimilarity scores two names in [0,1] as the maximum of edit-distance
// similarity over the normalized strings and word-set overlap. The first
// tolerates OCR misreads, the second reordered name parts.
func NameSimilarity(name1, name2 string) float64 {
	norm1 := NormalizeName(name1)
	norm2 := NormalizeName(name2)
	if norm1 == "" || norm2 == "" {
		return 0.0
	}

	similarity := levenshtein.Similarity(norm1, norm2, nil)

	if overlap := wordOverlap(norm1, norm2); overlap > similarity {
		similarity = overlap
	}
	return similarity
}

func wordOverlap(norm1, norm2 string) float64 {
	set1 := wordSet(norm1)
	set2 := wordSet(norm2)
	if len(set1) == 0 || len(set2) == 0 {
		return 0.0
	}

	common := 0
	for w := range set1 {
		if _, ok := set2[w]; ok {
			common++
		}
	}
	larger := len(set1)
	if len(set2) > larger {
		larger = len(set2)
	}
	return float64(common) / float64(larger)
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		set[w] = struct{}{}
	}
	return set
}
