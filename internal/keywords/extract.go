package keywords

import (
	"sort"
	"strings"

	"github.com/jacobdsantos/resume-tailor/internal/parsing"
	"github.com/jacobdsantos/resume-tailor/internal/types"
)

// maxKeywords caps the extracted keyword list.
const maxKeywords = 50

// Extract produces a ranked, weighted keyword list from job description
// text. Scores are term frequency times the domain weight; the list is
// sorted by weight descending (ties alphabetical) and capped at 50 entries.
// Empty or all-stopword text yields an empty list.
func Extract(text string) []types.ExtractedKeyword {
	tokens := parsing.Tokenize(text)
	filtered := parsing.RemoveStopwords(tokens)
	if len(filtered) == 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, t := range filtered {
		counts[t]++
	}

	// Bigrams are built from the stopword-filtered stream: two source words
	// separated only by a removed stopword become adjacent. Kept for exact
	// parity with the scoring this table was tuned against.
	for _, b := range parsing.ExtractBigrams(filtered) {
		counts[b]++
	}

	// Scan the full normalized text for every known multi-word domain term.
	// This recovers exact phrases ("mitre att&ck") even when stopword
	// removal or tokenization would have fragmented them.
	normalized := parsing.Normalize(text)
	for term := range domainWeights {
		if !strings.Contains(term, " ") {
			continue
		}
		if n := strings.Count(normalized, term); n > 0 {
			counts[term] += n
		}
	}

	scores := make(map[string]float64, len(counts))
	for term, n := range counts {
		scores[term] = float64(n) * WeightOf(term)
	}

	suppressComponentUnigrams(scores)

	result := make([]types.ExtractedKeyword, 0, len(scores))
	for term, score := range scores {
		result = append(result, types.ExtractedKeyword{Term: term, Weight: score})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Weight != result[j].Weight {
			return result[i].Weight > result[j].Weight
		}
		return result[i].Term < result[j].Term
	})
	if len(result) > maxKeywords {
		result = result[:maxKeywords]
	}
	return result
}

// suppressComponentUnigrams removes a unigram when it is a component word of
// a scored phrase whose weight exceeds 1.0, unless the unigram itself is a
// strong standalone term (weight >= 1.5).
func suppressComponentUnigrams(scores map[string]float64) {
	var suppressed []string
	for term := range scores {
		if strings.Contains(term, " ") {
			continue
		}
		if WeightOf(term) >= strongStandaloneWeight {
			continue
		}
		for phrase := range scores {
			if !strings.Contains(phrase, " ") || WeightOf(phrase) <= 1.0 {
				continue
			}
			if phraseContainsWord(phrase, term) {
				suppressed = append(suppressed, term)
				break
			}
		}
	}
	for _, term := range suppressed {
		delete(scores, term)
	}
}

// phraseContainsWord reports whether word is one of the space-separated
// components of phrase.
func phraseContainsWord(phrase, word string) bool {
	for _, part := range strings.Split(phrase, " ") {
		if part == word {
			return true
		}
	}
	return false
}
