// Package ats computes Applicant Tracking System compatibility scores from
// matched and total keyword sets.
package ats

import (
	"math"
	"strings"

	"github.com/jacobdsantos/resume-tailor/internal/types"
)

// Grade labels for score ranges.
const (
	GradeExcellent = "excellent"
	GradeGood      = "good"
	GradeFair      = "fair"
	GradePoor      = "poor"
)

// ComputeScore returns a 0-100 compatibility score for matched terms against
// the total keyword set. When weights are provided, each term contributes
// its weight (default 1.0 for unweighted terms) and the score is the matched
// weight share; otherwise it is the plain matched/total ratio. An empty
// total always scores 0, never a division by zero or NaN.
func ComputeScore(matched, total []string, weights []types.ExtractedKeyword) int {
	if len(total) == 0 {
		return 0
	}

	if len(weights) == 0 {
		return clamp(int(math.Round(float64(len(matched)) / float64(len(total)) * 100)))
	}

	weightByTerm := make(map[string]float64, len(weights))
	for _, kw := range weights {
		weightByTerm[strings.ToLower(kw.Term)] = kw.Weight
	}
	lookup := func(term string) float64 {
		if w, ok := weightByTerm[strings.ToLower(term)]; ok {
			return w
		}
		return 1.0
	}

	var matchedWeight, totalWeight float64
	for _, term := range total {
		totalWeight += lookup(term)
	}
	for _, term := range matched {
		matchedWeight += lookup(term)
	}
	if totalWeight == 0 {
		return 0
	}
	return clamp(int(math.Round(matchedWeight / totalWeight * 100)))
}

// Grade maps a score to a coarse label at thresholds 80/60/40.
func Grade(score int) string {
	switch {
	case score >= 80:
		return GradeExcellent
	case score >= 60:
		return GradeGood
	case score >= 40:
		return GradeFair
	default:
		return GradePoor
	}
}

// FindMissing returns the JD keywords absent from the resume keyword set.
// Comparison is case-insensitive; original JD casing and order are
// preserved in the result.
func FindMissing(jdKeywords, resumeKeywords []string) []string {
	have := make(map[string]bool, len(resumeKeywords))
	for _, kw := range resumeKeywords {
		have[strings.ToLower(kw)] = true
	}

	missing := make([]string, 0)
	for _, kw := range jdKeywords {
		if !have[strings.ToLower(kw)] {
			missing = append(missing, kw)
		}
	}
	return missing
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
