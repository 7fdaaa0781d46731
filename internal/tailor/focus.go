// Package tailor is the orchestration core of the resume tailoring engine:
// it detects job description focus areas, selects and ranks resume content
// against them, and assembles the template-agnostic render model. Every
// function is pure: no I/O, no globals, no randomness.
package tailor

import (
	"sort"
	"strings"
)

// Focus area names. The set is fixed at eight coarse categories used to bias
// summary template and bullet variant selection.
const (
	FocusResearch      = "research"
	FocusEngineering   = "engineering"
	FocusAI            = "ai"
	FocusTraining      = "training"
	FocusCommunication = "communication"
	FocusThreatIntel   = "threat_intel"
	FocusAnalysis      = "analysis"
	FocusLeadership    = "leadership"
)

// focusPattern scores one focus area: keywords are exact hits against the
// extracted keyword set (+2 each), patterns are substring hits in the raw
// lowercased JD text (+1 each).
type focusPattern struct {
	name     string
	keywords []string
	patterns []string
}

var focusPatterns = []focusPattern{
	{
		name:     FocusResearch,
		keywords: []string{"malware", "vulnerability research", "reverse engineering", "security research", "ghidra", "yara", "fuzzing"},
		patterns: []string{"research", "reverse engineer", "vulnerabilit", "proof of concept"},
	},
	{
		name:     FocusEngineering,
		keywords: []string{"golang", "rust", "kubernetes", "docker", "ci/cd", "microservices", "api"},
		patterns: []string{"software engineer", "build", "develop", "scalable", "production"},
	},
	{
		name:     FocusAI,
		keywords: []string{"machine learning", "llm", "llms", "nlp", "pytorch", "tensorflow", "large language models"},
		patterns: []string{"machine learning", "artificial intelligence", "ai-", "model training"},
	},
	{
		name:     FocusTraining,
		keywords: []string{"curriculum", "enablement"},
		patterns: []string{"train", "curriculum", "workshop", "teach", "onboard"},
	},
	{
		name:     FocusCommunication,
		keywords: []string{"reporting", "briefings"},
		patterns: []string{"present", "communicat", "stakeholder", "written", "brief"},
	},
	{
		name:     FocusThreatIntel,
		keywords: []string{"threat intelligence", "cti", "osint", "iocs", "ttps", "misp", "stix", "mitre att&ck"},
		patterns: []string{"threat intel", "adversar", "campaign", "tracking"},
	},
	{
		name:     FocusAnalysis,
		keywords: []string{"siem", "splunk", "detection", "triage", "forensics", "incident response"},
		patterns: []string{"analy", "investigat", "incident", "alert"},
	},
	{
		name:     FocusLeadership,
		keywords: []string{"leadership"},
		patterns: []string{"lead ", "leading", "manage", "mentor", "strategy", "roadmap"},
	},
}

// DetectFocusAreas scores the eight predefined focus areas against the
// extracted keyword set and the raw lowercased JD text, returning only
// positive-scoring areas sorted by score descending. Ties keep the fixed
// pattern order, so output is deterministic. The first entry, when present,
// is the primary focus.
func DetectFocusAreas(keywordSet map[string]bool, jdLower string) []string {
	type scored struct {
		name  string
		score int
	}

	areas := make([]scored, 0, len(focusPatterns))
	for _, fp := range focusPatterns {
		score := 0
		for _, kw := range fp.keywords {
			if keywordSet[kw] {
				score += 2
			}
		}
		for _, p := range fp.patterns {
			if strings.Contains(jdLower, p) {
				score++
			}
		}
		if score > 0 {
			areas = append(areas, scored{name: fp.name, score: score})
		}
	}

	sort.SliceStable(areas, func(i, j int) bool {
		return areas[i].score > areas[j].score
	})

	names := make([]string, 0, len(areas))
	for _, a := range areas {
		names = append(names, a.name)
	}
	return names
}
