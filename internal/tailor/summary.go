package tailor

import (
	"strings"

	"github.com/jacobdsantos/resume-tailor/internal/types"
)

// Summary template keys.
const (
	templateThreatResearch   = "threat_research"
	templateToolBuilder      = "tool_builder"
	templateSecurityEngineer = "security_engineer"
	templateAnalyst          = "analyst"
)

// summaryTemplates are filled by scanning fixed candidate-to-JD trigger maps.
var summaryTemplates = map[string]string{
	templateThreatResearch:   "Threat researcher specializing in {focus_areas}. Deep hands-on background across {tech_skills}, with published research and open-source tooling including {tool_examples}.",
	templateToolBuilder:      "Security tool builder focused on {focus_areas}. Ships production tooling in {tech_skills}, including {tool_examples}.",
	templateSecurityEngineer: "Security engineer delivering {focus_areas} capabilities. Hands-on with {tech_skills}, building and operating systems such as {tool_examples}.",
	templateAnalyst:          "Security analyst covering {focus_areas}. Works daily with {tech_skills} and has built supporting analysis tooling including {tool_examples}.",
}

// focusTemplateKeys maps a primary focus area to its summary template.
var focusTemplateKeys = map[string]string{
	FocusResearch:      templateThreatResearch,
	FocusThreatIntel:   templateThreatResearch,
	FocusEngineering:   templateSecurityEngineer,
	FocusAI:            templateToolBuilder,
	FocusTraining:      templateAnalyst,
	FocusCommunication: templateAnalyst,
	FocusAnalysis:      templateAnalyst,
	FocusLeadership:    templateSecurityEngineer,
}

// engineerRoleSignals override the template choice to security_engineer when
// the JD reads like a software engineering posting regardless of focus.
var engineerRoleSignals = []string{
	"software engineer",
	"backend engineer",
	"platform engineer",
	"full stack",
	"full-stack",
	"site reliability",
	"developer role",
}

// phraseTrigger maps a candidate-facing phrase to the JD substrings that
// activate it.
type phraseTrigger struct {
	phrase   string
	triggers []string
}

var focusAreaPhrases = []phraseTrigger{
	{"ransomware tracking", []string{"ransomware"}},
	{"malware analysis", []string{"malware", "reverse engineer"}},
	{"threat intelligence", []string{"threat intel", "cti", "adversar"}},
	{"detection engineering", []string{"detection", "siem", "edr"}},
	{"OSINT investigations", []string{"osint"}},
	{"vulnerability research", []string{"vulnerab", "exploit"}},
	{"incident response", []string{"incident"}},
	{"applied AI for security", []string{"machine learning", "llm", "artificial intelligence"}},
}

var fallbackFocusAreas = []string{"malware analysis", "threat intelligence", "detection engineering"}

var techSkillPhrases = []phraseTrigger{
	{"Python", []string{"python"}},
	{"Go", []string{"golang", " go ", " go,", " go."}},
	{"Rust", []string{"rust"}},
	{"PowerShell", []string{"powershell"}},
	{"SQL", []string{"sql"}},
	{"Kubernetes", []string{"kubernetes", "k8s"}},
	{"AWS", []string{"aws", "cloud"}},
	{"Linux internals", []string{"linux"}},
}

var fallbackTechSkills = []string{"Python", "Go", "Linux internals"}

var toolExamplePhrases = []phraseTrigger{
	{"YARA rule pipelines", []string{"yara", "detection"}},
	{"Ghidra analysis plugins", []string{"ghidra", "reverse engineer"}},
	{"MISP-integrated enrichment services", []string{"misp", "threat intel"}},
	{"SIEM detection content", []string{"siem", "splunk"}},
	{"sandbox automation", []string{"sandbox", "dynamic analysis"}},
	{"OSINT collection frameworks", []string{"osint"}},
}

var fallbackToolExamples = []string{"YARA rule pipelines", "IOC enrichment services", "sandbox automation"}

// ComposeSummary fills the template keyed by the primary focus area (or the
// software-engineer override) from the JD text. The result is deterministic
// for a fixed JD.
func ComposeSummary(jdLower, primaryFocus string) string {
	key := focusTemplateKeys[primaryFocus]
	if key == "" {
		key = templateThreatResearch
	}
	for _, signal := range engineerRoleSignals {
		if strings.Contains(jdLower, signal) {
			key = templateSecurityEngineer
			break
		}
	}

	text := summaryTemplates[key]
	text = strings.ReplaceAll(text, "{focus_areas}", joinMatches(jdLower, focusAreaPhrases, fallbackFocusAreas, 3))
	text = strings.ReplaceAll(text, "{tech_skills}", joinMatches(jdLower, techSkillPhrases, fallbackTechSkills, 4))
	text = strings.ReplaceAll(text, "{tool_examples}", joinMatches(jdLower, toolExamplePhrases, fallbackToolExamples, 3))
	return text
}

// joinMatches collects phrases whose triggers appear in the JD, falling back
// to a fixed list when nothing matched, and joins the first max entries.
func joinMatches(jdLower string, candidates []phraseTrigger, fallback []string, max int) string {
	var matched []string
	for _, c := range candidates {
		for _, trigger := range c.triggers {
			if strings.Contains(jdLower, trigger) {
				matched = append(matched, c.phrase)
				break
			}
		}
		if len(matched) == max {
			break
		}
	}
	if len(matched) == 0 {
		matched = fallback
		if len(matched) > max {
			matched = matched[:max]
		}
	}
	return strings.Join(matched, ", ")
}

// SelectSummary picks the authored summary with the most keyword hits
// against the extracted term set. Used by the AI assembly path when the
// provider returns no summary; returns empty when nothing is authored.
func SelectSummary(summaries []types.Summary, termSet map[string]bool) string {
	best := ""
	bestScore := -1
	for _, s := range summaries {
		score := 0
		for _, kw := range s.Keywords {
			if termSet[strings.ToLower(kw)] {
				score++
			}
		}
		if score > bestScore {
			best = s.Text
			bestScore = score
		}
	}
	return best
}
