package tailor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jacobdsantos/resume-tailor/internal/types"
)

func TestComposeSummary_ResearchJD(t *testing.T) {
	jd := strings.ToLower(ransomwareJD)
	text := ComposeSummary(jd, FocusResearch)

	assert.True(t, strings.HasPrefix(text, "Threat researcher"))
	assert.Contains(t, text, "ransomware tracking")
	assert.Contains(t, text, "Python")
	assert.NotContains(t, text, "{", "all placeholders must be filled")
}

func TestComposeSummary_EngineerSignalOverridesFocus(t *testing.T) {
	text := ComposeSummary("we are hiring a software engineer for detection work", FocusResearch)
	assert.True(t, strings.HasPrefix(text, "Security engineer"))
}

func TestComposeSummary_UnknownFocusUsesResearchTemplate(t *testing.T) {
	text := ComposeSummary("", "")
	assert.True(t, strings.HasPrefix(text, "Threat researcher"))
}

func TestComposeSummary_EmptyJDUsesFallbacks(t *testing.T) {
	text := ComposeSummary("", FocusAnalysis)
	assert.Contains(t, text, "malware analysis, threat intelligence, detection engineering")
	assert.Contains(t, text, "Python, Go, Linux internals")
}

func TestComposeSummary_Deterministic(t *testing.T) {
	jd := strings.ToLower(ransomwareJD)
	assert.Equal(t, ComposeSummary(jd, FocusThreatIntel), ComposeSummary(jd, FocusThreatIntel))
}

func TestJoinMatches_CapsAtMax(t *testing.T) {
	jd := "ransomware malware threat intel osint incident"
	joined := joinMatches(jd, focusAreaPhrases, fallbackFocusAreas, 3)
	assert.Len(t, strings.Split(joined, ", "), 3)
}

func TestSelectSummary_PicksMostKeywordHits(t *testing.T) {
	summaries := []types.Summary{
		{Text: "Generalist.", Keywords: []string{"detection"}},
		{Text: "Ransomware specialist.", Keywords: []string{"ransomware", "malware"}},
	}
	termSet := map[string]bool{"ransomware": true, "malware": true}
	assert.Equal(t, "Ransomware specialist.", SelectSummary(summaries, termSet))
}

func TestSelectSummary_EmptyAuthoredList(t *testing.T) {
	assert.Equal(t, "", SelectSummary(nil, map[string]bool{"malware": true}))
}
