package tailor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacobdsantos/resume-tailor/internal/ats"
	"github.com/jacobdsantos/resume-tailor/internal/types"
)

func TestApplyEdits_NoOverridesReturnsSameOutput(t *testing.T) {
	out := Generate(testMaster(), ransomwareJD, types.DefaultGenerateOptions())

	assert.Same(t, out, ApplyEdits(out, nil, nil, ransomwareJD))
	assert.Same(t, out, ApplyEdits(out, nil, map[string]string{}, ransomwareJD))
}

func TestApplyEdits_BulletEditMovesKeywordAndRaisesScore(t *testing.T) {
	out := Generate(testMaster(), ransomwareJD, types.DefaultGenerateOptions())
	require.NotEmpty(t, out.Analysis.MissingKeywords)

	missing := out.Analysis.MissingKeywords[0]
	var bulletID string
	for _, s := range out.RenderModel.Sections {
		if s.Type == types.SectionExperience {
			bulletID = s.Experience.Entries[0].Bullets[0].ID
		}
	}
	require.NotEmpty(t, bulletID)

	edited := ApplyEdits(out, nil, map[string]string{
		bulletID: "Led coverage work on " + missing + " across the fleet.",
	}, ransomwareJD)

	assert.Contains(t, edited.Analysis.MatchedKeywords, missing)
	assert.NotContains(t, edited.Analysis.MissingKeywords, missing)
	assert.Greater(t, edited.Analysis.ATSScore, out.Analysis.ATSScore)
	assert.Equal(t, ats.Grade(edited.Analysis.ATSScore), edited.Analysis.ATSGrade)
}

func TestApplyEdits_SummaryOverride(t *testing.T) {
	out := Generate(testMaster(), ransomwareJD, types.DefaultGenerateOptions())

	replacement := "Hand-written summary about nothing in particular."
	edited := ApplyEdits(out, &replacement, nil, ransomwareJD)

	for _, s := range edited.RenderModel.Sections {
		if s.Type == types.SectionSummary {
			assert.Equal(t, replacement, s.Summary.Text)
		}
	}
}

func TestApplyEdits_DoesNotMutateOriginal(t *testing.T) {
	out := Generate(testMaster(), ransomwareJD, types.DefaultGenerateOptions())
	require.NotEmpty(t, out.Analysis.MissingKeywords)

	missing := out.Analysis.MissingKeywords[0]
	var bulletID, originalText string
	var originalSummary string
	for _, s := range out.RenderModel.Sections {
		switch s.Type {
		case types.SectionExperience:
			b := s.Experience.Entries[0].Bullets[0]
			bulletID, originalText = b.ID, b.Text
		case types.SectionSummary:
			originalSummary = s.Summary.Text
		}
	}
	originalScore := out.Analysis.ATSScore

	replacement := "Different summary."
	_ = ApplyEdits(out, &replacement, map[string]string{bulletID: "Now mentions " + missing + "."}, ransomwareJD)

	assert.Equal(t, originalScore, out.Analysis.ATSScore)
	assert.Contains(t, out.Analysis.MissingKeywords, missing)
	for _, s := range out.RenderModel.Sections {
		switch s.Type {
		case types.SectionExperience:
			assert.Equal(t, originalText, s.Experience.Entries[0].Bullets[0].Text)
		case types.SectionSummary:
			assert.Equal(t, originalSummary, s.Summary.Text)
		}
	}
}

func TestApplyEdits_ScoresVisibleTextOnly(t *testing.T) {
	out := Generate(testMaster(), ransomwareJD, types.DefaultGenerateOptions())

	var bulletID string
	for _, s := range out.RenderModel.Sections {
		if s.Type == types.SectionExperience {
			bulletID = s.Experience.Entries[0].Bullets[0].ID
		}
	}
	require.NotEmpty(t, bulletID)

	edited := ApplyEdits(out, nil, map[string]string{bulletID: "Rewrote the pipeline."}, ransomwareJD)

	// Every recomputed matched term must appear in the rendered text, and no
	// missing term may. Trimmed bullets do not count toward coverage.
	haystack := strings.ToLower(renderedText(edited))
	for _, term := range edited.Analysis.MatchedKeywords {
		assert.Contains(t, haystack, term, "matched term %q not in rendered text", term)
	}
	for _, term := range edited.Analysis.MissingKeywords {
		assert.NotContains(t, haystack, strings.ToLower(term), "missing term %q is in rendered text", term)
	}
}

// renderedText concatenates the coverage-bearing text of a render model: the
// summary, experience bullets, skill items, and project fields.
func renderedText(out *types.GenerateOutput) string {
	var sb strings.Builder
	for _, s := range out.RenderModel.Sections {
		switch s.Type {
		case types.SectionSummary:
			sb.WriteString(s.Summary.Text + " ")
		case types.SectionExperience:
			for _, e := range s.Experience.Entries {
				for _, b := range e.Bullets {
					sb.WriteString(b.Text + " ")
				}
			}
		case types.SectionSkills:
			for _, g := range s.Skills.Groups {
				for _, item := range g.Items {
					sb.WriteString(item + " ")
				}
			}
		case types.SectionProjects:
			for _, p := range s.Projects.Projects {
				sb.WriteString(p.Name + " " + p.Summary + " ")
				for _, tag := range p.Tags {
					sb.WriteString(tag + " ")
				}
				for _, b := range p.Bullets {
					sb.WriteString(b.Text + " ")
				}
			}
		}
	}
	return sb.String()
}

func TestApplyEdits_OnlyTargetedBulletChanges(t *testing.T) {
	out := Generate(testMaster(), ransomwareJD, types.DefaultGenerateOptions())

	var first, second types.RenderBullet
	for _, s := range out.RenderModel.Sections {
		if s.Type == types.SectionExperience {
			first = s.Experience.Entries[0].Bullets[0]
			second = s.Experience.Entries[0].Bullets[1]
		}
	}

	edited := ApplyEdits(out, nil, map[string]string{first.ID: "Rewritten."}, ransomwareJD)

	for _, s := range edited.RenderModel.Sections {
		if s.Type == types.SectionExperience {
			assert.Equal(t, "Rewritten.", s.Experience.Entries[0].Bullets[0].Text)
			assert.Equal(t, second.Text, s.Experience.Entries[0].Bullets[1].Text)
		}
	}
}
