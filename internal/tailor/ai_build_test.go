package tailor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacobdsantos/resume-tailor/internal/types"
)

func TestBuildFromAI_StructurallyIdenticalToLocalPath(t *testing.T) {
	master := testMaster()
	opts := types.DefaultGenerateOptions()

	local := Generate(master, ransomwareJD, opts)
	ai := BuildFromAI(master, &types.AIGenerateResult{}, ransomwareJD, opts)

	require.Len(t, ai.RenderModel.Sections, len(local.RenderModel.Sections))
	for i := range local.RenderModel.Sections {
		assert.Equal(t, local.RenderModel.Sections[i].Type, ai.RenderModel.Sections[i].Type)
	}
	assert.Equal(t, local.Analysis.ExtractedKeywords, ai.Analysis.ExtractedKeywords)
	assert.Equal(t, local.Analysis.DetectedFocusAreas, ai.Analysis.DetectedFocusAreas)
	assert.Equal(t, local.RenderModel.Meta.JDHash, ai.RenderModel.Meta.JDHash)
}

func TestBuildFromAI_RewrittenBulletsApplied(t *testing.T) {
	master := testMaster()
	result := &types.AIGenerateResult{
		Experience: []types.AIExperience{{
			ID:      "exp-1",
			Bullets: []types.AIBullet{{ID: "b-1-1", Text: "Dissected ransomware builders end to end."}},
		}},
	}

	out := BuildFromAI(master, result, ransomwareJD, types.DefaultGenerateOptions())

	assert.Equal(t, aiVariant, out.Analysis.BulletSelections["b-1-1"])
	assert.Equal(t, defaultVariant, out.Analysis.BulletSelections["b-2-1"])

	found := false
	for _, s := range out.RenderModel.Sections {
		if s.Type != types.SectionExperience {
			continue
		}
		for _, e := range s.Experience.Entries {
			for _, b := range e.Bullets {
				if b.ID == "b-1-1" {
					found = true
					assert.Equal(t, "Dissected ransomware builders end to end.", b.Text)
					assert.Contains(t, b.MatchedTerms, "ransomware")
				}
			}
		}
	}
	assert.True(t, found)
}

func TestBuildFromAI_UnknownIDsIgnored(t *testing.T) {
	master := testMaster()
	result := &types.AIGenerateResult{
		Experience: []types.AIExperience{{
			ID:      "exp-99",
			Bullets: []types.AIBullet{{ID: "b-99-1", Text: "Ghost bullet."}},
		}},
		ProjectOrder:     []string{"proj-nope", "proj-site"},
		PublicationOrder: []string{"pub-nope"},
	}
	opts := types.DefaultGenerateOptions()
	opts.MaxPages = 2

	out := BuildFromAI(master, result, ransomwareJD, opts)

	assert.NotContains(t, out.Analysis.BulletSelections, "b-99-1")
	for _, s := range out.RenderModel.Sections {
		switch s.Type {
		case types.SectionProjects:
			// Known ordered ID first, unmentioned projects follow in master order.
			require.Len(t, s.Projects.Projects, 2)
			assert.Equal(t, "proj-site", s.Projects.Projects[0].ID)
			assert.Equal(t, "proj-iocs", s.Projects.Projects[1].ID)
		case types.SectionPublications:
			assert.Len(t, s.Publications.Publications, 4)
			assert.Equal(t, "pub-1", s.Publications.Publications[0].ID)
		}
	}
}

func TestBuildFromAI_PublicationOrderApplied(t *testing.T) {
	master := testMaster()
	result := &types.AIGenerateResult{PublicationOrder: []string{"pub-3", "pub-1"}}
	opts := types.DefaultGenerateOptions()
	opts.MaxPages = 2

	out := BuildFromAI(master, result, ransomwareJD, opts)

	for _, s := range out.RenderModel.Sections {
		if s.Type == types.SectionPublications {
			ids := make([]string, 0, 4)
			for _, p := range s.Publications.Publications {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, []string{"pub-3", "pub-1", "pub-2", "pub-4"}, ids)
		}
	}
}

func TestBuildFromAI_SummaryFallbackChain(t *testing.T) {
	master := testMaster()
	opts := types.DefaultGenerateOptions()

	// Provider summary wins when present.
	out := BuildFromAI(master, &types.AIGenerateResult{Summary: "Provider wrote this."}, ransomwareJD, opts)
	assert.Equal(t, "Provider wrote this.", summarySectionText(t, out))

	// Otherwise the best authored summary is selected.
	out = BuildFromAI(master, &types.AIGenerateResult{}, ransomwareJD, opts)
	assert.Equal(t, "Threat researcher focused on ransomware ecosystems.", summarySectionText(t, out))

	// With nothing authored either, the template composer fills in.
	master.Summaries = nil
	out = BuildFromAI(master, &types.AIGenerateResult{}, ransomwareJD, opts)
	assert.NotEmpty(t, summarySectionText(t, out))
}

func TestBuildFromAI_TargetRole(t *testing.T) {
	master := testMaster()
	opts := types.DefaultGenerateOptions()

	out := BuildFromAI(master, &types.AIGenerateResult{TargetRole: "Staff Threat Researcher"}, ransomwareJD, opts)
	assert.Equal(t, "Staff Threat Researcher", out.RenderModel.Header.Label)

	out = BuildFromAI(master, &types.AIGenerateResult{}, ransomwareJD, opts)
	assert.Equal(t, "Senior Threat Researcher", out.RenderModel.Header.Label)
}

func TestBuildFromAI_SkillGroupOverride(t *testing.T) {
	master := testMaster()
	result := &types.AIGenerateResult{
		SkillGroups: []types.SkillGroup{{Group: "Core", Items: []string{"YARA", "Python"}}},
	}

	out := BuildFromAI(master, result, ransomwareJD, types.DefaultGenerateOptions())

	for _, s := range out.RenderModel.Sections {
		if s.Type == types.SectionSkills {
			require.Len(t, s.Skills.Groups, 1)
			assert.Equal(t, "Core", s.Skills.Groups[0].Group)
		}
	}
}

func summarySectionText(t *testing.T, out *types.GenerateOutput) string {
	t.Helper()
	for _, s := range out.RenderModel.Sections {
		if s.Type == types.SectionSummary {
			return s.Summary.Text
		}
	}
	t.Fatal("no summary section")
	return ""
}
