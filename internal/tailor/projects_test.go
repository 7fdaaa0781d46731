package tailor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jacobdsantos/resume-tailor/internal/types"
)

func TestRankProjects_RelevantFirst(t *testing.T) {
	projects := []types.Project{
		{ID: "p-site", Name: "Personal Site", Summary: "Static portfolio.", Tags: []string{"web"}},
		{
			ID: "p-iocs", Name: "IOC Enrichment", Summary: "OSINT enrichment of indicators.",
			Tags:    []string{"osint", "python"},
			Bullets: []types.Bullet{{ID: "pb-1", Text: "Python workers enrich 50k indicators."}},
		},
	}
	ranked := rankProjects(projects, []string{"osint", "python"}, nil)

	assert.Equal(t, "p-iocs", ranked[0].ID)
	assert.Equal(t, "p-site", ranked[1].ID)
}

func TestRankProjects_TagBonuses(t *testing.T) {
	projects := []types.Project{
		{ID: "p-a", Name: "Alpha", Tags: []string{"osint"}},
		{ID: "p-b", Name: "Beta tool for osint work"},
	}
	// Both contain one term hit; the exact tag match must win.
	ranked := rankProjects(projects, []string{"osint"}, nil)
	assert.Equal(t, "p-a", ranked[0].ID)

	// A tag containing a focus-area name also earns a bonus.
	projects = []types.Project{
		{ID: "p-c", Name: "Gamma", Tags: []string{"threat_intel-feeds"}},
		{ID: "p-d", Name: "Delta"},
	}
	ranked = rankProjects(projects, nil, []string{"threat_intel"})
	assert.Equal(t, "p-c", ranked[0].ID)
}

func TestRankProjects_BulletsKeepAuthoredOrder(t *testing.T) {
	projects := []types.Project{{
		ID: "p-1", Name: "Pipeline",
		Bullets: []types.Bullet{
			{ID: "pb-1", Text: "Unrelated first bullet."},
			{ID: "pb-2", Text: "Heavy yara usage."},
		},
	}}
	ranked := rankProjects(projects, []string{"yara"}, nil)

	assert.Equal(t, "pb-1", ranked[0].Bullets[0].ID)
	assert.Equal(t, "pb-2", ranked[0].Bullets[1].ID)
	assert.Equal(t, []string{"yara"}, ranked[0].Bullets[1].MatchedTerms)
}

func TestRankProjects_StableOnTies(t *testing.T) {
	projects := []types.Project{
		{ID: "p-1", Name: "First"},
		{ID: "p-2", Name: "Second"},
	}
	ranked := rankProjects(projects, nil, nil)
	assert.Equal(t, "p-1", ranked[0].ID)
	assert.Equal(t, "p-2", ranked[1].ID)
}

func TestRankPublications_TitleHitsFirst(t *testing.T) {
	pubs := []types.Publication{
		{ID: "pub-1", Title: "Notes on Build Systems"},
		{ID: "pub-2", Title: "Hunting Ransomware with YARA"},
	}
	ranked := rankPublications(pubs, []string{"ransomware", "yara"})

	assert.Equal(t, "pub-2", ranked[0].ID)
	// Input order untouched.
	assert.Equal(t, "pub-1", pubs[0].ID)
}
