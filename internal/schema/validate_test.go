package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacobdsantos/resume-tailor/internal/types"
)

func validMaster() *types.ResumeMaster {
	return &types.ResumeMaster{
		Basics: types.Basics{
			Name:  "Jacob Santos",
			Label: "Threat Researcher",
			Email: "jacob@example.com",
			Links: []types.Link{{Label: "GitHub", URL: "https://github.com/jacobdsantos"}},
		},
		Summaries: []types.Summary{{Text: "Threat researcher and tool builder.", Keywords: []string{"malware"}}},
		Skills:    []types.SkillGroup{{Group: "Languages", Items: []string{"Python", "Go"}}},
		Experience: []types.ExperienceEntry{{
			ID:        "exp-1",
			Company:   "SecCo",
			Role:      "Analyst",
			StartDate: "2021-01",
			Bullets:   []types.Bullet{{ID: "b-1", Text: "Tracked ransomware campaigns."}},
		}},
		Projects: []types.Project{{
			ID:      "proj-1",
			Name:    "IOC Pipeline",
			Bullets: []types.Bullet{{ID: "pb-1", Text: "Built an IOC enrichment pipeline."}},
		}},
	}
}

func TestValidateMaster_Valid(t *testing.T) {
	assert.NoError(t, ValidateMaster(validMaster()))
}

func TestValidateMaster_Nil(t *testing.T) {
	err := ValidateMaster(nil)
	require.Error(t, err)
}

func TestValidateMaster_CollectsAllViolations(t *testing.T) {
	m := validMaster()
	m.Basics.Name = ""
	m.Basics.Email = "not-an-email"
	m.Experience[0].Bullets = nil

	err := ValidateMaster(m)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Violations, 3)

	fields := make([]string, 0, len(ve.Violations))
	for _, v := range ve.Violations {
		fields = append(fields, v.Field)
	}
	assert.Contains(t, fields, "basics.name")
	assert.Contains(t, fields, "basics.email")
	assert.Contains(t, fields, "experience[0].bullets")
}

func TestValidateMaster_EmptyProjectBulletsFail(t *testing.T) {
	m := validMaster()
	m.Projects[0].Bullets = []types.Bullet{}

	var ve *ValidationError
	require.ErrorAs(t, ValidateMaster(m), &ve)
	assert.Equal(t, "projects[0].bullets", ve.Violations[0].Field)
}

func TestValidateMaster_DuplicateIDs(t *testing.T) {
	m := validMaster()
	m.Projects[0].ID = "exp-1"

	var ve *ValidationError
	require.ErrorAs(t, ValidateMaster(m), &ve)
	assert.Contains(t, ve.Error(), "already used")
}

func TestValidateMaster_InvalidLinkURL(t *testing.T) {
	m := validMaster()
	m.Basics.Links[0].URL = "not a url"

	var ve *ValidationError
	require.ErrorAs(t, ValidateMaster(m), &ve)
	assert.Equal(t, "basics.links[0].url", ve.Violations[0].Field)
}

func TestValidateMaster_VariantForUnknownBullet(t *testing.T) {
	m := validMaster()
	m.BulletVariants = map[string]map[string]string{
		"ghost-bullet": {"research": "some text"},
	}

	var ve *ValidationError
	require.ErrorAs(t, ValidateMaster(m), &ve)
	assert.Equal(t, "bullet_variants.ghost-bullet", ve.Violations[0].Field)
}
