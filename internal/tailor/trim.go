package tailor

import "github.com/jacobdsantos/resume-tailor/internal/types"

// One-page budget: at most 16 combined experience and project bullets,
// experience preferred first (bullets are already score-sorted), capped per
// entry, with one bullet for up to three projects and three publications.
const (
	maxCombinedBullets      = 16
	maxBulletsPerExperience = 5
	maxProjectsWithBullets  = 3
	maxPublications         = 3
)

// applyPageBudget trims bullet counts to fit a single page. Two-page
// generation performs no trimming and never calls this.
func applyPageBudget(experiences []types.RenderExperience, projects []types.RenderProject, pubs []types.Publication) ([]types.RenderExperience, []types.RenderProject, []types.Publication) {
	remaining := maxCombinedBullets

	trimmedExp := make([]types.RenderExperience, len(experiences))
	for i, exp := range experiences {
		n := len(exp.Bullets)
		if n > maxBulletsPerExperience {
			n = maxBulletsPerExperience
		}
		if n > remaining {
			n = remaining
		}
		trimmedExp[i] = exp
		trimmedExp[i].Bullets = exp.Bullets[:n]
		remaining -= n
	}

	trimmedProj := make([]types.RenderProject, len(projects))
	for i, p := range projects {
		trimmedProj[i] = p
		if i < maxProjectsWithBullets && remaining > 0 && len(p.Bullets) > 0 {
			trimmedProj[i].Bullets = p.Bullets[:1]
			remaining--
		} else {
			trimmedProj[i].Bullets = nil
		}
	}

	if len(pubs) > maxPublications {
		pubs = pubs[:maxPublications]
	}

	return trimmedExp, trimmedProj, pubs
}
