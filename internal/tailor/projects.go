package tailor

import (
	"sort"
	"strings"

	"github.com/jacobdsantos/resume-tailor/internal/types"
)

// tagExactBonus and tagFocusBonus reward tags that exactly match a JD term
// or contain a detected focus-area name.
const (
	tagExactBonus = 2
	tagFocusBonus = 1
)

// rankProjects scores each project by JD term hits across its name, summary,
// tags and bullet text, plus tag bonuses, and returns new render projects
// sorted by descending score. Bullets are annotated with their matched terms
// but keep authored order within the project.
func rankProjects(projects []types.Project, terms []string, focusAreas []string) []types.RenderProject {
	type scoredProject struct {
		project types.RenderProject
		score   int
	}

	termSet := make(map[string]bool, len(terms))
	for _, t := range terms {
		termSet[t] = true
	}

	scored := make([]scoredProject, 0, len(projects))
	for _, p := range projects {
		var textParts []string
		textParts = append(textParts, p.Name, p.Summary)
		textParts = append(textParts, p.Tags...)

		bullets := make([]types.RenderBullet, 0, len(p.Bullets))
		for _, b := range p.Bullets {
			textParts = append(textParts, b.Text)
			bullets = append(bullets, types.RenderBullet{
				ID:           b.ID,
				Text:         b.Text,
				MatchedTerms: matchTerms(b.Text, terms),
			})
		}

		score := len(matchTerms(strings.Join(textParts, " "), terms))
		for _, tag := range p.Tags {
			tagLower := strings.ToLower(tag)
			if termSet[tagLower] {
				score += tagExactBonus
			}
			for _, focus := range focusAreas {
				if strings.Contains(tagLower, focus) {
					score += tagFocusBonus
				}
			}
		}

		scored = append(scored, scoredProject{
			project: types.RenderProject{
				ID:      p.ID,
				Name:    p.Name,
				Summary: p.Summary,
				URL:     p.URL,
				Tags:    p.Tags,
				Bullets: bullets,
			},
			score: score,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	result := make([]types.RenderProject, 0, len(scored))
	for _, sp := range scored {
		result = append(result, sp.project)
	}
	return result
}

// rankPublications sorts publications by descending JD term hits in the
// title only, preserving authored order on ties.
func rankPublications(pubs []types.Publication, terms []string) []types.Publication {
	ranked := make([]types.Publication, len(pubs))
	copy(ranked, pubs)

	scores := make(map[string]int, len(ranked))
	for _, p := range ranked {
		scores[p.ID] = len(matchTerms(p.Title, terms))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i].ID] > scores[ranked[j].ID]
	})
	return ranked
}
