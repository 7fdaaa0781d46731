package tailor

import (
	"sort"
	"strings"

	"github.com/jacobdsantos/resume-tailor/internal/types"
)

// defaultVariant names both the reserved variant key and the selection
// recorded for bullets rendered from their canonical text.
const defaultVariant = "default"

// focusMatchBonus is added to a variant's score when its focus name is among
// the detected focus areas.
const focusMatchBonus = 3

// matchTerms returns the extracted JD terms contained in text, preserving
// term order. Containment is literal lowercase substring matching.
func matchTerms(text string, terms []string) []string {
	if text == "" || len(terms) == 0 {
		return nil
	}
	lower := strings.ToLower(text)
	var matched []string
	for _, term := range terms {
		if strings.Contains(lower, term) {
			matched = append(matched, term)
		}
	}
	return matched
}

// bulletChoice is the outcome of variant selection for one bullet.
type bulletChoice struct {
	id      string
	text    string
	focus   string
	matched []string
	score   int
}

// selectVariant scores every named variant of a bullet (excluding the
// reserved "default" key) by JD term hits in the variant text plus a bonus
// when the variant's focus is among the detected areas, and picks the
// highest scorer. Ties keep the first in name order. When every named
// variant scores zero, or no variant table exists, the bullet falls back
// to its canonical text with its own match count recomputed, so authored
// bullets always render.
func selectVariant(b types.Bullet, variants map[string]string, terms []string, focusSet map[string]bool) bulletChoice {
	names := make([]string, 0, len(variants))
	for name := range variants {
		if name != defaultVariant {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	best := bulletChoice{id: b.ID, focus: defaultVariant}
	for _, name := range names {
		text := variants[name]
		matched := matchTerms(text, terms)
		score := len(matched)
		if focusSet[name] {
			score += focusMatchBonus
		}
		if score > best.score {
			best = bulletChoice{id: b.ID, text: text, focus: name, matched: matched, score: score}
		}
	}

	if best.score > 0 {
		return best
	}

	text := variants[defaultVariant]
	if text == "" {
		text = b.Text
	}
	matched := matchTerms(text, terms)
	return bulletChoice{id: b.ID, text: text, focus: defaultVariant, matched: matched, score: len(matched)}
}

// buildExperience selects bullet variants for every experience entry and
// orders bullets within each entry by descending match score. The sort is
// stable: equal scores preserve authored order. Selections are recorded in
// the returned map keyed by bullet ID.
func buildExperience(entries []types.ExperienceEntry, variantTables map[string]map[string]string, terms []string, focusSet map[string]bool) ([]types.RenderExperience, map[string]string) {
	selections := make(map[string]string)
	rendered := make([]types.RenderExperience, 0, len(entries))

	for _, entry := range entries {
		choices := make([]bulletChoice, 0, len(entry.Bullets))
		for _, b := range entry.Bullets {
			choice := selectVariant(b, variantTables[b.ID], terms, focusSet)
			selections[b.ID] = choice.focus
			choices = append(choices, choice)
		}

		sort.SliceStable(choices, func(i, j int) bool {
			return choices[i].score > choices[j].score
		})

		bullets := make([]types.RenderBullet, 0, len(choices))
		for _, c := range choices {
			bullets = append(bullets, types.RenderBullet{
				ID:           c.id,
				Text:         c.text,
				Focus:        c.focus,
				MatchedTerms: c.matched,
			})
		}

		rendered = append(rendered, types.RenderExperience{
			ID:        entry.ID,
			Company:   entry.Company,
			Role:      entry.Role,
			Location:  entry.Location,
			StartDate: entry.StartDate,
			EndDate:   entry.EndDate,
			Bullets:   bullets,
		})
	}

	return rendered, selections
}
