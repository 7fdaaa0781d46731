package tailor

import (
	"sort"
	"strings"

	"github.com/jacobdsantos/resume-tailor/internal/types"
)

// skillItemScore scores one skill item against the JD terms: +2 for an exact
// lowercase match, +1 for substring containment in either direction, 0
// otherwise.
func skillItemScore(item string, terms []string) int {
	lower := strings.ToLower(item)
	best := 0
	for _, term := range terms {
		switch {
		case lower == term:
			return 2
		case strings.Contains(lower, term) || strings.Contains(term, lower):
			best = 1
		}
	}
	return best
}

// reorderSkills produces new skill groups with items sorted by descending JD
// relevance (ties preserve authored order) and groups sorted by their summed
// item score. The master's slices are never touched.
func reorderSkills(groups []types.SkillGroup, terms []string) []types.RenderSkillGroup {
	type scoredGroup struct {
		group types.RenderSkillGroup
		score int
	}

	scored := make([]scoredGroup, 0, len(groups))
	for _, g := range groups {
		items := make([]string, len(g.Items))
		copy(items, g.Items)

		itemScores := make(map[string]int, len(items))
		total := 0
		for _, item := range items {
			s := skillItemScore(item, terms)
			itemScores[item] = s
			total += s
		}

		sort.SliceStable(items, func(i, j int) bool {
			return itemScores[items[i]] > itemScores[items[j]]
		})

		scored = append(scored, scoredGroup{
			group: types.RenderSkillGroup{Group: g.Group, Items: items},
			score: total,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	result := make([]types.RenderSkillGroup, 0, len(scored))
	for _, sg := range scored {
		result = append(result, sg.group)
	}
	return result
}
