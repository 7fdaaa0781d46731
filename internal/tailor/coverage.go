package tailor

import (
	"strings"

	"github.com/jacobdsantos/resume-tailor/internal/types"
)

// coverageUnion walks the assembled summary, every surviving bullet text,
// all skill items, and all project text, and returns the JD terms contained
// anywhere in them, in extracted-keyword order. This union, not the
// per-bullet match counts, is what feeds the final ATS score.
func coverageUnion(terms []string, summaryText string, experiences []types.RenderExperience, skillGroups []types.RenderSkillGroup, projects []types.RenderProject) []string {
	var sb strings.Builder
	sb.WriteString(summaryText)
	sb.WriteByte(' ')

	for _, exp := range experiences {
		for _, b := range exp.Bullets {
			sb.WriteString(b.Text)
			sb.WriteByte(' ')
		}
	}
	for _, g := range skillGroups {
		for _, item := range g.Items {
			sb.WriteString(item)
			sb.WriteByte(' ')
		}
	}
	for _, p := range projects {
		sb.WriteString(p.Name)
		sb.WriteByte(' ')
		sb.WriteString(p.Summary)
		sb.WriteByte(' ')
		for _, tag := range p.Tags {
			sb.WriteString(tag)
			sb.WriteByte(' ')
		}
		for _, b := range p.Bullets {
			sb.WriteString(b.Text)
			sb.WriteByte(' ')
		}
	}

	haystack := strings.ToLower(sb.String())
	matched := make([]string, 0, len(terms))
	for _, term := range terms {
		if strings.Contains(haystack, term) {
			matched = append(matched, term)
		}
	}
	return matched
}
