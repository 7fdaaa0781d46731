package tailor

import (
	"strings"
	"time"

	"github.com/jacobdsantos/resume-tailor/internal/ats"
	"github.com/jacobdsantos/resume-tailor/internal/keywords"
	"github.com/jacobdsantos/resume-tailor/internal/parsing"
	"github.com/jacobdsantos/resume-tailor/internal/types"
)

// aiVariant marks bullets whose text came from the AI provider.
const aiVariant = "ai"

// BuildFromAI assembles a render model from an external AI provider's
// structured result. It is a sibling of Generate, not a wrapper: bullet
// texts, summary and ordering come from the provider, but keyword coverage
// and ATS accounting run exactly as in the local path, so both paths
// produce structurally identical outputs.
//
// The result is trusted only by shape: unknown experience, bullet, project
// or publication IDs are ignored and the master's own content fills any gap.
func BuildFromAI(master *types.ResumeMaster, result *types.AIGenerateResult, jdText string, opts types.GenerateOptions) *types.GenerateOutput {
	extracted := keywords.Extract(jdText)
	terms := make([]string, 0, len(extracted))
	termSet := make(map[string]bool, len(extracted))
	for _, kw := range extracted {
		terms = append(terms, kw.Term)
		termSet[kw.Term] = true
	}

	jdLower := strings.ToLower(jdText)
	focusAreas := DetectFocusAreas(termSet, jdLower)

	summaryText := result.Summary
	if summaryText == "" {
		summaryText = SelectSummary(master.Summaries, termSet)
	}
	if summaryText == "" {
		primary := ""
		if len(focusAreas) > 0 {
			primary = focusAreas[0]
		}
		summaryText = ComposeSummary(jdLower, primary)
	}

	rewritten := make(map[string]string)
	for _, exp := range result.Experience {
		for _, b := range exp.Bullets {
			if b.ID != "" && b.Text != "" {
				rewritten[b.ID] = b.Text
			}
		}
	}

	selections := make(map[string]string)
	experiences := make([]types.RenderExperience, 0, len(master.Experience))
	for _, entry := range master.Experience {
		bullets := make([]types.RenderBullet, 0, len(entry.Bullets))
		for _, b := range entry.Bullets {
			text := b.Text
			focus := defaultVariant
			if aiText, ok := rewritten[b.ID]; ok {
				text = aiText
				focus = aiVariant
			}
			selections[b.ID] = focus
			bullets = append(bullets, types.RenderBullet{
				ID:           b.ID,
				Text:         text,
				Focus:        focus,
				MatchedTerms: matchTerms(text, terms),
			})
		}
		experiences = append(experiences, types.RenderExperience{
			ID:        entry.ID,
			Company:   entry.Company,
			Role:      entry.Role,
			Location:  entry.Location,
			StartDate: entry.StartDate,
			EndDate:   entry.EndDate,
			Bullets:   bullets,
		})
	}

	skillGroups := make([]types.RenderSkillGroup, 0, len(master.Skills))
	source := master.Skills
	if len(result.SkillGroups) > 0 {
		source = result.SkillGroups
	}
	for _, g := range source {
		skillGroups = append(skillGroups, types.RenderSkillGroup{
			Group: g.Group,
			Items: append([]string(nil), g.Items...),
		})
	}

	projects := orderProjects(master.Projects, result.ProjectOrder, terms)
	publications := orderPublications(master.Publications, result.PublicationOrder)

	matched := coverageUnion(terms, summaryText, experiences, skillGroups, projects)
	missing := ats.FindMissing(terms, matched)
	score := ats.ComputeScore(matched, terms, extracted)

	if opts.MaxPages == 1 {
		experiences, projects, publications = applyPageBudget(experiences, projects, publications)
	}

	targetRole := result.TargetRole
	if targetRole == "" {
		targetRole = resolveTargetRole(opts, jdText, master.Basics.Label)
	}

	model := types.ResumeRenderModel{
		Meta: types.RenderMeta{
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			JDHash:      parsing.SimpleHash(parsing.Normalize(jdText)),
			TargetRole:  targetRole,
			MaxPages:    opts.MaxPages,
		},
		Header: types.RenderHeader{
			Name:     master.Basics.Name,
			Label:    targetRole,
			Email:    master.Basics.Email,
			Phone:    master.Basics.Phone,
			Location: master.Basics.Location,
			Links:    master.Basics.Links,
		},
		Sections: assembleSections(opts.IncludeSections, summaryText, skillGroups, experiences, projects, master.Education, master.Certifications, publications),
	}

	return &types.GenerateOutput{
		RenderModel: model,
		Analysis: types.Analysis{
			DetectedFocusAreas: focusAreas,
			ExtractedKeywords:  extracted,
			ATSScore:           score,
			ATSGrade:           ats.Grade(score),
			MatchedKeywords:    matched,
			MissingKeywords:    missing,
			BulletSelections:   selections,
		},
	}
}

// orderProjects applies the provider's preferred ID order, appending any
// projects the provider did not mention in master order, and annotates
// bullets with matched terms.
func orderProjects(projects []types.Project, order []string, terms []string) []types.RenderProject {
	byID := make(map[string]types.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}

	ordered := make([]types.Project, 0, len(projects))
	used := make(map[string]bool, len(order))
	for _, id := range order {
		if p, ok := byID[id]; ok && !used[id] {
			ordered = append(ordered, p)
			used[id] = true
		}
	}
	for _, p := range projects {
		if !used[p.ID] {
			ordered = append(ordered, p)
		}
	}

	rendered := make([]types.RenderProject, 0, len(ordered))
	for _, p := range ordered {
		bullets := make([]types.RenderBullet, 0, len(p.Bullets))
		for _, b := range p.Bullets {
			bullets = append(bullets, types.RenderBullet{
				ID:           b.ID,
				Text:         b.Text,
				MatchedTerms: matchTerms(b.Text, terms),
			})
		}
		rendered = append(rendered, types.RenderProject{
			ID:      p.ID,
			Name:    p.Name,
			Summary: p.Summary,
			URL:     p.URL,
			Tags:    p.Tags,
			Bullets: bullets,
		})
	}
	return rendered
}

// orderPublications applies the provider's preferred ID order, appending
// unmentioned publications in master order.
func orderPublications(pubs []types.Publication, order []string) []types.Publication {
	byID := make(map[string]types.Publication, len(pubs))
	for _, p := range pubs {
		byID[p.ID] = p
	}

	ordered := make([]types.Publication, 0, len(pubs))
	used := make(map[string]bool, len(order))
	for _, id := range order {
		if p, ok := byID[id]; ok && !used[id] {
			ordered = append(ordered, p)
			used[id] = true
		}
	}
	for _, p := range pubs {
		if !used[p.ID] {
			ordered = append(ordered, p)
		}
	}
	return ordered
}
