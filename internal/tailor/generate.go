package tailor

import (
	"strings"
	"time"

	"github.com/jacobdsantos/resume-tailor/internal/ats"
	"github.com/jacobdsantos/resume-tailor/internal/keywords"
	"github.com/jacobdsantos/resume-tailor/internal/parsing"
	"github.com/jacobdsantos/resume-tailor/internal/types"
)

// Generate runs the full tailoring pipeline: keyword extraction, focus
// detection, summary composition, bullet variant selection and ordering,
// skill and project reranking, coverage accounting, page trimming, and
// section assembly. It assumes an already-validated master, never returns
// an error, and degrades to empty results on degenerate input: a user
// typing into an empty text box must still get a renderable model.
//
// For fixed inputs the output is identical across calls except for
// Meta.GeneratedAt.
func Generate(master *types.ResumeMaster, jdText string, opts types.GenerateOptions) *types.GenerateOutput {
	extracted := keywords.Extract(jdText)
	terms := make([]string, 0, len(extracted))
	termSet := make(map[string]bool, len(extracted))
	for _, kw := range extracted {
		terms = append(terms, kw.Term)
		termSet[kw.Term] = true
	}

	jdLower := strings.ToLower(jdText)
	focusAreas := DetectFocusAreas(termSet, jdLower)
	focusSet := make(map[string]bool, len(focusAreas))
	for _, f := range focusAreas {
		focusSet[f] = true
	}
	primaryFocus := ""
	if len(focusAreas) > 0 {
		primaryFocus = focusAreas[0]
	}

	summaryText := ComposeSummary(jdLower, primaryFocus)
	experiences, selections := buildExperience(master.Experience, master.BulletVariants, terms, focusSet)
	skillGroups := reorderSkills(master.Skills, terms)
	projects := rankProjects(master.Projects, terms, focusAreas)
	publications := rankPublications(master.Publications, terms)

	matched := coverageUnion(terms, summaryText, experiences, skillGroups, projects)
	missing := ats.FindMissing(terms, matched)
	score := ats.ComputeScore(matched, terms, extracted)

	if opts.MaxPages == 1 {
		experiences, projects, publications = applyPageBudget(experiences, projects, publications)
	}

	model := types.ResumeRenderModel{
		Meta: types.RenderMeta{
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			JDHash:      parsing.SimpleHash(parsing.Normalize(jdText)),
			TargetRole:  resolveTargetRole(opts, jdText, master.Basics.Label),
			MaxPages:    opts.MaxPages,
		},
		Header: types.RenderHeader{
			Name:     master.Basics.Name,
			Label:    resolveTargetRole(opts, jdText, master.Basics.Label),
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

// assembleSections builds the ordered section list, honoring the requested
// section types and omitting any section whose backing data is empty.
func assembleSections(include types.IncludeSections, summaryText string, skillGroups []types.RenderSkillGroup, experiences []types.RenderExperience, projects []types.RenderProject, education []types.EducationEntry, certifications []types.Certification, publications []types.Publication) []types.Section {
	sections := make([]types.Section, 0, 7)

	if include.Summary && summaryText != "" {
		sections = append(sections, types.Section{
			Type:    types.SectionSummary,
			Summary: &types.SummarySection{Text: summaryText},
		})
	}
	if include.Skills && len(skillGroups) > 0 {
		sections = append(sections, types.Section{
			Type:   types.SectionSkills,
			Skills: &types.SkillsSection{Groups: skillGroups},
		})
	}
	if include.Experience && len(experiences) > 0 {
		sections = append(sections, types.Section{
			Type:       types.SectionExperience,
			Experience: &types.ExperienceSection{Entries: experiences},
		})
	}
	if include.Projects && len(projects) > 0 {
		sections = append(sections, types.Section{
			Type:     types.SectionProjects,
			Projects: &types.ProjectsSection{Projects: projects},
		})
	}
	if include.Education && len(education) > 0 {
		sections = append(sections, types.Section{
			Type:      types.SectionEducation,
			Education: &types.EducationSection{Entries: education},
		})
	}
	if include.Certifications && len(certifications) > 0 {
		sections = append(sections, types.Section{
			Type:           types.SectionCertifications,
			Certifications: &types.CertificationsSection{Certifications: certifications},
		})
	}
	if include.Publications && len(publications) > 0 {
		sections = append(sections, types.Section{
			Type:         types.SectionPublications,
			Publications: &types.PublicationsSection{Publications: publications},
		})
	}

	return sections
}
