package tailor

import (
	"github.com/jacobdsantos/resume-tailor/internal/ats"
	"github.com/jacobdsantos/resume-tailor/internal/keywords"
	"github.com/jacobdsantos/resume-tailor/internal/types"
)

// ApplyEdits overlays user text overrides on a prior generation output and
// returns a new output with keyword coverage and the ATS score fully
// recomputed from the edited text, so edits move the score live. The input
// output is never mutated. A call with no overrides at all returns the
// original output unchanged: absent an override, no edit occurs.
//
// Coverage is recomputed from the rendered sections as they stand, which is
// the text the reader actually sees. Generate scores the selection before
// any one-page trimming, so when trimming dropped a bullet that uniquely
// carried a term, the recomputed score reflects the surviving text and can
// sit below the original even for a no-gain edit.
func ApplyEdits(output *types.GenerateOutput, editedSummary *string, editedBullets map[string]string, jdText string) *types.GenerateOutput {
	if editedSummary == nil && len(editedBullets) == 0 {
		return output
	}

	extracted := keywords.Extract(jdText)
	terms := make([]string, 0, len(extracted))
	for _, kw := range extracted {
		terms = append(terms, kw.Term)
	}

	next := cloneOutput(output)

	summaryText := ""
	var skillGroups []types.RenderSkillGroup
	var experiences []types.RenderExperience
	var projects []types.RenderProject

	for i := range next.RenderModel.Sections {
		section := &next.RenderModel.Sections[i]
		switch section.Type {
		case types.SectionSummary:
			if editedSummary != nil {
				section.Summary.Text = *editedSummary
			}
			summaryText = section.Summary.Text
		case types.SectionSkills:
			skillGroups = section.Skills.Groups
		case types.SectionExperience:
			for j := range section.Experience.Entries {
				entry := &section.Experience.Entries[j]
				for k := range entry.Bullets {
					b := &entry.Bullets[k]
					if edited, ok := editedBullets[b.ID]; ok {
						b.Text = edited
						b.MatchedTerms = matchTerms(edited, terms)
					}
				}
			}
			experiences = section.Experience.Entries
		case types.SectionProjects:
			projects = section.Projects.Projects
		case types.SectionEducation, types.SectionCertifications, types.SectionPublications:
			// no editable text
		}
	}

	matched := coverageUnion(terms, summaryText, experiences, skillGroups, projects)
	score := ats.ComputeScore(matched, terms, extracted)

	next.Analysis.ExtractedKeywords = extracted
	next.Analysis.MatchedKeywords = matched
	next.Analysis.MissingKeywords = ats.FindMissing(terms, matched)
	next.Analysis.ATSScore = score
	next.Analysis.ATSGrade = ats.Grade(score)

	return next
}

// cloneOutput deep-copies a generation output so overlays never alias the
// original's slices or section payloads.
func cloneOutput(output *types.GenerateOutput) *types.GenerateOutput {
	next := *output

	next.RenderModel.Sections = make([]types.Section, len(output.RenderModel.Sections))
	for i, section := range output.RenderModel.Sections {
		next.RenderModel.Sections[i] = cloneSection(section)
	}

	next.Analysis.BulletSelections = make(map[string]string, len(output.Analysis.BulletSelections))
	for id, focus := range output.Analysis.BulletSelections {
		next.Analysis.BulletSelections[id] = focus
	}
	next.Analysis.MatchedKeywords = append([]string(nil), output.Analysis.MatchedKeywords...)
	next.Analysis.MissingKeywords = append([]string(nil), output.Analysis.MissingKeywords...)
	next.Analysis.DetectedFocusAreas = append([]string(nil), output.Analysis.DetectedFocusAreas...)
	next.Analysis.ExtractedKeywords = append([]types.ExtractedKeyword(nil), output.Analysis.ExtractedKeywords...)

	return &next
}

func cloneSection(section types.Section) types.Section {
	cloned := types.Section{Type: section.Type}

	switch section.Type {
	case types.SectionSummary:
		s := *section.Summary
		cloned.Summary = &s
	case types.SectionSkills:
		groups := make([]types.RenderSkillGroup, len(section.Skills.Groups))
		for i, g := range section.Skills.Groups {
			groups[i] = types.RenderSkillGroup{Group: g.Group, Items: append([]string(nil), g.Items...)}
		}
		cloned.Skills = &types.SkillsSection{Groups: groups}
	case types.SectionExperience:
		entries := make([]types.RenderExperience, len(section.Experience.Entries))
		for i, e := range section.Experience.Entries {
			entries[i] = e
			entries[i].Bullets = cloneBullets(e.Bullets)
		}
		cloned.Experience = &types.ExperienceSection{Entries: entries}
	case types.SectionProjects:
		projects := make([]types.RenderProject, len(section.Projects.Projects))
		for i, p := range section.Projects.Projects {
			projects[i] = p
			projects[i].Tags = append([]string(nil), p.Tags...)
			projects[i].Bullets = cloneBullets(p.Bullets)
		}
		cloned.Projects = &types.ProjectsSection{Projects: projects}
	case types.SectionEducation:
		s := types.EducationSection{Entries: append([]types.EducationEntry(nil), section.Education.Entries...)}
		cloned.Education = &s
	case types.SectionCertifications:
		s := types.CertificationsSection{Certifications: append([]types.Certification(nil), section.Certifications.Certifications...)}
		cloned.Certifications = &s
	case types.SectionPublications:
		s := types.PublicationsSection{Publications: append([]types.Publication(nil), section.Publications.Publications...)}
		cloned.Publications = &s
	}

	return cloned
}

func cloneBullets(bullets []types.RenderBullet) []types.RenderBullet {
	cloned := make([]types.RenderBullet, len(bullets))
	for i, b := range bullets {
		cloned[i] = b
		cloned[i].MatchedTerms = append([]string(nil), b.MatchedTerms...)
	}
	return cloned
}
