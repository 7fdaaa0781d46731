package schema

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jacobdsantos/resume-tailor/internal/types"
)

var validate = validator.New()

// ValidateMaster checks a ResumeMaster against the engine's structural
// invariants: non-empty identity and ID fields, valid email and URL formats,
// and at least one bullet per experience and project entry. All violations
// are collected and returned together as a *ValidationError; a nil return
// means the document is safe to hand to the generator, which does not
// re-check.
func ValidateMaster(m *types.ResumeMaster) error {
	var violations []Violation
	add := func(field, format string, args ...any) {
		violations = append(violations, Violation{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if m == nil {
		return &ValidationError{Violations: []Violation{{Field: "(root)", Message: "document is empty"}}}
	}

	if m.Basics.Name == "" {
		add("basics.name", "is required")
	}
	if m.Basics.Label == "" {
		add("basics.label", "is required")
	}
	if m.Basics.Email == "" {
		add("basics.email", "is required")
	} else if validate.Var(m.Basics.Email, "email") != nil {
		add("basics.email", "%q is not a valid email address", m.Basics.Email)
	}
	for i, link := range m.Basics.Links {
		if link.Label == "" {
			add(fmt.Sprintf("basics.links[%d].label", i), "is required")
		}
		if validate.Var(link.URL, "required,url") != nil {
			add(fmt.Sprintf("basics.links[%d].url", i), "%q is not a valid URL", link.URL)
		}
	}

	for i, s := range m.Summaries {
		if s.Text == "" {
			add(fmt.Sprintf("summaries[%d].text", i), "is required")
		}
	}

	for i, g := range m.Skills {
		if g.Group == "" {
			add(fmt.Sprintf("skills[%d].group", i), "is required")
		}
		if len(g.Items) == 0 {
			add(fmt.Sprintf("skills[%d].items", i), "must contain at least one item")
		}
	}

	seenIDs := make(map[string]string)
	checkID := func(field, id string) {
		if id == "" {
			add(field, "id is required")
			return
		}
		if prev, dup := seenIDs[id]; dup {
			add(field, "id %q already used by %s", id, prev)
			return
		}
		seenIDs[id] = field
	}

	for i, exp := range m.Experience {
		prefix := fmt.Sprintf("experience[%d]", i)
		checkID(prefix+".id", exp.ID)
		if exp.Company == "" {
			add(prefix+".company", "is required")
		}
		if exp.Role == "" {
			add(prefix+".role", "is required")
		}
		// An experience entry with no bullets renders as an empty section
		// block, so it is a hard failure rather than a warning.
		if len(exp.Bullets) == 0 {
			add(prefix+".bullets", "must contain at least one bullet")
		}
		for j, b := range exp.Bullets {
			validateBullet(fmt.Sprintf("%s.bullets[%d]", prefix, j), b, checkID, add)
		}
	}

	for i, p := range m.Projects {
		prefix := fmt.Sprintf("projects[%d]", i)
		checkID(prefix+".id", p.ID)
		if p.Name == "" {
			add(prefix+".name", "is required")
		}
		if p.URL != "" && validate.Var(p.URL, "url") != nil {
			add(prefix+".url", "%q is not a valid URL", p.URL)
		}
		if len(p.Bullets) == 0 {
			add(prefix+".bullets", "must contain at least one bullet")
		}
		for j, b := range p.Bullets {
			validateBullet(fmt.Sprintf("%s.bullets[%d]", prefix, j), b, checkID, add)
		}
	}

	for i, e := range m.Education {
		prefix := fmt.Sprintf("education[%d]", i)
		checkID(prefix+".id", e.ID)
		if e.Institution == "" {
			add(prefix+".institution", "is required")
		}
		if e.Degree == "" {
			add(prefix+".degree", "is required")
		}
	}

	for i, c := range m.Certifications {
		prefix := fmt.Sprintf("certifications[%d]", i)
		checkID(prefix+".id", c.ID)
		if c.Name == "" {
			add(prefix+".name", "is required")
		}
	}

	for i, p := range m.Publications {
		prefix := fmt.Sprintf("publications[%d]", i)
		checkID(prefix+".id", p.ID)
		if p.Title == "" {
			add(prefix+".title", "is required")
		}
		if p.URL != "" && validate.Var(p.URL, "url") != nil {
			add(prefix+".url", "%q is not a valid URL", p.URL)
		}
	}

	for bulletID := range m.BulletVariants {
		if _, known := seenIDs[bulletID]; !known {
			add("bullet_variants."+bulletID, "refers to an unknown bullet id")
		}
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func validateBullet(prefix string, b types.Bullet, checkID func(string, string), add func(string, string, ...any)) {
	checkID(prefix+".id", b.ID)
	if b.Text == "" {
		add(prefix+".text", "is required")
	}
}
