// Package types provides type definitions for structured data used throughout the resume tailoring engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeMaster is the candidate's source-of-truth resume data.
// It is authored once, validated at load time, and treated as read-only
// for the lifetime of a generation session.
type ResumeMaster struct {
	Basics         Basics                       `json:"basics"`
	Summaries      []Summary                    `json:"summaries"`
	Skills         []SkillGroup                 `json:"skills"`
	Experience     []ExperienceEntry            `json:"experience"`
	Projects       []Project                    `json:"projects"`
	Education      []EducationEntry             `json:"education"`
	Certifications []Certification              `json:"certifications"`
	Publications   []Publication                `json:"publications"`
	BulletVariants map[string]map[string]string `json:"bullet_variants,omitempty"`
}

// Basics holds contact identity. Immutable during a session.
type Basics struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Links    []Link `json:"links,omitempty"`
}

// Link is a labeled URL (GitHub, LinkedIn, personal site).
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Summary is a candidate-authored professional summary tagged with keywords
// used for selection.
type Summary struct {
	Text     string   `json:"text"`
	Keywords []string `json:"keywords,omitempty"`
}

// SkillGroup is a named group of skill items. Groups and items are reordered
// per session; new slices are produced, the master is never mutated in place.
type SkillGroup struct {
	Group string   `json:"group"`
	Items []string `json:"items"`
}

// ExperienceEntry is a single job with an immutable bullet catalog.
// Bullet variants live in ResumeMaster.BulletVariants, keyed by bullet ID,
// not on the entry itself.
type ExperienceEntry struct {
	ID        string   `json:"id"`
	Company   string   `json:"company"`
	Role      string   `json:"role"`
	Location  string   `json:"location,omitempty"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date,omitempty"`
	Bullets   []Bullet `json:"bullets"`
}

// Bullet is a single achievement statement with a globally stable ID.
// The ID is the merge key for edits, variant lookup, and keyword-match
// annotation; it is never regenerated across runs.
type Bullet struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Keywords []string `json:"keywords,omitempty"`
	Metrics  []string `json:"metrics,omitempty"`
}

// Project is a portfolio project with a stable ID.
type Project struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Summary string   `json:"summary,omitempty"`
	URL     string   `json:"url,omitempty"`
	Tags    []string `json:"tags,omitempty"`
	Bullets []Bullet `json:"bullets"`
}

// EducationEntry is a degree or program.
type EducationEntry struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// Certification is a professional certification.
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

// Publication is a published article, paper, or talk.
type Publication struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Venue string `json:"venue,omitempty"`
	Date  string `json:"date,omitempty"`
	URL   string `json:"url,omitempty"`
}
