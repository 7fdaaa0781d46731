package types

// SectionType discriminates the section variants of a render model.
// The set is closed: template renderers switch over it exhaustively, and
// adding a new type is a breaking change every consumer must handle.
type SectionType string

// Section type constants. One per render model section variant.
const (
	SectionSummary        SectionType = "summary"
	SectionSkills         SectionType = "skills"
	SectionExperience     SectionType = "experience"
	SectionProjects       SectionType = "projects"
	SectionEducation      SectionType = "education"
	SectionCertifications SectionType = "certifications"
	SectionPublications   SectionType = "publications"
)

// ResumeRenderModel is the template-agnostic output consumed by presentation
// templates and export serializers. It contains no further business logic.
type ResumeRenderModel struct {
	Meta     RenderMeta   `json:"meta"`
	Header   RenderHeader `json:"header"`
	Sections []Section    `json:"sections"`
}

// RenderMeta carries generation metadata. JDHash is a deterministic
// fingerprint of the normalized job description text; callers compare hashes
// to detect whether a cached model is stale relative to a new JD.
type RenderMeta struct {
	GeneratedAt string `json:"generated_at"`
	JDHash      string `json:"jd_hash"`
	TargetRole  string `json:"target_role"`
	MaxPages    int    `json:"max_pages"`
}

// RenderHeader is the resolved contact block.
type RenderHeader struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Links    []Link `json:"links,omitempty"`
}

// Section is a tagged union: Type names the variant and exactly one payload
// field is non-nil. Kept as a struct with optional payloads so the model
// stays plainly JSON-serializable.
type Section struct {
	Type           SectionType            `json:"type"`
	Summary        *SummarySection        `json:"summary,omitempty"`
	Skills         *SkillsSection         `json:"skills,omitempty"`
	Experience     *ExperienceSection     `json:"experience,omitempty"`
	Projects       *ProjectsSection       `json:"projects,omitempty"`
	Education      *EducationSection      `json:"education,omitempty"`
	Certifications *CertificationsSection `json:"certifications,omitempty"`
	Publications   *PublicationsSection   `json:"publications,omitempty"`
}

// SummarySection is the composed professional summary.
type SummarySection struct {
	Text string `json:"text"`
}

// SkillsSection holds skill groups in tailored order.
type SkillsSection struct {
	Groups []RenderSkillGroup `json:"groups"`
}

// RenderSkillGroup is one reordered skill group.
type RenderSkillGroup struct {
	Group string   `json:"group"`
	Items []string `json:"items"`
}

// ExperienceSection holds experience entries with selected bullet variants.
type ExperienceSection struct {
	Entries []RenderExperience `json:"entries"`
}

// RenderExperience is one job as it will be rendered.
type RenderExperience struct {
	ID        string         `json:"id"`
	Company   string         `json:"company"`
	Role      string         `json:"role"`
	Location  string         `json:"location,omitempty"`
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date,omitempty"`
	Bullets   []RenderBullet `json:"bullets"`
}

// RenderBullet is a bullet with its chosen variant text and keyword-match
// annotations. ID always refers back to the master bullet.
type RenderBullet struct {
	ID           string   `json:"id"`
	Text         string   `json:"text"`
	Focus        string   `json:"focus,omitempty"`
	MatchedTerms []string `json:"matched_terms,omitempty"`
}

// ProjectsSection holds ranked projects.
type ProjectsSection struct {
	Projects []RenderProject `json:"projects"`
}

// RenderProject is one project in rank order.
type RenderProject struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Summary string         `json:"summary,omitempty"`
	URL     string         `json:"url,omitempty"`
	Tags    []string       `json:"tags,omitempty"`
	Bullets []RenderBullet `json:"bullets"`
}

// EducationSection holds education entries in authored order.
type EducationSection struct {
	Entries []EducationEntry `json:"entries"`
}

// CertificationsSection holds certifications in authored order.
type CertificationsSection struct {
	Certifications []Certification `json:"certifications"`
}

// PublicationsSection holds ranked publications.
type PublicationsSection struct {
	Publications []Publication `json:"publications"`
}
