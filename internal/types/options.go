package types

// IncludeSections enumerates which section types the caller wants in the
// render model. A requested section is still omitted when its backing data
// is empty.
type IncludeSections struct {
	Summary        bool `json:"summary"`
	Skills         bool `json:"skills"`
	Experience     bool `json:"experience"`
	Projects       bool `json:"projects"`
	Education      bool `json:"education"`
	Certifications bool `json:"certifications"`
	Publications   bool `json:"publications"`
}

// GenerateOptions configures a tailoring run.
type GenerateOptions struct {
	// MaxPages is 1 or 2. 1 enables page-budget trimming; 2 performs none.
	MaxPages int `json:"max_pages"`
	// IncludeSections selects the section types to emit.
	IncludeSections IncludeSections `json:"include_sections"`
	// TargetRole overrides the header label when non-empty.
	TargetRole string `json:"target_role,omitempty"`
}

// DefaultGenerateOptions returns a one-page configuration with every
// section enabled.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		MaxPages: 1,
		IncludeSections: IncludeSections{
			Summary:        true,
			Skills:         true,
			Experience:     true,
			Projects:       true,
			Education:      true,
			Certifications: true,
			Publications:   true,
		},
	}
}
