package types

// ExtractedKeyword is a job-description term with its weighted score.
// Derived and session-scoped; recomputed on every generation and never
// persisted back into the master.
type ExtractedKeyword struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}

// Analysis carries everything the matching pipeline learned about a JD
// alongside the render model it produced.
type Analysis struct {
	DetectedFocusAreas []string           `json:"detected_focus_areas"`
	ExtractedKeywords  []ExtractedKeyword `json:"extracted_keywords"`
	ATSScore           int                `json:"ats_score"`
	ATSGrade           string             `json:"ats_grade"`
	MatchedKeywords    []string           `json:"matched_keywords"`
	MissingKeywords    []string           `json:"missing_keywords"`
	BulletSelections   map[string]string  `json:"bullet_selections"`
}

// GenerateOutput is the result of one tailoring run. Outputs are never
// mutated in place: the edit overlay produces a new output each call, and
// every re-generation discards and replaces the previous one.
type GenerateOutput struct {
	RenderModel  ResumeRenderModel `json:"render_model"`
	Analysis     Analysis          `json:"analysis"`
	AIAssessment string            `json:"ai_assessment,omitempty"`
}
