package types

// AIGenerateResult is the structured output of the external AI rewriting
// provider. The engine consumes this exact shape; prompt construction and
// transport belong to the provider client, not to the assembly step.
type AIGenerateResult struct {
	Summary          string         `json:"summary"`
	TargetRole       string         `json:"target_role"`
	Experience       []AIExperience `json:"experience"`
	SkillGroups      []SkillGroup   `json:"skill_groups"`
	ProjectOrder     []string       `json:"project_order"`
	PublicationOrder []string       `json:"publication_order"`
}

// AIExperience maps rewritten bullets back onto a master experience entry
// by stable ID.
type AIExperience struct {
	ID      string     `json:"id"`
	Bullets []AIBullet `json:"bullets"`
}

// AIBullet is one rewritten bullet, keyed by the master bullet ID.
type AIBullet struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
