package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jacobdsantos/resume-tailor/internal/types"
)

// GenerateTailored asks the provider to rewrite the master resume against a
// job description and returns the structured result. Bullet and entry IDs in
// the result must echo the master's stable IDs; the assembly step drops any
// it does not recognize.
func GenerateTailored(ctx context.Context, client Client, master *types.ResumeMaster, jdText string) (*types.AIGenerateResult, error) {
	prompt, err := buildTailorPrompt(master, jdText)
	if err != nil {
		return nil, err
	}

	raw, err := client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, err
	}

	return parseTailorResult(raw)
}

// AssessFit asks the provider for a short free-text read on how well the
// tailored resume covers the job description. Failures here are not fatal to
// generation; callers may ignore the error and omit the assessment.
func AssessFit(ctx context.Context, client Client, jdText string, score int, missing []string) (string, error) {
	var b strings.Builder
	b.WriteString("You are reviewing a tailored resume against a job description.\n")
	fmt.Fprintf(&b, "The keyword coverage score is %d out of 100.\n", score)
	if len(missing) > 0 {
		fmt.Fprintf(&b, "Keywords from the posting not yet covered: %s.\n", strings.Join(missing, ", "))
	}
	b.WriteString("In 2-3 sentences, assess the fit and suggest the single most impactful improvement.\n\n")
	b.WriteString("Job description:\n")
	b.WriteString(jdText)

	return client.GenerateContent(ctx, b.String(), TierLite)
}

// buildTailorPrompt serializes the master resume and JD into a single JSON
// rewrite instruction.
func buildTailorPrompt(master *types.ResumeMaster, jdText string) (string, error) {
	masterJSON, err := json.MarshalIndent(master, "", "  ")
	if err != nil {
		return "", &ParseError{Err: err}
	}

	var b strings.Builder
	b.WriteString("You are tailoring a resume to a job description.\n")
	b.WriteString("Rewrite bullet texts to emphasize what the posting asks for, without inventing facts.\n")
	b.WriteString("Keep every id field exactly as given; ids are stable keys, never renumber them.\n")
	b.WriteString("Return ONLY a JSON object with this shape:\n")
	b.WriteString(`{
  "summary": "one tailored professional summary",
  "target_role": "the role title this resume targets",
  "experience": [{"id": "...", "bullets": [{"id": "...", "text": "rewritten bullet"}]}],
  "skill_groups": [{"group": "...", "items": ["..."]}],
  "project_order": ["project ids, most relevant first"],
  "publication_order": ["publication ids, most relevant first"]
}`)
	b.WriteString("\n\nMaster resume:\n")
	b.Write(masterJSON)
	b.WriteString("\n\nJob description:\n")
	b.WriteString(jdText)
	return b.String(), nil
}

// parseTailorResult decodes the provider's JSON into an AIGenerateResult and
// checks the fields the assembly step depends on.
func parseTailorResult(raw string) (*types.AIGenerateResult, error) {
	cleaned := CleanJSONBlock(raw)

	var result types.AIGenerateResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, &ParseError{Raw: cleaned, Err: err}
	}

	var missing []string
	if result.Summary == "" {
		missing = append(missing, "summary")
	}
	if len(result.Experience) == 0 {
		missing = append(missing, "experience")
	}
	for i, exp := range result.Experience {
		if exp.ID == "" {
			missing = append(missing, fmt.Sprintf("experience[%d].id", i))
		}
		for j, b := range exp.Bullets {
			if b.ID == "" || b.Text == "" {
				missing = append(missing, fmt.Sprintf("experience[%d].bullets[%d]", i, j))
			}
		}
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	return &result, nil
}
