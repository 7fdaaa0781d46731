package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jacobdsantos/resume-tailor/internal/ats"
	"github.com/jacobdsantos/resume-tailor/internal/keywords"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score resume text against a job description",
	Long:  "Extracts weighted keywords from the JD and reports the ATS coverage score, grade, and matched and missing keywords for a finished resume text.",
	RunE:  runScore,
}

var (
	scoreResumePath string
	scoreJDFile     string
	scoreJDURL      string
	scoreOutPath    string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResumePath, "resume", "r", "", "Path to resume text file (required)")
	scoreCmd.Flags().StringVarP(&scoreJDFile, "jd", "j", "", "Path to job description text file")
	scoreCmd.Flags().StringVar(&scoreJDURL, "jd-url", "", "URL to fetch the job description from")
	scoreCmd.Flags().StringVarP(&scoreOutPath, "out", "o", "-", "Output path for the score report JSON (- for stdout)")

	_ = scoreCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(scoreCmd)
}

// scoreReport is the JSON output of the score command.
type scoreReport struct {
	Resume          string   `json:"resume"`
	ATSScore        int      `json:"ats_score"`
	ATSGrade        string   `json:"ats_grade"`
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
}

func runScore(cmd *cobra.Command, _ []string) error {
	jdText, err := loadJD(cmd.Context(), scoreJDFile, scoreJDURL)
	if err != nil {
		return err
	}

	report, err := scoreResumeFile(scoreResumePath, jdText)
	if err != nil {
		return err
	}
	return writeJSON(scoreOutPath, report)
}

// scoreResumeFile scores one resume text file against already-resolved JD
// text. Shared with the batch-score command.
func scoreResumeFile(resumePath, jdText string) (*scoreReport, error) {
	content, err := os.ReadFile(resumePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume: %w", err)
	}

	extracted := keywords.Extract(jdText)
	terms := make([]string, 0, len(extracted))
	for _, kw := range extracted {
		terms = append(terms, kw.Term)
	}

	resumeLower := strings.ToLower(string(content))
	matched := make([]string, 0, len(terms))
	for _, term := range terms {
		if strings.Contains(resumeLower, term) {
			matched = append(matched, term)
		}
	}

	score := ats.ComputeScore(matched, terms, extracted)
	return &scoreReport{
		Resume:          resumePath,
		ATSScore:        score,
		ATSGrade:        ats.Grade(score),
		MatchedKeywords: matched,
		MissingKeywords: ats.FindMissing(terms, matched),
	}, nil
}
