package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacobdsantos/resume-tailor/internal/observability"
	"github.com/jacobdsantos/resume-tailor/internal/tailor"
	"github.com/jacobdsantos/resume-tailor/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a tailored resume render model from a master resume and a JD",
	Long:  "Runs the full local tailoring pipeline: keyword extraction, focus detection, bullet variant selection, skill reordering, ATS scoring and page trimming. Output is a template-agnostic JSON render model with its analysis.",
	RunE:  runGenerate,
}

var (
	generateMasterPath string
	generateJDFile     string
	generateJDURL      string
	generateOutPath    string
	generateMaxPages   int
	generateRole       string
	generateSkip       []string
	generateVerbose    bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateMasterPath, "master", "m", "", "Path to master resume JSON (required)")
	generateCmd.Flags().StringVarP(&generateJDFile, "jd", "j", "", "Path to job description text file")
	generateCmd.Flags().StringVar(&generateJDURL, "jd-url", "", "URL to fetch the job description from")
	generateCmd.Flags().StringVarP(&generateOutPath, "out", "o", "-", "Output path for the render model JSON (- for stdout)")
	generateCmd.Flags().IntVar(&generateMaxPages, "max-pages", 1, "Page budget (1 applies trimming, 2 renders everything)")
	generateCmd.Flags().StringVar(&generateRole, "target-role", "", "Explicit target role for the resume header")
	generateCmd.Flags().StringSliceVar(&generateSkip, "skip-section", nil, "Sections to exclude (summary, skills, experience, projects, education, certifications, publications)")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print the tailoring analysis to stderr")

	_ = generateCmd.MarkFlagRequired("master")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	master, err := loadMaster(generateMasterPath)
	if err != nil {
		return err
	}

	jdText, err := loadJD(cmd.Context(), generateJDFile, generateJDURL)
	if err != nil {
		return err
	}

	opts := types.DefaultGenerateOptions()
	opts.MaxPages = generateMaxPages
	opts.TargetRole = generateRole
	if err := applySectionSkips(&opts.IncludeSections, generateSkip); err != nil {
		return err
	}

	output := tailor.Generate(master, jdText, opts)

	if generateVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintExtractedKeywords(output.Analysis.ExtractedKeywords)
		printer.PrintAnalysis(&output.Analysis)
		printer.PrintBulletSelections(output.Analysis.BulletSelections)
	}

	return writeJSON(generateOutPath, output)
}

// applySectionSkips clears include flags for each named section.
func applySectionSkips(include *types.IncludeSections, skips []string) error {
	for _, name := range skips {
		switch name {
		case "summary":
			include.Summary = false
		case "skills":
			include.Skills = false
		case "experience":
			include.Experience = false
		case "projects":
			include.Projects = false
		case "education":
			include.Education = false
		case "certifications":
			include.Certifications = false
		case "publications":
			include.Publications = false
		default:
			return fmt.Errorf("unknown section %q", name)
		}
	}
	return nil
}
