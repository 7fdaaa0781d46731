package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacobdsantos/resume-tailor/internal/llm"
	"github.com/jacobdsantos/resume-tailor/internal/observability"
	"github.com/jacobdsantos/resume-tailor/internal/tailor"
	"github.com/jacobdsantos/resume-tailor/internal/types"
)

var aiGenerateCmd = &cobra.Command{
	Use:   "ai-generate",
	Short: "Generate a tailored resume using the AI rewriting provider",
	Long:  "Sends the master resume and JD to the AI provider for bullet rewriting and ordering, then assembles the same render model the local path produces. Falls back to local generation when the provider fails, unless --no-fallback is set.",
	RunE:  runAIGenerate,
}

var (
	aiMasterPath string
	aiJDFile     string
	aiJDURL      string
	aiOutPath    string
	aiMaxPages   int
	aiNoFallback bool
	aiAssess     bool
	aiVerbose    bool
)

func init() {
	aiGenerateCmd.Flags().StringVarP(&aiMasterPath, "master", "m", "", "Path to master resume JSON (required)")
	aiGenerateCmd.Flags().StringVarP(&aiJDFile, "jd", "j", "", "Path to job description text file")
	aiGenerateCmd.Flags().StringVar(&aiJDURL, "jd-url", "", "URL to fetch the job description from")
	aiGenerateCmd.Flags().StringVarP(&aiOutPath, "out", "o", "-", "Output path for the render model JSON (- for stdout)")
	aiGenerateCmd.Flags().IntVar(&aiMaxPages, "max-pages", 1, "Page budget (1 applies trimming, 2 renders everything)")
	aiGenerateCmd.Flags().BoolVar(&aiNoFallback, "no-fallback", false, "Fail instead of falling back to local generation on provider errors")
	aiGenerateCmd.Flags().BoolVar(&aiAssess, "assess", false, "Also request a short free-text fit assessment")
	aiGenerateCmd.Flags().BoolVarP(&aiVerbose, "verbose", "v", false, "Print the tailoring analysis to stderr")

	_ = aiGenerateCmd.MarkFlagRequired("master")

	rootCmd.AddCommand(aiGenerateCmd)
}

func runAIGenerate(cmd *cobra.Command, _ []string) error {
	master, err := loadMaster(aiMasterPath)
	if err != nil {
		return err
	}

	jdText, err := loadJD(cmd.Context(), aiJDFile, aiJDURL)
	if err != nil {
		return err
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	client, err := llm.NewClient(cmd.Context(), llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	opts := types.DefaultGenerateOptions()
	opts.MaxPages = aiMaxPages

	var output *types.GenerateOutput
	result, err := llm.GenerateTailored(cmd.Context(), client, master, jdText)
	if err != nil {
		if aiNoFallback {
			return err
		}
		fmt.Fprintf(os.Stderr, "AI generation failed (%v); falling back to local generation\n", err)
		output = tailor.Generate(master, jdText, opts)
	} else {
		output = tailor.BuildFromAI(master, result, jdText, opts)
	}

	if aiAssess {
		assessment, err := llm.AssessFit(cmd.Context(), client, jdText, output.Analysis.ATSScore, output.Analysis.MissingKeywords)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Fit assessment failed: %v\n", err)
		} else {
			output.AIAssessment = assessment
		}
	}

	if aiVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintExtractedKeywords(output.Analysis.ExtractedKeywords)
		printer.PrintAnalysis(&output.Analysis)
	}

	return writeJSON(aiOutPath, output)
}
