package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jacobdsantos/resume-tailor/internal/fetch"
)

var ingestJobCmd = &cobra.Command{
	Use:   "ingest-job",
	Short: "Fetch a job posting URL and save its description text",
	Long:  "Fetches a job posting page, strips navigation and page chrome, and writes the extracted description text for use with generate or score.",
	RunE:  runIngestJob,
}

var (
	ingestURL     string
	ingestOutPath string
)

func init() {
	ingestJobCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "URL to fetch the job posting from (required)")
	ingestJobCmd.Flags().StringVarP(&ingestOutPath, "out", "o", "", "Output path for the JD text (default: stdout)")

	_ = ingestJobCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(ingestJobCmd)
}

func runIngestJob(cmd *cobra.Command, _ []string) error {
	result, err := fetch.JobPosting(cmd.Context(), ingestURL, nil)
	if err != nil {
		return err
	}

	if ingestOutPath == "" {
		fmt.Fprintln(os.Stdout, result.Text)
		return nil
	}

	if dir := filepath.Dir(ingestOutPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(ingestOutPath, []byte(result.Text+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Saved job description to %s\n", ingestOutPath)
	return nil
}
