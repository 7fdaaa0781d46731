package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var batchScoreCmd = &cobra.Command{
	Use:   "batch-score [resume files...]",
	Short: "Score multiple resume files against one job description",
	Long:  "Scores every given resume text file against the same JD concurrently and reports them sorted by descending ATS score.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatchScore,
}

var (
	batchJDFile      string
	batchJDURL       string
	batchOutPath     string
	batchConcurrency int
)

func init() {
	batchScoreCmd.Flags().StringVarP(&batchJDFile, "jd", "j", "", "Path to job description text file")
	batchScoreCmd.Flags().StringVar(&batchJDURL, "jd-url", "", "URL to fetch the job description from")
	batchScoreCmd.Flags().StringVarP(&batchOutPath, "out", "o", "-", "Output path for the report JSON (- for stdout)")
	batchScoreCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Maximum resumes scored in parallel")

	rootCmd.AddCommand(batchScoreCmd)
}

func runBatchScore(cmd *cobra.Command, args []string) error {
	if batchConcurrency < 1 {
		return fmt.Errorf("--concurrency must be at least 1")
	}

	jdText, err := loadJD(cmd.Context(), batchJDFile, batchJDURL)
	if err != nil {
		return err
	}

	reports := make([]*scoreReport, len(args))

	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(batchConcurrency)
	for i, path := range args {
		g.Go(func() error {
			report, err := scoreResumeFile(path, jdText)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].ATSScore > reports[j].ATSScore
	})

	return writeJSON(batchOutPath, reports)
}
