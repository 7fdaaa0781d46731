package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacobdsantos/resume-tailor/internal/schema"
	"github.com/jacobdsantos/resume-tailor/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a master resume file",
	Long:  "Validates a master resume JSON file against the document schema and the engine's semantic invariants, reporting every violation at once.",
	RunE:  runValidate,
}

var validateMasterPath string

func init() {
	validateCmd.Flags().StringVarP(&validateMasterPath, "master", "m", "", "Path to master resume JSON (required)")
	_ = validateCmd.MarkFlagRequired("master")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	_, err := loadMaster(validateMasterPath)
	if err == nil {
		fmt.Fprintf(os.Stdout, "%s is valid\n", validateMasterPath)
		return nil
	}

	var docErr *schemas.ValidationError
	if errors.As(err, &docErr) {
		fmt.Fprintf(os.Stdout, "%s failed document validation:\n", validateMasterPath)
		for _, fieldErr := range docErr.Errors {
			fmt.Fprintf(os.Stdout, "  %s: %s\n", fieldErr.Field, fieldErr.Message)
		}
		return fmt.Errorf("%d schema violations", len(docErr.Errors))
	}

	var semErr *schema.ValidationError
	if errors.As(err, &semErr) {
		fmt.Fprintf(os.Stdout, "%s failed semantic validation:\n", validateMasterPath)
		for _, v := range semErr.Violations {
			fmt.Fprintf(os.Stdout, "  %s: %s\n", v.Field, v.Message)
		}
		return fmt.Errorf("%d violations", len(semErr.Violations))
	}

	return err
}
