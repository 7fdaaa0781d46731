package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jacobdsantos/resume-tailor/internal/fetch"
	"github.com/jacobdsantos/resume-tailor/internal/schema"
	"github.com/jacobdsantos/resume-tailor/internal/schemas"
	"github.com/jacobdsantos/resume-tailor/internal/types"
)

// loadMaster reads a master resume file and validates it twice: the raw JSON
// against the document schema, then the typed structure against the engine's
// semantic invariants.
func loadMaster(path string) (*types.ResumeMaster, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read master resume: %w", err)
	}

	if err := schemas.ValidateMasterDocument(string(content)); err != nil {
		return nil, err
	}

	var master types.ResumeMaster
	if err := json.Unmarshal(content, &master); err != nil {
		return nil, fmt.Errorf("failed to parse master resume: %w", err)
	}

	if err := schema.ValidateMaster(&master); err != nil {
		return nil, err
	}
	return &master, nil
}

// loadJD resolves JD text from a file path or a URL. Exactly one must be set.
func loadJD(ctx context.Context, jdFile, jdURL string) (string, error) {
	switch {
	case jdFile == "" && jdURL == "":
		return "", fmt.Errorf("either --jd or --jd-url must be provided")
	case jdFile != "" && jdURL != "":
		return "", fmt.Errorf("--jd and --jd-url are mutually exclusive; provide only one")
	case jdFile != "":
		content, err := os.ReadFile(jdFile)
		if err != nil {
			return "", fmt.Errorf("failed to read JD file: %w", err)
		}
		text := strings.TrimSpace(string(content))
		if text == "" {
			return "", fmt.Errorf("JD file %s is empty", jdFile)
		}
		return text, nil
	default:
		result, err := fetch.JobPosting(ctx, jdURL, nil)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(result.Text) == "" {
			return "", fmt.Errorf("no text extracted from %s", jdURL)
		}
		return result.Text, nil
	}
}

// writeJSON marshals v and writes it to path, or to stdout when path is "-"
// or empty.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	data = append(data, '\n')

	if path == "" || path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
