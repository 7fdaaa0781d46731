package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jacobdsantos/resume-tailor/internal/ats"
	"github.com/jacobdsantos/resume-tailor/internal/fetch"
	"github.com/jacobdsantos/resume-tailor/internal/keywords"
	"github.com/jacobdsantos/resume-tailor/internal/schema"
	"github.com/jacobdsantos/resume-tailor/internal/tailor"
	"github.com/jacobdsantos/resume-tailor/internal/types"
)

// GenerateRequest is the request body for /generate. The JD may be given
// inline or as a URL to fetch.
type GenerateRequest struct {
	Master  types.ResumeMaster     `json:"master"`
	JDText  string                 `json:"jd_text,omitempty"`
	JDURL   string                 `json:"jd_url,omitempty"`
	Options *types.GenerateOptions `json:"options,omitempty"`
}

// GenerateResponse is the response for /generate.
type GenerateResponse struct {
	RunID  string                `json:"run_id"`
	Output *types.GenerateOutput `json:"output"`
}

// ScoreRequest is the request body for /score: a finished resume text scored
// against a JD without running generation.
type ScoreRequest struct {
	ResumeText string `json:"resume_text"`
	JDText     string `json:"jd_text"`
}

// ScoreResponse is the response for /score.
type ScoreResponse struct {
	ATSScore        int      `json:"ats_score"`
	ATSGrade        string   `json:"ats_grade"`
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
}

// EditsRequest is the request body for /edits. The client sends back a prior
// generation output with its overrides; the server recomputes coverage.
type EditsRequest struct {
	Output        *types.GenerateOutput `json:"output"`
	JDText        string                `json:"jd_text"`
	EditedSummary *string               `json:"edited_summary,omitempty"`
	EditedBullets map[string]string     `json:"edited_bullets,omitempty"`
}

// IngestJobRequest is the request body for /ingest-job.
type IngestJobRequest struct {
	URL string `json:"url"`
}

// IngestJobResponse is the response for /ingest-job.
type IngestJobResponse struct {
	URL    string `json:"url"`
	JDText string `json:"jd_text"`
}

// handleGenerate validates the master, resolves the JD and runs a full
// generation.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := schema.ValidateMaster(&req.Master); err != nil {
		var validationErr *schema.ValidationError
		if errors.As(err, &validationErr) {
			s.jsonResponse(w, http.StatusUnprocessableEntity, map[string]any{
				"error":      "master validation failed",
				"violations": validationErr.Violations,
			})
			return
		}
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	jdText := req.JDText
	if jdText == "" && req.JDURL != "" {
		result, err := fetch.JobPosting(r.Context(), req.JDURL, nil)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, "Failed to fetch JD: "+err.Error())
			return
		}
		jdText = result.Text
	}
	if jdText == "" {
		s.errorResponse(w, http.StatusBadRequest, "Either jd_text or jd_url is required")
		return
	}

	opts := types.DefaultGenerateOptions()
	if req.Options != nil {
		opts = *req.Options
		if opts.MaxPages == 0 {
			opts.MaxPages = 1
		}
	}

	runID := uuid.New().String()
	log.Printf("Generate run %s (jd length %d)", runID, len(jdText))

	output := tailor.Generate(&req.Master, jdText, opts)
	s.jsonResponse(w, http.StatusOK, GenerateResponse{RunID: runID, Output: output})
}

// handleScore scores arbitrary resume text against a JD.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.ResumeText == "" || req.JDText == "" {
		s.errorResponse(w, http.StatusBadRequest, "resume_text and jd_text are required")
		return
	}

	extracted := keywords.Extract(req.JDText)
	terms := make([]string, 0, len(extracted))
	for _, kw := range extracted {
		terms = append(terms, kw.Term)
	}

	resumeLower := strings.ToLower(req.ResumeText)
	matched := make([]string, 0, len(terms))
	for _, term := range terms {
		if strings.Contains(resumeLower, term) {
			matched = append(matched, term)
		}
	}

	score := ats.ComputeScore(matched, terms, extracted)
	s.jsonResponse(w, http.StatusOK, ScoreResponse{
		ATSScore:        score,
		ATSGrade:        ats.Grade(score),
		MatchedKeywords: matched,
		MissingKeywords: ats.FindMissing(terms, matched),
	})
}

// handleEdits applies text overrides to a prior output and recomputes
// keyword coverage.
func (s *Server) handleEdits(w http.ResponseWriter, r *http.Request) {
	var req EditsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Output == nil {
		s.errorResponse(w, http.StatusBadRequest, "output is required")
		return
	}
	if req.JDText == "" {
		s.errorResponse(w, http.StatusBadRequest, "jd_text is required")
		return
	}

	edited := tailor.ApplyEdits(req.Output, req.EditedSummary, req.EditedBullets, req.JDText)
	s.jsonResponse(w, http.StatusOK, edited)
}

// handleIngestJob fetches a posting URL and returns the extracted JD text.
func (s *Server) handleIngestJob(w http.ResponseWriter, r *http.Request) {
	var req IngestJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.URL == "" {
		s.errorResponse(w, http.StatusBadRequest, "url is required")
		return
	}

	result, err := fetch.JobPosting(r.Context(), req.URL, nil)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Failed to fetch posting: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, IngestJobResponse{URL: req.URL, JDText: result.Text})
}
