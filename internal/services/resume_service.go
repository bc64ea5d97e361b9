package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/hirestream/hirestream/internal/resume"
	"github.com/tmc/langchaingo/llms"
)

// resumeExtractionPrompt pins the exact output schema the profile merge
// expects. Missing fields come back as empty string/array, never invented.
const resumeExtractionPrompt = `
You are a resume parser: extract Name, Email, Phone, Location (if present), Summary, Skills (array),
Experience (array of objects with company, title, start, end, bullets), Education (array with degree, school, year),
Certifications (array), and optionally GitHub/Portfolio links.
Return output as EXACT JSON only, with keys: name, phone, location, bio, skills, year, branch, degree, college, department, address, dateOfBirth, rollNumber, cgpa, links.
If a field is missing, use an empty string or empty array. Dates should be YYYY or YYYY-MM format if available.

Resume Text:
%s

Return only JSON.
`

// ResumeService runs the one-shot ingestion pipeline: PDF text extraction,
// a single model call, fence stripping, JSON parse.
type ResumeService struct {
	Model llms.Model
}

func NewResumeService(model llms.Model) *ResumeService {
	return &ResumeService{Model: model}
}

// ParseResult is what the endpoint returns. When the model output is not
// valid JSON, OK is false and ModelText carries the raw output for
// caller-side debugging; that path is not an error.
type ParseResult struct {
	OK        bool
	Parsed    map[string]interface{}
	ModelText string
}

// Parse runs the pipeline over an uploaded PDF. Extraction and model-call
// failures are fatal to the request; an un-parseable model response is not.
func (s *ResumeService) Parse(ctx context.Context, fileData []byte) (*ParseResult, error) {
	text, err := resume.ExtractText(fileData)
	if err != nil {
		return nil, fmt.Errorf("extracting resume text: %w", err)
	}
	return s.ParseText(ctx, text)
}

// ParseText runs the model step of the pipeline over already-extracted text.
func (s *ResumeService) ParseText(ctx context.Context, text string) (*ParseResult, error) {
	prompt := fmt.Sprintf(resumeExtractionPrompt, text)
	modelText, err := llms.GenerateFromSinglePrompt(ctx, s.Model, prompt)
	if err != nil {
		return nil, fmt.Errorf("model call: %w", err)
	}

	cleaned := StripCodeFences(modelText)
	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return &ParseResult{OK: false, ModelText: modelText}, nil
	}
	return &ParseResult{OK: true, Parsed: parsed}, nil
}

var (
	leadingFence  = regexp.MustCompile("^\\s*```(?:json)?\\s*")
	trailingFence = regexp.MustCompile("\\s*```\\s*$")
)

// StripCodeFences removes a leading/trailing Markdown code fence the model
// sometimes wraps its JSON in.
func StripCodeFences(s string) string {
	s = leadingFence.ReplaceAllString(s, "")
	return trailingFence.ReplaceAllString(s, "")
}
