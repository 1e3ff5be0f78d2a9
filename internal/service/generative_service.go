package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/lshigami/SkillCheck/internal/assessment"
	"github.com/lshigami/SkillCheck/internal/dto"
	"github.com/lshigami/SkillCheck/internal/monitoring"
	"github.com/rs/zerolog/log"
)

const (
	minJobTitleLen        = 3
	minJobDescriptionLen  = 50
	minAnswerLen          = 20
	minJobRequirementsLen = 10
	minCodeSnippetLen     = 20
	minGeneratedJDLen     = 100
	defaultQuestionCount  = 5
	minQuestionCount      = 3
	maxQuestionCount      = 20
	maxCodeScore          = 10.0
)

// GenerativeService is the boundary to the hosted model. Every operation renders a
// fixed prompt, sends it once and decodes a JSON answer; it never retries.
type GenerativeService interface {
	GenerateJobDescription(ctx context.Context, req dto.GenerateJobDescriptionRequest) (*dto.JobDescriptionResponse, error)
	ExtractSkills(ctx context.Context, req dto.ExtractSkillsRequest) ([]assessment.Skill, error)
	// CreateTest returns a draft test; its ids and structure are not trusted and must
	// go through the normalizer before use.
	CreateTest(ctx context.Context, req dto.TestGenerateDTO) (assessment.Test, error)
	AnalyzeProblemSolving(ctx context.Context, req dto.AnalyzeProblemSolvingRequest) (*dto.ProblemSolvingAnalysis, error)
	AnalyzeCodeQuality(ctx context.Context, req dto.AnalyzeCodeQualityRequest) (*dto.CodeQualityAnalysis, error)
}

type generativeService struct {
	llm LLMProvider
}

func NewGenerativeService(llm LLMProvider) GenerativeService {
	return &generativeService{llm: llm}
}

func (s *generativeService) GenerateJobDescription(ctx context.Context, req dto.GenerateJobDescriptionRequest) (*dto.JobDescriptionResponse, error) {
	if err := requireMinLen("job title", req.JobTitle, minJobTitleLen); err != nil {
		return nil, err
	}
	var out dto.JobDescriptionResponse
	if err := s.call(ctx, "generate_job_description", jobDescriptionPrompt, req, &out); err != nil {
		return nil, err
	}
	out.JobDescription = strings.TrimSpace(out.JobDescription)
	if runeLen(out.JobDescription) < minGeneratedJDLen {
		return nil, s.invalidOutput("generate_job_description", "job description shorter than %d characters", minGeneratedJDLen)
	}
	return &out, nil
}

func (s *generativeService) ExtractSkills(ctx context.Context, req dto.ExtractSkillsRequest) ([]assessment.Skill, error) {
	if err := requireMinLen("job description", req.JobDescription, minJobDescriptionLen); err != nil {
		return nil, err
	}
	var out struct {
		ExtractedSkills []assessment.Skill `json:"extracted_skills"`
	}
	if err := s.call(ctx, "extract_skills", extractSkillsPrompt, req, &out); err != nil {
		return nil, err
	}
	return cleanSkills(out.ExtractedSkills), nil
}

func (s *generativeService) CreateTest(ctx context.Context, req dto.TestGenerateDTO) (assessment.Test, error) {
	if err := requireMinLen("job title", req.JobTitle, minJobTitleLen); err != nil {
		return assessment.Test{}, err
	}
	if err := requireMinLen("job description", req.JobDescription, minJobDescriptionLen); err != nil {
		return assessment.Test{}, err
	}
	if len(req.Skills) == 0 {
		return assessment.Test{}, fmt.Errorf("%w: cannot generate a test without extracted skills", ErrInvalidInput)
	}
	if req.NumberOfQuestions == 0 {
		req.NumberOfQuestions = defaultQuestionCount
	}
	if req.NumberOfQuestions < minQuestionCount || req.NumberOfQuestions > maxQuestionCount {
		return assessment.Test{}, fmt.Errorf("%w: number of questions must be between %d and %d", ErrInvalidInput, minQuestionCount, maxQuestionCount)
	}

	var out struct {
		TestTitle string                `json:"test_title"`
		Questions []assessment.Question `json:"questions"`
	}
	if err := s.call(ctx, "create_test", createTestPrompt, req, &out); err != nil {
		return assessment.Test{}, err
	}
	if len(out.Questions) == 0 {
		return assessment.Test{}, s.invalidOutput("create_test", "no questions generated")
	}

	title := strings.TrimSpace(out.TestTitle)
	if title == "" {
		title = req.JobTitle + " Skill Assessment"
	}
	return assessment.Test{
		Title:           title,
		Questions:       out.Questions,
		JobTitle:        req.JobTitle,
		JobRequirements: req.JobDescription,
		Seniority:       req.Seniority,
	}, nil
}

func (s *generativeService) AnalyzeProblemSolving(ctx context.Context, req dto.AnalyzeProblemSolvingRequest) (*dto.ProblemSolvingAnalysis, error) {
	if err := requireMinLen("answer", req.Answer, minAnswerLen); err != nil {
		return nil, err
	}
	if err := requireMinLen("job requirements", req.JobRequirements, minJobRequirementsLen); err != nil {
		return nil, err
	}
	var out dto.ProblemSolvingAnalysis
	if err := s.call(ctx, "analyze_problem_solving", problemSolvingPrompt, req, &out); err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.ProblemSolvingApproach) == "" || strings.TrimSpace(out.EfficiencyAssessment) == "" || strings.TrimSpace(out.AreasForImprovement) == "" {
		return nil, s.invalidOutput("analyze_problem_solving", "analysis is missing a section")
	}
	return &out, nil
}

func (s *generativeService) AnalyzeCodeQuality(ctx context.Context, req dto.AnalyzeCodeQualityRequest) (*dto.CodeQualityAnalysis, error) {
	if err := requireMinLen("code snippet", req.CodeSnippet, minCodeSnippetLen); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Language) == "" {
		return nil, fmt.Errorf("%w: programming language must be specified", ErrInvalidInput)
	}
	var out dto.CodeQualityAnalysis
	if err := s.call(ctx, "analyze_code_quality", codeQualityPrompt, req, &out); err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.OverallQualitySummary) == "" {
		return nil, s.invalidOutput("analyze_code_quality", "missing overall quality summary")
	}
	out.ReadabilityScore = clampScore(out.ReadabilityScore)
	out.MaintainabilityScore = clampScore(out.MaintainabilityScore)
	if out.SecurityVulnerabilities == nil {
		out.SecurityVulnerabilities = []string{}
	}
	if out.SuggestionsForImprovement == nil {
		out.SuggestionsForImprovement = []string{}
	}
	return &out, nil
}

// call renders the prompt, sends it and decodes the JSON reply into out.
func (s *generativeService) call(ctx context.Context, op string, tmpl *template.Template, data any, out any) error {
	var prompt bytes.Buffer
	if err := tmpl.Execute(&prompt, data); err != nil {
		return fmt.Errorf("render %s prompt: %w", op, err)
	}

	raw, err := s.llm.Generate(ctx, prompt.String())
	if err != nil {
		monitoring.LLMRequests.WithLabelValues(op, s.llm.Name(), "provider_error").Inc()
		log.Error().Err(err).Str("operation", op).Str("provider", s.llm.Name()).Msg("Generative model call failed")
		return fmt.Errorf("%s: %w", op, wrapCollaborator(err))
	}

	if err := json.Unmarshal([]byte(stripCodeFence(raw)), out); err != nil {
		log.Warn().Err(err).Str("operation", op).Str("raw", truncate(raw, 500)).Msg("Generative model returned undecodable JSON")
		return s.invalidOutput(op, "undecodable JSON: %v", err)
	}
	monitoring.LLMRequests.WithLabelValues(op, s.llm.Name(), "ok").Inc()
	return nil
}

func (s *generativeService) invalidOutput(op, format string, args ...any) error {
	monitoring.LLMRequests.WithLabelValues(op, s.llm.Name(), "invalid_output").Inc()
	return fmt.Errorf("%s: %w: %s", op, ErrCollaboratorFailure, fmt.Sprintf(format, args...))
}

func wrapCollaborator(err error) error {
	if errors.Is(err, ErrCollaboratorFailure) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrCollaboratorFailure, err)
}

// stripCodeFence removes a surrounding ```json ... ``` block some models add
// even when asked for bare JSON.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	return strings.TrimSpace(strings.TrimSuffix(s, "```"))
}

func cleanSkills(in []assessment.Skill) []assessment.Skill {
	out := make([]assessment.Skill, 0, len(in))
	for _, sk := range in {
		sk.Name = strings.TrimSpace(sk.Name)
		if sk.Name == "" {
			continue
		}
		if !sk.Category.Valid() {
			sk.Category = assessment.CategoryOther
		}
		if !sk.Importance.Valid() {
			sk.Importance = assessment.ImportanceImportant
		}
		out = append(out, sk)
	}
	return out
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > maxCodeScore {
		return maxCodeScore
	}
	return v
}

func requireMinLen(field, value string, minLen int) error {
	if runeLen(value) < minLen {
		return fmt.Errorf("%w: %s must be at least %d characters", ErrInvalidInput, field, minLen)
	}
	return nil
}

func runeLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
