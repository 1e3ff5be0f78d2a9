package dto

import "github.com/lshigami/SkillCheck/internal/assessment"

type GenerateJobDescriptionRequest struct {
	JobTitle  string `json:"job_title" binding:"required,min=3"`
	Seniority string `json:"seniority,omitempty" binding:"omitempty,oneof=junior mid-level senior lead staff principal"`
}

type ExtractSkillsRequest struct {
	JobDescription string `json:"job_description" binding:"required,min=50"`
}

type AnalyzeProblemSolvingRequest struct {
	Answer          string `json:"answer" binding:"required,min=20"`
	JobRequirements string `json:"job_requirements" binding:"required,min=10"`
}

type AnalyzeCodeQualityRequest struct {
	CodeSnippet        string `json:"code_snippet" binding:"required,min=20"`
	Language           string `json:"language" binding:"required"`
	ProblemDescription string `json:"problem_description,omitempty"`
	JobRequirements    string `json:"job_requirements,omitempty"`
}

// NormalizeRequest runs the normalizer over a test without storing anything.
type NormalizeRequest struct {
	Test assessment.Test `json:"test"`
}

// GradeRequest grades a submission against the supplied test without storing anything.
type GradeRequest struct {
	Test       assessment.Test       `json:"test"`
	Submission assessment.Submission `json:"submission"`
}
