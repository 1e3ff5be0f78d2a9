package dto

import "github.com/lshigami/SkillCheck/internal/assessment"

type JobDescriptionResponse struct {
	JobDescription string `json:"job_description"`
}

type ExtractSkillsResponse struct {
	ExtractedSkills []assessment.Skill `json:"extracted_skills"`
}

type ProblemSolvingAnalysis struct {
	ProblemSolvingApproach string `json:"problem_solving_approach"`
	EfficiencyAssessment   string `json:"efficiency_assessment"`
	AreasForImprovement    string `json:"areas_for_improvement"`
}

type CodeQualityAnalysis struct {
	FunctionalityAssessment   string   `json:"functionality_assessment"`
	ReadabilityScore          float64  `json:"readability_score"`
	MaintainabilityScore      float64  `json:"maintainability_score"`
	EfficiencyAssessment      string   `json:"efficiency_assessment"`
	BestPracticesAdherence    string   `json:"best_practices_adherence"`
	SecurityVulnerabilities   []string `json:"security_vulnerabilities"`
	SuggestionsForImprovement []string `json:"suggestions_for_improvement"`
	OverallQualitySummary     string   `json:"overall_quality_summary"`
}

// QuestionIssue describes one question rejected by the normalizer.
type QuestionIssue struct {
	Index      int    `json:"index"`
	QuestionID string `json:"question_id"`
	Reason     string `json:"reason"`
}

type NormalizeResponse struct {
	Test   assessment.Test `json:"test"`
	Issues []QuestionIssue `json:"issues,omitempty"`
}

type GradeResponse struct {
	assessment.Result
	Percentage int `json:"percentage"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}
