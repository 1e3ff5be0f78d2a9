package dto

// OptionCreateDTO is one answer option of an authored multiple-choice question.
type OptionCreateDTO struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionCreateDTO is used within TestCreateDTO for admin test creation.
// Ids are never accepted from the client; they are assigned from position.
type QuestionCreateDTO struct {
	Type          string            `json:"type" binding:"required,oneof=multiple-choice free-form coding-challenge"`
	Text          string            `json:"text" binding:"required"`
	Options       []OptionCreateDTO `json:"options" binding:"omitempty,dive"`
	SkillCategory string            `json:"skill_category,omitempty"`
	Difficulty    string            `json:"difficulty,omitempty" binding:"omitempty,oneof=easy medium hard"`
	Explanation   string            `json:"explanation,omitempty"`
	Language      string            `json:"language,omitempty"`
	StarterCode   string            `json:"starter_code,omitempty"`
	Solution      string            `json:"solution,omitempty"`
}

// TestCreateDTO is for admin to create a new test with all its questions.
type TestCreateDTO struct {
	Title           string              `json:"title" binding:"required"`
	JobTitle        string              `json:"job_title,omitempty"`
	JobRequirements string              `json:"job_requirements,omitempty"`
	Seniority       string              `json:"seniority,omitempty" binding:"omitempty,oneof=junior mid-level senior lead"`
	Questions       []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

type SkillDTO struct {
	Name       string `json:"name" binding:"required"`
	Category   string `json:"category,omitempty"`
	Importance string `json:"importance,omitempty"`
	Context    string `json:"context,omitempty"`
}

// TestGenerateDTO asks the generative service for a draft test built from a job
// description and its extracted skills.
type TestGenerateDTO struct {
	JobTitle          string     `json:"job_title" binding:"required,min=3"`
	JobDescription    string     `json:"job_description" binding:"required,min=50"`
	Skills            []SkillDTO `json:"skills" binding:"required,min=1,dive"`
	Seniority         string     `json:"seniority" binding:"required,oneof=junior mid-level senior lead"`
	NumberOfQuestions int        `json:"number_of_questions" binding:"omitempty,min=3,max=20"`
	AssessmentFocus   []string   `json:"assessment_focus,omitempty" binding:"omitempty,dive,oneof=technical problem-solving domain-knowledge soft-skills"`
}

// TestGenerateResponseDTO carries the persisted test plus non-fatal warnings such
// as a question count mismatch or dropped invalid questions.
type TestGenerateResponseDTO struct {
	Test               TestResponseDTO `json:"test"`
	RequestedQuestions int             `json:"requested_questions"`
	GeneratedQuestions int             `json:"generated_questions"`
	Warnings           []string        `json:"warnings,omitempty"`
}
