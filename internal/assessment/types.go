// Package assessment holds the deterministic part of SkillCheck: the question model,
// the normalizer that enforces canonical ids and structural rules, and the grading engine.
// Nothing in this package performs I/O.
package assessment

import "math"

// QuestionType selects the grading policy applied to a question.
type QuestionType string

const (
	TypeMultipleChoice  QuestionType = "multiple-choice"
	TypeFreeForm        QuestionType = "free-form"
	TypeCodingChallenge QuestionType = "coding-challenge"
)

// AutoGradable reports whether answers to this type get a correctness verdict.
func (t QuestionType) AutoGradable() bool {
	return t == TypeMultipleChoice
}

type SkillCategory string

const (
	CategoryTechnical      SkillCategory = "technical"
	CategorySoft           SkillCategory = "soft"
	CategoryDomainSpecific SkillCategory = "domain-specific"
	CategoryTooling        SkillCategory = "tooling"
	CategoryOther          SkillCategory = "other"
)

func (c SkillCategory) Valid() bool {
	switch c {
	case CategoryTechnical, CategorySoft, CategoryDomainSpecific, CategoryTooling, CategoryOther:
		return true
	}
	return false
}

type SkillImportance string

const (
	ImportanceCritical   SkillImportance = "critical"
	ImportanceImportant  SkillImportance = "important"
	ImportanceNiceToHave SkillImportance = "nice-to-have"
)

func (i SkillImportance) Valid() bool {
	switch i {
	case ImportanceCritical, ImportanceImportant, ImportanceNiceToHave:
		return true
	}
	return false
}

// Skill is a competency extracted from a job description.
type Skill struct {
	Name       string          `json:"name"`
	Category   SkillCategory   `json:"category"`
	Importance SkillImportance `json:"importance"`
	Context    string          `json:"context,omitempty"`
}

type Option struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct,omitempty"`
}

type Question struct {
	ID            string       `json:"id"`
	Type          QuestionType `json:"type"`
	Text          string       `json:"text"`
	Options       []Option     `json:"options,omitempty"`
	SkillCategory string       `json:"skill_category,omitempty"`
	Difficulty    string       `json:"difficulty,omitempty"` // easy, medium, hard
	Explanation   string       `json:"explanation,omitempty"`

	// coding-challenge only
	Language    string `json:"language,omitempty"`
	StarterCode string `json:"starter_code,omitempty"`
	Solution    string `json:"solution,omitempty"`
}

// Test is an ordered list of questions. Numbering is positional, so Questions must
// not be reordered after AssignCanonicalIDs without running it again.
type Test struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Questions       []Question `json:"questions"`
	JobTitle        string     `json:"job_title,omitempty"`
	JobRequirements string     `json:"job_requirements,omitempty"`
	Seniority       string     `json:"seniority,omitempty"`
}

// Submission maps a question id to the candidate's raw answer: an option id for
// multiple-choice questions, free text or code otherwise.
type Submission map[string]string

type ResultDetail struct {
	QuestionID       string       `json:"question_id"`
	Type             QuestionType `json:"type"`
	IsCorrect        *bool        `json:"is_correct,omitempty"`
	SelectedOptionID string       `json:"selected_option_id,omitempty"`
	CorrectOptionID  string       `json:"correct_option_id,omitempty"`
	UserAnswer       string       `json:"user_answer,omitempty"`
	Feedback         string       `json:"feedback"`
	Error            string       `json:"error,omitempty"`
}

type Result struct {
	Score               int            `json:"score"`
	TotalMultipleChoice int            `json:"total_multiple_choice"`
	Details             []ResultDetail `json:"details"`
	HasNonGradable      bool           `json:"has_non_gradable"`
}

// Percentage is the rounded share of correct multiple-choice answers, 0 when the
// test has no multiple-choice questions.
func (r Result) Percentage() int {
	if r.TotalMultipleChoice == 0 {
		return 0
	}
	return int(math.Round(float64(r.Score) * 100 / float64(r.TotalMultipleChoice)))
}
