package service

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/jinzhu/copier"
	"github.com/lshigami/SkillCheck/internal/assessment"
	"github.com/lshigami/SkillCheck/internal/dto"
	"github.com/lshigami/SkillCheck/internal/model"
	"gorm.io/gorm"
)

// testView selects how much of a test is exposed.
type testView int

const (
	candidateView testView = iota // no answer keys, solutions or explanations
	adminView
)

func toTestResponse(t assessment.Test, header *model.Test, view testView) (*dto.TestResponseDTO, error) {
	var resp dto.TestResponseDTO
	if header != nil {
		if err := copier.Copy(&resp, header); err != nil {
			return nil, err
		}
	} else {
		resp.Title = t.Title
		resp.JobTitle = t.JobTitle
		resp.JobRequirements = t.JobRequirements
		resp.Seniority = t.Seniority
	}
	resp.ID = t.ID
	resp.Questions = make([]dto.QuestionResponseDTO, 0, len(t.Questions))
	for i, q := range t.Questions {
		qd := dto.QuestionResponseDTO{
			ID:            q.ID,
			Position:      i + 1,
			Type:          string(q.Type),
			Text:          q.Text,
			SkillCategory: q.SkillCategory,
			Difficulty:    q.Difficulty,
			Language:      q.Language,
			StarterCode:   q.StarterCode,
		}
		if view == adminView {
			qd.Explanation = q.Explanation
			qd.Solution = q.Solution
		}
		for _, o := range q.Options {
			od := dto.OptionResponseDTO{ID: o.ID, Text: o.Text}
			if view == adminView {
				isCorrect := o.IsCorrect
				od.IsCorrect = &isCorrect
			}
			qd.Options = append(qd.Options, od)
		}
		resp.Questions = append(resp.Questions, qd)
	}
	return &resp, nil
}

// toAttemptDetail builds the attempt view; questions supplies the question text per id.
func toAttemptDetail(attempt *model.TestAttempt, testID string, questions []assessment.Question) (*dto.TestAttemptDetailDTO, error) {
	var resp dto.TestAttemptDetailDTO
	if err := copier.Copy(&resp, attempt); err != nil {
		return nil, err
	}
	resp.TestID = testID
	resp.TestTitle = attempt.Test.Title

	texts := make(map[string]string, len(questions))
	for _, q := range questions {
		texts[q.ID] = q.Text
	}
	resp.Answers = make([]dto.AnswerResponseDTO, 0, len(attempt.Answers))
	for _, a := range attempt.Answers {
		ad := dto.AnswerResponseDTO{
			QuestionID:       a.QuestionKey,
			QuestionType:     a.QuestionType,
			QuestionText:     texts[a.QuestionKey],
			SelectedOptionID: a.SelectedOptionID,
			CorrectOptionID:  a.CorrectOptionID,
			UserAnswer:       a.UserAnswer,
			IsCorrect:        a.IsCorrect,
			Feedback:         a.Feedback,
			GradingError:     a.GradingError,
			AIReviewError:    a.AIReviewError,
		}
		if a.AIReview != "" && json.Valid([]byte(a.AIReview)) {
			ad.AIReview = json.RawMessage(a.AIReview)
		}
		resp.Answers = append(resp.Answers, ad)
	}
	return &resp, nil
}

// parseID turns a path id into a primary key. Anything unparsable cannot exist.
func parseID(raw string, notFound error) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, notFound
	}
	return uint(id), nil
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
