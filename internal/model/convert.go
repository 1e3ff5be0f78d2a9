package model

import (
	"sort"
	"strconv"

	"github.com/lshigami/SkillCheck/internal/assessment"
)

// NewTestFromAssessment builds a persistable test from a normalized assessment test.
// Question and option keys are the canonical ids; positions follow slice order.
func NewTestFromAssessment(t assessment.Test, source string) Test {
	m := Test{
		Title:           t.Title,
		JobTitle:        t.JobTitle,
		JobRequirements: t.JobRequirements,
		Seniority:       t.Seniority,
		Source:          source,
	}
	for i, q := range t.Questions {
		mq := Question{
			Key:           q.ID,
			Position:      i + 1,
			Type:          string(q.Type),
			Text:          q.Text,
			SkillCategory: q.SkillCategory,
			Difficulty:    q.Difficulty,
			Explanation:   q.Explanation,
			Language:      q.Language,
			StarterCode:   q.StarterCode,
			Solution:      q.Solution,
		}
		for j, o := range q.Options {
			mq.Options = append(mq.Options, QuestionOption{
				Key:       o.ID,
				Position:  j + 1,
				Text:      o.Text,
				IsCorrect: o.IsCorrect,
			})
		}
		m.Questions = append(m.Questions, mq)
	}
	return m
}

// ToAssessment converts a test loaded with its questions and options. Questions
// and options are ordered by position regardless of load order.
func (t *Test) ToAssessment() assessment.Test {
	out := assessment.Test{
		ID:              strconv.FormatUint(uint64(t.ID), 10),
		Title:           t.Title,
		JobTitle:        t.JobTitle,
		JobRequirements: t.JobRequirements,
		Seniority:       t.Seniority,
	}
	questions := append([]Question(nil), t.Questions...)
	sort.SliceStable(questions, func(i, j int) bool { return questions[i].Position < questions[j].Position })
	for _, q := range questions {
		aq := assessment.Question{
			ID:            q.Key,
			Type:          assessment.QuestionType(q.Type),
			Text:          q.Text,
			SkillCategory: q.SkillCategory,
			Difficulty:    q.Difficulty,
			Explanation:   q.Explanation,
			Language:      q.Language,
			StarterCode:   q.StarterCode,
			Solution:      q.Solution,
		}
		opts := append([]QuestionOption(nil), q.Options...)
		sort.SliceStable(opts, func(i, j int) bool { return opts[i].Position < opts[j].Position })
		for _, o := range opts {
			aq.Options = append(aq.Options, assessment.Option{ID: o.Key, Text: o.Text, IsCorrect: o.IsCorrect})
		}
		out.Questions = append(out.Questions, aq)
	}
	return out
}

// ApplyResult copies a grading result onto the attempt, one Answer per detail.
func (a *TestAttempt) ApplyResult(res assessment.Result) {
	a.Score = res.Score
	a.TotalMultipleChoice = res.TotalMultipleChoice
	a.Percentage = res.Percentage()
	a.HasNonGradable = res.HasNonGradable
	a.Status = AttemptStatusGraded
	a.Answers = make([]Answer, 0, len(res.Details))
	for i, d := range res.Details {
		if d.Error != "" {
			a.Status = AttemptStatusGradedWithErrors
		}
		a.Answers = append(a.Answers, Answer{
			QuestionKey:      d.QuestionID,
			Position:         i + 1,
			QuestionType:     string(d.Type),
			SelectedOptionID: d.SelectedOptionID,
			CorrectOptionID:  d.CorrectOptionID,
			UserAnswer:       d.UserAnswer,
			IsCorrect:        d.IsCorrect,
			Feedback:         d.Feedback,
			GradingError:     d.Error,
		})
	}
}
