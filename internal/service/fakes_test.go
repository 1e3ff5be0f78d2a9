package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/lshigami/SkillCheck/internal/model"
	"github.com/lshigami/SkillCheck/internal/repository"
	"gorm.io/gorm"
)

/* ---------------- In-memory fakes for the repositories and the LLM provider ---------------- */

// memDB is the shared state behind the fake repositories. It hands out ids the way
// the database would on insert.
type memDB struct {
	mu       sync.Mutex
	seq      uint
	tests    map[uint]model.Test
	attempts map[uint]model.TestAttempt
	failNext error
}

func newMemDB() *memDB {
	return &memDB{tests: map[uint]model.Test{}, attempts: map[uint]model.TestAttempt{}}
}

func (db *memDB) nextID() uint {
	db.seq++
	return db.seq
}

type fakeTestRepo struct{ db *memDB }

func (r fakeTestRepo) Create(test *model.Test) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.failNext; err != nil {
		r.db.failNext = nil
		return err
	}
	test.ID = r.db.nextID()
	for i := range test.Questions {
		q := &test.Questions[i]
		q.ID = r.db.nextID()
		q.TestID = test.ID
		for j := range q.Options {
			q.Options[j].ID = r.db.nextID()
			q.Options[j].QuestionID = q.ID
		}
	}
	r.db.tests[test.ID] = *test
	return nil
}

func (r fakeTestRepo) FindByIDWithQuestions(id uint) (*model.Test, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	t, ok := r.db.tests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &t, nil
}

func (r fakeTestRepo) FindAllWithQuestionCount() ([]repository.TestWithQuestionCount, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []repository.TestWithQuestionCount
	for id := uint(1); id <= r.db.seq; id++ {
		if t, ok := r.db.tests[id]; ok {
			out = append(out, repository.TestWithQuestionCount{Test: t, QuestionCount: len(t.Questions)})
		}
	}
	return out, nil
}

type fakeQuestionRepo struct{ db *memDB }

func (r fakeQuestionRepo) FindByTestID(testID uint) ([]model.Question, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.db.tests[testID].Questions, nil
}

type fakeAttemptRepo struct{ db *memDB }

func (r fakeAttemptRepo) Create(attempt *model.TestAttempt) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	attempt.ID = r.db.nextID()
	for i := range attempt.Answers {
		attempt.Answers[i].ID = r.db.nextID()
		attempt.Answers[i].TestAttemptID = attempt.ID
	}
	stored := *attempt
	stored.Test = model.Test{}
	stored.Answers = append([]model.Answer(nil), attempt.Answers...)
	r.db.attempts[attempt.ID] = stored
	return nil
}

func (r fakeAttemptRepo) UpdateStatus(id uint, status string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	a, ok := r.db.attempts[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.Status = status
	r.db.attempts[id] = a
	return nil
}

func (r fakeAttemptRepo) FindByIDWithDetails(id uint) (*model.TestAttempt, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	a, ok := r.db.attempts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	a.Test = r.db.tests[a.TestID]
	a.Test.Questions = nil
	a.Answers = append([]model.Answer(nil), a.Answers...)
	return &a, nil
}

func (r fakeAttemptRepo) FindAllByTest(testID uint) ([]model.TestAttempt, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []model.TestAttempt
	for id := uint(1); id <= r.db.seq; id++ {
		if a, ok := r.db.attempts[id]; ok && a.TestID == testID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeAnswerRepo struct{ db *memDB }

func (r fakeAnswerRepo) UpdateReview(answerID uint, review, reviewErr string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for id, a := range r.db.attempts {
		for i := range a.Answers {
			if a.Answers[i].ID == answerID {
				a.Answers[i].AIReview = review
				a.Answers[i].AIReviewError = reviewErr
				r.db.attempts[id] = a
				return nil
			}
		}
	}
	return gorm.ErrRecordNotFound
}

// fakeLLM answers prompts by the first matching substring in replies.
type fakeLLM struct {
	mu      sync.Mutex
	replies []fakeReply
	err     error
	prompts []string
}

type fakeReply struct {
	contains string
	body     string
	err      error
}

func (f *fakeLLM) Name() string { return "fake" }

func (f *fakeLLM) Generate(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	for _, r := range f.replies {
		if strings.Contains(prompt, r.contains) {
			return r.body, r.err
		}
	}
	return "", errors.New("fakeLLM: no reply configured")
}

func (f *fakeLLM) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}
