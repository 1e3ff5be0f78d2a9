package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/SkillCheck/internal/assessment"
	"github.com/lshigami/SkillCheck/internal/dto"
	"github.com/lshigami/SkillCheck/internal/model"
	"github.com/lshigami/SkillCheck/internal/monitoring"
	"github.com/lshigami/SkillCheck/internal/repository"
	"github.com/rs/zerolog/log"
)

// TestSubmissionService grades submissions and manages the stored attempts.
type TestSubmissionService interface {
	SubmitTest(testID string, req dto.TestAttemptSubmitDTO) (*dto.TestAttemptDetailDTO, error)
	GetTestAttemptDetails(attemptID string) (*dto.TestAttemptDetailDTO, error)
	GetAttemptsForTest(testID string) ([]dto.TestAttemptSummaryDTO, error)
	// ReviewAttempt asks the generative service to analyze every answered free-form and
	// coding answer. Grading results are never changed by a review.
	ReviewAttempt(ctx context.Context, attemptID string) (*dto.TestAttemptDetailDTO, error)
}

type testSubmissionService struct {
	testRepo        repository.TestRepository
	questionRepo    repository.QuestionRepository
	testAttemptRepo repository.TestAttemptRepository
	answerRepo      repository.AnswerRepository
	generative      GenerativeService
}

func NewTestSubmissionService(
	testRepo repository.TestRepository,
	questionRepo repository.QuestionRepository,
	testAttemptRepo repository.TestAttemptRepository,
	answerRepo repository.AnswerRepository,
	generative GenerativeService,
) TestSubmissionService {
	return &testSubmissionService{
		testRepo:        testRepo,
		questionRepo:    questionRepo,
		testAttemptRepo: testAttemptRepo,
		answerRepo:      answerRepo,
		generative:      generative,
	}
}

// reviewResult carries the outcome of one answer review back from its goroutine.
type reviewResult struct {
	originalIndex int
	review        string
	err           error
}

// SubmitTest grades the submission. Attempts on the sample test are graded but not stored.
func (s *testSubmissionService) SubmitTest(testID string, req dto.TestAttemptSubmitDTO) (*dto.TestAttemptDetailDTO, error) {
	var (
		test      assessment.Test
		testModel *model.Test
	)
	if testID == assessment.SampleTestID {
		test = assessment.SampleTest()
	} else {
		id, err := parseID(testID, ErrTestNotFound)
		if err != nil {
			return nil, err
		}
		testModel, err = s.testRepo.FindByIDWithQuestions(id)
		if err != nil {
			if isNotFound(err) {
				return nil, ErrTestNotFound
			}
			log.Error().Err(err).Uint("testID", id).Msg("SubmitTest: failed to load test")
			return nil, fmt.Errorf("error fetching test %d: %w", id, err)
		}
		test = testModel.ToAssessment()
	}

	if unknown := unknownAnswerKeys(test, req.Answers); len(unknown) > 0 {
		log.Warn().Strs("questionIDs", unknown).Str("testID", testID).Msg("SubmitTest: answers for questions not part of this test are ignored")
	}

	result := assessment.Grade(test, assessment.Submission(req.Answers))

	attempt := model.TestAttempt{
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
		SubmittedAt:    time.Now(),
	}
	attempt.ApplyResult(result)
	monitoring.AttemptsGraded.WithLabelValues(attempt.Status).Inc()

	if testModel == nil {
		attempt.Test.Title = test.Title
		return toAttemptDetail(&attempt, test.ID, test.Questions)
	}

	attempt.TestID = testModel.ID
	if err := s.testAttemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Uint("testID", testModel.ID).Msg("SubmitTest: failed to store test attempt")
		return nil, fmt.Errorf("failed to create test attempt record: %w", err)
	}
	log.Info().
		Uint("attemptID", attempt.ID).
		Uint("testID", testModel.ID).
		Int("score", attempt.Score).
		Int("totalMultipleChoice", attempt.TotalMultipleChoice).
		Str("status", attempt.Status).
		Msg("Test attempt graded")

	attempt.Test = *testModel
	return toAttemptDetail(&attempt, test.ID, test.Questions)
}

func (s *testSubmissionService) GetTestAttemptDetails(attemptID string) (*dto.TestAttemptDetailDTO, error) {
	attempt, questions, err := s.loadAttempt(attemptID)
	if err != nil {
		return nil, err
	}
	return toAttemptDetail(attempt, strconv.FormatUint(uint64(attempt.TestID), 10), questions)
}

func (s *testSubmissionService) GetAttemptsForTest(testID string) ([]dto.TestAttemptSummaryDTO, error) {
	if testID == assessment.SampleTestID {
		return []dto.TestAttemptSummaryDTO{}, nil
	}
	id, err := parseID(testID, ErrTestNotFound)
	if err != nil {
		return nil, err
	}
	attempts, err := s.testAttemptRepo.FindAllByTest(id)
	if err != nil {
		log.Error().Err(err).Uint("testID", id).Msg("GetAttemptsForTest: failed to list attempts")
		return nil, fmt.Errorf("error fetching attempts for test %d: %w", id, err)
	}

	summaries := make([]dto.TestAttemptSummaryDTO, 0, len(attempts))
	for i := range attempts {
		var summary dto.TestAttemptSummaryDTO
		if err := copier.Copy(&summary, &attempts[i]); err != nil {
			return nil, fmt.Errorf("error preparing attempt list: %w", err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *testSubmissionService) ReviewAttempt(ctx context.Context, attemptID string) (*dto.TestAttemptDetailDTO, error) {
	attempt, questions, err := s.loadAttempt(attemptID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]assessment.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	if err := s.testAttemptRepo.UpdateStatus(attempt.ID, model.AttemptStatusReviewing); err != nil {
		log.Error().Err(err).Uint("attemptID", attempt.ID).Msg("ReviewAttempt: failed to set status to 'reviewing'. Review will proceed.")
	}

	var reviewable []int
	for i, a := range attempt.Answers {
		t := assessment.QuestionType(a.QuestionType)
		if (t == assessment.TypeFreeForm || t == assessment.TypeCodingChallenge) && strings.TrimSpace(a.UserAnswer) != "" {
			reviewable = append(reviewable, i)
		}
	}

	var wg sync.WaitGroup
	resultsChan := make(chan reviewResult, len(reviewable))
	for _, idx := range reviewable {
		wg.Add(1)
		go func(answerIdx int) {
			defer wg.Done()
			answer := attempt.Answers[answerIdx]
			review, reviewErr := s.reviewAnswer(ctx, attempt.Test, byID[answer.QuestionKey], answer)

			errText := ""
			if reviewErr != nil {
				errText = reviewErr.Error()
				log.Warn().Err(reviewErr).Uint("answerID", answer.ID).Str("questionID", answer.QuestionKey).Msg("ReviewAttempt: analysis failed for answer")
			}
			if updateErr := s.answerRepo.UpdateReview(answer.ID, review, errText); updateErr != nil {
				log.Error().Err(updateErr).Uint("answerID", answer.ID).Msg("ReviewAttempt: failed to store review")
				if reviewErr == nil {
					reviewErr = updateErr
				}
			}
			resultsChan <- reviewResult{originalIndex: answerIdx, review: review, err: reviewErr}
		}(idx)
	}
	wg.Wait()
	close(resultsChan)

	// A grading error stays visible in the status after the review.
	status := model.AttemptStatusReviewed
	for _, a := range attempt.Answers {
		if a.GradingError != "" {
			status = model.AttemptStatusReviewedWithErrors
			break
		}
	}
	for res := range resultsChan {
		attempt.Answers[res.originalIndex].AIReview = res.review
		if res.err != nil {
			status = model.AttemptStatusReviewedWithErrors
			attempt.Answers[res.originalIndex].AIReviewError = res.err.Error()
		} else {
			attempt.Answers[res.originalIndex].AIReviewError = ""
		}
	}

	if err := s.testAttemptRepo.UpdateStatus(attempt.ID, status); err != nil {
		log.Error().Err(err).Uint("attemptID", attempt.ID).Msg("ReviewAttempt: failed to store final status")
		return nil, fmt.Errorf("failed to update attempt status: %w", err)
	}
	attempt.Status = status
	log.Info().Uint("attemptID", attempt.ID).Int("reviewed", len(reviewable)).Str("status", status).Msg("Test attempt reviewed")

	return toAttemptDetail(attempt, strconv.FormatUint(uint64(attempt.TestID), 10), questions)
}

// reviewAnswer runs the analysis matching the question type and returns it as JSON text.
func (s *testSubmissionService) reviewAnswer(ctx context.Context, test model.Test, q assessment.Question, answer model.Answer) (string, error) {
	var (
		analysis any
		err      error
	)
	switch assessment.QuestionType(answer.QuestionType) {
	case assessment.TypeCodingChallenge:
		language := q.Language
		if language == "" {
			language = "plaintext"
		}
		analysis, err = s.generative.AnalyzeCodeQuality(ctx, dto.AnalyzeCodeQualityRequest{
			CodeSnippet:        answer.UserAnswer,
			Language:           language,
			ProblemDescription: q.Text,
			JobRequirements:    test.JobRequirements,
		})
	default:
		analysis, err = s.generative.AnalyzeProblemSolving(ctx, dto.AnalyzeProblemSolvingRequest{
			Answer:          answer.UserAnswer,
			JobRequirements: reviewContext(test, q),
		})
	}
	if err != nil {
		return "", err
	}

	raw, err := json.Marshal(analysis)
	if err != nil {
		return "", fmt.Errorf("encode analysis: %w", err)
	}
	return string(raw), nil
}

// reviewContext gives the problem-solving analysis the question being answered
// plus the role requirements when the test has them.
func reviewContext(test model.Test, q assessment.Question) string {
	var sb strings.Builder
	sb.WriteString("Question: ")
	sb.WriteString(q.Text)
	if test.JobRequirements != "" {
		sb.WriteString("\nRole requirements: ")
		sb.WriteString(test.JobRequirements)
	} else if test.JobTitle != "" {
		sb.WriteString("\nRole: ")
		sb.WriteString(test.JobTitle)
	}
	return sb.String()
}

func (s *testSubmissionService) loadAttempt(attemptID string) (*model.TestAttempt, []assessment.Question, error) {
	id, err := parseID(attemptID, ErrAttemptNotFound)
	if err != nil {
		return nil, nil, err
	}
	attempt, err := s.testAttemptRepo.FindByIDWithDetails(id)
	if err != nil {
		if isNotFound(err) {
			return nil, nil, ErrAttemptNotFound
		}
		log.Error().Err(err).Uint("attemptID", id).Msg("Failed to find test attempt by ID")
		return nil, nil, fmt.Errorf("error fetching test attempt %d: %w", id, err)
	}

	qs, err := s.questionRepo.FindByTestID(attempt.TestID)
	if err != nil {
		log.Error().Err(err).Uint("testID", attempt.TestID).Msg("Failed to load questions for attempt")
		return nil, nil, fmt.Errorf("error fetching questions for test %d: %w", attempt.TestID, err)
	}
	header := attempt.Test
	header.Questions = qs
	return attempt, header.ToAssessment().Questions, nil
}

func unknownAnswerKeys(t assessment.Test, answers map[string]string) []string {
	known := make(map[string]bool, len(t.Questions))
	for _, q := range t.Questions {
		known[q.ID] = true
	}
	var unknown []string
	for k := range answers {
		if !known[k] {
			unknown = append(unknown, k)
		}
	}
	return unknown
}
