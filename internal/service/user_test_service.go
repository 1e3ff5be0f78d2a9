package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/SkillCheck/internal/assessment"
	"github.com/lshigami/SkillCheck/internal/dto"
	"github.com/lshigami/SkillCheck/internal/repository"
	"github.com/rs/zerolog/log"
)

type UserTestService interface {
	GetAllTests() ([]dto.TestSummaryDTO, error)
	// GetTestDetails returns the candidate view; "sample" resolves to the built-in sample test.
	GetTestDetails(testID string) (*dto.TestResponseDTO, error)
}

type userTestService struct {
	testRepo repository.TestRepository
}

func NewUserTestService(testRepo repository.TestRepository) UserTestService {
	return &userTestService{testRepo: testRepo}
}

func (s *userTestService) GetAllTests() ([]dto.TestSummaryDTO, error) {
	testsWithCount, err := s.testRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get all tests with question count from repository")
		return nil, fmt.Errorf("error fetching tests: %w", err)
	}

	dtos := make([]dto.TestSummaryDTO, 0, len(testsWithCount))
	for _, twc := range testsWithCount {
		var summary dto.TestSummaryDTO
		if err := copier.Copy(&summary, &twc.Test); err != nil {
			return nil, fmt.Errorf("error preparing test list: %w", err)
		}
		summary.QuestionCount = twc.QuestionCount
		dtos = append(dtos, summary)
	}
	return dtos, nil
}

func (s *userTestService) GetTestDetails(testID string) (*dto.TestResponseDTO, error) {
	if testID == assessment.SampleTestID {
		return toTestResponse(assessment.SampleTest(), nil, candidateView)
	}
	id, err := parseID(testID, ErrTestNotFound)
	if err != nil {
		return nil, err
	}
	test, err := s.testRepo.FindByIDWithQuestions(id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrTestNotFound
		}
		log.Error().Err(err).Uint("testID", id).Msg("Failed to get test details from repository")
		return nil, fmt.Errorf("error fetching test %d: %w", id, err)
	}
	return toTestResponse(test.ToAssessment(), test, candidateView)
}
