package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/SkillCheck/internal/assessment"
	"github.com/lshigami/SkillCheck/internal/dto"
	"github.com/lshigami/SkillCheck/internal/model"
	"github.com/lshigami/SkillCheck/internal/repository"
	"github.com/rs/zerolog/log"
)

type AdminTestService interface {
	// CreateTest normalizes an authored test and stores it. Any structurally invalid
	// question rejects the whole request with an *InvalidTestError.
	CreateTest(req dto.TestCreateDTO) (*dto.TestResponseDTO, error)
	// GetTest returns the full test including answer keys and solutions.
	GetTest(testID string) (*dto.TestResponseDTO, error)
}

type adminTestService struct {
	testRepo repository.TestRepository
}

func NewAdminTestService(testRepo repository.TestRepository) AdminTestService {
	return &adminTestService{testRepo: testRepo}
}

func (s *adminTestService) CreateTest(req dto.TestCreateDTO) (*dto.TestResponseDTO, error) {
	draft := assessment.Test{
		Title:           req.Title,
		JobTitle:        req.JobTitle,
		JobRequirements: req.JobRequirements,
		Seniority:       req.Seniority,
	}
	for _, qDto := range req.Questions {
		var q assessment.Question
		if err := copier.Copy(&q, &qDto); err != nil {
			return nil, fmt.Errorf("error reading question data: %w", err)
		}
		draft.Questions = append(draft.Questions, q)
	}

	normalized, problems := assessment.Normalize(draft)
	if len(problems) > 0 {
		log.Warn().Int("invalidQuestions", len(problems)).Str("title", req.Title).Msg("CreateTest: rejected authored test")
		return nil, &InvalidTestError{Problems: problems}
	}

	testModel := model.NewTestFromAssessment(normalized, model.TestSourceAuthored)
	if err := s.testRepo.Create(&testModel); err != nil {
		log.Error().Err(err).Msg("Failed to create test in database")
		return nil, fmt.Errorf("database error creating test: %w", err)
	}
	log.Info().Uint("testID", testModel.ID).Int("questions", len(testModel.Questions)).Msg("Authored test created")

	return toTestResponse(testModel.ToAssessment(), &testModel, adminView)
}

func (s *adminTestService) GetTest(testID string) (*dto.TestResponseDTO, error) {
	if testID == assessment.SampleTestID {
		return toTestResponse(assessment.SampleTest(), nil, adminView)
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
		log.Error().Err(err).Uint("testID", id).Msg("Failed to get test from repository")
		return nil, fmt.Errorf("error fetching test %d: %w", id, err)
	}
	return toTestResponse(test.ToAssessment(), test, adminView)
}
