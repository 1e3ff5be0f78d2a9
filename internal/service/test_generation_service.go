package service

import (
	"context"
	"fmt"

	"github.com/lshigami/SkillCheck/internal/assessment"
	"github.com/lshigami/SkillCheck/internal/dto"
	"github.com/lshigami/SkillCheck/internal/model"
	"github.com/lshigami/SkillCheck/internal/repository"
	"github.com/rs/zerolog/log"
)

type TestGenerationService interface {
	GenerateTest(ctx context.Context, req dto.TestGenerateDTO) (*dto.TestGenerateResponseDTO, error)
}

type testGenerationService struct {
	generative GenerativeService
	testRepo   repository.TestRepository
}

func NewTestGenerationService(generative GenerativeService, testRepo repository.TestRepository) TestGenerationService {
	return &testGenerationService{generative: generative, testRepo: testRepo}
}

// GenerateTest asks the model for a draft, drops the questions that fail the
// structural rules and stores what is left. A question count that differs from the
// request is reported as a warning, never padded or truncated.
func (s *testGenerationService) GenerateTest(ctx context.Context, req dto.TestGenerateDTO) (*dto.TestGenerateResponseDTO, error) {
	if req.NumberOfQuestions == 0 {
		req.NumberOfQuestions = defaultQuestionCount
	}

	draft, err := s.generative.CreateTest(ctx, req)
	if err != nil {
		return nil, err
	}

	generated := len(draft.Questions)
	kept, dropped := assessment.DropInvalid(draft.Questions)
	var warnings []string
	for _, d := range dropped {
		log.Warn().Err(d.Err).Int("position", d.Index+1).Msg("GenerateTest: dropped invalid generated question")
		warnings = append(warnings, fmt.Sprintf("dropped generated question at position %d: %v", d.Index+1, d.Err))
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("%w: none of the %d generated questions were usable", ErrCollaboratorFailure, generated)
	}
	if mismatch := assessment.ReconcileCount(len(kept), req.NumberOfQuestions); mismatch != nil {
		log.Warn().Int("requested", mismatch.Requested).Int("generated", mismatch.Generated).Msg("GenerateTest: question count mismatch")
		warnings = append(warnings, mismatch.Error())
	}

	draft.Questions = kept
	testModel := model.NewTestFromAssessment(draft, model.TestSourceGenerated)
	if err := s.testRepo.Create(&testModel); err != nil {
		log.Error().Err(err).Msg("Failed to store generated test")
		return nil, fmt.Errorf("database error creating test: %w", err)
	}
	log.Info().Uint("testID", testModel.ID).Int("questions", len(kept)).Msg("Generated test stored")

	testResp, err := toTestResponse(testModel.ToAssessment(), &testModel, adminView)
	if err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &dto.TestGenerateResponseDTO{
		Test:               *testResp,
		RequestedQuestions: req.NumberOfQuestions,
		GeneratedQuestions: generated,
		Warnings:           warnings,
	}, nil
}
