// Package controller holds the HTTP error mapping shared by the gin controllers.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/SkillCheck/internal/assessment"
	"github.com/lshigami/SkillCheck/internal/dto"
	"github.com/lshigami/SkillCheck/internal/service"
	"github.com/rs/zerolog/log"
)

// BindError answers a request whose body failed binding or validation.
func BindError(ctx *gin.Context, op string, err error) {
	log.Warn().Err(err).Str("op", op).Msg("Failed to bind JSON")
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
}

// RespondError maps a service error onto a status code and error body.
func RespondError(ctx *gin.Context, op string, err error) {
	status, body := MapError(err)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("op", op).Int("status", status).Msg("Request failed")
	ctx.JSON(status, body)
}

// MapError is the single place that decides how errors surface over HTTP.
func MapError(err error) (int, dto.ErrorResponse) {
	var invalidTest *service.InvalidTestError
	switch {
	case errors.As(err, &invalidTest):
		return http.StatusUnprocessableEntity, dto.ErrorResponse{
			Message: "Test contains invalid questions",
			Details: QuestionIssues(invalidTest.Problems),
		}
	case errors.Is(err, assessment.ErrInvalidQuestionShape):
		return http.StatusUnprocessableEntity, dto.ErrorResponse{Message: err.Error()}
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()}
	case errors.Is(err, service.ErrTestNotFound), errors.Is(err, service.ErrAttemptNotFound):
		return http.StatusNotFound, dto.ErrorResponse{Message: err.Error()}
	case errors.Is(err, service.ErrCollaboratorFailure):
		return http.StatusBadGateway, dto.ErrorResponse{
			Message: "The AI service failed to produce a usable answer. Please try again.",
			Details: []string{err.Error()},
		}
	default:
		return http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"}
	}
}

func QuestionIssues(problems []*assessment.QuestionError) []dto.QuestionIssue {
	issues := make([]dto.QuestionIssue, 0, len(problems))
	for _, p := range problems {
		issues = append(issues, dto.QuestionIssue{Index: p.Index, QuestionID: p.QuestionID, Reason: p.Err.Error()})
	}
	return issues
}
