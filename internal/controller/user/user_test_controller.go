package user

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/SkillCheck/internal/controller"
	"github.com/lshigami/SkillCheck/internal/dto"
	"github.com/lshigami/SkillCheck/internal/service"
	"github.com/rs/zerolog/log"
)

type UserTestController struct {
	userTestService       service.UserTestService
	testSubmissionService service.TestSubmissionService
	reportService         service.ReportService
}

func NewUserTestController(uts service.UserTestService, tss service.TestSubmissionService, rs service.ReportService) *UserTestController {
	return &UserTestController{
		userTestService:       uts,
		testSubmissionService: tss,
		reportService:         rs,
	}
}

// GetAllTests godoc
// @Summary (User) List all available tests
// @Tags User - Tests & Attempts
// @Produce json
// @Success 200 {array} dto.TestSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests [get]
func (c *UserTestController) GetAllTests(ctx *gin.Context) {
	tests, err := c.userTestService.GetAllTests()
	if err != nil {
		controller.RespondError(ctx, "User GetAllTests", err)
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetTestDetails godoc
// @Summary (User) Get a test to take
// @Description Returns the test without answer keys, explanations or solutions. The id 'sample' returns the built-in sample test.
// @Tags User - Tests & Attempts
// @Produce json
// @Param test_id path string true "Test ID or 'sample'"
// @Success 200 {object} dto.TestResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{test_id} [get]
func (c *UserTestController) GetTestDetails(ctx *gin.Context) {
	testDetails, err := c.userTestService.GetTestDetails(ctx.Param("test_id"))
	if err != nil {
		controller.RespondError(ctx, "User GetTestDetails", err)
		return
	}
	ctx.JSON(http.StatusOK, testDetails)
}

// SubmitTestAttempt godoc
// @Summary (User) Submit answers for an entire test
// @Description Grades the submission immediately. Multiple-choice answers are scored; free-form and coding answers are recorded for review. Attempts on the sample test are not stored.
// @Tags User - Tests & Attempts
// @Accept json
// @Produce json
// @Param test_id path string true "Test ID or 'sample'"
// @Param submission_data body dto.TestAttemptSubmitDTO true "Candidate details and answers keyed by question id"
// @Success 201 {object} dto.TestAttemptDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Error processing submission"
// @Router /tests/{test_id}/attempts [post]
func (c *UserTestController) SubmitTestAttempt(ctx *gin.Context) {
	testID := ctx.Param("test_id")

	var req dto.TestAttemptSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "User SubmitTestAttempt", err)
		return
	}
	log.Info().Str("testID", testID).Int("answerCount", len(req.Answers)).Msg("Received request to submit test attempt")

	attemptDetail, err := c.testSubmissionService.SubmitTest(testID, req)
	if err != nil {
		controller.RespondError(ctx, "User SubmitTestAttempt", err)
		return
	}
	ctx.JSON(http.StatusCreated, attemptDetail)
}

// GetTestAttempts godoc
// @Summary (User) List the attempts made on a test
// @Tags User - Tests & Attempts
// @Produce json
// @Param test_id path string true "Test ID"
// @Success 200 {array} dto.TestAttemptSummaryDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{test_id}/attempts [get]
func (c *UserTestController) GetTestAttempts(ctx *gin.Context) {
	attempts, err := c.testSubmissionService.GetAttemptsForTest(ctx.Param("test_id"))
	if err != nil {
		controller.RespondError(ctx, "User GetTestAttempts", err)
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

// GetSpecificTestAttemptDetails godoc
// @Summary (User) Get details of a specific test attempt
// @Tags User - Tests & Attempts
// @Produce json
// @Param attempt_id path int true "Test Attempt ID"
// @Success 200 {object} dto.TestAttemptDetailDTO
// @Failure 404 {object} dto.ErrorResponse "Test Attempt not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /test-attempts/{attempt_id} [get]
func (c *UserTestController) GetSpecificTestAttemptDetails(ctx *gin.Context) {
	attemptDetails, err := c.testSubmissionService.GetTestAttemptDetails(ctx.Param("attempt_id"))
	if err != nil {
		controller.RespondError(ctx, "User GetSpecificTestAttemptDetails", err)
		return
	}
	ctx.JSON(http.StatusOK, attemptDetails)
}

// ReviewTestAttempt godoc
// @Summary Request an AI review of an attempt
// @Description Runs the problem-solving analysis on every answered free-form question and the code quality analysis on every coding answer. Scores are not changed. Failures are stored per answer.
// @Tags User - Tests & Attempts
// @Produce json
// @Param attempt_id path int true "Test Attempt ID"
// @Success 200 {object} dto.TestAttemptDetailDTO
// @Failure 404 {object} dto.ErrorResponse "Test Attempt not found"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /test-attempts/{attempt_id}/review [post]
func (c *UserTestController) ReviewTestAttempt(ctx *gin.Context) {
	attemptDetails, err := c.testSubmissionService.ReviewAttempt(ctx.Request.Context(), ctx.Param("attempt_id"))
	if err != nil {
		controller.RespondError(ctx, "User ReviewTestAttempt", err)
		return
	}
	ctx.JSON(http.StatusOK, attemptDetails)
}

// DownloadAttemptReport godoc
// @Summary Download a PDF report of an attempt
// @Tags User - Tests & Attempts
// @Produce application/pdf
// @Param attempt_id path int true "Test Attempt ID"
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse "Test Attempt not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /test-attempts/{attempt_id}/report [get]
func (c *UserTestController) DownloadAttemptReport(ctx *gin.Context) {
	attemptID := ctx.Param("attempt_id")
	attemptDetails, err := c.testSubmissionService.GetTestAttemptDetails(attemptID)
	if err != nil {
		controller.RespondError(ctx, "User DownloadAttemptReport", err)
		return
	}
	pdf, err := c.reportService.RenderAttemptReport(attemptDetails)
	if err != nil {
		controller.RespondError(ctx, "User DownloadAttemptReport", err)
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=attempt-%s.pdf", attemptID))
	ctx.Data(http.StatusOK, "application/pdf", pdf)
}
