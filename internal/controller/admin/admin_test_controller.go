package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/SkillCheck/internal/controller"
	"github.com/lshigami/SkillCheck/internal/dto"
	"github.com/lshigami/SkillCheck/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminTestController struct {
	adminTestService      service.AdminTestService
	testGenerationService service.TestGenerationService
}

func NewAdminTestController(adminTestService service.AdminTestService, testGenerationService service.TestGenerationService) *AdminTestController {
	return &AdminTestController{adminTestService: adminTestService, testGenerationService: testGenerationService}
}

// CreateTest godoc
// @Summary (Admin) Create a new authored test
// @Description Admin creates a test with its questions. Question and option ids are assigned from position (q1, q1o1, ...). A multiple-choice question needs 2 to 5 options with exactly one correct; free-form and coding-challenge questions take no options.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Param test_data body dto.TestCreateDTO true "Test creation data including all questions"
// @Success 201 {object} dto.TestResponseDTO "Test created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 422 {object} dto.ErrorResponse "One or more questions are structurally invalid"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests [post]
func (c *AdminTestController) CreateTest(ctx *gin.Context) {
	var req dto.TestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "Admin CreateTest", err)
		return
	}

	testResp, err := c.adminTestService.CreateTest(req)
	if err != nil {
		controller.RespondError(ctx, "Admin CreateTest", err)
		return
	}
	ctx.JSON(http.StatusCreated, testResp)
}

// GenerateTest godoc
// @Summary (Admin) Generate a test with AI
// @Description Generates a draft test from a job description and its skills, drops structurally invalid questions and stores the rest. A question count different from the request is reported in warnings.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Param generation_data body dto.TestGenerateDTO true "Job details, extracted skills and test parameters"
// @Success 201 {object} dto.TestGenerateResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 502 {object} dto.ErrorResponse "The AI service failed, the request may be resubmitted"
// @Router /admin/tests/generate [post]
func (c *AdminTestController) GenerateTest(ctx *gin.Context) {
	var req dto.TestGenerateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "Admin GenerateTest", err)
		return
	}
	log.Info().Str("jobTitle", req.JobTitle).Int("skills", len(req.Skills)).Int("numberOfQuestions", req.NumberOfQuestions).Msg("Received request to generate test")

	resp, err := c.testGenerationService.GenerateTest(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "Admin GenerateTest", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetTest godoc
// @Summary (Admin) Get a test with answer keys
// @Tags Admin - Tests
// @Produce json
// @Param test_id path string true "Test ID or 'sample'"
// @Success 200 {object} dto.TestResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests/{test_id} [get]
func (c *AdminTestController) GetTest(ctx *gin.Context) {
	testResp, err := c.adminTestService.GetTest(ctx.Param("test_id"))
	if err != nil {
		controller.RespondError(ctx, "Admin GetTest", err)
		return
	}
	ctx.JSON(http.StatusOK, testResp)
}
