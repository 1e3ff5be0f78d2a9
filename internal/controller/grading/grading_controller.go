package grading

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/SkillCheck/internal/assessment"
	"github.com/lshigami/SkillCheck/internal/controller"
	"github.com/lshigami/SkillCheck/internal/dto"
)

// GradingController runs the normalizer and the grading engine on request
// bodies. Nothing is stored.
type GradingController struct{}

func NewGradingController() *GradingController {
	return &GradingController{}
}

// Normalize godoc
// @Summary Normalize a test
// @Description Assigns canonical ids (q1, q1o1, ...) and reports structurally invalid questions without rejecting the rest.
// @Tags Assessment
// @Accept json
// @Produce json
// @Param request body dto.NormalizeRequest true "Test to normalize"
// @Success 200 {object} dto.NormalizeResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Router /assessment/normalize [post]
func (c *GradingController) Normalize(ctx *gin.Context) {
	var req dto.NormalizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "Assessment Normalize", err)
		return
	}
	normalized, problems := assessment.Normalize(req.Test)
	resp := dto.NormalizeResponse{Test: normalized}
	if len(problems) > 0 {
		resp.Issues = controller.QuestionIssues(problems)
	}
	ctx.JSON(http.StatusOK, resp)
}

// Grade godoc
// @Summary Grade a submission
// @Description Grades a submission against the supplied test. Multiple-choice questions are scored; free-form and coding answers are recorded.
// @Tags Assessment
// @Accept json
// @Produce json
// @Param request body dto.GradeRequest true "Test and submission"
// @Success 200 {object} dto.GradeResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Router /assessment/grade [post]
func (c *GradingController) Grade(ctx *gin.Context) {
	var req dto.GradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "Assessment Grade", err)
		return
	}
	result := assessment.Grade(req.Test, req.Submission)
	ctx.JSON(http.StatusOK, dto.GradeResponse{Result: result, Percentage: result.Percentage()})
}
