package ai

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/SkillCheck/internal/controller"
	"github.com/lshigami/SkillCheck/internal/dto"
	"github.com/lshigami/SkillCheck/internal/service"
)

// AIController exposes the generative operations directly to recruiters.
type AIController struct {
	generative service.GenerativeService
}

func NewAIController(generative service.GenerativeService) *AIController {
	return &AIController{generative: generative}
}

// GenerateJobDescription godoc
// @Summary Generate a job description
// @Tags AI
// @Accept json
// @Produce json
// @Param request body dto.GenerateJobDescriptionRequest true "Job title and optional seniority"
// @Success 200 {object} dto.JobDescriptionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 502 {object} dto.ErrorResponse "The AI service failed, the request may be resubmitted"
// @Router /ai/job-descriptions [post]
func (c *AIController) GenerateJobDescription(ctx *gin.Context) {
	var req dto.GenerateJobDescriptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "AI GenerateJobDescription", err)
		return
	}
	resp, err := c.generative.GenerateJobDescription(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "AI GenerateJobDescription", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ExtractSkills godoc
// @Summary Extract skills from a job description
// @Tags AI
// @Accept json
// @Produce json
// @Param request body dto.ExtractSkillsRequest true "Job description, at least 50 characters"
// @Success 200 {object} dto.ExtractSkillsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 502 {object} dto.ErrorResponse "The AI service failed, the request may be resubmitted"
// @Router /ai/skills/extract [post]
func (c *AIController) ExtractSkills(ctx *gin.Context) {
	var req dto.ExtractSkillsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "AI ExtractSkills", err)
		return
	}
	skills, err := c.generative.ExtractSkills(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "AI ExtractSkills", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ExtractSkillsResponse{ExtractedSkills: skills})
}

// AnalyzeProblemSolving godoc
// @Summary Analyze a free-form answer
// @Tags AI
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeProblemSolvingRequest true "Answer and job requirements"
// @Success 200 {object} dto.ProblemSolvingAnalysis
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 502 {object} dto.ErrorResponse "The AI service failed, the request may be resubmitted"
// @Router /ai/analysis/problem-solving [post]
func (c *AIController) AnalyzeProblemSolving(ctx *gin.Context) {
	var req dto.AnalyzeProblemSolvingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "AI AnalyzeProblemSolving", err)
		return
	}
	resp, err := c.generative.AnalyzeProblemSolving(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "AI AnalyzeProblemSolving", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// AnalyzeCodeQuality godoc
// @Summary Analyze the quality of a code snippet
// @Tags AI
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeCodeQualityRequest true "Code, language and optional context"
// @Success 200 {object} dto.CodeQualityAnalysis
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 502 {object} dto.ErrorResponse "The AI service failed, the request may be resubmitted"
// @Router /ai/analysis/code-quality [post]
func (c *AIController) AnalyzeCodeQuality(ctx *gin.Context) {
	var req dto.AnalyzeCodeQualityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "AI AnalyzeCodeQuality", err)
		return
	}
	resp, err := c.generative.AnalyzeCodeQuality(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "AI AnalyzeCodeQuality", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
