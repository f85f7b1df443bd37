package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"seoagent/orchestrator"
	"seoagent/types"
)

// RegisterAnalysisRoutes registers the full-pipeline analysis endpoint.
func RegisterAnalysisRoutes(r *gin.Engine, orch *orchestrator.Orchestrator) {
	r.POST("/api/analyze", func(c *gin.Context) { handleAnalyze(c, orch) })
}

// handleAnalyze runs the full analysis pipeline. Long-running: the caller
// is expected to apply its own timeout.
func handleAnalyze(c *gin.Context, orch *orchestrator.Orchestrator) {
	var req types.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload: " + err.Error()})
		return
	}

	result, err := orch.Analyze(c.Request.Context(), req)
	if err != nil {
		respondWithPipelineError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// respondWithPipelineError maps the error taxonomy to HTTP statuses:
// caller input problems are 400, upstream service failures 502.
func respondWithPipelineError(c *gin.Context, err error) {
	if types.IsValidation(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var ue *types.UpstreamError
	var fe *types.FetchError
	var pe *types.ParseError
	var ce *types.ClassificationError
	if errors.As(err, &ue) || errors.As(err, &fe) || errors.As(err, &pe) || errors.As(err, &ce) {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
