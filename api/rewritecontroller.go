package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"seoagent/orchestrator"
	"seoagent/types"
)

// RegisterRewriteRoutes registers the content rewriting endpoint.
func RegisterRewriteRoutes(r *gin.Engine, orch *orchestrator.Orchestrator) {
	r.POST("/api/rewrite", func(c *gin.Context) { handleRewrite(c, orch) })
}

func handleRewrite(c *gin.Context, orch *orchestrator.Orchestrator) {
	var req types.RewriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload: " + err.Error()})
		return
	}

	result, err := orch.Rewrite(c.Request.Context(), req)
	if err != nil {
		respondWithPipelineError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
