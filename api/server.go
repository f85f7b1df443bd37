package api

import (
	"github.com/gin-gonic/gin"

	"seoagent/orchestrator"
)

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(orch *orchestrator.Orchestrator) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	// Register resource routers
	RegisterHealthRoutes(r)
	RegisterProductRoutes(r, orch)
	RegisterAnalysisRoutes(r, orch)
	RegisterRewriteRoutes(r, orch)
	return r
}
