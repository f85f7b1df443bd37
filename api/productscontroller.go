package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"seoagent/orchestrator"
)

// RegisterProductRoutes registers product and competitor listing endpoints.
func RegisterProductRoutes(r *gin.Engine, orch *orchestrator.Orchestrator) {
	g := r.Group("/api/products")
	g.GET("", func(c *gin.Context) { handleListProducts(c, orch) })
	g.GET("/:product/competitors", func(c *gin.Context) { handleListCompetitors(c, orch) })
}

func handleListProducts(c *gin.Context, orch *orchestrator.Orchestrator) {
	products := orch.Products()
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

func handleListCompetitors(c *gin.Context, orch *orchestrator.Orchestrator) {
	product := c.Param("product")
	comps, err := orch.Competitors(product)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"product":     product,
		"competitors": comps,
		"count":       len(comps),
	})
}
