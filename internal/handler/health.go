package handler

import (
	"net/http"

	"cardapio/internal/store"

	"github.com/gin-gonic/gin"
)

// Health returns a JSON health check response with the store's diagnostic
// counters. The store is in-memory, so there is no connectivity to probe.
func Health(mem *store.Memory) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		c.JSON(http.StatusOK, gin.H{
			"ok":         true,
			"itens":      mem.Itens().Contar(ctx),
			"categorias": mem.Categorias().Contar(ctx),
		})
	}
}
