package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS libera o acesso do front do cardápio servido em outra origem.
// O serviço não autentica (isso fica num gateway externo), então só os
// cabeçalhos de conteúdo e rastreio entram na lista permitida.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		c.Header("Access-Control-Expose-Headers", "X-Request-ID")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
