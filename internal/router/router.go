package router

import (
	"cardapio/internal/config"
	"cardapio/internal/handler"
	"cardapio/internal/middleware"
	"cardapio/internal/service"
	"cardapio/internal/store"

	"github.com/gin-gonic/gin"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Store
func New(cfg *config.Config, mem *store.Memory) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Services ─────────────────────────────────────────────────────────────
	categoriaSvc := service.NewCategoriaService(mem.Categorias())
	itemSvc := service.NewItemService(mem.Itens(), mem.Categorias())

	// ── Handlers ─────────────────────────────────────────────────────────────
	itensH := handler.NewItensHandler(itemSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(mem))

	item := r.Group("/item")
	{
		item.GET("", itensH.Listar)
		item.POST("", itensH.Criar)
		item.GET("/:id", itensH.ObterPorID)
		item.PUT("/:id", itensH.Atualizar)
		item.DELETE("/:id", itensH.Excluir)
	}

	category := r.Group("/category")
	{
		category.GET("", categoriasH.Listar)
		category.POST("", categoriasH.Criar)
		category.GET("/:id", categoriasH.ObterPorID)
		category.PUT("/:id", categoriasH.Atualizar)
		category.DELETE("/:id", categoriasH.Excluir)
	}

	return r
}
