package handler

import (
	"strconv"

	"cardapio/internal/apierror"
	"cardapio/internal/dto"
	"cardapio/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoriasHandler struct{ svc service.CategoriaService }

func NewCategoriasHandler(svc service.CategoriaService) *CategoriasHandler {
	return &CategoriasHandler{svc: svc}
}

// categoriaID coage o parâmetro de rota para inteiro positivo.
func categoriaID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondValidation(c, []apierror.FieldError{{Campo: "id", Mensagem: "deve ser um inteiro positivo"}})
		return 0, false
	}
	return id, true
}

// Listar GET /category
func (h *CategoriasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, resp)
}

// Criar POST /category
func (h *CategoriasHandler) Criar(c *gin.Context) {
	var req dto.CriarCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, resp)
}

// ObterPorID GET /category/:id
func (h *CategoriasHandler) ObterPorID(c *gin.Context) {
	id, ok := categoriaID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObterPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, resp)
}

// Atualizar PUT /category/:id
func (h *CategoriasHandler) Atualizar(c *gin.Context) {
	id, ok := categoriaID(c)
	if !ok {
		return
	}
	var req dto.AtualizarCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, resp)
}

// Excluir DELETE /category/:id
// Não verifica itens que referenciam a categoria: a exclusão não propaga.
func (h *CategoriasHandler) Excluir(c *gin.Context) {
	id, ok := categoriaID(c)
	if !ok {
		return
	}
	msg, err := h.svc.Excluir(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"message": msg})
}
