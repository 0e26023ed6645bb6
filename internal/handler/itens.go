package handler

import (
	"strconv"

	"cardapio/internal/apierror"
	"cardapio/internal/dto"
	"cardapio/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ItensHandler struct{ svc service.ItemService }

func NewItensHandler(svc service.ItemService) *ItensHandler {
	return &ItensHandler{svc: svc}
}

// itemID valida o parâmetro de rota como UUID. Formato inválido é erro de
// validação (400), não NOT_FOUND.
func itemID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondValidation(c, []apierror.FieldError{{Campo: "id", Mensagem: "deve ser um UUID válido"}})
		return uuid.Nil, false
	}
	return id, true
}

// Listar GET /item?category_id=N
func (h *ItensHandler) Listar(c *gin.Context) {
	var categoriaID *int
	if raw := c.Query("category_id"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondValidation(c, []apierror.FieldError{{Campo: "category_id", Mensagem: "deve ser um inteiro positivo"}})
			return
		}
		categoriaID = &n
	}
	resp, err := h.svc.Listar(c.Request.Context(), categoriaID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, resp)
}

// Criar POST /item
func (h *ItensHandler) Criar(c *gin.Context) {
	var req dto.CriarItemRequest
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

// ObterPorID GET /item/:id
func (h *ItensHandler) ObterPorID(c *gin.Context) {
	id, ok := itemID(c)
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

// Atualizar PUT /item/:id
func (h *ItensHandler) Atualizar(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	var req dto.AtualizarItemRequest
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

// Excluir DELETE /item/:id
func (h *ItensHandler) Excluir(c *gin.Context) {
	id, ok := itemID(c)
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
