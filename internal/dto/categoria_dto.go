package dto

import "time"

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CriarCategoriaRequest struct {
	NomeCategoria      string  `json:"nome_categoria"      validate:"required,min=1,max=30"`
	DescricaoCategoria *string `json:"descricao_categoria" validate:"omitempty,max=100"`
	OrdemExibicao      *int    `json:"ordem_exibicao"      validate:"omitnil,gt=0"`
	Ativa              *bool   `json:"ativa"`
}

// AtualizarCategoriaRequest segue o contrato de substituição integral: toda
// requisição de atualização reenvia a entidade completa, por isso todos os
// campos são obrigatórios (descricao_categoria continua anulável).
type AtualizarCategoriaRequest struct {
	NomeCategoria      *string `json:"nome_categoria"      validate:"required,min=1,max=30"`
	DescricaoCategoria *string `json:"descricao_categoria" validate:"omitempty,max=100"`
	OrdemExibicao      *int    `json:"ordem_exibicao"      validate:"required,gt=0"`
	Ativa              *bool   `json:"ativa"               validate:"required"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type CategoriaResponse struct {
	CategoriaID        int       `json:"categoria_id"`
	NomeCategoria      string    `json:"nome_categoria"`
	DescricaoCategoria *string   `json:"descricao_categoria"`
	OrdemExibicao      int       `json:"ordem_exibicao"`
	Ativa              bool      `json:"ativa"`
	DateCreated        time.Time `json:"dateCreated"`
	DateModified       time.Time `json:"dateModified"`
}

// CategoriaResumoResponse é o subconjunto de campos da listagem.
type CategoriaResumoResponse struct {
	CategoriaID        int     `json:"categoria_id"`
	NomeCategoria      string  `json:"nome_categoria"`
	DescricaoCategoria *string `json:"descricao_categoria"`
	OrdemExibicao      int     `json:"ordem_exibicao"`
}
