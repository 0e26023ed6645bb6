package model

import "time"

// Categoria agrupa itens do cardápio para exibição e filtragem.
type Categoria struct {
	CategoriaID        int
	NomeCategoria      string
	DescricaoCategoria *string
	OrdemExibicao      int
	Ativa              bool
	DateCreated        time.Time
	DateModified       time.Time
}
