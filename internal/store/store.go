// Package store owns todo o estado mutável do catálogo: as coleções de itens
// e categorias vivem em mapas guardados por um RWMutex compartilhado. O store
// é construído uma única vez na inicialização do processo, já semeado com as
// categorias padrão, e injetado por referência na camada de serviço.
package store

import (
	"context"
	"errors"

	"cardapio/internal/model"

	"github.com/google/uuid"
)

// ErrLimiteItens é devolvido por Adicionar quando a coleção de itens já
// atingiu o teto configurado. Não é um erro classificado da API: o handler
// genérico o converte em 500.
var ErrLimiteItens = errors.New("limite de itens do catálogo atingido")

// ItemRepository define as primitivas de acesso à coleção de itens.
// A camada de serviço depende desta interface, não da implementação em
// memória, o que permite testes unitários com stubs.
type ItemRepository interface {
	Listar(ctx context.Context) []model.Item
	ListarPorCategoria(ctx context.Context, categoriaID int) []model.Item
	ObterPorID(ctx context.Context, id uuid.UUID) (model.Item, bool)
	Existe(ctx context.Context, id uuid.UUID) bool
	Adicionar(ctx context.Context, item model.Item) error
	Atualizar(ctx context.Context, item model.Item) bool
	Remover(ctx context.Context, id uuid.UUID) bool
	Contar(ctx context.Context) int
}

// CategoriaRepository define as primitivas de acesso à coleção de categorias.
type CategoriaRepository interface {
	Listar(ctx context.Context) []model.Categoria
	ListarAtivas(ctx context.Context) []model.Categoria
	ObterPorID(ctx context.Context, id int) (model.Categoria, bool)
	Existe(ctx context.Context, id int) bool
	// Adicionar atribui o próximo id sequencial e devolve a categoria
	// persistida. O contador nunca reaproveita ids, mesmo após exclusões.
	Adicionar(ctx context.Context, c model.Categoria) model.Categoria
	Atualizar(ctx context.Context, c model.Categoria) bool
	Remover(ctx context.Context, id int) bool
	Contar(ctx context.Context) int
}
