package store

import (
	"context"
	"testing"

	"cardapio/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemorySemeiaCategoriasPadrao(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory(0)
	cats := mem.Categorias()

	assert.Equal(t, 5, cats.Contar(ctx))

	for id := 1; id <= 5; id++ {
		c, ok := cats.ObterPorID(ctx, id)
		require.True(t, ok, "categoria semeada %d ausente", id)
		assert.True(t, c.Ativa)
		assert.Equal(t, id, c.OrdemExibicao)
		assert.NotEmpty(t, c.NomeCategoria)
	}

	bolos, _ := cats.ObterPorID(ctx, 1)
	assert.Equal(t, "Bolos", bolos.NomeCategoria)
}

func TestCategoriaIDSequencialSemReuso(t *testing.T) {
	ctx := context.Background()
	cats := NewMemory(0).Categorias()

	primeira := cats.Adicionar(ctx, model.Categoria{NomeCategoria: "Especiais", OrdemExibicao: 1, Ativa: true})
	assert.Equal(t, 6, primeira.CategoriaID)

	require.True(t, cats.Remover(ctx, primeira.CategoriaID))

	// O contador é compartilhado e monotônico: o id 6 nunca é reaproveitado.
	segunda := cats.Adicionar(ctx, model.Categoria{NomeCategoria: "Sazonais", OrdemExibicao: 2, Ativa: true})
	assert.Equal(t, 7, segunda.CategoriaID)
}

func TestAdicionarItemRespeitaTeto(t *testing.T) {
	ctx := context.Background()
	itens := NewMemory(2).Itens()

	require.NoError(t, itens.Adicionar(ctx, model.Item{ItemID: uuid.New(), NomeItem: "Brigadeiro", CategoriaID: 3}))
	require.NoError(t, itens.Adicionar(ctx, model.Item{ItemID: uuid.New(), NomeItem: "Beijinho", CategoriaID: 3}))

	err := itens.Adicionar(ctx, model.Item{ItemID: uuid.New(), NomeItem: "Quindim", CategoriaID: 3})
	assert.ErrorIs(t, err, ErrLimiteItens)
	assert.Equal(t, 2, itens.Contar(ctx))
}

func TestItemCRUD(t *testing.T) {
	ctx := context.Background()
	itens := NewMemory(0).Itens()

	id := uuid.New()
	require.NoError(t, itens.Adicionar(ctx, model.Item{ItemID: id, NomeItem: "Quindim", CategoriaID: 3}))

	obtido, ok := itens.ObterPorID(ctx, id)
	require.True(t, ok)
	assert.Equal(t, "Quindim", obtido.NomeItem)
	assert.True(t, itens.Existe(ctx, id))

	obtido.NomeItem = "Quindim de Coco"
	assert.True(t, itens.Atualizar(ctx, obtido))
	atualizado, _ := itens.ObterPorID(ctx, id)
	assert.Equal(t, "Quindim de Coco", atualizado.NomeItem)

	assert.False(t, itens.Atualizar(ctx, model.Item{ItemID: uuid.New()}))
	assert.False(t, itens.Remover(ctx, uuid.New()))
	assert.True(t, itens.Remover(ctx, id))
	assert.False(t, itens.Existe(ctx, id))
}

func TestListarPorCategoriaFiltraLinearmente(t *testing.T) {
	ctx := context.Background()
	itens := NewMemory(0).Itens()

	require.NoError(t, itens.Adicionar(ctx, model.Item{ItemID: uuid.New(), NomeItem: "Bolo de Cenoura", CategoriaID: 1}))
	require.NoError(t, itens.Adicionar(ctx, model.Item{ItemID: uuid.New(), NomeItem: "Torta de Limão", CategoriaID: 2}))
	require.NoError(t, itens.Adicionar(ctx, model.Item{ItemID: uuid.New(), NomeItem: "Bolo de Fubá", CategoriaID: 1}))

	daCategoria := itens.ListarPorCategoria(ctx, 1)
	assert.Len(t, daCategoria, 2)
	for _, item := range daCategoria {
		assert.Equal(t, 1, item.CategoriaID)
	}

	assert.Empty(t, itens.ListarPorCategoria(ctx, 99))
	assert.Len(t, itens.Listar(ctx), 3)
}

func TestListarAtivasIgnoraInativas(t *testing.T) {
	ctx := context.Background()
	cats := NewMemory(0).Categorias()

	inativa, _ := cats.ObterPorID(ctx, 2)
	inativa.Ativa = false
	require.True(t, cats.Atualizar(ctx, inativa))

	ativas := cats.ListarAtivas(ctx)
	assert.Len(t, ativas, 4)
	for _, c := range ativas {
		assert.NotEqual(t, 2, c.CategoriaID)
	}
	// Listar continua devolvendo todas, inclusive inativas.
	assert.Len(t, cats.Listar(ctx), 5)
}
