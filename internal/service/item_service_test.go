package service

import (
	"context"
	"testing"

	"cardapio/internal/dto"
	"cardapio/internal/model"
	"cardapio/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoItemService() (ItemService, *store.Memory) {
	mem := store.NewMemory(0)
	return NewItemService(mem.Itens(), mem.Categorias()), mem
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// criarItemRequest monta uma requisição mínima válida apontando para a
// categoria semeada "Doces" (id 3).
func criarItemRequest(nome string) dto.CriarItemRequest {
	return dto.CriarItemRequest{
		NomeItem:    nome,
		CategoriaID: 3,
		InformacoesNutricionais: &dto.InformacoesNutricionaisRequest{
			IngredientePrincipal: "chocolate",
		},
	}
}

func atualizarItemRequest(nome string, categoriaID int) dto.AtualizarItemRequest {
	return dto.AtualizarItemRequest{
		NomeItem:                   strPtr(nome),
		DescricaoItem:              strPtr(""),
		CategoriaID:                intPtr(categoriaID),
		ImagemURL:                  strPtr(""),
		DisponibilidadeStatus:      strPtr(model.DisponibilidadeDisponivel),
		ObservacoesDisponibilidade: strPtr(""),
		Destaque:                   boolPtr(false),
		ExibirPrecos:               boolPtr(true),
		InformacoesNutricionais: &dto.InformacoesNutricionaisRequest{
			IngredientePrincipal: "chocolate",
		},
		NivelDetalhamentoNutricional: strPtr(model.NivelNutricionalBasico),
	}
}

func TestCriarItemAplicaDefaults(t *testing.T) {
	ctx := context.Background()
	svc, _ := novoItemService()

	resp, err := svc.Criar(ctx, criarItemRequest("Brigadeiro"))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ItemID)
	_, parseErr := uuid.Parse(resp.ItemID)
	assert.NoError(t, parseErr)

	assert.Equal(t, model.DisponibilidadeDisponivel, resp.DisponibilidadeStatus)
	assert.False(t, resp.Destaque)
	assert.True(t, resp.ExibirPrecos)
	assert.Equal(t, model.NivelNutricionalBasico, resp.NivelDetalhamentoNutricional)
	assert.Nil(t, resp.FormatoPrecoPrincipal)
	assert.False(t, resp.DateCreated.IsZero())
	assert.Equal(t, resp.DateCreated, resp.DateModified)
}

func TestCriarItemCategoriaInexistente(t *testing.T) {
	ctx := context.Background()
	svc, _ := novoItemService()

	req := criarItemRequest("Brigadeiro")
	req.CategoriaID = 42
	_, err := svc.Criar(ctx, req)
	requireNotFound(t, err)
}

func TestCriarEObterRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := novoItemService()

	req := criarItemRequest("Bolo de Chocolate")
	req.DescricaoItem = "Massa fofinha com cobertura de brigadeiro"
	req.ImagemURL = "https://cdn.example.com/bolo-chocolate.jpg"
	req.Destaque = boolPtr(true)
	req.PrecoPorPeso = decPtr("89.90")
	req.PrecoPorTamanho = &dto.PrecoPorTamanhoRequest{
		Pequeno: decPtr("45.00"),
		Grande:  decPtr("120.00"),
	}
	req.FormatoPrecoPrincipal = strPtr(model.FormatoPrecoPeso)
	req.NivelDetalhamentoNutricional = strPtr(model.NivelNutricionalCompleto)
	req.NutricaoCompleta = &dto.NutricaoCompletaRequest{
		Porcao:       "fatia de 100g",
		Calorias:     380,
		Carboidratos: 52,
		Proteinas:    5,
	}
	req.InformacoesNutricionais.Alergenicos = []string{"gluten", "lactose", "ovos"}
	req.InformacoesNutricionais.RestricoesAlimentares = []string{"vegetariano"}

	criado, err := svc.Criar(ctx, req)
	require.NoError(t, err)

	obtido, err := svc.ObterPorID(ctx, uuid.MustParse(criado.ItemID))
	require.NoError(t, err)

	assert.Equal(t, criado.ItemID, obtido.ItemID)
	assert.Equal(t, "Bolo de Chocolate", obtido.NomeItem)
	assert.Equal(t, 3, obtido.CategoriaID)
	assert.True(t, obtido.Destaque)
	require.NotNil(t, obtido.PrecoPorPeso)
	assert.True(t, obtido.PrecoPorPeso.Equal(decimal.RequireFromString("89.90")))
	require.NotNil(t, obtido.PrecoPorTamanho)
	require.NotNil(t, obtido.PrecoPorTamanho.Pequeno)
	assert.Nil(t, obtido.PrecoPorTamanho.Medio)
	require.NotNil(t, obtido.FormatoPrecoPrincipal)
	assert.Equal(t, model.FormatoPrecoPeso, *obtido.FormatoPrecoPrincipal)
	assert.Equal(t, model.NivelNutricionalCompleto, obtido.NivelDetalhamentoNutricional)
	require.NotNil(t, obtido.NutricaoCompleta)
	assert.Equal(t, float64(380), obtido.NutricaoCompleta.Calorias)
	assert.Equal(t, []string{"gluten", "lactose", "ovos"}, obtido.InformacoesNutricionais.Alergenicos)
}

func TestCriarItemComNutricaoBasica(t *testing.T) {
	ctx := context.Background()
	svc, _ := novoItemService()

	req := criarItemRequest("Beijinho")
	req.NutricaoBasica = &dto.NutricaoBasicaRequest{Porcao: "unidade de 20g", Calorias: 92}

	criado, err := svc.Criar(ctx, req)
	require.NoError(t, err)

	obtido, err := svc.ObterPorID(ctx, uuid.MustParse(criado.ItemID))
	require.NoError(t, err)
	require.NotNil(t, obtido.NutricaoBasica)
	assert.Equal(t, "unidade de 20g", obtido.NutricaoBasica.Porcao)
	assert.Equal(t, float64(92), obtido.NutricaoBasica.Calorias)
	assert.Nil(t, obtido.NutricaoCompleta)
}

func TestListarOrdenaDestaquesENomesComColacao(t *testing.T) {
	ctx := context.Background()
	svc, _ := novoItemService()

	zabaione := criarItemRequest("Zabaione")
	oleo := criarItemRequest("Óleo")
	pave := criarItemRequest("Pavê")
	pave.Destaque = boolPtr(true)

	for _, req := range []dto.CriarItemRequest{zabaione, oleo, pave} {
		_, err := svc.Criar(ctx, req)
		require.NoError(t, err)
	}

	lista, err := svc.Listar(ctx, nil)
	require.NoError(t, err)
	require.Len(t, lista, 3)

	// Destaque primeiro; depois ordem alfabética com colação pt-BR, na qual
	// "Óleo" vem antes de "Zabaione" apesar do byte inicial maior.
	assert.Equal(t, "Pavê", lista[0].NomeItem)
	assert.Equal(t, "Óleo", lista[1].NomeItem)
	assert.Equal(t, "Zabaione", lista[2].NomeItem)
}

func TestListarComFiltroDeCategoria(t *testing.T) {
	ctx := context.Background()
	svc, _ := novoItemService()

	doce := criarItemRequest("Brigadeiro")
	bolo := criarItemRequest("Bolo de Fubá")
	bolo.CategoriaID = 1

	_, err := svc.Criar(ctx, doce)
	require.NoError(t, err)
	_, err = svc.Criar(ctx, bolo)
	require.NoError(t, err)

	lista, err := svc.Listar(ctx, intPtr(1))
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, "Bolo de Fubá", lista[0].NomeItem)

	vazia, err := svc.Listar(ctx, intPtr(99))
	require.NoError(t, err)
	assert.Empty(t, vazia)
}

func TestAtualizarItemSubstituiIntegralmente(t *testing.T) {
	ctx := context.Background()
	svc, _ := novoItemService()

	req := criarItemRequest("Brigadeiro")
	req.Destaque = boolPtr(true)
	req.PrecoPorUnidade = decPtr("4.50")
	criado, err := svc.Criar(ctx, req)
	require.NoError(t, err)
	require.True(t, criado.Destaque)

	// A atualização reenvia destaque=false e omite o preço por unidade:
	// ambos assumem o valor enviado, não o anterior.
	atualizado, err := svc.Atualizar(ctx, uuid.MustParse(criado.ItemID), atualizarItemRequest("Brigadeiro Gourmet", 3))
	require.NoError(t, err)
	assert.Equal(t, "Brigadeiro Gourmet", atualizado.NomeItem)
	assert.False(t, atualizado.Destaque)
	assert.Nil(t, atualizado.PrecoPorUnidade)
	assert.Equal(t, criado.DateCreated, atualizado.DateCreated)
}

func TestAtualizarVerificaItemAntesDaCategoria(t *testing.T) {
	ctx := context.Background()
	svc, _ := novoItemService()

	// Item e categoria inexistentes: o erro deve apontar o item.
	_, err := svc.Atualizar(ctx, uuid.New(), atualizarItemRequest("X", 42))
	requireNotFound(t, err)
	assert.Contains(t, err.Error(), "Item")

	criado, err := svc.Criar(ctx, criarItemRequest("Brigadeiro"))
	require.NoError(t, err)

	_, err = svc.Atualizar(ctx, uuid.MustParse(criado.ItemID), atualizarItemRequest("Brigadeiro", 42))
	requireNotFound(t, err)
	assert.Contains(t, err.Error(), "Categoria")
}

func TestExcluirItem(t *testing.T) {
	ctx := context.Background()
	svc, _ := novoItemService()

	_, err := svc.Excluir(ctx, uuid.New())
	requireNotFound(t, err)

	criado, err := svc.Criar(ctx, criarItemRequest("Brigadeiro"))
	require.NoError(t, err)

	msg, err := svc.Excluir(ctx, uuid.MustParse(criado.ItemID))
	require.NoError(t, err)
	assert.NotEmpty(t, msg)

	_, err = svc.ObterPorID(ctx, uuid.MustParse(criado.ItemID))
	requireNotFound(t, err)
}

func TestExcluirCategoriaNaoPropagaParaItens(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory(0)
	itemSvc := NewItemService(mem.Itens(), mem.Categorias())
	catSvc := NewCategoriaService(mem.Categorias())

	criado, err := itemSvc.Criar(ctx, criarItemRequest("Brigadeiro"))
	require.NoError(t, err)

	_, err = catSvc.Excluir(ctx, 3)
	require.NoError(t, err)

	// O item órfão continua legível com o categoria_id antigo.
	obtido, err := itemSvc.ObterPorID(ctx, uuid.MustParse(criado.ItemID))
	require.NoError(t, err)
	assert.Equal(t, 3, obtido.CategoriaID)

	// Mas uma atualização integral volta a exigir categoria existente.
	_, err = itemSvc.Atualizar(ctx, uuid.MustParse(criado.ItemID), atualizarItemRequest("Brigadeiro", 3))
	requireNotFound(t, err)
}

func TestCriarItemPropagaErroDeCapacidade(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory(1)
	svc := NewItemService(mem.Itens(), mem.Categorias())

	_, err := svc.Criar(ctx, criarItemRequest("Brigadeiro"))
	require.NoError(t, err)

	// O teto do store não é um erro classificado da API.
	_, err = svc.Criar(ctx, criarItemRequest("Beijinho"))
	require.ErrorIs(t, err, store.ErrLimiteItens)
}
