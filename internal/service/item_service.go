package service

import (
	"context"
	"sort"
	"time"

	"cardapio/internal/apierror"
	"cardapio/internal/dto"
	"cardapio/internal/model"
	"cardapio/internal/store"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ItemService define as operações de negócio sobre itens do cardápio.
type ItemService interface {
	Listar(ctx context.Context, categoriaID *int) ([]dto.ItemResumoResponse, error)
	Criar(ctx context.Context, req dto.CriarItemRequest) (*dto.ItemResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ItemResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarItemRequest) (*dto.ItemResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) (string, error)
}

type itemService struct {
	itens      store.ItemRepository
	categorias store.CategoriaRepository
}

func NewItemService(itens store.ItemRepository, categorias store.CategoriaRepository) ItemService {
	return &itemService{itens: itens, categorias: categorias}
}

// Listar devolve os itens projetados no subconjunto de listagem, com os
// destacados primeiro e, dentro de cada grupo, ordenados pelo nome segundo a
// colação pt-BR (acentos não caem no fim da lista como na ordenação binária).
func (s *itemService) Listar(ctx context.Context, categoriaID *int) ([]dto.ItemResumoResponse, error) {
	var itens []model.Item
	if categoriaID != nil {
		itens = s.itens.ListarPorCategoria(ctx, *categoriaID)
	} else {
		itens = s.itens.Listar(ctx)
	}

	ordenarItens(itens)

	result := make([]dto.ItemResumoResponse, 0, len(itens))
	for i := range itens {
		result = append(result, mapItemResumo(&itens[i]))
	}
	return result, nil
}

// Criar valida a referência de categoria, aplica os defaults dos campos
// omitidos e insere o item com id e timestamps gerados pelo servidor.
func (s *itemService) Criar(ctx context.Context, req dto.CriarItemRequest) (*dto.ItemResponse, error) {
	if !s.categorias.Existe(ctx, req.CategoriaID) {
		return nil, apierror.NotFound("Categoria não encontrada")
	}

	agora := time.Now().UTC()
	item := model.Item{
		ItemID:                       uuid.New(),
		NomeItem:                     req.NomeItem,
		DescricaoItem:                req.DescricaoItem,
		CategoriaID:                  req.CategoriaID,
		ImagemURL:                    req.ImagemURL,
		DisponibilidadeStatus:        model.DisponibilidadeDisponivel,
		ObservacoesDisponibilidade:   req.ObservacoesDisponibilidade,
		Destaque:                     false,
		PrecoPorPeso:                 req.PrecoPorPeso,
		PrecoPorTamanho:              mapPrecoPorTamanhoModel(req.PrecoPorTamanho),
		PrecoPorUnidade:              req.PrecoPorUnidade,
		ExibirPrecos:                 true,
		FormatoPrecoPrincipal:        req.FormatoPrecoPrincipal,
		InformacoesNutricionais:      mapInformacoesNutricionaisModel(req.InformacoesNutricionais),
		NivelDetalhamentoNutricional: model.NivelNutricionalBasico,
		NutricaoBasica:               mapNutricaoBasicaModel(req.NutricaoBasica),
		NutricaoCompleta:             mapNutricaoCompletaModel(req.NutricaoCompleta),
		DateCreated:                  agora,
		DateModified:                 agora,
	}
	if req.DisponibilidadeStatus != nil {
		item.DisponibilidadeStatus = *req.DisponibilidadeStatus
	}
	if req.Destaque != nil {
		item.Destaque = *req.Destaque
	}
	if req.ExibirPrecos != nil {
		item.ExibirPrecos = *req.ExibirPrecos
	}
	if req.NivelDetalhamentoNutricional != nil {
		item.NivelDetalhamentoNutricional = *req.NivelDetalhamentoNutricional
	}

	if err := s.itens.Adicionar(ctx, item); err != nil {
		return nil, err
	}
	return mapItem(&item), nil
}

func (s *itemService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ItemResponse, error) {
	item, ok := s.itens.ObterPorID(ctx, id)
	if !ok {
		return nil, apierror.NotFound("Item não encontrado")
	}
	return mapItem(&item), nil
}

// Atualizar substitui integralmente os campos mutáveis do item. A existência
// do item é verificada antes da existência da categoria referenciada.
func (s *itemService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarItemRequest) (*dto.ItemResponse, error) {
	atual, ok := s.itens.ObterPorID(ctx, id)
	if !ok {
		return nil, apierror.NotFound("Item não encontrado")
	}
	if !s.categorias.Existe(ctx, *req.CategoriaID) {
		return nil, apierror.NotFound("Categoria não encontrada")
	}

	atual.NomeItem = *req.NomeItem
	atual.DescricaoItem = *req.DescricaoItem
	atual.CategoriaID = *req.CategoriaID
	atual.ImagemURL = *req.ImagemURL
	atual.DisponibilidadeStatus = *req.DisponibilidadeStatus
	atual.ObservacoesDisponibilidade = *req.ObservacoesDisponibilidade
	atual.Destaque = *req.Destaque
	atual.PrecoPorPeso = req.PrecoPorPeso
	atual.PrecoPorTamanho = mapPrecoPorTamanhoModel(req.PrecoPorTamanho)
	atual.PrecoPorUnidade = req.PrecoPorUnidade
	atual.ExibirPrecos = *req.ExibirPrecos
	atual.FormatoPrecoPrincipal = req.FormatoPrecoPrincipal
	atual.InformacoesNutricionais = mapInformacoesNutricionaisModel(req.InformacoesNutricionais)
	atual.NivelDetalhamentoNutricional = *req.NivelDetalhamentoNutricional
	atual.NutricaoBasica = mapNutricaoBasicaModel(req.NutricaoBasica)
	atual.NutricaoCompleta = mapNutricaoCompletaModel(req.NutricaoCompleta)
	atual.DateModified = time.Now().UTC()

	if !s.itens.Atualizar(ctx, atual) {
		return nil, apierror.NotFound("Item não encontrado")
	}
	return mapItem(&atual), nil
}

func (s *itemService) Excluir(ctx context.Context, id uuid.UUID) (string, error) {
	if !s.itens.Remover(ctx, id) {
		return "", apierror.NotFound("Item não encontrado")
	}
	return "Item excluído com sucesso", nil
}

// ── Ordenação ─────────────────────────────────────────────────────────────────

// ordenarItens coloca os destacados antes dos demais e desempata pelo nome
// usando colação pt-BR. O collator mantém estado interno entre comparações,
// por isso é criado a cada chamada em vez de compartilhado.
func ordenarItens(itens []model.Item) {
	col := collate.New(language.BrazilianPortuguese)
	sort.SliceStable(itens, func(i, j int) bool {
		if itens[i].Destaque != itens[j].Destaque {
			return itens[i].Destaque
		}
		return col.CompareString(itens[i].NomeItem, itens[j].NomeItem) < 0
	})
}

// ── Mapeamentos model ⇄ DTO ──────────────────────────────────────────────────

func mapItem(item *model.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ItemID:                       item.ItemID.String(),
		NomeItem:                     item.NomeItem,
		DescricaoItem:                item.DescricaoItem,
		CategoriaID:                  item.CategoriaID,
		ImagemURL:                    item.ImagemURL,
		DisponibilidadeStatus:        item.DisponibilidadeStatus,
		ObservacoesDisponibilidade:   item.ObservacoesDisponibilidade,
		Destaque:                     item.Destaque,
		PrecoPorPeso:                 item.PrecoPorPeso,
		PrecoPorTamanho:              mapPrecoPorTamanhoResponse(item.PrecoPorTamanho),
		PrecoPorUnidade:              item.PrecoPorUnidade,
		ExibirPrecos:                 item.ExibirPrecos,
		FormatoPrecoPrincipal:        item.FormatoPrecoPrincipal,
		InformacoesNutricionais:      mapInformacoesNutricionaisResponse(item.InformacoesNutricionais),
		NivelDetalhamentoNutricional: item.NivelDetalhamentoNutricional,
		NutricaoBasica:               mapNutricaoBasicaResponse(item.NutricaoBasica),
		NutricaoCompleta:             mapNutricaoCompletaResponse(item.NutricaoCompleta),
		DateCreated:                  item.DateCreated,
		DateModified:                 item.DateModified,
	}
}

func mapItemResumo(item *model.Item) dto.ItemResumoResponse {
	return dto.ItemResumoResponse{
		ItemID:                item.ItemID.String(),
		NomeItem:              item.NomeItem,
		CategoriaID:           item.CategoriaID,
		ImagemURL:             item.ImagemURL,
		DisponibilidadeStatus: item.DisponibilidadeStatus,
		Destaque:              item.Destaque,
		ExibirPrecos:          item.ExibirPrecos,
		FormatoPrecoPrincipal: item.FormatoPrecoPrincipal,
		PrecoPorPeso:          item.PrecoPorPeso,
		PrecoPorTamanho:       mapPrecoPorTamanhoResponse(item.PrecoPorTamanho),
		PrecoPorUnidade:       item.PrecoPorUnidade,
	}
}

func mapPrecoPorTamanhoModel(req *dto.PrecoPorTamanhoRequest) *model.PrecoPorTamanho {
	if req == nil {
		return nil
	}
	return &model.PrecoPorTamanho{Pequeno: req.Pequeno, Medio: req.Medio, Grande: req.Grande}
}

func mapPrecoPorTamanhoResponse(p *model.PrecoPorTamanho) *dto.PrecoPorTamanhoResponse {
	if p == nil {
		return nil
	}
	return &dto.PrecoPorTamanhoResponse{Pequeno: p.Pequeno, Medio: p.Medio, Grande: p.Grande}
}

func mapInformacoesNutricionaisModel(req *dto.InformacoesNutricionaisRequest) model.InformacoesNutricionais {
	return model.InformacoesNutricionais{
		IngredientePrincipal:    req.IngredientePrincipal,
		IngredientesSecundarios: req.IngredientesSecundarios,
		Alergenicos:             req.Alergenicos,
		RestricoesAlimentares:   req.RestricoesAlimentares,
	}
}

func mapInformacoesNutricionaisResponse(info model.InformacoesNutricionais) dto.InformacoesNutricionaisResponse {
	return dto.InformacoesNutricionaisResponse{
		IngredientePrincipal:    info.IngredientePrincipal,
		IngredientesSecundarios: info.IngredientesSecundarios,
		Alergenicos:             info.Alergenicos,
		RestricoesAlimentares:   info.RestricoesAlimentares,
	}
}

func mapNutricaoBasicaModel(req *dto.NutricaoBasicaRequest) *model.NutricaoBasica {
	if req == nil {
		return nil
	}
	return &model.NutricaoBasica{Porcao: req.Porcao, Calorias: req.Calorias}
}

func mapNutricaoBasicaResponse(n *model.NutricaoBasica) *dto.NutricaoBasicaResponse {
	if n == nil {
		return nil
	}
	return &dto.NutricaoBasicaResponse{Porcao: n.Porcao, Calorias: n.Calorias}
}

func mapNutricaoCompletaModel(req *dto.NutricaoCompletaRequest) *model.NutricaoCompleta {
	if req == nil {
		return nil
	}
	return &model.NutricaoCompleta{
		Porcao:            req.Porcao,
		Calorias:          req.Calorias,
		Carboidratos:      req.Carboidratos,
		Proteinas:         req.Proteinas,
		GordurasTotais:    req.GordurasTotais,
		GordurasSaturadas: req.GordurasSaturadas,
		Acucares:          req.Acucares,
		Fibras:            req.Fibras,
		Sodio:             req.Sodio,
	}
}

func mapNutricaoCompletaResponse(n *model.NutricaoCompleta) *dto.NutricaoCompletaResponse {
	if n == nil {
		return nil
	}
	return &dto.NutricaoCompletaResponse{
		Porcao:            n.Porcao,
		Calorias:          n.Calorias,
		Carboidratos:      n.Carboidratos,
		Proteinas:         n.Proteinas,
		GordurasTotais:    n.GordurasTotais,
		GordurasSaturadas: n.GordurasSaturadas,
		Acucares:          n.Acucares,
		Fibras:            n.Fibras,
		Sodio:             n.Sodio,
	}
}
