package service

import (
	"context"
	"sort"
	"time"

	"cardapio/internal/apierror"
	"cardapio/internal/dto"
	"cardapio/internal/model"
	"cardapio/internal/store"
)

// CategoriaService define as operações de negócio sobre categorias.
type CategoriaService interface {
	Listar(ctx context.Context) ([]dto.CategoriaResumoResponse, error)
	Criar(ctx context.Context, req dto.CriarCategoriaRequest) (*dto.CategoriaResponse, error)
	ObterPorID(ctx context.Context, id int) (*dto.CategoriaResponse, error)
	Atualizar(ctx context.Context, id int, req dto.AtualizarCategoriaRequest) (*dto.CategoriaResponse, error)
	Excluir(ctx context.Context, id int) (string, error)
}

type categoriaService struct {
	repo store.CategoriaRepository
}

func NewCategoriaService(repo store.CategoriaRepository) CategoriaService {
	return &categoriaService{repo: repo}
}

func mapCategoria(c model.Categoria) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{
		CategoriaID:        c.CategoriaID,
		NomeCategoria:      c.NomeCategoria,
		DescricaoCategoria: c.DescricaoCategoria,
		OrdemExibicao:      c.OrdemExibicao,
		Ativa:              c.Ativa,
		DateCreated:        c.DateCreated,
		DateModified:       c.DateModified,
	}
}

// Listar devolve somente as categorias ativas, ordenadas por ordem de
// exibição ascendente, projetadas no subconjunto de listagem.
func (s *categoriaService) Listar(ctx context.Context) ([]dto.CategoriaResumoResponse, error) {
	ativas := s.repo.ListarAtivas(ctx)
	ordenarCategorias(ativas)
	result := make([]dto.CategoriaResumoResponse, 0, len(ativas))
	for _, c := range ativas {
		result = append(result, dto.CategoriaResumoResponse{
			CategoriaID:        c.CategoriaID,
			NomeCategoria:      c.NomeCategoria,
			DescricaoCategoria: c.DescricaoCategoria,
			OrdemExibicao:      c.OrdemExibicao,
		})
	}
	return result, nil
}

func (s *categoriaService) Criar(ctx context.Context, req dto.CriarCategoriaRequest) (*dto.CategoriaResponse, error) {
	agora := time.Now().UTC()
	c := model.Categoria{
		NomeCategoria:      req.NomeCategoria,
		DescricaoCategoria: req.DescricaoCategoria,
		OrdemExibicao:      1,
		Ativa:              true,
		DateCreated:        agora,
		DateModified:       agora,
	}
	if req.OrdemExibicao != nil {
		c.OrdemExibicao = *req.OrdemExibicao
	}
	if req.Ativa != nil {
		c.Ativa = *req.Ativa
	}
	criada := s.repo.Adicionar(ctx, c)
	return mapCategoria(criada), nil
}

func (s *categoriaService) ObterPorID(ctx context.Context, id int) (*dto.CategoriaResponse, error) {
	c, ok := s.repo.ObterPorID(ctx, id)
	if !ok {
		return nil, apierror.NotFound("Categoria não encontrada")
	}
	return mapCategoria(c), nil
}

// Atualizar substitui integralmente os campos mutáveis da categoria.
// DateCreated é preservado; DateModified é renovado.
func (s *categoriaService) Atualizar(ctx context.Context, id int, req dto.AtualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	atual, ok := s.repo.ObterPorID(ctx, id)
	if !ok {
		return nil, apierror.NotFound("Categoria não encontrada")
	}

	atual.NomeCategoria = *req.NomeCategoria
	atual.DescricaoCategoria = req.DescricaoCategoria
	atual.OrdemExibicao = *req.OrdemExibicao
	atual.Ativa = *req.Ativa
	atual.DateModified = time.Now().UTC()

	if !s.repo.Atualizar(ctx, atual) {
		return nil, apierror.NotFound("Categoria não encontrada")
	}
	return mapCategoria(atual), nil
}

// Excluir remove a categoria sem verificar itens que a referenciam: itens
// órfãos mantêm o categoria_id antigo e só falham numa atualização futura.
func (s *categoriaService) Excluir(ctx context.Context, id int) (string, error) {
	if !s.repo.Remover(ctx, id) {
		return "", apierror.NotFound("Categoria não encontrada")
	}
	return "Categoria excluída com sucesso", nil
}

// ordenarCategorias ordena por ordem de exibição; empates caem no id para
// manter a listagem estável entre chamadas.
func ordenarCategorias(categorias []model.Categoria) {
	sort.Slice(categorias, func(i, j int) bool {
		if categorias[i].OrdemExibicao != categorias[j].OrdemExibicao {
			return categorias[i].OrdemExibicao < categorias[j].OrdemExibicao
		}
		return categorias[i].CategoriaID < categorias[j].CategoriaID
	})
}
