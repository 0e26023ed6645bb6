package store

import (
	"context"
	"sync"
	"time"

	"cardapio/internal/model"

	"github.com/google/uuid"
)

// MaxItensPadrao é o teto de itens usado quando a configuração não define um.
const MaxItensPadrao = 500

// categoriasPadrao são semeadas na construção do store, com ids 1..5.
// O contador sequencial parte do valor seguinte ao da última semente.
var categoriasPadrao = []struct {
	nome  string
	ordem int
}{
	{"Bolos", 1},
	{"Tortas", 2},
	{"Doces", 3},
	{"Salgados", 4},
	{"Bebidas", 5},
}

// Memory é o dono exclusivo das duas coleções do catálogo. Um único RWMutex
// guarda ambas: o serviço encadeia verificações de existência entre entidades
// (item → categoria) e um lock único evita intercalações entre as coleções.
type Memory struct {
	mu                 sync.RWMutex
	itens              map[uuid.UUID]model.Item
	categorias         map[int]model.Categoria
	proximaCategoriaID int
	maxItens           int
}

// NewMemory constrói o store já semeado com as categorias padrão.
// maxItens <= 0 aplica MaxItensPadrao.
func NewMemory(maxItens int) *Memory {
	if maxItens <= 0 {
		maxItens = MaxItensPadrao
	}
	m := &Memory{
		itens:              make(map[uuid.UUID]model.Item),
		categorias:         make(map[int]model.Categoria),
		proximaCategoriaID: 1,
		maxItens:           maxItens,
	}
	agora := time.Now().UTC()
	for _, c := range categoriasPadrao {
		id := m.proximaCategoriaID
		m.proximaCategoriaID++
		m.categorias[id] = model.Categoria{
			CategoriaID:   id,
			NomeCategoria: c.nome,
			OrdemExibicao: c.ordem,
			Ativa:         true,
			DateCreated:   agora,
			DateModified:  agora,
		}
	}
	return m
}

// Itens devolve a visão da coleção de itens.
func (m *Memory) Itens() ItemRepository { return &itemStore{m} }

// Categorias devolve a visão da coleção de categorias.
func (m *Memory) Categorias() CategoriaRepository { return &categoriaStore{m} }

// ── Itens ─────────────────────────────────────────────────────────────────────

type itemStore struct{ m *Memory }

func (s *itemStore) Listar(_ context.Context) []model.Item {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	result := make([]model.Item, 0, len(s.m.itens))
	for _, item := range s.m.itens {
		result = append(result, item)
	}
	return result
}

func (s *itemStore) ListarPorCategoria(_ context.Context, categoriaID int) []model.Item {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	result := make([]model.Item, 0)
	for _, item := range s.m.itens {
		if item.CategoriaID == categoriaID {
			result = append(result, item)
		}
	}
	return result
}

func (s *itemStore) ObterPorID(_ context.Context, id uuid.UUID) (model.Item, bool) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	item, ok := s.m.itens[id]
	return item, ok
}

func (s *itemStore) Existe(_ context.Context, id uuid.UUID) bool {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	_, ok := s.m.itens[id]
	return ok
}

func (s *itemStore) Adicionar(_ context.Context, item model.Item) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if len(s.m.itens) >= s.m.maxItens {
		return ErrLimiteItens
	}
	s.m.itens[item.ItemID] = item
	return nil
}

func (s *itemStore) Atualizar(_ context.Context, item model.Item) bool {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.itens[item.ItemID]; !ok {
		return false
	}
	s.m.itens[item.ItemID] = item
	return true
}

func (s *itemStore) Remover(_ context.Context, id uuid.UUID) bool {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.itens[id]; !ok {
		return false
	}
	delete(s.m.itens, id)
	return true
}

func (s *itemStore) Contar(_ context.Context) int {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	return len(s.m.itens)
}

// ── Categorias ────────────────────────────────────────────────────────────────

type categoriaStore struct{ m *Memory }

func (s *categoriaStore) Listar(_ context.Context) []model.Categoria {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	result := make([]model.Categoria, 0, len(s.m.categorias))
	for _, c := range s.m.categorias {
		result = append(result, c)
	}
	return result
}

func (s *categoriaStore) ListarAtivas(_ context.Context) []model.Categoria {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	result := make([]model.Categoria, 0)
	for _, c := range s.m.categorias {
		if c.Ativa {
			result = append(result, c)
		}
	}
	return result
}

func (s *categoriaStore) ObterPorID(_ context.Context, id int) (model.Categoria, bool) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	c, ok := s.m.categorias[id]
	return c, ok
}

func (s *categoriaStore) Existe(_ context.Context, id int) bool {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	_, ok := s.m.categorias[id]
	return ok
}

func (s *categoriaStore) Adicionar(_ context.Context, c model.Categoria) model.Categoria {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	c.CategoriaID = s.m.proximaCategoriaID
	s.m.proximaCategoriaID++
	s.m.categorias[c.CategoriaID] = c
	return c
}

func (s *categoriaStore) Atualizar(_ context.Context, c model.Categoria) bool {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.categorias[c.CategoriaID]; !ok {
		return false
	}
	s.m.categorias[c.CategoriaID] = c
	return true
}

func (s *categoriaStore) Remover(_ context.Context, id int) bool {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.categorias[id]; !ok {
		return false
	}
	delete(s.m.categorias, id)
	return true
}

func (s *categoriaStore) Contar(_ context.Context) int {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	return len(s.m.categorias)
}
