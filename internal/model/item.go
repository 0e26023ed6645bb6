package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Valores fechados aceitos pelos campos enumerados de Item.
const (
	DisponibilidadeDisponivel   = "disponivel"
	DisponibilidadeIndisponivel = "indisponivel"
	DisponibilidadeLimitado     = "limitado"

	FormatoPrecoPeso    = "peso"
	FormatoPrecoTamanho = "tamanho"
	FormatoPrecoUnidade = "unidade"

	NivelNutricionalNenhum   = "nenhum"
	NivelNutricionalBasico   = "basico"
	NivelNutricionalCompleto = "completo"
)

// Item representa um produto vendável do cardápio. Os três grupos de preço
// são independentes: qualquer subconjunto pode estar preenchido, inclusive
// nenhum. FormatoPrecoPrincipal não é validado contra os preços preenchidos.
type Item struct {
	ItemID                       uuid.UUID
	NomeItem                     string
	DescricaoItem                string
	CategoriaID                  int
	ImagemURL                    string
	DisponibilidadeStatus        string
	ObservacoesDisponibilidade   string
	Destaque                     bool
	PrecoPorPeso                 *decimal.Decimal
	PrecoPorTamanho              *PrecoPorTamanho
	PrecoPorUnidade              *decimal.Decimal
	ExibirPrecos                 bool
	FormatoPrecoPrincipal        *string
	InformacoesNutricionais      InformacoesNutricionais
	NivelDetalhamentoNutricional string
	NutricaoBasica               *NutricaoBasica
	NutricaoCompleta             *NutricaoCompleta
	DateCreated                  time.Time
	DateModified                 time.Time
}

// PrecoPorTamanho guarda os preços por tamanho de porção.
type PrecoPorTamanho struct {
	Pequeno *decimal.Decimal
	Medio   *decimal.Decimal
	Grande  *decimal.Decimal
}

// InformacoesNutricionais é o bloco de metadados de composição do item.
// Apenas o ingrediente principal é obrigatório.
type InformacoesNutricionais struct {
	IngredientePrincipal    string
	IngredientesSecundarios []string
	Alergenicos             []string
	RestricoesAlimentares   []string
}

// NutricaoBasica é exibida quando o nível de detalhamento é "basico".
type NutricaoBasica struct {
	Porcao   string
	Calorias float64
}

// NutricaoCompleta é exibida quando o nível de detalhamento é "completo".
// Valores em gramas, exceto Sodio (miligramas) e Calorias (kcal).
type NutricaoCompleta struct {
	Porcao            string
	Calorias          float64
	Carboidratos      float64
	Proteinas         float64
	GordurasTotais    float64
	GordurasSaturadas float64
	Acucares          float64
	Fibras            float64
	Sodio             float64
}
