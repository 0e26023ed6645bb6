package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarItemRequest struct {
	NomeItem                     string                          `json:"nome_item"                      validate:"required,min=1,max=50"`
	DescricaoItem                string                          `json:"descricao_item"                 validate:"max=200"`
	CategoriaID                  int                             `json:"categoria_id"                   validate:"required,gt=0"`
	ImagemURL                    string                          `json:"imagem_url"                     validate:"omitempty,url"`
	DisponibilidadeStatus        *string                         `json:"disponibilidade_status"         validate:"omitnil,oneof=disponivel indisponivel limitado"`
	ObservacoesDisponibilidade   string                          `json:"observacoes_disponibilidade"    validate:"max=100"`
	Destaque                     *bool                           `json:"destaque"`
	PrecoPorPeso                 *decimal.Decimal                `json:"preco_por_peso"                 validate:"omitnil,gt=0"`
	PrecoPorTamanho              *PrecoPorTamanhoRequest         `json:"preco_por_tamanho"`
	PrecoPorUnidade              *decimal.Decimal                `json:"preco_por_unidade"              validate:"omitnil,gt=0"`
	ExibirPrecos                 *bool                           `json:"exibir_precos"`
	FormatoPrecoPrincipal        *string                         `json:"formato_preco_principal"        validate:"omitnil,oneof=peso tamanho unidade"`
	InformacoesNutricionais      *InformacoesNutricionaisRequest `json:"informacoes_nutricionais"       validate:"required"`
	NivelDetalhamentoNutricional *string                         `json:"nivel_detalhamento_nutricional" validate:"omitnil,oneof=nenhum basico completo"`
	NutricaoBasica               *NutricaoBasicaRequest          `json:"nutricao_basica"`
	NutricaoCompleta             *NutricaoCompletaRequest        `json:"nutricao_completa"`
}

// AtualizarItemRequest segue o contrato de substituição integral: todos os
// campos são obrigatórios, inclusive os que o chamador não alterou. Campos
// anuláveis (preços, formato principal e blocos de nutrição) podem vir nulos,
// mas a ausência de um campo obrigatório é rejeitada.
type AtualizarItemRequest struct {
	NomeItem                     *string                         `json:"nome_item"                      validate:"required,min=1,max=50"`
	DescricaoItem                *string                         `json:"descricao_item"                 validate:"required,max=200"`
	CategoriaID                  *int                            `json:"categoria_id"                   validate:"required,gt=0"`
	ImagemURL                    *string                         `json:"imagem_url"                     validate:"required,omitempty,url"`
	DisponibilidadeStatus        *string                         `json:"disponibilidade_status"         validate:"required,oneof=disponivel indisponivel limitado"`
	ObservacoesDisponibilidade   *string                         `json:"observacoes_disponibilidade"    validate:"required,max=100"`
	Destaque                     *bool                           `json:"destaque"                       validate:"required"`
	PrecoPorPeso                 *decimal.Decimal                `json:"preco_por_peso"                 validate:"omitnil,gt=0"`
	PrecoPorTamanho              *PrecoPorTamanhoRequest         `json:"preco_por_tamanho"`
	PrecoPorUnidade              *decimal.Decimal                `json:"preco_por_unidade"              validate:"omitnil,gt=0"`
	ExibirPrecos                 *bool                           `json:"exibir_precos"                  validate:"required"`
	FormatoPrecoPrincipal        *string                         `json:"formato_preco_principal"        validate:"omitnil,oneof=peso tamanho unidade"`
	InformacoesNutricionais      *InformacoesNutricionaisRequest `json:"informacoes_nutricionais"       validate:"required"`
	NivelDetalhamentoNutricional *string                         `json:"nivel_detalhamento_nutricional" validate:"required,oneof=nenhum basico completo"`
	NutricaoBasica               *NutricaoBasicaRequest          `json:"nutricao_basica"`
	NutricaoCompleta             *NutricaoCompletaRequest        `json:"nutricao_completa"`
}

type PrecoPorTamanhoRequest struct {
	Pequeno *decimal.Decimal `json:"pequeno" validate:"omitnil,gt=0"`
	Medio   *decimal.Decimal `json:"medio"   validate:"omitnil,gt=0"`
	Grande  *decimal.Decimal `json:"grande"  validate:"omitnil,gt=0"`
}

type InformacoesNutricionaisRequest struct {
	IngredientePrincipal    string   `json:"ingrediente_principal"    validate:"required,oneof=chocolate morango baunilha coco limao leite_ninho doce_de_leite amendoim nozes frutas_vermelhas maracuja cenoura"`
	IngredientesSecundarios []string `json:"ingredientes_secundarios" validate:"omitempty,dive,oneof=chocolate morango baunilha coco limao leite_ninho doce_de_leite amendoim nozes frutas_vermelhas maracuja cenoura"`
	Alergenicos             []string `json:"alergenicos"              validate:"omitempty,dive,oneof=gluten lactose ovos amendoim castanhas soja"`
	RestricoesAlimentares   []string `json:"restricoes_alimentares"   validate:"omitempty,dive,oneof=vegetariano vegano sem_gluten sem_lactose sem_acucar low_carb"`
}

type NutricaoBasicaRequest struct {
	Porcao   string  `json:"porcao"   validate:"max=50"`
	Calorias float64 `json:"calorias" validate:"min=0"`
}

type NutricaoCompletaRequest struct {
	Porcao            string  `json:"porcao"             validate:"max=50"`
	Calorias          float64 `json:"calorias"           validate:"min=0"`
	Carboidratos      float64 `json:"carboidratos"       validate:"min=0"`
	Proteinas         float64 `json:"proteinas"          validate:"min=0"`
	GordurasTotais    float64 `json:"gorduras_totais"    validate:"min=0"`
	GordurasSaturadas float64 `json:"gorduras_saturadas" validate:"min=0"`
	Acucares          float64 `json:"acucares"           validate:"min=0"`
	Fibras            float64 `json:"fibras"             validate:"min=0"`
	Sodio             float64 `json:"sodio"              validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemResponse struct {
	ItemID                       string                           `json:"item_id"`
	NomeItem                     string                           `json:"nome_item"`
	DescricaoItem                string                           `json:"descricao_item"`
	CategoriaID                  int                              `json:"categoria_id"`
	ImagemURL                    string                           `json:"imagem_url"`
	DisponibilidadeStatus        string                           `json:"disponibilidade_status"`
	ObservacoesDisponibilidade   string                           `json:"observacoes_disponibilidade"`
	Destaque                     bool                             `json:"destaque"`
	PrecoPorPeso                 *decimal.Decimal                 `json:"preco_por_peso"`
	PrecoPorTamanho              *PrecoPorTamanhoResponse         `json:"preco_por_tamanho"`
	PrecoPorUnidade              *decimal.Decimal                 `json:"preco_por_unidade"`
	ExibirPrecos                 bool                             `json:"exibir_precos"`
	FormatoPrecoPrincipal        *string                          `json:"formato_preco_principal"`
	InformacoesNutricionais      InformacoesNutricionaisResponse  `json:"informacoes_nutricionais"`
	NivelDetalhamentoNutricional string                           `json:"nivel_detalhamento_nutricional"`
	NutricaoBasica               *NutricaoBasicaResponse          `json:"nutricao_basica"`
	NutricaoCompleta             *NutricaoCompletaResponse        `json:"nutricao_completa"`
	DateCreated                  time.Time                        `json:"dateCreated"`
	DateModified                 time.Time                        `json:"dateModified"`
}

type PrecoPorTamanhoResponse struct {
	Pequeno *decimal.Decimal `json:"pequeno"`
	Medio   *decimal.Decimal `json:"medio"`
	Grande  *decimal.Decimal `json:"grande"`
}

type InformacoesNutricionaisResponse struct {
	IngredientePrincipal    string   `json:"ingrediente_principal"`
	IngredientesSecundarios []string `json:"ingredientes_secundarios"`
	Alergenicos             []string `json:"alergenicos"`
	RestricoesAlimentares   []string `json:"restricoes_alimentares"`
}

type NutricaoBasicaResponse struct {
	Porcao   string  `json:"porcao"`
	Calorias float64 `json:"calorias"`
}

type NutricaoCompletaResponse struct {
	Porcao            string  `json:"porcao"`
	Calorias          float64 `json:"calorias"`
	Carboidratos      float64 `json:"carboidratos"`
	Proteinas         float64 `json:"proteinas"`
	GordurasTotais    float64 `json:"gorduras_totais"`
	GordurasSaturadas float64 `json:"gorduras_saturadas"`
	Acucares          float64 `json:"acucares"`
	Fibras            float64 `json:"fibras"`
	Sodio             float64 `json:"sodio"`
}

// ItemResumoResponse é o subconjunto de campos devolvido pela listagem,
// suficiente para a camada de apresentação montar o cartão do item.
type ItemResumoResponse struct {
	ItemID                string                   `json:"item_id"`
	NomeItem              string                   `json:"nome_item"`
	CategoriaID           int                      `json:"categoria_id"`
	ImagemURL             string                   `json:"imagem_url"`
	DisponibilidadeStatus string                   `json:"disponibilidade_status"`
	Destaque              bool                     `json:"destaque"`
	ExibirPrecos          bool                     `json:"exibir_precos"`
	FormatoPrecoPrincipal *string                  `json:"formato_preco_principal"`
	PrecoPorPeso          *decimal.Decimal         `json:"preco_por_peso"`
	PrecoPorTamanho       *PrecoPorTamanhoResponse `json:"preco_por_tamanho"`
	PrecoPorUnidade       *decimal.Decimal         `json:"preco_por_unidade"`
}
