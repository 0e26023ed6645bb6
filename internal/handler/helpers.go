package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"cardapio/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// gt=0 work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Report violations under the wire name (json tag), not the Go field name.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// envelope é o formato único de resposta da API.
type envelope struct {
	Success bool            `json:"success"`
	Data    interface{}     `json:"data,omitempty"`
	Error   *apierror.Error `json:"error,omitempty"`
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, envelope{Success: true, Data: data})
}

// respondError traduz o erro tipado da camada de serviço para o envelope e o
// status HTTP correspondentes. Erros fora da taxonomia (ex.: teto do store)
// vão para o handler genérico via c.Error e saem como 500.
func respondError(c *gin.Context, err error) {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		status := http.StatusInternalServerError
		switch apiErr.Code {
		case apierror.CodeValidation:
			status = http.StatusBadRequest
		case apierror.CodeNotFound:
			status = http.StatusNotFound
		}
		c.JSON(status, envelope{Success: false, Error: apiErr})
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, envelope{Success: false, Error: &apierror.Error{
		Code:    "INTERNAL_ERROR",
		Message: "Erro interno do servidor",
	}})
}

func respondValidation(c *gin.Context, details []apierror.FieldError) {
	c.JSON(http.StatusBadRequest, envelope{Success: false, Error: apierror.Validation(details)})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondValidation(c, []apierror.FieldError{{Campo: "body", Mensagem: "JSON inválido: " + err.Error()}})
		return false
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			details := make([]apierror.FieldError, 0, len(verrs))
			for _, fe := range verrs {
				details = append(details, apierror.FieldError{
					Campo:    campoSemRaiz(fe.Namespace()),
					Mensagem: mensagemViolacao(fe),
				})
			}
			respondValidation(c, details)
			return false
		}
		respondError(c, err)
		return false
	}
	return true
}

// campoSemRaiz remove o nome do struct raiz do namespace do validador,
// deixando só o caminho do campo como aparece no JSON.
func campoSemRaiz(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func mensagemViolacao(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "min":
		return "abaixo do tamanho mínimo (" + fe.Param() + ")"
	case "max":
		return "acima do tamanho máximo (" + fe.Param() + ")"
	case "gt":
		return "deve ser maior que " + fe.Param()
	case "oneof":
		return "valor fora do conjunto permitido: " + fe.Param()
	case "url":
		return "deve ser uma URL válida"
	default:
		return "valor inválido (" + fe.Tag() + ")"
	}
}
