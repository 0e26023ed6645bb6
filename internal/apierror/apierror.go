// Package apierror provides the typed error kinds returned by the service
// layer and serialized into the API error envelope. All errors returned to
// clients go through this package to ensure consistency and to prevent
// leaking internal details (stack traces, store internals, etc.).
package apierror

// Error codes understood by the handler layer. Anything outside this set is
// treated as an unexpected failure and surfaced as a generic 500.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
)

// FieldError describes a single constraint violation on a request field.
type FieldError struct {
	Campo    string `json:"campo"`
	Mensagem string `json:"mensagem"`
}

// Error is the canonical error carried from the service layer to the handler
// layer. Details is only populated for validation errors.
type Error struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

func (e *Error) Error() string { return e.Message }

// NotFound builds a NOT_FOUND error with an entity-specific message.
func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

// Validation wraps the full list of per-field violations.
func Validation(details []FieldError) *Error {
	return &Error{Code: CodeValidation, Message: "Erro de validação", Details: details}
}
