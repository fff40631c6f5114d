package model

// Standard error codes carried by domain errors.
const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeConflict      = "CONFLICT"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// DomainError is an error with a machine-readable code and a
// client-facing message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a domain error for rejected input.
func NewValidationError(message string) *DomainError {
	return NewDomainError(ErrCodeValidation, message)
}

// Common domain errors. Messages are client-facing and rendered verbatim
// in the response envelope.
var (
	ErrUsuarioNaoEncontrado = NewDomainError(ErrCodeNotFound, "Usuário não encontrado")
	ErrProdutoNaoEncontrado = NewDomainError(ErrCodeNotFound, "Produto não encontrado")
	ErrPedidoNaoEncontrado  = NewDomainError(ErrCodeNotFound, "Pedido não encontrado")

	// ErrEmailJaCadastrado is returned when a unique-constraint violation
	// on usuarios.email is detected at the storage layer.
	ErrEmailJaCadastrado = NewDomainError(ErrCodeConflict, "Email já cadastrado")
)
