package response

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/petcare-br/service-shelter/internal/domain"
)

// ApiErrorResponse is the uniform error body returned by every endpoint.
type ApiErrorResponse struct {
	Timestamp   time.Time         `json:"timestamp"`
	Status      int               `json:"status"`
	Error       string            `json:"error"`
	Message     string            `json:"message"`
	Path        string            `json:"path"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

// Error writes the error body for err, mapping the domain error kind to the
// HTTP status. Unknown errors become an opaque 500.
func Error(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Erro inesperado."
	var fieldErrors map[string]string

	var domErr *domain.DomainError
	if errors.As(err, &domErr) {
		message = domErr.Message
		fieldErrors = domErr.FieldErrors
		switch domErr.Kind {
		case domain.KindNotFound:
			status = http.StatusNotFound
		case domain.KindBusinessRule, domain.KindValidation:
			status = http.StatusBadRequest
		case domain.KindConflict:
			status = http.StatusConflict
		default:
			status = http.StatusInternalServerError
			message = "Erro inesperado."
		}
	}

	write(c, status, message, fieldErrors)
}

// BindError translates a gin binding failure into a 400 with per-field
// messages when the failure came from struct validation.
func BindError(c *gin.Context, err error) {
	fieldErrors := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fieldErrors[fieldName(fe)] = fieldMessage(fe)
		}
	}
	if len(fieldErrors) == 0 {
		write(c, http.StatusBadRequest, "Corpo da requisição inválido.", nil)
		return
	}
	write(c, http.StatusBadRequest, "Falha de validação", fieldErrors)
}

// BadRequest writes a 400 with a plain message, used for malformed path and
// query parameters.
func BadRequest(c *gin.Context, message string) {
	write(c, http.StatusBadRequest, message, nil)
}

func write(c *gin.Context, status int, message string, fieldErrors map[string]string) {
	c.AbortWithStatusJSON(status, ApiErrorResponse{
		Timestamp:   time.Now().UTC(),
		Status:      status,
		Error:       http.StatusText(status),
		Message:     message,
		Path:        c.Request.URL.Path,
		FieldErrors: fieldErrors,
	})
}

func fieldName(fe validator.FieldError) string {
	// The json tag names already match the API contract (snake_case).
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Campo obrigatório"
	default:
		return "Valor inválido"
	}
}
