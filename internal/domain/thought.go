package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf16"
)

// Thought es la única entidad persistida: un mensaje corto con contador de likes.
type Thought struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Hearts    int       `json:"hearts"`
	CreatedAt time.Time `json:"createdAt"`
}

// Límites de longitud del mensaje, en code units UTF-16.
const (
	MessageMinLength = 5
	MessageMaxLength = 140
)

// Acciones válidas para la operación de like.
const (
	LikeActionAdd    = "add"
	LikeActionRemove = "remove"
)

// ValidationError describe una regla violada sobre un campo de entrada.
type ValidationError struct {
	Field  string `json:"field"`
	Rule   string `json:"rule"`
	Detail string `json:"detail"`
}

// ValidationErrors agrupa todas las reglas violadas de una misma entrada.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	details := make([]string, 0, len(v))
	for _, e := range v {
		details = append(details, e.Detail)
	}
	return strings.Join(details, "; ")
}

// MessageLength cuenta code units UTF-16, igual que el comportamiento de referencia.
func MessageLength(message string) int {
	return len(utf16.Encode([]rune(message)))
}

// ValidateMessage aplica las reglas del mensaje y devuelve nil si es válido.
// Es una función pura: no depende de reflexión ni de estado.
func ValidateMessage(message string) ValidationErrors {
	if message == "" {
		return ValidationErrors{{
			Field:  "message",
			Rule:   "required",
			Detail: "message is required",
		}}
	}

	length := MessageLength(message)
	if length < MessageMinLength {
		return ValidationErrors{{
			Field:  "message",
			Rule:   "minlength",
			Detail: fmt.Sprintf("message must be at least %d characters, got %d", MessageMinLength, length),
		}}
	}
	if length > MessageMaxLength {
		return ValidationErrors{{
			Field:  "message",
			Rule:   "maxlength",
			Detail: fmt.Sprintf("message must be at most %d characters, got %d", MessageMaxLength, length),
		}}
	}
	return nil
}
