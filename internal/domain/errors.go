package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError indica que um campo de entrada violou uma restrição.
// É levantado antes de qualquer mutação: a coleção persistida permanece intacta.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors agrega as violações de todos os campos de uma entrada
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// IsValidationError verifica se o erro (ou algum erro encadeado) é de validação
func IsValidationError(err error) bool {
	var verrs ValidationErrors
	return errors.As(err, &verrs)
}

// NotFoundError indica que update/delete apontou para um ID ausente da coleção.
// Também é levantado antes de qualquer mutação.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// IsNotFound verifica se o erro (ou algum erro encadeado) é de registro ausente
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
