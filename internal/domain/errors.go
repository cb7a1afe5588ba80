package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrUnknownItem   = errors.New("insumo no encontrado o inactivo")
	ErrUnknownRecipe = errors.New("receta no encontrada o inactiva")
	ErrDuplicate     = errors.New("recurso duplicado")
)

// FieldViolation describe un campo inválido y el motivo, con estructura
// suficiente para mostrar el error junto al campo del formulario.
type FieldViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError agrupa TODAS las violaciones de una operación de escritura,
// no solo la primera encontrada.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "entrada inválida"
	}
	fields := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		fields = append(fields, v.Field)
	}
	return "entrada inválida: " + strings.Join(fields, ", ")
}

// Validation acumula violaciones durante la validación de un payload.
// Uso: v.Add("campo", "motivo"); al final, Err() devuelve nil o el error agrupado.
type Validation struct {
	violations []FieldViolation
}

// Add registra una violación de campo.
func (v *Validation) Add(field, reason string) {
	v.violations = append(v.violations, FieldViolation{Field: field, Reason: reason})
}

// Err devuelve nil si no hubo violaciones, o el *ValidationError agrupado.
func (v *Validation) Err() error {
	if len(v.violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: v.violations}
}

// AsValidationError extrae un *ValidationError de la cadena de errores.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// InvariantViolation señala que un recálculo rompería un invariante del modelo
// (stock negativo, totales inconsistentes). Es un defecto interno del motor,
// nunca una condición atribuible al usuario.
type InvariantViolation struct {
	Entity string
	Detail string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariante violado en %s: %s", e.Entity, e.Detail)
}
