package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrInvalidBatchSize = errors.New("tamaño de lote inválido: debe ser mayor que cero")
	ErrExceedsRemaining = errors.New("la cantidad excede lo pendiente por producir")
)

// FieldErrors reporta errores de validación por campo. Un FieldErrors no vacío
// bloquea el envío: nunca llega a la red.
type FieldErrors map[string]string

// Add registra el error de un campo (conserva el primero si ya existe).
func (fe FieldErrors) Add(field, msg string) {
	if _, ok := fe[field]; !ok {
		fe[field] = msg
	}
}

// HasErrors indica si hay al menos un campo inválido.
func (fe FieldErrors) HasErrors() bool { return len(fe) > 0 }

// Error implementa error con un resumen determinista (campos en orden alfabético).
func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, fe[f]))
	}
	return "validación: " + strings.Join(parts, "; ")
}
