package mrpapi

import (
	"errors"
	"fmt"
)

// Tipos de error del cliente, distinguibles por el caller con errors.Is/As.
var (
	// ErrUpstreamUnavailable corresponde a un 404: la funcionalidad aún no
	// existe en el backend. No es una falla genuina y no debe mostrarse como
	// error al usuario.
	ErrUpstreamUnavailable = errors.New("funcionalidad no disponible en el backend")

	// ErrDecode marca una respuesta 2xx cuyo cuerpo no cumple el esquema
	// esperado. Es un tipo de error propio, nunca un fallback silencioso.
	ErrDecode = errors.New("respuesta del backend no cumple el esquema")
)

// UpstreamError es una respuesta no-2xx genuina del backend. Message viene
// del cuerpo cuando existe; si no, es el genérico de la operación.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("backend respondió %d: %s", e.StatusCode, e.Message)
}
