// Package mrpapi es el cliente tipado hacia la API MRP externa, dueña de la
// explosión multinivel, el netting y toda la persistencia. Las respuestas se
// decodifican contra esquemas explícitos: un fallo de decodificación es un
// tipo de error propio, nunca un fallback a lista vacía.
package mrpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tu-usuario/mrp-console/pkg/config"
	"github.com/tu-usuario/mrp-console/pkg/logger"
)

// Client es el cliente HTTP hacia la API MRP. No reintenta: una mutación
// fallida debe reenviarse explícitamente por el usuario.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     *logger.Logger
}

// New construye el cliente. El timeout es responsabilidad del transporte;
// el core no implementa timeouts propios.
func New(cfg config.MRPConfig, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpc:   &http.Client{Timeout: cfg.Timeout()},
		log:     log,
	}
}

type ctxKey int

const tokenKey ctxKey = iota

// WithToken adjunta el bearer token al contexto. El token se reenvía opaco
// al backend; la autenticación es responsabilidad del sistema externo.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey, token)
}

func tokenFrom(ctx context.Context) string {
	if t, ok := ctx.Value(tokenKey).(string); ok {
		return t
	}
	return ""
}

// do ejecuta la petición y decodifica la respuesta en out (si out != nil).
// fallbackMsg es el mensaje genérico de la operación cuando el cuerpo de un
// error upstream no trae uno propio.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, fallbackMsg string) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("codificar petición %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("construir petición %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := tokenFrom(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		// Cancelación del contexto (modal cerrado) llega por aquí: la
		// respuesta tardía se descarta de forma determinista.
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// Funcionalidad aún no disponible río arriba: se suprime del canal de
		// error de usuario, solo log informativo.
		c.log.Info().Str("method", method).Str("path", path).
			Msg("endpoint no disponible en el backend (404)")
		return ErrUpstreamUnavailable
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("leer respuesta %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(raw, fallbackMsg),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrDecode, method, path, err)
	}
	return nil
}

// upstreamMessage extrae el mensaje del cuerpo de error cuando existe
// (message o error), o devuelve el genérico de la operación.
func upstreamMessage(raw []byte, fallback string) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return fallback
}
