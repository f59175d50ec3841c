package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcosting "github.com/tu-usuario/mrp-console/internal/application/costing"
	"github.com/tu-usuario/mrp-console/internal/application/dto"
	appkardex "github.com/tu-usuario/mrp-console/internal/application/kardex"
	appproduction "github.com/tu-usuario/mrp-console/internal/application/production"
	appreconcile "github.com/tu-usuario/mrp-console/internal/application/reconcile"
	"github.com/tu-usuario/mrp-console/internal/domain/entity"
	"github.com/tu-usuario/mrp-console/internal/infrastructure/mrpapi"
	"github.com/tu-usuario/mrp-console/pkg/logger"
)

// fakeInventory registra las peticiones que sí llegan al backend.
type fakeInventory struct {
	adjustments []mrpapi.AdjustmentRequest
	variance    entity.VarianceResult
}

func (f *fakeInventory) CreateAdjustment(_ context.Context, req mrpapi.AdjustmentRequest) (entity.InventoryMovement, error) {
	f.adjustments = append(f.adjustments, req)
	return entity.InventoryMovement{ID: "mov-1", Quantity: req.Quantity.Abs()}, nil
}

func (f *fakeInventory) SubmitCycleCount(_ context.Context, _ mrpapi.CycleCountRequest) (entity.VarianceResult, error) {
	return f.variance, nil
}

func newTestApp(inv *fakeInventory) *fiber.App {
	log := logger.Nop()
	app := fiber.New()
	Router(app, RouterDeps{
		KardexUC:     appkardex.NewUseCase(nil, log),
		CostingUC:    appcosting.NewUseCase(nil, log),
		ReconcileUC:  appreconcile.NewUseCase(inv, log),
		ProductionUC: appproduction.NewUseCase(nil, log),
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), "cuerpo: %s", raw)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajustes manuales
// ──────────────────────────────────────────────────────────────────────────────

// Un ajuste válido llega al backend con la cantidad firmada según direction.
func TestCreateAdjustment_EnviaCantidadFirmada(t *testing.T) {
	inv := &fakeInventory{}
	app := newTestApp(inv)

	resp := postJSON(t, app, "/api/inventory/adjustments", dto.AdjustmentRequest{
		ProductID: "prod-1",
		Quantity:  decimal.NewFromInt(20),
		Direction: "negative",
		Reason:    "Merma",
	})

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.Len(t, inv.adjustments, 1)
	assert.True(t, inv.adjustments[0].Quantity.Equal(decimal.NewFromInt(-20)),
		"negative con magnitud 20 envía -20")
	assert.NotEmpty(t, inv.adjustments[0].Reference, "cada ajuste lleva referencia propia")

	body := decodeBody[dto.AdjustmentResponse](t, resp)
	assert.Equal(t, "mov-1", body.MovementID)
	assert.True(t, body.SignedQuantity.Equal(decimal.NewFromInt(-20)))
}

// Validación local fallida: 400 con errores por campo, nada llega al backend.
func TestCreateAdjustment_ValidacionBloqueaEnvio(t *testing.T) {
	inv := &fakeInventory{}
	app := newTestApp(inv)

	resp := postJSON(t, app, "/api/inventory/adjustments", dto.AdjustmentRequest{
		ProductID: "",
		Quantity:  decimal.Zero,
		Direction: "positive",
		Reason:    "Merma",
	})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, inv.adjustments, "la petición nunca llega a la red")

	body := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Contains(t, body.Fields, "product_id")
	assert.Contains(t, body.Fields, "quantity")
}

// ──────────────────────────────────────────────────────────────────────────────
// Conteo cíclico
// ──────────────────────────────────────────────────────────────────────────────

// Con varianza la respuesta manda cerrar a los 3000 ms y recargar; sin
// varianza, 2000 ms sin recarga.
func TestCycleCount_DecisionDeCierre(t *testing.T) {
	conVarianza := &fakeInventory{variance: entity.VarianceResult{
		SystemQuantity: decimal.NewFromInt(100),
		PhysicalCount:  decimal.NewFromInt(95),
		Difference:     decimal.NewFromInt(-5),
	}}
	app := newTestApp(conVarianza)

	resp := postJSON(t, app, "/api/inventory/cycle-count", dto.CycleCountRequest{
		ProductID:     "prod-1",
		PhysicalCount: decimal.NewFromInt(95),
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody[dto.CycleCountResponse](t, resp)
	assert.EqualValues(t, 3000, body.CloseAfterMs)
	assert.True(t, body.Refresh)
	assert.True(t, body.Difference.Equal(decimal.NewFromInt(-5)))

	sinVarianza := &fakeInventory{variance: entity.VarianceResult{
		SystemQuantity: decimal.NewFromInt(100),
		PhysicalCount:  decimal.NewFromInt(100),
		Difference:     decimal.Zero,
	}}
	app = newTestApp(sinVarianza)

	resp = postJSON(t, app, "/api/inventory/cycle-count", dto.CycleCountRequest{
		ProductID:     "prod-1",
		PhysicalCount: decimal.NewFromInt(100),
	})

	body = decodeBody[dto.CycleCountResponse](t, resp)
	assert.EqualValues(t, 2000, body.CloseAfterMs)
	assert.False(t, body.Refresh)
}
