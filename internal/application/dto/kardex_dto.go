package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// KardexEntryDTO es un renglón del kardex listo para mostrar: el movimiento
// con su efecto sobre el saldo y el saldo acumulado tras aplicarlo.
type KardexEntryDTO struct {
	MovementID        string          `json:"movement_id"`
	MovementType      string          `json:"movement_type"`
	Effect            string          `json:"effect"` // ADD, SUBTRACT, NEUTRAL, AMBIGUOUS
	Quantity          decimal.Decimal `json:"quantity"`
	RunningBalance    decimal.Decimal `json:"running_balance"`
	FromLocationID    string          `json:"from_location_id,omitempty"`
	ToLocationID      string          `json:"to_location_id,omitempty"`
	MovementDate      time.Time       `json:"movement_date"`
	BatchNumber       string          `json:"batch_number,omitempty"`
	ReferenceDocument string          `json:"reference_document,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	User              string          `json:"user,omitempty"`
	Ambiguous         bool            `json:"ambiguous,omitempty"` // ajuste sin ubicación
}

// KardexPageResponse es una página del kardex, más reciente primero.
type KardexPageResponse struct {
	Data           []KardexEntryDTO `json:"data"`
	Meta           PageMeta         `json:"meta"`
	AmbiguousCount int              `json:"ambiguous_count,omitempty"`
}
