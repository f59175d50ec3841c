package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario (conjunto cerrado).
const (
	MovementTypeENTRY           = "ENTRY"
	MovementTypeEXIT            = "EXIT"
	MovementTypeTRANSFER        = "TRANSFER"
	MovementTypeADJUSTMENT      = "ADJUSTMENT"
	MovementTypePRODUCTIONENTRY = "PRODUCTION_ENTRY"
	MovementTypePRODUCTIONEXIT  = "PRODUCTION_EXIT"
	MovementTypePURCHASEENTRY   = "PURCHASE_ENTRY"
	MovementTypeSALEEXIT        = "SALE_EXIT"
	MovementTypeRETURN          = "RETURN"
	MovementTypeWASTE           = "WASTE"
)

// MovementTypes lista los tipos válidos en orden estable (filtros y validación).
var MovementTypes = []string{
	MovementTypeENTRY,
	MovementTypeEXIT,
	MovementTypeTRANSFER,
	MovementTypeADJUSTMENT,
	MovementTypePRODUCTIONENTRY,
	MovementTypePRODUCTIONEXIT,
	MovementTypePURCHASEENTRY,
	MovementTypeSALEEXIT,
	MovementTypeRETURN,
	MovementTypeWASTE,
}

// IsValidMovementType indica si el tipo pertenece al conjunto cerrado.
func IsValidMovementType(t string) bool {
	for _, mt := range MovementTypes {
		if mt == t {
			return true
		}
	}
	return false
}

// InventoryMovement representa un movimiento de inventario inmutable.
// Quantity siempre se almacena como magnitud no negativa; el signo lo aporta
// la clasificación del tipo. Los campos de ubicación vacíos significan ausentes.
type InventoryMovement struct {
	ID                string
	ProductID         string
	MovementType      string
	Quantity          decimal.Decimal // magnitud >= 0
	FromLocationID    string
	ToLocationID      string
	MovementDate      time.Time // orden cronológico
	BatchNumber       string
	ReferenceDocument string
	Notes             string
	User              string
}
