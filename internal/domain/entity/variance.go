package entity

import "github.com/shopspring/decimal"

// VarianceResult es el resultado de conciliar un conteo físico contra la
// cantidad de sistema. Difference = PhysicalCount - SystemQuantity (con signo).
type VarianceResult struct {
	SystemQuantity decimal.Decimal
	PhysicalCount  decimal.Decimal
	Difference     decimal.Decimal
	Message        string
}

// HasVariance indica si el conteo difiere de la cantidad de sistema.
func (v VarianceResult) HasVariance() bool {
	return !v.Difference.IsZero()
}
