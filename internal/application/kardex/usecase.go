package kardex

import (
	"context"
	"time"

	"github.com/tu-usuario/mrp-console/internal/application/dto"
	domkardex "github.com/tu-usuario/mrp-console/internal/domain/kardex"
	"github.com/tu-usuario/mrp-console/internal/infrastructure/mrpapi"
	"github.com/tu-usuario/mrp-console/pkg/logger"
)

// MovementsPort abstrae la consulta de movimientos al backend. El backend
// entrega las páginas en orden cronológico ascendente (ascendente por id).
type MovementsPort interface {
	ListMovements(ctx context.Context, q mrpapi.MovementsQuery) (mrpapi.MovementsPage, error)
}

// UseCase construye la vista kardex de un producto: saldo acumulado por
// movimiento y exportación CSV determinista.
type UseCase struct {
	movements MovementsPort
	log       *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(movements MovementsPort, log *logger.Logger) *UseCase {
	return &UseCase{movements: movements, log: log}
}

// GetLedger consulta la página de movimientos y arma el kardex listo para
// mostrar (más reciente primero, saldos calculados en pasada hacia adelante).
func (uc *UseCase) GetLedger(ctx context.Context, q Query) (dto.KardexPageResponse, error) {
	page, err := uc.movements.ListMovements(ctx, q.toAPIQuery())
	if err != nil {
		return dto.KardexPageResponse{}, err
	}

	entries := domkardex.BuildLedger(page.Movements)

	// Un ajuste con cantidad real que no afecta ninguna ubicación es casi
	// seguro un vacío de captura río arriba: se reporta ruidosamente.
	if n := domkardex.CountAmbiguous(entries); n > 0 {
		uc.log.Warn().
			Str("product_id", q.productID).
			Int("ambiguous_adjustments", n).
			Msg("kardex con ajustes sin ubicación origen ni destino")
	}

	data := make([]dto.KardexEntryDTO, len(entries))
	for i, e := range entries {
		data[i] = toEntryDTO(e)
	}
	return dto.KardexPageResponse{
		Data: data,
		Meta: dto.PageMeta{
			Page:       q.page,
			Limit:      q.limit,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		},
		AmbiguousCount: domkardex.CountAmbiguous(entries),
	}, nil
}

// ExportCSV genera el CSV de la vista actual del kardex (misma consulta que
// GetLedger, mismo orden más reciente primero) y el nombre de archivo
// kardex_{código o id}_{fecha ISO}.csv.
func (uc *UseCase) ExportCSV(ctx context.Context, q Query, productCode string, now time.Time) (filename string, data []byte, err error) {
	page, err := uc.movements.ListMovements(ctx, q.toAPIQuery())
	if err != nil {
		return "", nil, err
	}
	entries := domkardex.BuildLedger(page.Movements)

	codeOrID := productCode
	if codeOrID == "" {
		codeOrID = q.productID
	}
	return domkardex.Filename(codeOrID, now), domkardex.ExportCSV(entries), nil
}

func (q Query) toAPIQuery() mrpapi.MovementsQuery {
	return mrpapi.MovementsQuery{
		ProductID:    q.productID,
		LocationID:   q.locationID,
		MovementType: q.movementType,
		StartDate:    q.startDate,
		EndDate:      q.endDate,
		Page:         q.page,
		Limit:        q.limit,
	}
}

func toEntryDTO(e domkardex.Entry) dto.KardexEntryDTO {
	m := e.Movement
	return dto.KardexEntryDTO{
		MovementID:        m.ID,
		MovementType:      m.MovementType,
		Effect:            e.Effect.String(),
		Quantity:          m.Quantity,
		RunningBalance:    e.RunningBalance,
		FromLocationID:    m.FromLocationID,
		ToLocationID:      m.ToLocationID,
		MovementDate:      m.MovementDate,
		BatchNumber:       m.BatchNumber,
		ReferenceDocument: m.ReferenceDocument,
		Notes:             m.Notes,
		User:              m.User,
		Ambiguous:         e.Ambiguous(),
	}
}
