package kardex

import "time"

// DefaultPageSize tamaño de página por defecto del kardex.
const DefaultPageSize = 20

// Query es el estado de filtros del kardex. Los campos solo se modifican con
// los setters etiquetados: cualquier cambio de filtro reinicia la página a 1
// antes de la siguiente consulta, y no es posible construir un nombre de
// campo inválido.
type Query struct {
	productID    string
	locationID   string
	movementType string
	startDate    *time.Time
	endDate      *time.Time
	page         int
	limit        int
}

// NewQuery construye la consulta inicial de un producto (página 1).
func NewQuery(productID string) Query {
	return Query{productID: productID, page: 1, limit: DefaultPageSize}
}

// SetMovementType cambia el filtro de tipo; si cambia, la página vuelve a 1.
func (q *Query) SetMovementType(movementType string) {
	if q.movementType == movementType {
		return
	}
	q.movementType = movementType
	q.page = 1
}

// SetLocation cambia el filtro de ubicación; si cambia, la página vuelve a 1.
func (q *Query) SetLocation(locationID string) {
	if q.locationID == locationID {
		return
	}
	q.locationID = locationID
	q.page = 1
}

// SetDateRange cambia el rango de fechas; si cambia, la página vuelve a 1.
func (q *Query) SetDateRange(start, end *time.Time) {
	if equalTime(q.startDate, start) && equalTime(q.endDate, end) {
		return
	}
	q.startDate = start
	q.endDate = end
	q.page = 1
}

// SetPage navega a otra página sin tocar los filtros.
func (q *Query) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	q.page = page
}

// SetLimit cambia el tamaño de página; vuelve a la página 1.
func (q *Query) SetLimit(limit int) {
	if limit < 1 {
		limit = DefaultPageSize
	}
	if q.limit == limit {
		return
	}
	q.limit = limit
	q.page = 1
}

// Page devuelve la página actual.
func (q Query) Page() int { return q.page }

// Limit devuelve el tamaño de página actual.
func (q Query) Limit() int { return q.limit }

func equalTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
