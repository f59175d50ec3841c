package kardex

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/tu-usuario/mrp-console/internal/domain/entity"
)

// Encabezado fijo del CSV del kardex. El orden de columnas no depende del
// locale: la salida debe ser byte-estable para entrada idéntica.
var csvHeader = []string{"Fecha", "Tipo", "Cantidad", "Desde", "Hacia", "Lote", "Documento", "Usuario", "Notas"}

const csvDateLayout = "2006-01-02 15:04:05"

// ExportCSV genera el CSV del kardex con un renglón por movimiento, en el
// mismo orden en que se muestran los renglones (más reciente primero).
// Todos los valores van entre comillas dobles; los opcionales ausentes se
// imprimen como el literal "-".
func ExportCSV(entries []Entry) []byte {
	var b strings.Builder
	writeCSVRow(&b, csvHeader)
	for _, e := range entries {
		writeCSVRow(&b, movementRow(e.Movement))
	}
	return []byte(b.String())
}

func movementRow(m entity.InventoryMovement) []string {
	return []string{
		m.MovementDate.Format(csvDateLayout),
		m.MovementType,
		m.Quantity.String(),
		orDash(m.FromLocationID),
		orDash(m.ToLocationID),
		orDash(m.BatchNumber),
		orDash(m.ReferenceDocument),
		orDash(m.User),
		orDash(m.Notes),
	}
}

func writeCSVRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Filename arma el nombre del archivo exportado: kardex_{código o id}_{fecha ISO}.csv.
// El código del producto se normaliza a ASCII (sin tildes ni separadores raros)
// para que el nombre sea seguro en cualquier sistema de archivos.
func Filename(productCodeOrID string, date time.Time) string {
	return fmt.Sprintf("kardex_%s_%s.csv", slug(productCodeOrID), date.Format("2006-01-02"))
}

// slug quita marcas diacríticas (NFD + eliminación de Mn) y reemplaza todo lo
// que no sea alfanumérico por guion bajo.
func slug(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	clean, _, err := transform.String(t, s)
	if err != nil {
		clean = s
	}
	var b strings.Builder
	for _, r := range clean {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
