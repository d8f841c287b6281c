package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"showroom-audit/core/item"
	"showroom-audit/core/reconcile"
)

// ErrEmptyExportSet is returned when asked to export zero records.
var ErrEmptyExportSet = errors.New("no items to export")

// Notice is the operator-facing message for ErrEmptyExportSet.
const Notice = "No items to export."

// Columns is the export header, in order.
var Columns = []string{
	"Image", "Tag No", "Item Name", "Date", "Pc", "Gr.Wt", "N.Wt", "Gold Wt", "Design",
	"HM", "Certif", "Remarks", "Colour", "Clarity", "Size", "Mrp", "Costing", "Supplier",
	"Dia Item", "Dia Size", "Dia Pc", "Dia Wt", "Rate", "Dia Value", "Showroom Area", "Counter Name",
}

// Write writes records as CSV with the Columns header. Nothing is written
// when records is empty.
func Write(w io.Writer, records []item.Record) error {
	if len(records) == 0 {
		return ErrEmptyExportSet
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, rec := range records {
		if err := cw.Write(row(rec)); err != nil {
			return fmt.Errorf("failed to write %s: %w", rec.EPC, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Render returns the CSV for records.
func Render(records []item.Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SessionFilename names an export of one category of the current report.
func SessionFilename(cat reconcile.Category) string {
	return fmt.Sprintf("%s_items_report.csv", cat)
}

// HistoryFilename names an export of a history entry's missing items.
func HistoryFilename(id int64, createdAt time.Time) string {
	return fmt.Sprintf("missing_items_%s_%d.csv", createdAt.UTC().Format("2006-01-02"), id)
}

// Exportable reports whether a report category may be exported.
// Found items are not exported.
func Exportable(cat reconcile.Category) bool {
	return cat == reconcile.CategoryMissing || cat == reconcile.CategoryNew
}

func row(rec item.Record) []string {
	return []string{
		rec.ImageURL,
		rec.EPC,
		rec.Name,
		str(rec.Date),
		num(rec.Pc),
		num(rec.GrossWeight),
		num(rec.NetWeight),
		num(rec.GoldWeight),
		str(rec.Design),
		str(rec.Hallmark),
		str(rec.Certificate),
		str(rec.Remarks),
		str(rec.Colour),
		str(rec.Clarity),
		str(rec.Size),
		formatFloat(rec.Price),
		num(rec.Costing),
		str(rec.Supplier),
		str(rec.DiamondItem),
		str(rec.DiamondSize),
		num(rec.DiamondPieces),
		num(rec.DiamondWeight),
		num(rec.Rate),
		num(rec.DiamondValue),
		rec.ShowroomArea,
		rec.CounterName,
	}
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func num(p *float64) string {
	if p == nil {
		return ""
	}
	return formatFloat(*p)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
