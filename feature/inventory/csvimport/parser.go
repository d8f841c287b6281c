package csvimport

import (
	"fmt"
	"io"
	"strings"

	"showroom-audit/core/item"
	"showroom-audit/core/utils"
)

// Result is the detailed outcome of an import.
type Result struct {
	// Records holds the accepted records in row order.
	Records []item.Record
	// Warnings lists numeric cells that fell back to 0.
	Warnings []Warning
	// Dropped counts non-blank rows skipped for lacking a tag identifier.
	Dropped int
}

// Parse reads CSV text and returns the inventory records it describes.
func Parse(r io.Reader) ([]item.Record, error) {
	res, err := ParseDetailed(r)
	if err != nil {
		return nil, err
	}
	return res.Records, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) ([]item.Record, error) {
	return Parse(strings.NewReader(s))
}

// ParseDetailed is Parse that also reports coercion warnings and dropped rows.
func ParseDetailed(r io.Reader) (*Result, error) {
	rows, err := NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	nonBlank := rows[:0]
	for _, row := range rows {
		if !row.Blank {
			nonBlank = append(nonBlank, row)
		}
	}
	if len(nonBlank) < 2 {
		return nil, ErrEmptyOrTooShort
	}

	return mapRows(nonBlank[0].Fields, nonBlank[1:])
}

// FromRows maps already tokenized rows through the header table. It is used
// by importers whose source is not CSV text, such as database tables.
func FromRows(header []string, rows [][]string) (*Result, error) {
	converted := make([]Row, 0, len(rows))
	for i, fields := range rows {
		blank := true
		for _, f := range fields {
			if strings.TrimSpace(f) != "" {
				blank = false
				break
			}
		}
		converted = append(converted, Row{Line: i + 2, Fields: fields, Blank: blank})
	}
	return mapRows(header, converted)
}

type column struct {
	name  string
	field Field
	ok    bool
}

func mapRows(header []string, rows []Row) (*Result, error) {
	cols := make([]column, len(header))
	present := make(map[string]struct{}, len(header))
	for i, h := range header {
		name := NormalizeHeader(h)
		present[name] = struct{}{}
		f, ok := headerFields[name]
		cols[i] = column{name: name, field: f, ok: ok}
	}

	for _, required := range requiredHeaders {
		if _, ok := present[required]; !ok {
			return nil, &MalformedHeaderError{Column: required}
		}
	}

	result := &Result{Records: make([]item.Record, 0, len(rows))}
	for _, row := range rows {
		if row.Blank {
			continue
		}

		var rec item.Record
		var warnings []Warning
		for i, col := range cols {
			if !col.ok || i >= len(row.Fields) {
				continue
			}
			raw := strings.TrimSpace(row.Fields[i])
			spec := fieldSpecs[col.field]

			if spec.setNumber != nil {
				if raw == "" {
					if !spec.optional {
						spec.setNumber(&rec, 0)
					}
					continue
				}
				v, ok := utils.ParseFloatPrefix(raw)
				if !ok {
					warnings = append(warnings, Warning{Line: row.Line, Column: col.name, Value: raw})
					v = 0
				}
				spec.setNumber(&rec, v)
				continue
			}

			if raw == "" {
				continue
			}
			spec.setText(&rec, raw)
		}

		if !rec.Valid() {
			result.Dropped++
			continue
		}
		applyDefaults(&rec)
		result.Warnings = append(result.Warnings, warnings...)
		result.Records = append(result.Records, rec)
	}

	return result, nil
}

func applyDefaults(rec *item.Record) {
	if rec.Name == "" {
		rec.Name = item.UnnamedItem
	}
	if rec.Category == "" {
		rec.Category = item.Unknown
	}
	if rec.ShowroomArea == "" {
		rec.ShowroomArea = item.Unknown
	}
	if rec.CounterName == "" {
		rec.CounterName = item.Unknown
	}
	if rec.ImageURL == "" {
		rec.ImageURL = item.PlaceholderImage(rec.EPC)
	}
}
