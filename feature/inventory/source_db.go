package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"showroom-audit/core/database"
	"showroom-audit/core/utils"
	"showroom-audit/feature/inventory/csvimport"
)

// ErrTableNotFound is returned when the stock table has no columns.
var ErrTableNotFound = errors.New("stock table not found")

// columnHeaders maps stock table columns whose header cannot be derived by
// replacing underscores with spaces.
var columnHeaders = map[string]string{
	"gr_wt": "gr.wt",
	"n_wt":  "n.wt",
}

// ColumnHeader returns the CSV header equivalent of a stock table column.
func ColumnHeader(column string) string {
	column = strings.ToLower(column)
	if h, ok := columnHeaders[column]; ok {
		return h
	}
	return strings.ReplaceAll(column, "_", " ")
}

func (s *Service) readTable(ctx context.Context) (*csvimport.Result, error) {
	if s.db == nil {
		return nil, ErrSourceUnavailable
	}

	db := s.db.WithContext(ctx)
	names, err := database.ColumnNames(db, s.table)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, s.table)
	}

	rows, err := db.Table(s.table).Rows()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = ColumnHeader(c)
	}

	var data [][]string
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRead, err)
		}
		row := make([]string, len(cols))
		for i, v := range values {
			row[i] = utils.ToString(v)
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	return csvimport.FromRows(header, data)
}
