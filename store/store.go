// Package store provides the SQLite-backed record store for dym.
// It adapts one database table to the engine's Store contract, scanning
// rows into text-coerced records.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/teranos/dym"
	"github.com/teranos/dym/errors"
	"github.com/teranos/dym/logger"
)

// TableStore implements dym.Store over a single SQLite table.
type TableStore struct {
	db     *sql.DB
	table  string
	logger *zap.SugaredLogger
}

// NewTableStore creates a store reading from table via db.
func NewTableStore(db *sql.DB, table string, log *zap.SugaredLogger) *TableStore {
	return &TableStore{
		db:     db,
		table:  table,
		logger: log,
	}
}

// FindWhere returns the rows matching the query's condition.
func (s *TableStore) FindWhere(ctx context.Context, query dym.Query) ([]dym.Record, error) {
	stmt := fmt.Sprintf("SELECT * FROM %s WHERE %s", dym.QuoteIdent(s.table), query.Where)
	records, err := s.query(ctx, stmt, query.Args...)
	if err != nil {
		return nil, errors.Wrapf(err, "filtered find on %s", s.table)
	}
	return records, nil
}

// FindAll returns every row of the table.
func (s *TableStore) FindAll(ctx context.Context) ([]dym.Record, error) {
	stmt := fmt.Sprintf("SELECT * FROM %s", dym.QuoteIdent(s.table))
	records, err := s.query(ctx, stmt)
	if err != nil {
		return nil, errors.Wrapf(err, "full scan of %s", s.table)
	}
	return records, nil
}

func (s *TableStore) query(ctx context.Context, stmt string, args ...any) ([]dym.Record, error) {
	if s.logger != nil {
		s.logger.Debugw("Executing query",
			logger.FieldTable, s.table,
			logger.FieldQuery, stmt,
		)
	}

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var records []dym.Record
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		record := make(Row, len(columns))
		for i, column := range columns {
			record[column] = coerce(values[i])
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Row is a scanned record keyed by column name, values already coerced to
// their textual form.
type Row map[string]string

// Field returns the named column's text and whether the column exists.
func (r Row) Field(name string) (string, bool) {
	value, ok := r[name]
	return value, ok
}

// coerce renders a driver value as text. NULL becomes the empty string,
// matching the textual form of an absent value.
func coerce(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}
