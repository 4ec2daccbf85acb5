package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/teranos/dym"
	"github.com/teranos/dym/errors"
)

// Driver-level failure injection; the real-database paths live in
// store_test.go.

func TestFindWhereDriverError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error: %v", err)
	}
	defer db.Close()

	driverErr := errors.New("no such column: citty")
	mock.ExpectQuery(`SELECT \* FROM "cities" WHERE`).WillReturnError(driverErr)

	store := NewTableStore(db, "cities", nil)
	query, err := dym.BuildExactQuery(dym.Fields("citty"), "Rome")
	if err != nil {
		t.Fatalf("BuildExactQuery() error: %v", err)
	}

	_, err = store.FindWhere(context.Background(), query)
	if err == nil {
		t.Fatal("FindWhere() succeeded, want driver error")
	}
	if !errors.Is(err, driverErr) {
		t.Errorf("FindWhere() error = %v, want wrapped %v", err, driverErr)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestFindAllDriverError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error: %v", err)
	}
	defer db.Close()

	driverErr := errors.New("disk I/O error")
	mock.ExpectQuery(`SELECT \* FROM "cities"`).WillReturnError(driverErr)

	store := NewTableStore(db, "cities", nil)

	_, err = store.FindAll(context.Background())
	if err == nil {
		t.Fatal("FindAll() succeeded, want driver error")
	}
	if !errors.Is(err, driverErr) {
		t.Errorf("FindAll() error = %v, want wrapped %v", err, driverErr)
	}
}

func TestFindAllRowsError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error: %v", err)
	}
	defer db.Close()

	rowsErr := errors.New("connection reset")
	rows := sqlmock.NewRows([]string{"city"}).
		AddRow("Rome").
		RowError(0, rowsErr)
	mock.ExpectQuery(`SELECT \* FROM "cities"`).WillReturnRows(rows)

	store := NewTableStore(db, "cities", nil)

	_, err = store.FindAll(context.Background())
	if err == nil {
		t.Fatal("FindAll() succeeded, want row iteration error")
	}
	if !errors.Is(err, rowsErr) {
		t.Errorf("FindAll() error = %v, want wrapped %v", err, rowsErr)
	}
}
