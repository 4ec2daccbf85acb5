package dym

import "context"

// Record is a single row from a Store. Field returns the textual form of
// the named field and whether the field exists. Adapters coerce non-string
// values to text before handing records to the engine.
type Record interface {
	Field(name string) (string, bool)
}

// Store is the persistence collaborator the engine reads from. Both
// operations are read-only; implementations must be safe for concurrent
// readers. Errors are surfaced to the engine's caller as-is.
type Store interface {
	// FindWhere returns the records matching the query's condition, in
	// store-defined order.
	FindWhere(ctx context.Context, query Query) ([]Record, error)

	// FindAll returns every record in the backing table.
	FindAll(ctx context.Context) ([]Record, error)
}
