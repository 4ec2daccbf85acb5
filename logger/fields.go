package logger

// Standard field names for consistent structured logging across dym.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"

	// Queries
	FieldQuery     = "query"
	FieldTable     = "table"
	FieldWord      = "word"
	FieldFields    = "fields"
	FieldThreshold = "threshold"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Counts and sizes
	FieldCount = "count"

	// Files and paths
	FieldPath = "path"
)
