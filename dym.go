// Package dym suggests existing values from a record table when a lookup
// word has no exact match ("did you mean").
//
// The engine asks its Store for records whose field(s) equal the word. If
// any exist they are returned verbatim. Otherwise it scans every record,
// keeps the field values within edit distance of the word, and returns them
// as a deduplicated set. The tolerance adapts to the word's length unless
// the caller supplies one explicitly.
package dym

import (
	"context"

	"go.uber.org/zap"

	"github.com/teranos/dym/errors"
)

// ErrInvalidArgument marks caller-contract violations caught before any
// query runs: an empty field spec or an empty word.
var ErrInvalidArgument = errors.New("invalid argument")

// Engine runs suggestion lookups against a Store. It is stateless and safe
// for concurrent use as long as the Store is safe for concurrent reads.
type Engine struct {
	store    Store
	distance DistanceFunc
	logger   *zap.SugaredLogger
}

// Option configures an Engine.
type Option func(*Engine)

// WithDistance replaces the default Levenshtein distance primitive.
func WithDistance(fn DistanceFunc) Option {
	return func(e *Engine) {
		e.distance = fn
	}
}

// WithLogger attaches a logger for query-level debug output.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(e *Engine) {
		e.logger = log
	}
}

// New creates an Engine reading from store.
func New(store Store, opts ...Option) *Engine {
	e := &Engine{
		store:    store,
		distance: Levenshtein,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type suggestOptions struct {
	threshold *int
}

// SuggestOption configures a single Suggest call.
type SuggestOption func(*suggestOptions)

// WithThreshold overrides the length-derived tolerance for one call.
// The value is used as given; zero means exact-distance only.
func WithThreshold(n int) SuggestOption {
	return func(o *suggestOptions) {
		o.threshold = &n
	}
}

// Suggest looks up word across the given fields.
//
// If at least one record matches the word exactly, the result carries those
// records unfiltered and in store order; no similarity test is applied to
// them. Otherwise every record is scanned and the result carries the unique
// field values whose edit distance to word is within the threshold. The
// full scan is a deliberate fallback cost, paid only when the table has no
// exact hit.
//
// Store errors surface to the caller wrapped but untranslated; use
// errors.Is/As to inspect them.
func (e *Engine) Suggest(ctx context.Context, fields FieldSpec, word string, opts ...SuggestOption) (*Result, error) {
	if len(fields) == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "empty field spec")
	}
	if word == "" {
		return nil, errors.Wrap(ErrInvalidArgument, "empty word")
	}

	var options suggestOptions
	for _, opt := range opts {
		opt(&options)
	}

	threshold := Threshold(word)
	if options.threshold != nil {
		threshold = *options.threshold
	}

	query, err := BuildExactQuery(fields, word)
	if err != nil {
		return nil, err
	}

	exact, err := e.store.FindWhere(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "exact match query")
	}
	if len(exact) > 0 {
		if e.logger != nil {
			e.logger.Debugw("Exact match",
				"word", word,
				"count", len(exact),
			)
		}
		return exactResult(exact), nil
	}

	records, err := e.store.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "similarity scan")
	}

	values := make([]string, 0)
	if len(records) > 0 {
		seen := make(map[string]struct{})
		for _, record := range records {
			for _, field := range fields {
				value, ok := record.Field(field)
				if !ok {
					continue
				}
				if _, dup := seen[value]; dup {
					continue
				}
				if e.distance(value, word) <= threshold {
					seen[value] = struct{}{}
					values = append(values, value)
				}
			}
		}
	}

	if e.logger != nil {
		e.logger.Debugw("Similarity scan",
			"word", word,
			"threshold", threshold,
			"scanned", len(records),
			"count", len(values),
		)
	}
	return similarResult(values), nil
}
