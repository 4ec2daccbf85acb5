package dym

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/teranos/dym/errors"
)

// Query is a WHERE condition with its bound parameters, ready for a Store's
// filtered find. The searched word only ever travels as a named parameter;
// it is never interpolated into the condition text.
type Query struct {
	Where string
	Args  []any
}

// BuildExactQuery builds the equality condition for word across fields: a
// single `field = :word_0` predicate, or an OR-chain over every field in
// FieldSpec order. Each field gets its own named parameter bound to the same
// word, so the condition text stays stable for query-plan caching.
func BuildExactQuery(fields FieldSpec, word string) (Query, error) {
	if len(fields) == 0 {
		return Query{}, errors.Wrap(ErrInvalidArgument, "empty field spec")
	}

	clauses := make([]string, len(fields))
	args := make([]any, len(fields))
	for i, field := range fields {
		param := fmt.Sprintf("word_%d", i)
		clauses[i] = QuoteIdent(field) + " = :" + param
		args[i] = sql.Named(param, word)
	}

	return Query{
		Where: strings.Join(clauses, " OR "),
		Args:  args,
	}, nil
}

// QuoteIdent double-quotes a SQL identifier, escaping embedded quotes.
func QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
