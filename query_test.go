package dym

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/dym/errors"
)

func TestBuildExactQuerySingleField(t *testing.T) {
	query, err := BuildExactQuery(Fields("city"), "Rome")
	require.NoError(t, err)

	assert.Equal(t, `"city" = :word_0`, query.Where)
	require.Len(t, query.Args, 1)
	assert.Equal(t, sql.Named("word_0", "Rome"), query.Args[0])
}

func TestBuildExactQueryMultiField(t *testing.T) {
	query, err := BuildExactQuery(Fields("city", "country"), "Romania")
	require.NoError(t, err)

	assert.Equal(t, `"city" = :word_0 OR "country" = :word_1`, query.Where)
	require.Len(t, query.Args, 2)

	// Every parameter binds the same word under a distinct name
	assert.Equal(t, sql.Named("word_0", "Romania"), query.Args[0])
	assert.Equal(t, sql.Named("word_1", "Romania"), query.Args[1])
}

func TestBuildExactQueryFieldOrder(t *testing.T) {
	query, err := BuildExactQuery(Fields("country", "city"), "x")
	require.NoError(t, err)

	assert.Equal(t, `"country" = :word_0 OR "city" = :word_1`, query.Where)
}

func TestBuildExactQueryQuotesIdentifiers(t *testing.T) {
	query, err := BuildExactQuery(Fields(`we"ird`), "w")
	require.NoError(t, err)

	assert.Equal(t, `"we""ird" = :word_0`, query.Where)
}

func TestBuildExactQueryEmptyFieldSpec(t *testing.T) {
	_, err := BuildExactQuery(nil, "Rome")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = BuildExactQuery(FieldSpec{}, "Rome")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, `"city"`, QuoteIdent("city"))
	assert.Equal(t, `"a""b"`, QuoteIdent(`a"b`))
}
