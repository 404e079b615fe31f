package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tirecatalog/src/core/domain"
)

func TestWhereBuilderEmpty(t *testing.T) {
	b := &whereBuilder{}
	assert.Equal(t, "", b.clause())
	assert.Empty(t, b.args)
}

func TestWhereBuilderNumbersPlaceholders(t *testing.T) {
	b := &whereBuilder{}
	b.and("brand = " + b.bind("Michelin"))
	b.and("size = " + b.bind("205/55R16"))

	assert.Equal(t, " WHERE brand = $1 AND size = $2", b.clause())
	assert.Equal(t, []any{"Michelin", "205/55R16"}, b.args)
}

func TestWhereBuilderRepeatedValueBindsSeparately(t *testing.T) {
	b := &whereBuilder{}
	b.and("(a ILIKE " + b.bind("%x%") + " OR b ILIKE " + b.bind("%x%") + ")")

	assert.Equal(t, " WHERE (a ILIKE $1 OR b ILIKE $2)", b.clause())
	assert.Equal(t, []any{"%x%", "%x%"}, b.args)
}

func TestBuildListQueriesNoFilters(t *testing.T) {
	page := domain.PageRequest{Page: 1, Limit: 20}
	countSQL, dataSQL, countArgs, dataArgs := buildListQueries(domain.TireFilter{}, page)

	assert.Equal(t, "SELECT COUNT(*) FROM tires_catalog", countSQL)
	assert.NotContains(t, dataSQL, "WHERE")
	assert.Contains(t, dataSQL, "ORDER BY id DESC LIMIT $1 OFFSET $2")
	assert.Empty(t, countArgs)
	assert.Equal(t, []any{20, 0}, dataArgs)
}

func TestBuildListQueriesSearchOnly(t *testing.T) {
	page := domain.PageRequest{Page: 2, Limit: 10}
	countSQL, dataSQL, countArgs, dataArgs := buildListQueries(domain.TireFilter{Search: "abc"}, page)

	assert.Contains(t, countSQL, "WHERE (brand ILIKE $1 OR model ILIKE $2 OR size ILIKE $3)")
	assert.Contains(t, dataSQL, "WHERE (brand ILIKE $1 OR model ILIKE $2 OR size ILIKE $3)")
	assert.Contains(t, dataSQL, "LIMIT $4 OFFSET $5")

	// One wrapped value per occurrence, never concatenated into the SQL.
	assert.Equal(t, []any{"%abc%", "%abc%", "%abc%"}, countArgs)
	assert.Equal(t, []any{"%abc%", "%abc%", "%abc%", 10, 10}, dataArgs)
	assert.NotContains(t, dataSQL, "abc")
}

func TestBuildListQueriesAllFilters(t *testing.T) {
	filter := domain.TireFilter{
		Search:   "all",
		Brand:    "Michelin",
		Model:    "Pilot",
		Size:     "205/55R16",
		Position: "front",
	}
	page := domain.PageRequest{Page: 1, Limit: 20}
	countSQL, dataSQL, countArgs, dataArgs := buildListQueries(filter, page)

	// Fixed field order: search, brand, model, size, position.
	assert.Contains(t, countSQL,
		"WHERE (brand ILIKE $1 OR model ILIKE $2 OR size ILIKE $3)"+
			" AND brand = $4 AND model = $5 AND size = $6 AND position = $7")
	assert.Contains(t, dataSQL, "LIMIT $8 OFFSET $9")

	require.Len(t, countArgs, 7)
	assert.Equal(t, []any{"%all%", "%all%", "%all%", "Michelin", "Pilot", "205/55R16", "front"}, countArgs)
	assert.Equal(t, append(countArgs, 20, 0), dataArgs)
}

func TestBuildListQueriesCountArgsNotAliased(t *testing.T) {
	page := domain.PageRequest{Page: 1, Limit: 20}
	_, _, countArgs, dataArgs := buildListQueries(domain.TireFilter{Brand: "A"}, page)

	// Appending limit/offset for the data statement must not leak into the
	// count statement's argument list.
	assert.Equal(t, []any{"A"}, countArgs)
	assert.Equal(t, []any{"A", 20, 0}, dataArgs)
}

func TestBuildListQueriesSingleFilterCombinations(t *testing.T) {
	page := domain.PageRequest{Page: 1, Limit: 20}
	tests := []struct {
		name   string
		filter domain.TireFilter
		cond   string
	}{
		{"brand", domain.TireFilter{Brand: "B"}, "WHERE brand = $1"},
		{"model", domain.TireFilter{Model: "M"}, "WHERE model = $1"},
		{"size", domain.TireFilter{Size: "S"}, "WHERE size = $1"},
		{"position", domain.TireFilter{Position: "rear"}, "WHERE position = $1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			countSQL, dataSQL, countArgs, _ := buildListQueries(tt.filter, page)
			assert.Contains(t, countSQL, tt.cond)
			assert.Contains(t, dataSQL, tt.cond)
			assert.Len(t, countArgs, 1)
		})
	}
}
