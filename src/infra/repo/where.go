package repo

import (
	"strconv"
	"strings"
)

// whereBuilder accumulates condition fragments and their bound values,
// numbering placeholders as values are bound. Values never appear in the
// rendered SQL text.
type whereBuilder struct {
	conds []string
	args  []any
}

// bind appends a value to the argument list and returns its placeholder.
// Binding the same value twice produces two parameters.
func (b *whereBuilder) bind(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

// and appends a condition fragment. All fragments are AND-joined.
func (b *whereBuilder) and(cond string) {
	b.conds = append(b.conds, cond)
}

// clause renders the accumulated conditions as a WHERE clause, or an empty
// string when no condition is active (match-all).
func (b *whereBuilder) clause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}
