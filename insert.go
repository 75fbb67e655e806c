package querybuilder

import (
	"fmt"
	"strings"
)

// InsertQuery builds a single row INSERT. Columns hold one value each and are
// rendered in ascending name order.
type InsertQuery struct {
	table  string
	values map[string]Value
}

func InsertInto(table string) *InsertQuery {
	return &InsertQuery{table: table, values: map[string]Value{}}
}

// Value sets the value of column, replacing any previous one.
func (q *InsertQuery) Value(column string, v Value) *InsertQuery {
	q.values[column] = v
	return q
}

func (q *InsertQuery) Values() map[string]Value {
	return copyValues(q.values)
}

func (q *InsertQuery) Table() string {
	return q.table
}

func (q *InsertQuery) clauses() []clause {
	cols := sortedKeys(q.values)
	vals := make([]string, 0, len(cols))
	for _, col := range cols {
		vals = append(vals, literal(q.values[col]))
	}
	return []clause{
		{typ: ClauseType_Insert, text: fmt.Sprintf("%s %s(%s)", ClauseType_Insert, q.table, strings.Join(cols, ", "))},
		{typ: ClauseType_Values, text: fmt.Sprintf("%s(%s)", ClauseType_Values, strings.Join(vals, ", "))},
	}
}

func (q *InsertQuery) String() string {
	return joinClauses(q.clauses())
}
