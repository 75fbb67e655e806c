package querybuilder

import (
	"fmt"
	"strings"
)

// UpdateQuery builds an UPDATE statement. SET columns are rendered in
// ascending name order, where clauses in insertion order.
type UpdateQuery struct {
	table  string
	set    map[string]Value
	wheres []WhereClause
	limit  *uint
}

func Update(table string) *UpdateQuery {
	return &UpdateQuery{table: table, set: map[string]Value{}}
}

// Set assigns v to column, replacing any previous assignment.
func (q *UpdateQuery) Set(column string, v Value) *UpdateQuery {
	q.set[column] = v
	return q
}

func (q *UpdateQuery) SetValues() map[string]Value {
	return copyValues(q.set)
}

func (q *UpdateQuery) Where(column string, value Value) *UpdateQuery {
	return q.AddWhere(Eq(column, value))
}

func (q *UpdateQuery) OrWhere(column string, value Value) *UpdateQuery {
	return q.AddWhere(OrEq(column, value))
}

func (q *UpdateQuery) AddWhere(w WhereClause) *UpdateQuery {
	q.wheres = append(q.wheres, w)
	return q
}

func (q *UpdateQuery) Limit(n uint) *UpdateQuery {
	q.limit = &n
	return q
}

func (q *UpdateQuery) ClearLimit() *UpdateQuery {
	q.limit = nil
	return q
}

func (q *UpdateQuery) HasLimit() bool {
	return q.limit != nil
}

func (q *UpdateQuery) GetLimit() (uint, bool) {
	if q.limit == nil {
		return 0, false
	}
	return *q.limit, true
}

func (q *UpdateQuery) Table() string {
	return q.table
}

func (q *UpdateQuery) Wheres() []WhereClause {
	return append([]WhereClause(nil), q.wheres...)
}

func (q *UpdateQuery) clauses() []clause {
	cs := []clause{{typ: ClauseType_Update, text: fmt.Sprintf("%s %s", ClauseType_Update, q.table)}}
	if len(q.set) > 0 {
		var pairs []string
		for _, col := range sortedKeys(q.set) {
			pairs = append(pairs, fmt.Sprintf("%s = %s", col, literal(q.set[col])))
		}
		cs = append(cs, clause{typ: ClauseType_Set, text: fmt.Sprintf("%s %s", ClauseType_Set, strings.Join(pairs, ", "))})
	}
	cs = append(cs, whereClauses(q.wheres)...)
	cs = append(cs, limitClause(q.limit)...)
	return cs
}

func (q *UpdateQuery) String() string {
	return joinClauses(q.clauses())
}
