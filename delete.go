package querybuilder

import "fmt"

// DeleteQuery builds a DELETE statement. Unlike SelectQuery, ORDER BY is
// rendered before LIMIT.
type DeleteQuery struct {
	table   string
	wheres  []WhereClause
	limit   *uint
	orderBy OrderBy
}

func DeleteFrom(table string) *DeleteQuery {
	return &DeleteQuery{table: table}
}

func (q *DeleteQuery) Where(column string, value Value) *DeleteQuery {
	return q.AddWhere(Eq(column, value))
}

func (q *DeleteQuery) OrWhere(column string, value Value) *DeleteQuery {
	return q.AddWhere(OrEq(column, value))
}

func (q *DeleteQuery) AddWhere(w WhereClause) *DeleteQuery {
	q.wheres = append(q.wheres, w)
	return q
}

func (q *DeleteQuery) Limit(n uint) *DeleteQuery {
	q.limit = &n
	return q
}

func (q *DeleteQuery) ClearLimit() *DeleteQuery {
	q.limit = nil
	return q
}

func (q *DeleteQuery) HasLimit() bool {
	return q.limit != nil
}

func (q *DeleteQuery) GetLimit() (uint, bool) {
	if q.limit == nil {
		return 0, false
	}
	return *q.limit, true
}

func (q *DeleteQuery) OrderBy(o OrderBy) *DeleteQuery {
	q.orderBy = o
	return q
}

func (q *DeleteQuery) ClearOrderBy() *DeleteQuery {
	q.orderBy = nil
	return q
}

func (q *DeleteQuery) IsOrdered() bool {
	return q.orderBy != nil
}

func (q *DeleteQuery) Table() string {
	return q.table
}

func (q *DeleteQuery) Wheres() []WhereClause {
	return append([]WhereClause(nil), q.wheres...)
}

func (q *DeleteQuery) clauses() []clause {
	cs := []clause{{typ: ClauseType_Delete, text: fmt.Sprintf("%s %s", ClauseType_Delete, q.table)}}
	cs = append(cs, whereClauses(q.wheres)...)
	cs = append(cs, orderByClause(q.orderBy)...)
	cs = append(cs, limitClause(q.limit)...)
	return cs
}

func (q *DeleteQuery) String() string {
	return joinClauses(q.clauses())
}
