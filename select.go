package querybuilder

import (
	"fmt"
	"strings"
)

// SelectQuery builds a SELECT statement.
type SelectQuery struct {
	columns []string
	table   string
	wheres  []WhereClause
	limit   *uint
	orderBy OrderBy
}

// Select starts a SELECT of the given columns. Set the source table with From.
func Select(columns ...string) *SelectQuery {
	return &SelectQuery{columns: append([]string(nil), columns...)}
}

func (q *SelectQuery) From(table string) *SelectQuery {
	q.table = table
	return q
}

func (q *SelectQuery) Where(column string, value Value) *SelectQuery {
	return q.AddWhere(Eq(column, value))
}

func (q *SelectQuery) OrWhere(column string, value Value) *SelectQuery {
	return q.AddWhere(OrEq(column, value))
}

func (q *SelectQuery) AddWhere(w WhereClause) *SelectQuery {
	q.wheres = append(q.wheres, w)
	return q
}

func (q *SelectQuery) Limit(n uint) *SelectQuery {
	q.limit = &n
	return q
}

func (q *SelectQuery) ClearLimit() *SelectQuery {
	q.limit = nil
	return q
}

func (q *SelectQuery) HasLimit() bool {
	return q.limit != nil
}

// GetLimit returns the limit and whether one is set.
func (q *SelectQuery) GetLimit() (uint, bool) {
	if q.limit == nil {
		return 0, false
	}
	return *q.limit, true
}

func (q *SelectQuery) OrderBy(o OrderBy) *SelectQuery {
	q.orderBy = o
	return q
}

func (q *SelectQuery) ClearOrderBy() *SelectQuery {
	q.orderBy = nil
	return q
}

func (q *SelectQuery) IsOrdered() bool {
	return q.orderBy != nil
}

func (q *SelectQuery) Columns() []string {
	return append([]string(nil), q.columns...)
}

func (q *SelectQuery) Table() string {
	return q.table
}

func (q *SelectQuery) Wheres() []WhereClause {
	return append([]WhereClause(nil), q.wheres...)
}

func (q *SelectQuery) clauses() []clause {
	selected := string(ClauseType_Select)
	if len(q.columns) > 0 {
		selected = fmt.Sprintf("%s %s", ClauseType_Select, strings.Join(q.columns, ", "))
	}
	cs := []clause{{typ: ClauseType_Select, text: selected}}

	// one character table names are not rendered
	if len(q.table) > 1 {
		cs = append(cs, clause{typ: ClauseType_From, text: fmt.Sprintf("%s %s", ClauseType_From, q.table)})
	}
	cs = append(cs, whereClauses(q.wheres)...)
	cs = append(cs, limitClause(q.limit)...)
	cs = append(cs, orderByClause(q.orderBy)...)
	return cs
}

func (q *SelectQuery) String() string {
	return joinClauses(q.clauses())
}

// Build renders the statement like String but refuses an empty column list.
func (q *SelectQuery) Build() (string, error) {
	if len(q.columns) == 0 {
		getLogger().Warnf("select from %q has no columns", q.table)
		return "", ErrNoColumns
	}
	return q.String(), nil
}
