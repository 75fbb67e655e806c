package querybuilder

import "fmt"

// WhereClause is a single `column = value` predicate together with the
// Condition joining it to the previous clause. Equality is the only
// comparison.
type WhereClause struct {
	Column    string
	Value     Value
	Condition Condition
}

// Eq returns a clause joined with AND.
func Eq(column string, value Value) WhereClause {
	return WhereClause{Column: column, Value: value, Condition: And}
}

// OrEq returns a clause joined with OR.
func OrEq(column string, value Value) WhereClause {
	return WhereClause{Column: column, Value: value, Condition: Or}
}

func (w WhereClause) String() string {
	return fmt.Sprintf("%s = %s", w.Column, literal(w.Value))
}

// WithCondition renders the clause as a continuation of a chain.
func (w WhereClause) WithCondition() string {
	return fmt.Sprintf("%s %s", w.Condition, w)
}

// WithPrefix renders the clause as the head of a chain. Its condition is dropped.
func (w WhereClause) WithPrefix() string {
	return fmt.Sprintf("%s %s", ClauseType_Where, w)
}

func whereClauses(wheres []WhereClause) []clause {
	var cs []clause
	for i, w := range wheres {
		if i == 0 {
			cs = append(cs, clause{typ: ClauseType_Where, text: w.WithPrefix()})
			continue
		}
		cs = append(cs, clause{typ: conditionClauseType(w.Condition), text: w.WithCondition()})
	}
	return cs
}

func conditionClauseType(c Condition) ClauseType {
	if c == Or {
		return ClauseType_Or
	}
	return ClauseType_And
}
