package querybuilder

// OrderBy is the ordering of a statement's rows, either ByColumn or
// ByExpression. Both render the same way; the split only records intent.
type OrderBy interface {
	String() string
	orderBy()
}

type ByColumn string

type ByExpression string

func (c ByColumn) String() string     { return "ORDER BY " + string(c) }
func (e ByExpression) String() string { return "ORDER BY " + string(e) }

func (ByColumn) orderBy()     {}
func (ByExpression) orderBy() {}
