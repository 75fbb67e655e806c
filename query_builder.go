package querybuilder

// Statement is a builder that can be rendered into SQL text.
type Statement interface {
	String() string
	clauses() []clause
}

var (
	_ Statement = (*SelectQuery)(nil)
	_ Statement = (*InsertQuery)(nil)
	_ Statement = (*UpdateQuery)(nil)
	_ Statement = (*DeleteQuery)(nil)
)
