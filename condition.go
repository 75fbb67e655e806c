package querybuilder

// Condition joins a where clause to the one before it.
type Condition int

const (
	And Condition = iota
	Or
)

func (c Condition) String() string {
	if c == Or {
		return "OR"
	}
	return "AND"
}
