package querybuilder

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/table"
)

// Explain lays out the clauses of s as a table followed by the rendered
// statement.
func Explain(s Statement) string {
	w := table.NewWriter()
	w.AppendHeader(table.Row{"#", "Clause", "SQL"})
	for i, c := range s.clauses() {
		w.AppendRow(table.Row{i + 1, string(c.typ), c.text})
	}
	var b strings.Builder
	fmt.Fprintln(&b, w.Render())
	fmt.Fprint(&b, s.String())
	return b.String()
}
