package querybuilder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplain(t *testing.T) {
	t.Run("one row per clause", func(t *testing.T) {
		q := Select("user", "name").From("users").
			Where("name", Text("ezio")).
			OrWhere("name", Text("connor")).
			Limit(42)
		out := Explain(q)

		assert.True(t, strings.HasSuffix(out, q.String()))
		for _, part := range []string{"SELECT user, name", "FROM users", "WHERE name = 'ezio'", "OR name = 'connor'", "LIMIT 42"} {
			assert.Contains(t, out, part)
		}
	})

	t.Run("does not change the statement", func(t *testing.T) {
		q := Update("users").Set("name", Text("george"))
		before := q.String()
		Explain(q)
		assert.Equal(t, before, q.String())
	})
}
