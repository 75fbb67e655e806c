package querybuilder

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type User struct {
	ID     int64
	Name   string
	Age    int32
	Active bool
}

type UserProfile struct {
	ID       uint
	Nickname string
	secret   string
}

type Country struct {
	Code    string
	Name    string
	Comment string `sql:"-"`
}

func (c Country) ConfigureEntity(e *EntityConfigurator) {
	e.Table("countries_v2")
	e.Field("Code").IsPrimaryKey().ColumnName("iso_code")
}

type Audit struct {
	CreatedBy string
	UpdatedBy string `sql:"editor"`
}

type Post struct {
	ID    int64
	Title string
	Audit
}

func (p *Post) ConfigureEntity(e *EntityConfigurator) {
	e.Field("UpdatedBy").Skip()
}

type Article struct {
	ID    int64
	Title string
	*Audit
}

type Account struct {
	ID    int64
	Email string
	Name  string
}

func (a Account) ConfigureEntity(e *EntityConfigurator) {
	e.Field("Email").IsPrimaryKey()
}

type Event struct {
	ID int64
	At time.Time
}

type Log struct {
	Line string
}

func TestSchemaOf(t *testing.T) {
	t.Run("table is the plural snake case of the type", func(t *testing.T) {
		s, err := schemaOf(User{})
		require.NoError(t, err)
		assert.Equal(t, "users", s.table)

		s, err = schemaOf(&UserProfile{})
		require.NoError(t, err)
		assert.Equal(t, "user_profiles", s.table)
		assert.Len(t, s.fields, 2)
		assert.Equal(t, "nickname", s.fields[1].Name)
		assert.True(t, s.fields[0].IsPK)
	})

	t.Run("configured entity", func(t *testing.T) {
		s, err := schemaOf(Country{Code: "IR"})
		require.NoError(t, err)
		assert.Equal(t, "countries_v2", s.table)
		require.Len(t, s.fields, 2)
		assert.Equal(t, "iso_code", s.fields[0].Name)
		assert.True(t, s.fields[0].IsPK)
	})

	t.Run("embedded structs and pointer receivers", func(t *testing.T) {
		s, err := schemaOf(Post{})
		require.NoError(t, err)
		assert.Equal(t, "posts", s.table)
		var names []string
		for _, f := range s.fields {
			names = append(names, f.Name)
		}
		assert.Equal(t, []string{"id", "title", "created_by"}, names)
	})

	t.Run("embedded struct pointer", func(t *testing.T) {
		s, err := schemaOf(Article{ID: 1, Audit: &Audit{CreatedBy: "me"}})
		require.NoError(t, err)
		var names []string
		for _, f := range s.fields {
			names = append(names, f.Name)
		}
		assert.Equal(t, []string{"id", "title", "created_by", "editor"}, names)
	})

	t.Run("nil embedded struct pointer is skipped", func(t *testing.T) {
		s, err := schemaOf(Article{ID: 1})
		require.NoError(t, err)
		assert.Len(t, s.fields, 2)
	})

	t.Run("configured primary key replaces id", func(t *testing.T) {
		s, err := schemaOf(Account{})
		require.NoError(t, err)
		pk := s.pk()
		require.NotNil(t, pk)
		assert.Equal(t, "email", pk.Name)
		assert.False(t, s.fields[0].IsPK)
	})

	t.Run("not a struct", func(t *testing.T) {
		var u *User
		for _, in := range []any{nil, u, 1, "users"} {
			_, err := schemaOf(in)
			assert.ErrorIs(t, err, ErrNotStruct)
		}
	})
}

func TestInsertEntity(t *testing.T) {
	t.Run("primary key is left out", func(t *testing.T) {
		q, err := InsertEntity(&User{ID: 1, Name: "greg", Age: 30, Active: true})
		require.NoError(t, err)
		assert.Equal(t, "INSERT INTO users(active, age, name) VALUES(TRUE, 30, 'greg')", q.String())
	})

	t.Run("struct tags name columns", func(t *testing.T) {
		type Note struct {
			Body string `sql:"content"`
		}
		q, err := InsertEntity(Note{Body: "hi"})
		require.NoError(t, err)
		assert.Equal(t, "INSERT INTO notes(content) VALUES('hi')", q.String())
	})

	t.Run("unsupported field", func(t *testing.T) {
		_, err := InsertEntity(Event{ID: 1, At: time.Now()})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnsupportedType))
		var fe *FieldError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, "Event", fe.Entity)
		assert.Equal(t, "At", fe.Field)
		assert.Equal(t, "Event.At: time.Time: querybuilder: unsupported value type", err.Error())
	})

	t.Run("embedded struct pointer", func(t *testing.T) {
		q, err := InsertEntity(Article{ID: 1, Title: "t", Audit: &Audit{CreatedBy: "me"}})
		require.NoError(t, err)
		assert.Equal(t, "INSERT INTO articles(created_by, editor, title) VALUES('me', '', 't')", q.String())

		q, err = InsertEntity(&Article{ID: 1, Title: "t"})
		require.NoError(t, err)
		assert.Equal(t, "INSERT INTO articles(title) VALUES('t')", q.String())
	})
}

func TestUpdateEntity(t *testing.T) {
	t.Run("sets every other column", func(t *testing.T) {
		q, err := UpdateEntity(User{ID: 7, Name: "george", Age: 41})
		require.NoError(t, err)
		assert.Equal(t, "UPDATE users SET active = FALSE, age = 41, name = 'george' WHERE id = 7", q.String())
	})

	t.Run("configured primary key", func(t *testing.T) {
		q, err := UpdateEntity(Country{Code: "IR", Name: "Iran", Comment: "ignored"})
		require.NoError(t, err)
		assert.Equal(t, "UPDATE countries_v2 SET name = 'Iran' WHERE iso_code = 'IR'", q.String())
	})

	t.Run("configured primary key replaces id", func(t *testing.T) {
		q, err := UpdateEntity(Account{ID: 4, Email: "a@b.c", Name: "greg"})
		require.NoError(t, err)
		assert.Equal(t, "UPDATE accounts SET id = 4, name = 'greg' WHERE email = 'a@b.c'", q.String())
	})

	t.Run("no primary key", func(t *testing.T) {
		_, err := UpdateEntity(Log{Line: "x"})
		assert.ErrorIs(t, err, ErrNoPrimaryKey)
	})
}

func TestDeleteEntity(t *testing.T) {
	t.Run("deletes by primary key", func(t *testing.T) {
		q, err := DeleteEntity(&UserProfile{ID: 3})
		require.NoError(t, err)
		assert.Equal(t, "DELETE FROM user_profiles WHERE id = 3", q.String())
	})

	t.Run("embedded struct pointer", func(t *testing.T) {
		q, err := DeleteEntity(Article{ID: 9, Audit: &Audit{}})
		require.NoError(t, err)
		assert.Equal(t, "DELETE FROM articles WHERE id = 9", q.String())
	})

	t.Run("no primary key", func(t *testing.T) {
		_, err := DeleteEntity(Log{})
		assert.ErrorIs(t, err, ErrNoPrimaryKey)
	})
}
