package querybuilder

import (
	"errors"
	"fmt"
)

var (
	// ErrNoColumns is returned by SelectQuery.Build when no column was selected.
	ErrNoColumns = errors.New("querybuilder: no columns selected")

	// ErrUnsupportedType is returned when a Go value has no SQL literal form.
	ErrUnsupportedType = errors.New("querybuilder: unsupported value type")

	// ErrNotStruct is returned when an entity is not a struct or a pointer to one.
	ErrNotStruct = errors.New("querybuilder: entity must be a struct or a pointer to struct")

	// ErrNoPrimaryKey is returned when an update or delete is derived from an
	// entity that has no primary key field.
	ErrNoPrimaryKey = errors.New("querybuilder: entity has no primary key")
)

// FieldError reports the struct field whose value could not be converted.
type FieldError struct {
	Entity string
	Field  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s.%s: %s", e.Entity, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
