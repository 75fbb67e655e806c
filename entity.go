package querybuilder

import (
	"fmt"
	"reflect"

	"github.com/gertd/go-pluralize"
	"github.com/iancoleman/strcase"
)

type schema struct {
	entity string
	table  string
	fields []*field
}

func schemaOf(obj any) (*schema, error) {
	if obj == nil {
		return nil, ErrNotStruct
	}
	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, ErrNotStruct
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%s: %w", v.Type(), ErrNotStruct)
	}

	ec := configuratorOf(obj, v)
	table := ec.table
	if table == "" {
		table = pluralize.NewClient().Plural(strcase.ToSnake(v.Type().Name()))
	}
	return &schema{
		entity: v.Type().Name(),
		table:  table,
		fields: fieldsOf(v, ec),
	}, nil
}

func configuratorOf(obj any, v reflect.Value) *EntityConfigurator {
	ec := newEntityConfigurator()
	if e, is := obj.(Entity); is {
		e.ConfigureEntity(ec)
		return ec
	}
	// pointer receivers on a value argument
	ptr := reflect.New(v.Type())
	ptr.Elem().Set(v)
	if e, is := ptr.Interface().(Entity); is {
		e.ConfigureEntity(ec)
	}
	return ec
}

func (s *schema) pk() *field {
	for _, f := range s.fields {
		if f.IsPK {
			return f
		}
	}
	return nil
}

func (s *schema) valueOf(f *field) (Value, error) {
	val, err := ValueOf(f.value.Interface())
	if err != nil {
		return nil, &FieldError{Entity: s.entity, Field: f.GoName, Err: err}
	}
	return val, nil
}

// values returns the column values of every field except the primary key.
func (s *schema) values() (map[string]Value, error) {
	out := map[string]Value{}
	for _, f := range s.fields {
		if f.IsPK {
			continue
		}
		val, err := s.valueOf(f)
		if err != nil {
			return nil, err
		}
		out[f.Name] = val
	}
	return out, nil
}

func (s *schema) pkClause() (WhereClause, error) {
	pk := s.pk()
	if pk == nil {
		return WhereClause{}, fmt.Errorf("%s: %w", s.entity, ErrNoPrimaryKey)
	}
	val, err := s.valueOf(pk)
	if err != nil {
		return WhereClause{}, err
	}
	return Eq(pk.Name, val), nil
}

// InsertEntity builds an insert of every non primary key field of obj.
func InsertEntity(obj any) (*InsertQuery, error) {
	s, err := schemaOf(obj)
	if err != nil {
		return nil, err
	}
	values, err := s.values()
	if err != nil {
		return nil, err
	}
	q := InsertInto(s.table)
	for col, val := range values {
		q.Value(col, val)
	}
	return q, nil
}

// UpdateEntity builds an update of every non primary key field of obj,
// restricted to the row with obj's primary key.
func UpdateEntity(obj any) (*UpdateQuery, error) {
	s, err := schemaOf(obj)
	if err != nil {
		return nil, err
	}
	where, err := s.pkClause()
	if err != nil {
		return nil, err
	}
	values, err := s.values()
	if err != nil {
		return nil, err
	}
	q := Update(s.table)
	for col, val := range values {
		q.Set(col, val)
	}
	return q.AddWhere(where), nil
}

// DeleteEntity builds a delete of the row with obj's primary key.
func DeleteEntity(obj any) (*DeleteQuery, error) {
	s, err := schemaOf(obj)
	if err != nil {
		return nil, err
	}
	where, err := s.pkClause()
	if err != nil {
		return nil, err
	}
	return DeleteFrom(s.table).AddWhere(where), nil
}
