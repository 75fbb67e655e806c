package querybuilder

import (
	"fmt"
	"reflect"
	"strconv"
)

// Value is a SQL literal. The set of implementations is closed: Text, Boolean
// and the sized integer kinds below.
type Value interface {
	fmt.Stringer
	sqlValue()
}

// Text renders wrapped in single quotes. The content is not escaped.
type Text string

// Boolean renders as TRUE or FALSE.
type Boolean bool

type (
	Int8   int8
	Uint8  uint8
	Int16  int16
	Uint16 uint16
	Int32  int32
	Uint32 uint32
	Int64  int64
	Uint64 uint64
)

func (t Text) String() string { return "'" + string(t) + "'" }

func (b Boolean) String() string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

func (i Int8) String() string   { return strconv.FormatInt(int64(i), 10) }
func (i Uint8) String() string  { return strconv.FormatUint(uint64(i), 10) }
func (i Int16) String() string  { return strconv.FormatInt(int64(i), 10) }
func (i Uint16) String() string { return strconv.FormatUint(uint64(i), 10) }
func (i Int32) String() string  { return strconv.FormatInt(int64(i), 10) }
func (i Uint32) String() string { return strconv.FormatUint(uint64(i), 10) }
func (i Int64) String() string  { return strconv.FormatInt(int64(i), 10) }
func (i Uint64) String() string { return strconv.FormatUint(uint64(i), 10) }

// literal renders v, or NULL when no value was given.
func literal(v Value) string {
	if v == nil {
		return "NULL"
	}
	return v.String()
}

func (Text) sqlValue()    {}
func (Boolean) sqlValue() {}
func (Int8) sqlValue()    {}
func (Uint8) sqlValue()   {}
func (Int16) sqlValue()   {}
func (Uint16) sqlValue()  {}
func (Int32) sqlValue()   {}
func (Uint32) sqlValue()  {}
func (Int64) sqlValue()   {}
func (Uint64) sqlValue()  {}

// ValueOf converts a Go scalar into its Value. Pointers are followed, int and
// uint widen to Int64 and Uint64. Anything else is ErrUnsupportedType.
func ValueOf(v any) (Value, error) {
	if v == nil {
		return nil, fmt.Errorf("nil: %w", ErrUnsupportedType)
	}
	if val, is := v.(Value); is {
		return val, nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, fmt.Errorf("nil %s: %w", rv.Type(), ErrUnsupportedType)
		}
		rv = rv.Elem()
	}
	if rv.CanInterface() {
		if val, is := rv.Interface().(Value); is {
			return val, nil
		}
	}
	switch rv.Kind() {
	case reflect.String:
		return Text(rv.String()), nil
	case reflect.Bool:
		return Boolean(rv.Bool()), nil
	case reflect.Int8:
		return Int8(rv.Int()), nil
	case reflect.Int16:
		return Int16(rv.Int()), nil
	case reflect.Int32:
		return Int32(rv.Int()), nil
	case reflect.Int64, reflect.Int:
		return Int64(rv.Int()), nil
	case reflect.Uint8:
		return Uint8(rv.Uint()), nil
	case reflect.Uint16:
		return Uint16(rv.Uint()), nil
	case reflect.Uint32:
		return Uint32(rv.Uint()), nil
	case reflect.Uint64, reflect.Uint:
		return Uint64(rv.Uint()), nil
	default:
		return nil, fmt.Errorf("%s: %w", rv.Type(), ErrUnsupportedType)
	}
}
