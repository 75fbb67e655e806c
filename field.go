package querybuilder

import (
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
)

type field struct {
	Name   string
	GoName string
	IsPK   bool
	value  reflect.Value
}

// fieldsOf walks the exported fields of v, descending into embedded structs.
// A configured primary key replaces the implicit ID one.
func fieldsOf(v reflect.Value, ec *EntityConfigurator) []*field {
	fs := walkFields(v, ec)
	configured := false
	for _, f := range fs {
		if ec.fieldConfigurator(f.GoName).primaryKey {
			configured = true
			break
		}
	}
	if configured {
		for _, f := range fs {
			f.IsPK = ec.fieldConfigurator(f.GoName).primaryKey
		}
	}
	return fs
}

func walkFields(v reflect.Value, ec *EntityConfigurator) []*field {
	var fs []*field
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		ft := t.Field(i)
		if embedded, ok := embeddedStruct(v.Field(i), ft); ok {
			if embedded.IsValid() {
				fs = append(fs, walkFields(embedded, ec)...)
			} else {
				getLogger().Debugf("skipping nil embedded %s.%s", t.Name(), ft.Name)
			}
			continue
		}
		if ft.PkgPath != "" {
			continue
		}
		fc := ec.fieldConfigurator(ft.Name)
		tag := ft.Tag.Get("sql")
		if tag == "-" || fc.skip {
			getLogger().Debugf("skipping field %s.%s", t.Name(), ft.Name)
			continue
		}
		f := &field{GoName: ft.Name, value: v.Field(i)}
		switch {
		case fc.column != "":
			f.Name = fc.column
		case tag != "":
			f.Name = tag
		default:
			f.Name = strcase.ToSnake(ft.Name)
		}
		if strings.ToLower(ft.Name) == "id" || fc.primaryKey {
			f.IsPK = true
		}
		fs = append(fs, f)
	}
	return fs
}

// embeddedStruct reports whether ft is an exported embedded struct or struct
// pointer, returning the struct to walk. The returned value is invalid for a
// nil pointer.
func embeddedStruct(fv reflect.Value, ft reflect.StructField) (reflect.Value, bool) {
	if !ft.Anonymous || ft.PkgPath != "" {
		return reflect.Value{}, false
	}
	switch {
	case ft.Type.Kind() == reflect.Struct:
		return fv, true
	case ft.Type.Kind() == reflect.Ptr && ft.Type.Elem().Kind() == reflect.Struct:
		if fv.IsNil() {
			return reflect.Value{}, true
		}
		return fv.Elem(), true
	}
	return reflect.Value{}, false
}
