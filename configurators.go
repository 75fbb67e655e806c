package querybuilder

// Entity is implemented by structs that want to override the table, column
// or primary key inferred for them.
type Entity interface {
	ConfigureEntity(e *EntityConfigurator)
}

type EntityConfigurator struct {
	table  string
	fields []*FieldConfigurator
}

func newEntityConfigurator() *EntityConfigurator {
	return &EntityConfigurator{}
}

func (ec *EntityConfigurator) Table(name string) *EntityConfigurator {
	ec.table = name
	return ec
}

// Field returns the configurator of the struct field with the given Go name.
func (ec *EntityConfigurator) Field(name string) *FieldConfigurator {
	for _, fc := range ec.fields {
		if fc.fieldName == name {
			return fc
		}
	}
	fc := &FieldConfigurator{fieldName: name}
	ec.fields = append(ec.fields, fc)
	return fc
}

func (ec *EntityConfigurator) fieldConfigurator(name string) *FieldConfigurator {
	for _, fc := range ec.fields {
		if fc.fieldName == name {
			return fc
		}
	}
	return &FieldConfigurator{}
}

type FieldConfigurator struct {
	fieldName  string
	primaryKey bool
	column     string
	skip       bool
}

func (fc *FieldConfigurator) IsPrimaryKey() *FieldConfigurator {
	fc.primaryKey = true
	return fc
}

func (fc *FieldConfigurator) ColumnName(name string) *FieldConfigurator {
	fc.column = name
	return fc
}

// Skip leaves the field out of every derived statement.
func (fc *FieldConfigurator) Skip() *FieldConfigurator {
	fc.skip = true
	return fc
}
