package repository

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/fortuna/lahman/internal/schema"
)

// field locates the struct field bound to one column.
type field struct {
	column *schema.Column
	index  []int
}

// mapping binds every column of a table, in declaration order, to a field of
// a row type.
type mapping struct {
	table     *schema.Table
	fields    []field
	byColumn  map[string]int
	surrogate int
}

var mappings sync.Map // reflect.Type -> *mapping

func mappingFor(typ reflect.Type, table *schema.Table) (*mapping, error) {
	if m, ok := mappings.Load(typ); ok {
		return m.(*mapping), nil
	}
	m, err := buildMapping(typ, table)
	if err != nil {
		return nil, err
	}
	actual, _ := mappings.LoadOrStore(typ, m)
	return actual.(*mapping), nil
}

// buildMapping requires a one to one correspondence between db tags and the
// table's columns. Embedded structs without a tag are flattened.
func buildMapping(typ reflect.Type, table *schema.Table) (*mapping, error) {
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%s: row type must be a struct", typ)
	}
	tagged := make(map[string][]int)
	if err := collectFields(typ, nil, tagged); err != nil {
		return nil, err
	}

	m := &mapping{
		table:     table,
		byColumn:  make(map[string]int, len(table.Columns)),
		surrogate: -1,
	}
	var missing []string
	for _, col := range table.Columns {
		idx, ok := tagged[col.Name]
		if !ok {
			missing = append(missing, col.Name)
			continue
		}
		delete(tagged, col.Name)
		m.byColumn[col.Name] = len(m.fields)
		m.fields = append(m.fields, field{column: col, index: idx})
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%s: no field for columns %s of %s", typ, strings.Join(missing, ", "), table.Name)
	}
	if len(tagged) > 0 {
		extra := make([]string, 0, len(tagged))
		for name := range tagged {
			extra = append(extra, name)
		}
		return nil, fmt.Errorf("%s: %s has no columns %v", typ, table.Name, extra)
	}
	if s := table.Surrogate(); s != nil {
		m.surrogate = m.byColumn[s.Name]
		if k := typ.FieldByIndex(m.fields[m.surrogate].index).Type.Kind(); k < reflect.Int || k > reflect.Int64 {
			return nil, fmt.Errorf("%s: surrogate key %s must be a signed integer", typ, s.Name)
		}
	}
	return m, nil
}

func collectFields(typ reflect.Type, prefix []int, out map[string][]int) error {
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		index := append(append([]int(nil), prefix...), i)
		tag, hasTag := f.Tag.Lookup("db")
		if tag == "-" {
			continue
		}
		if f.Anonymous && !hasTag && f.Type.Kind() == reflect.Struct {
			if err := collectFields(f.Type, index, out); err != nil {
				return err
			}
			continue
		}
		if !hasTag || !f.IsExported() {
			continue
		}
		if _, dup := out[tag]; dup {
			return fmt.Errorf("%s: column %s is tagged twice", typ, tag)
		}
		out[tag] = index
	}
	return nil
}

func (m *mapping) columnNames() []string {
	return m.table.ColumnNames()
}

// values returns the column values of row in declaration order.
func (m *mapping) values(row reflect.Value) []any {
	out := make([]any, len(m.fields))
	for i, f := range m.fields {
		out[i] = row.FieldByIndex(f.index).Interface()
	}
	return out
}

// targets returns scan destinations for every column of row.
func (m *mapping) targets(row reflect.Value) []any {
	out := make([]any, len(m.fields))
	for i, f := range m.fields {
		out[i] = row.FieldByIndex(f.index).Addr().Interface()
	}
	return out
}

// applyDefaults fills NULL fields whose column declares a default.
func (m *mapping) applyDefaults(row reflect.Value) error {
	for _, f := range m.fields {
		if f.column.Default == nil {
			continue
		}
		v := row.FieldByIndex(f.index)
		valuer, ok := v.Interface().(driver.Valuer)
		if !ok {
			continue
		}
		current, err := valuer.Value()
		if err != nil {
			return err
		}
		if current != nil {
			continue
		}
		scanner, ok := v.Addr().Interface().(sql.Scanner)
		if !ok {
			continue
		}
		if err := scanner.Scan(f.column.Default); err != nil {
			return fmt.Errorf("applying default to %s.%s: %w", m.table.Name, f.column.Name, err)
		}
	}
	return nil
}

// surrogateField returns the auto-increment field of row, if the table has one.
func (m *mapping) surrogateField(row reflect.Value) (reflect.Value, bool) {
	if m.surrogate < 0 {
		return reflect.Value{}, false
	}
	return row.FieldByIndex(m.fields[m.surrogate].index), true
}
