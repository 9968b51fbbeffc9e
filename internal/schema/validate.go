package schema

import (
	"errors"
	"fmt"
	"sort"
)

// Validate checks the structural contract of every table: a primary key, a
// natural-key uniqueness for surrogate-keyed tables, resolvable foreign
// keys, and constraint columns that exist. All problems are reported.
func (c *Catalog) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(c.tables))
	for _, t := range c.tables {
		if seen[t.Name] {
			errs = append(errs, fmt.Errorf("table %s declared twice", t.Name))
			continue
		}
		seen[t.Name] = true
		errs = append(errs, c.validateTable(t)...)
	}
	return errors.Join(errs...)
}

func (c *Catalog) validateTable(t *Table) []error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%s: "+format, append([]any{t.Name}, args...)...))
	}

	if len(t.Columns) == 0 {
		fail("no columns")
	}
	names := make(map[string]bool, len(t.Columns))
	for _, col := range t.Columns {
		if names[col.Name] {
			fail("duplicate column %s", col.Name)
		}
		names[col.Name] = true
		if col.Type == 0 {
			fail("column %s has no type", col.Name)
		}
	}
	missing := func(what string, columns []string) {
		if len(columns) == 0 {
			fail("%s has no columns", what)
		}
		for _, name := range columns {
			if !names[name] {
				fail("%s references unknown column %s", what, name)
			}
		}
	}

	if len(t.PrimaryKey.Columns) == 0 {
		fail("no primary key")
	}
	missing("primary key", t.PrimaryKey.Columns)
	for _, name := range t.PrimaryKey.Columns {
		if col := t.Column(name); col != nil && col.Nullable {
			fail("primary key column %s is nullable", name)
		}
	}
	if t.Surrogate() != nil && len(t.Uniques) == 0 {
		fail("surrogate key without a natural-key unique constraint")
	}

	for _, fk := range t.ForeignKeys {
		what := fmt.Sprintf("foreign key %v", fk.Columns)
		missing(what, fk.Columns)
		if len(fk.Columns) != len(fk.RefColumns) {
			fail("%s: %d columns reference %d", what, len(fk.Columns), len(fk.RefColumns))
			continue
		}
		ref := c.Table(fk.RefTable)
		if ref == nil {
			fail("%s references unknown table %s", what, fk.RefTable)
			continue
		}
		for i, name := range fk.RefColumns {
			target := ref.Column(name)
			if target == nil {
				fail("%s references unknown column %s.%s", what, ref.Name, name)
				continue
			}
			if col := t.Column(fk.Columns[i]); col != nil && col.Type != target.Type {
				fail("%s: %s is %s but %s.%s is %s", what, col.Name, col, ref.Name, name, target)
			}
		}
	}
	for _, u := range t.Uniques {
		missing(fmt.Sprintf("unique %s", u.Name), u.Columns)
	}
	for _, idx := range t.Indexes {
		missing(fmt.Sprintf("index %s", idx.Name), idx.Columns)
	}
	for _, chk := range t.Checks {
		missing(fmt.Sprintf("check %s", chk.Name), []string{chk.Column})
		if len(chk.In) == 0 {
			fail("check %s has no values", chk.Name)
		}
	}

	constraints := make(map[string]bool)
	for _, name := range t.ConstraintNames() {
		if constraints[name] {
			fail("constraint name %s used twice", name)
		}
		constraints[name] = true
	}
	return errs
}

// Ordered returns the tables with every referenced table ahead of the
// tables that reference it. Ties keep declaration order.
func (c *Catalog) Ordered() ([]*Table, error) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(c.tables))
	out := make([]*Table, 0, len(c.tables))

	var visit func(t *Table, path []string) error
	visit = func(t *Table, path []string) error {
		switch state[t.Name] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("foreign key cycle: %v", append(path, t.Name))
		}
		state[t.Name] = visiting
		for _, fk := range t.ForeignKeys {
			if fk.RefTable == t.Name {
				continue
			}
			ref := c.Table(fk.RefTable)
			if ref == nil {
				return fmt.Errorf("%s references unknown table %s", t.Name, fk.RefTable)
			}
			if err := visit(ref, append(path, t.Name)); err != nil {
				return err
			}
		}
		state[t.Name] = done
		out = append(out, t)
		return nil
	}

	for _, t := range c.tables {
		if err := visit(t, nil); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// SharedNames maps each index or constraint name declared by more than one
// table to the tables declaring it, sorted.
func (c *Catalog) SharedNames() map[string][]string {
	owners := make(map[string][]string)
	for _, t := range c.tables {
		for _, name := range t.ConstraintNames() {
			owners[name] = append(owners[name], t.Name)
		}
	}
	shared := make(map[string][]string)
	for name, tables := range owners {
		if len(tables) > 1 {
			sort.Strings(tables)
			shared[name] = tables
		}
	}
	return shared
}

// Reference identifies one foreign key of one table.
type Reference struct {
	Table string
	ForeignKey
}

func (r Reference) String() string {
	return fmt.Sprintf("%s%v -> %s%v", r.Table, r.Columns, r.RefTable, r.RefColumns)
}

// NonUniqueReferences lists foreign keys whose target columns are neither
// the primary key nor a unique constraint of the referenced table. Only
// engines that index any referenced column prefix accept them.
func (c *Catalog) NonUniqueReferences() []Reference {
	var refs []Reference
	for _, t := range c.tables {
		for _, fk := range t.ForeignKeys {
			ref := c.Table(fk.RefTable)
			if ref == nil || ref.IsKey(fk.RefColumns) {
				continue
			}
			refs = append(refs, Reference{Table: t.Name, ForeignKey: fk})
		}
	}
	return refs
}

// IsNonUnique reports whether fk on table targets non-key columns.
func (c *Catalog) IsNonUnique(fk ForeignKey) bool {
	ref := c.Table(fk.RefTable)
	return ref != nil && !ref.IsKey(fk.RefColumns)
}

// Constraint returns the tables declaring an index or constraint named name.
func (c *Catalog) Constraint(name string) []*Table {
	var out []*Table
	for _, t := range c.tables {
		for _, n := range t.ConstraintNames() {
			if n == name {
				out = append(out, t)
				break
			}
		}
	}
	return out
}
