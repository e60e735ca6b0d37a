// Package sqlpatch turns a sparse set of field updates into a parameterized
// SQL SET clause and the matching list of bound values.
//
// Column names are interpolated into the clause (quoted, not sanitized), so
// field names and ColumnMap values must be trusted identifiers. Values are
// always bound as $n parameters.
package sqlpatch

import (
	"strconv"
	"strings"

	"jobly/internal/pkg/errs"

	"github.com/lib/pq"
)

// Field is one logical field name and the value it should be set to.
// A nil Value sets the column to NULL.
type Field struct {
	Name  string
	Value any
}

// Fields is an ordered set of field updates. Order determines placeholder positions.
type Fields []Field

// Set appends name=value, or replaces the value in place when name is already present.
func (f Fields) Set(name string, value any) Fields {
	for i := range f {
		if f[i].Name == name {
			f[i].Value = value
			return f
		}
	}
	return append(f, Field{Name: name, Value: value})
}

// ColumnMap maps logical field names to physical column names.
// Names without an entry map to themselves.
type ColumnMap map[string]string

// Identity is the ColumnMap for tables whose columns already match the field names.
var Identity = ColumnMap{}

// Column returns the physical column for name.
func (m ColumnMap) Column(name string) string {
	if col, ok := m[name]; ok && col != "" {
		return col
	}
	return name
}

// Clause is the result of Build.
type Clause struct {
	// Assignments is the comma separated `"column"=$n` list for a SET clause.
	Assignments string
	// Values holds the bound values, Values[n-1] belongs to $n.
	Values []any
}

// NextPlaceholder returns the first placeholder after the assignment values,
// for use in the statement's WHERE clause.
func (c Clause) NextPlaceholder() string {
	return placeholder(len(c.Values) + 1)
}

// Args returns the bound values followed by extra trailing arguments.
func (c Clause) Args(extra ...any) []any {
	args := make([]any, 0, len(c.Values)+len(extra))
	args = append(args, c.Values...)
	return append(args, extra...)
}

// Build converts fields into a SET clause. It fails with *errs.EmptyUpdateError
// when fields is empty.
//
//	Build(Fields{{"numEmployees", 5}, {"name", "Acme"}}, ColumnMap{"numEmployees": "num_employees"})
//	// Assignments: "num_employees"=$1, "name"=$2
//	// Values:      [5 Acme]
func Build(fields Fields, columns ColumnMap) (Clause, error) {
	if len(fields) == 0 {
		return Clause{}, errs.NewEmptyUpdateError("")
	}

	fragments := make([]string, len(fields))
	values := make([]any, len(fields))
	for i, field := range fields {
		fragments[i] = pq.QuoteIdentifier(columns.Column(field.Name)) + "=" + placeholder(i+1)
		values[i] = field.Value
	}

	return Clause{
		Assignments: strings.Join(fragments, ", "),
		Values:      values,
	}, nil
}

func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}
