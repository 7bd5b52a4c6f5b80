// Package dataset provides the minimal tabular data model that chart
// constructors consume: an immutable set of equally sized, typed columns.
package dataset

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrRaggedColumns is returned when columns of unequal length are combined.
var ErrRaggedColumns = errors.New("columns have unequal lengths")

// Kind identifies the type of values a column holds.
type Kind string

// Column kinds.
const (
	Float  Kind = "float"
	Int    Kind = "int"
	String Kind = "string"
	Bool   Kind = "bool"
	Time   Kind = "time"
	// Factor is a categorical column: string labels with a fixed level set.
	Factor Kind = "factor"
)

// Continuous reports whether the kind carries continuous numeric values.
// Factors are categorical even when their labels look numeric.
func (k Kind) Continuous() bool {
	return k == Float || k == Int
}

// Column is a single named, typed column.
type Column struct {
	name   string
	kind   Kind
	floats []float64
	labels []string
	times  []time.Time
}

// Floats builds a float column.
func Floats(name string, values []float64) Column {
	return Column{name: name, kind: Float, floats: values}
}

// Ints builds an integer column. Values are held as float64 internally.
func Ints(name string, values []int) Column {
	floats := make([]float64, len(values))

	for i, v := range values {
		floats[i] = float64(v)
	}

	return Column{name: name, kind: Int, floats: floats}
}

// Strings builds a string column.
func Strings(name string, values []string) Column {
	return Column{name: name, kind: String, labels: values}
}

// Bools builds a boolean column.
func Bools(name string, values []bool) Column {
	labels := make([]string, len(values))

	for i, v := range values {
		labels[i] = strconv.FormatBool(v)
	}

	return Column{name: name, kind: Bool, labels: labels}
}

// Times builds a time column.
func Times(name string, values []time.Time) Column {
	return Column{name: name, kind: Time, times: values}
}

// Factors builds a categorical column from string labels.
func Factors(name string, values []string) Column {
	return Column{name: name, kind: Factor, labels: values}
}

// Name returns the column name.
func (c Column) Name() string { return c.name }

// Kind returns the column kind.
func (c Column) Kind() Kind { return c.kind }

// Len returns the number of values in the column.
func (c Column) Len() int {
	switch c.kind {
	case Float, Int:
		return len(c.floats)
	case Time:
		return len(c.times)
	case String, Bool, Factor:
		return len(c.labels)
	default:
		return 0
	}
}

// Floats returns the column values as float64. Only meaningful for
// continuous columns; others return nil.
func (c Column) Floats() []float64 {
	if !c.kind.Continuous() {
		return nil
	}

	out := make([]float64, len(c.floats))
	copy(out, c.floats)

	return out
}

// Times returns the column values as time.Time, or nil for non-time columns.
func (c Column) Times() []time.Time {
	if c.kind != Time {
		return nil
	}

	out := make([]time.Time, len(c.times))
	copy(out, c.times)

	return out
}

// Labels returns a per-row string representation of the column, usable as
// axis labels or grouping keys for any kind.
func (c Column) Labels() []string {
	switch c.kind {
	case String, Bool, Factor:
		out := make([]string, len(c.labels))
		copy(out, c.labels)

		return out
	case Float:
		out := make([]string, len(c.floats))

		for i, v := range c.floats {
			out[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}

		return out
	case Int:
		out := make([]string, len(c.floats))

		for i, v := range c.floats {
			out[i] = strconv.FormatInt(int64(v), 10)
		}

		return out
	case Time:
		out := make([]string, len(c.times))

		for i, v := range c.times {
			out[i] = v.Format("2006-01-02")
		}

		return out
	default:
		return nil
	}
}

// Levels returns the distinct labels of the column in order of first
// appearance. For factors this is the level set.
func (c Column) Levels() []string {
	labels := c.Labels()
	seen := make(map[string]struct{}, len(labels))

	var out []string

	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}

		seen[l] = struct{}{}

		out = append(out, l)
	}

	return out
}

// Dataset is an ordered collection of equally sized columns.
type Dataset struct {
	name    string
	columns []Column
	index   map[string]int
}

// New builds a dataset from columns. All columns must have the same length.
func New(name string, cols ...Column) (*Dataset, error) {
	ds := &Dataset{
		name:    name,
		columns: cols,
		index:   make(map[string]int, len(cols)),
	}

	for i, c := range cols {
		if c.Len() != cols[0].Len() {
			return nil, fmt.Errorf("%w: column %q has %d rows, column %q has %d",
				ErrRaggedColumns, c.Name(), c.Len(), cols[0].Name(), cols[0].Len())
		}

		ds.index[c.Name()] = i
	}

	return ds, nil
}

// MustNew is New for statically known column sets, panicking on error.
func MustNew(name string, cols ...Column) *Dataset {
	ds, err := New(name, cols...)
	if err != nil {
		panic("dataset: " + err.Error())
	}

	return ds
}

// Name returns the dataset name.
func (ds *Dataset) Name() string { return ds.name }

// Len returns the row count. An empty dataset has zero rows.
func (ds *Dataset) Len() int {
	if len(ds.columns) == 0 {
		return 0
	}

	return ds.columns[0].Len()
}

// Names returns the column names in declaration order.
func (ds *Dataset) Names() []string {
	names := make([]string, len(ds.columns))

	for i, c := range ds.columns {
		names[i] = c.Name()
	}

	return names
}

// Column returns the named column and whether it exists.
func (ds *Dataset) Column(name string) (Column, bool) {
	i, ok := ds.index[name]
	if !ok {
		return Column{}, false
	}

	return ds.columns[i], true
}
