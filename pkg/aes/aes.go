// Package aes classifies chart aesthetic arguments. An aesthetic such as
// fill or color can be left unset, fixed to a literal color, or mapped to a
// dataset column; the classifier decides which route a chart constructor
// takes and, for mappings, whether the scale is continuous or discrete.
//
// A literal is always treated as a color, even when a dataset column shares
// its exact name. Mapping such a column requires Column("name"). This keeps
// classification unambiguous at the cost of surprising a column literally
// named "red"; the trade-off is deliberate.
package aes

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/insper-data/insperplot/pkg/dataset"
)

// Classification outcomes.
type Type string

const (
	// Missing means the caller supplied nothing; use the built-in default.
	Missing Type = "missing"
	// StaticColor means a literal color applied uniformly.
	StaticColor Type = "static_color"
	// VariableMapping means the aesthetic varies with a dataset column.
	VariableMapping Type = "variable_mapping"
)

// Sentinel classification errors.
var (
	// ErrInvalidColor is returned when a literal does not resolve to a color.
	ErrInvalidColor = errors.New("invalid color")
	// ErrUnknownColumn is returned when a mapped column is not in the dataset.
	ErrUnknownColumn = errors.New("unknown column")
)

const (
	kindUnset = iota
	kindLiteral
	kindColumn
)

// Aesthetic is a caller-supplied aesthetic argument: unset, a literal color,
// or a column mapping. The zero value is unset.
type Aesthetic struct {
	kind  int
	value string
}

// Unset returns an absent aesthetic.
func Unset() Aesthetic {
	return Aesthetic{}
}

// Literal returns an aesthetic fixed to a literal color value.
func Literal(value string) Aesthetic {
	return Aesthetic{kind: kindLiteral, value: value}
}

// Column returns an aesthetic mapped to the named dataset column.
func Column(name string) Aesthetic {
	return Aesthetic{kind: kindColumn, value: name}
}

// IsSet reports whether the aesthetic was supplied at all.
func (a Aesthetic) IsSet() bool {
	return a.kind != kindUnset
}

// Classification is the result record consumed by chart constructors.
type Classification struct {
	Type         Type
	Value        string // literal color, for StaticColor.
	Column       string // column name, for VariableMapping.
	IsContinuous bool   // numeric non-factor column, for VariableMapping.
}

var hexPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// IsColor reports whether s is a recognized color: a CSS named color or a
// #RGB, #RRGGBB, or #RRGGBBAA hex string.
func IsColor(s string) bool {
	if hexPattern.MatchString(s) {
		return true
	}

	_, ok := colornames.Map[strings.ToLower(s)]

	return ok
}

// Classify resolves an aesthetic argument against ds. aesName is used only
// in error messages. The literal value, when valid, is carried forward
// unchanged.
func Classify(a Aesthetic, ds *dataset.Dataset, aesName string) (Classification, error) {
	switch a.kind {
	case kindUnset:
		return Classification{Type: Missing}, nil

	case kindLiteral:
		if !IsColor(a.value) {
			return Classification{}, fmt.Errorf(
				"%w: %q is not a valid value for %s; "+
					"map a column with Column(%q) or pass a color name or hex value like \"#E4002B\"",
				ErrInvalidColor, a.value, aesName, a.value)
		}

		return Classification{Type: StaticColor, Value: a.value}, nil

	case kindColumn:
		if ds == nil {
			return Classification{}, fmt.Errorf("%w: %q for %s (no dataset)",
				ErrUnknownColumn, a.value, aesName)
		}

		col, ok := ds.Column(a.value)
		if !ok {
			return Classification{}, fmt.Errorf("%w: %q for %s (dataset has: %s)",
				ErrUnknownColumn, a.value, aesName, strings.Join(ds.Names(), ", "))
		}

		return Classification{
			Type:         VariableMapping,
			Column:       a.value,
			IsContinuous: col.Kind().Continuous(),
		}, nil

	default:
		return Classification{}, fmt.Errorf("%w: unrecognized aesthetic for %s", ErrInvalidColor, aesName)
	}
}

// PaletteIgnored returns an advisory message when an explicit palette request
// accompanies a static-color classification, where it has no effect. The
// second return is false when there is nothing to warn about. Never fatal.
func PaletteIgnored(c Classification, palette, aesName string) (string, bool) {
	if palette == "" || c.Type != StaticColor {
		return "", false
	}

	return fmt.Sprintf("palette %q has no effect on %s: static color %q is used for every mark; "+
		"map a column to use the palette", palette, aesName, c.Value), true
}
