package brand

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// ErrInvalidPaletteFile is returned when a palette definition fails schema validation.
var ErrInvalidPaletteFile = errors.New("invalid palette file")

// paletteSchema constrains user palette files: 3-11 hex colors per palette,
// a known kind, and a non-empty name.
const paletteSchema = `{
	"type": "array",
	"minItems": 1,
	"items": {
		"type": "object",
		"required": ["name", "kind", "colors"],
		"additionalProperties": false,
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"kind": {"enum": ["sequential", "diverging", "qualitative"]},
			"description": {"type": "string"},
			"colors": {
				"type": "array",
				"minItems": 3,
				"maxItems": 11,
				"items": {"type": "string", "pattern": "^#[0-9a-fA-F]{6}$"}
			}
		}
	}
}`

// paletteSpec is the YAML shape of a user-defined palette.
type paletteSpec struct {
	Name        string   `yaml:"name" json:"name"`
	Kind        string   `yaml:"kind" json:"kind"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Colors      []string `yaml:"colors" json:"colors"`
}

// LoadPalettes reads YAML palette definitions from r, validates them against
// the embedded schema, and registers them. A palette whose name collides with
// an existing one replaces it. Returns the number of palettes registered.
func LoadPalettes(r io.Reader) (int, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("reading palette file: %w", err)
	}

	var doc any

	err = yaml.Unmarshal(raw, &doc)
	if err != nil {
		return 0, fmt.Errorf("parsing palette file: %w", err)
	}

	err = validatePaletteDoc(doc)
	if err != nil {
		return 0, err
	}

	var specs []paletteSpec

	err = yaml.Unmarshal(raw, &specs)
	if err != nil {
		return 0, fmt.Errorf("parsing palette file: %w", err)
	}

	for _, spec := range specs {
		register(Palette{
			Name:        spec.Name,
			Kind:        Kind(spec.Kind),
			Description: spec.Description,
			colors:      spec.Colors,
		})
	}

	return len(specs), nil
}

func validatePaletteDoc(doc any) error {
	schemaLoader := gojsonschema.NewStringLoader(paletteSchema)
	docLoader := gojsonschema.NewGoLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("validating palette file: %w", err)
	}

	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))

	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}

	return fmt.Errorf("%w: %s", ErrInvalidPaletteFile, strings.Join(msgs, "; "))
}
