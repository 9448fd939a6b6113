// internal/sidebar/schema.go
package sidebar

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// fragmentSchema describes the expected shape of a fragment payload: an
// object whose values are non-empty arrays of [name, description] string
// pairs. Category keys are not constrained here; Known() handles that at
// lint level.
var fragmentSchema = map[string]interface{}{
	"type": "object",
	"additionalProperties": map[string]interface{}{
		"type":     "array",
		"minItems": 1,
		"items": map[string]interface{}{
			"type":     "array",
			"minItems": 2,
			"maxItems": 2,
			"items": map[string]interface{}{
				"type": "string",
			},
		},
	},
}

// ValidateFragment checks a fragment against the payload schema before any
// ordered decode happens. The input may be wrapped or bare, like Parse.
// On failure the returned error lists every schema violation.
func ValidateFragment(src []byte) error {
	payload, err := unwrap(src)
	if err != nil {
		return err
	}

	schemaLoader := gojsonschema.NewGoLoader(fragmentSchema)
	documentLoader := gojsonschema.NewBytesLoader(payload)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var b strings.Builder
	b.WriteString("fragment does not match the sidebar schema:")
	for _, desc := range result.Errors() {
		fmt.Fprintf(&b, "\n  - %s", desc)
	}
	return fmt.Errorf("%s", b.String())
}
