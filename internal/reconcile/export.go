package reconcile

import (
	"fmt"

	"github.com/custodia-labs/xliffsync-cli/internal/keypath"
	"github.com/custodia-labs/xliffsync-cli/internal/logger"
	"github.com/custodia-labs/xliffsync-cli/internal/xliff"
)

// ExportParams configures the export operation.
type ExportParams struct {
	// XLIFFPath is the document to export translations from.
	XLIFFPath string

	// OutputJSONPath is where the JSON output is written.
	OutputJSONPath string

	// Nested rebuilds the nested JSON structure through the key-path
	// codec; otherwise the flat mapping is written with escaped keys
	// kept literal.
	Nested bool

	// DefaultToSource substitutes the source text for units without a
	// translation instead of omitting them.
	DefaultToSource bool
}

// Export writes the document's translations back to JSON in document
// order. Units without target text are reported and either omitted or
// (with DefaultToSource) exported with their source text. Unapproved
// translations are exported with a warning.
func (e *Engine) Export(p ExportParams) error {
	doc, err := xliff.Load(p.XLIFFPath)
	if err != nil {
		return err
	}

	flat := keypath.NewFlat()
	for _, unit := range doc.Units() {
		text := unit.Target()
		if text == "" {
			logger.Error("unit %q has no translation", unit.ID())
			if !p.DefaultToSource {
				continue
			}
			text = unit.Source()
		} else if !unit.Approved() {
			logger.Warn("translation for %q is not approved, exporting anyway", unit.ID())
		}
		flat.Set(unit.ID(), keypath.String(text))
	}

	var out []byte
	if p.Nested {
		v, err := keypath.Nest(flat)
		if err != nil {
			return fmt.Errorf("%s: %w", p.XLIFFPath, err)
		}
		out, err = keypath.EncodeIndent(v)
		if err != nil {
			return err
		}
	} else {
		out, err = keypath.Encode(flat.Object())
		if err != nil {
			return err
		}
	}
	out = append(out, '\n')

	return e.writeFile(p.OutputJSONPath, out)
}
