package reconcile

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/custodia-labs/xliffsync-cli/internal/logger"
	"github.com/custodia-labs/xliffsync-cli/internal/xliff"
)

// CreateParams configures the create operation.
type CreateParams struct {
	// XLIFFPath is where the new document is written.
	XLIFFPath string

	// SourceLanguage and TargetLanguage are BCP 47 tags for the file
	// element.
	SourceLanguage string
	TargetLanguage string

	// SourceJSONPath optionally seeds one unit per flattened key.
	SourceJSONPath string

	// TargetJSONPath optionally seeds translations for matching units.
	TargetJSONPath string

	// EscapeDots enables tree mode: literal dots in object keys are
	// escaped so nested structure round-trips.
	EscapeDots bool
}

// Create builds a new XLIFF document, optionally seeded from source
// and target JSON files. Target keys without a matching unit are
// skipped with a warning; source/target key sets are allowed to
// differ.
func (e *Engine) Create(p CreateParams) error {
	for _, tag := range []string{p.SourceLanguage, p.TargetLanguage} {
		if _, err := language.Parse(tag); err != nil {
			return fmt.Errorf("invalid language tag %q: %w", tag, err)
		}
	}

	doc := xliff.New(p.XLIFFPath, p.SourceLanguage, p.TargetLanguage)

	if p.SourceJSONPath != "" {
		flat, err := readFlat(p.SourceJSONPath, p.EscapeDots)
		if err != nil {
			return err
		}
		for _, key := range flat.Keys() {
			text, err := stringLeaf(flat, key, p.SourceJSONPath)
			if err != nil {
				return err
			}
			doc.CreateUnit(key, text, nil)
			logger.Debug("created unit %q", key)
		}
	}

	if p.TargetJSONPath != "" {
		flat, err := readFlat(p.TargetJSONPath, p.EscapeDots)
		if err != nil {
			return err
		}
		for _, key := range flat.Keys() {
			unit, ok := doc.Unit(key)
			if !ok {
				logger.Warn("target key %q has no matching unit, skipping", key)
				continue
			}
			text, err := stringLeaf(flat, key, p.TargetJSONPath)
			if err != nil {
				return err
			}
			unit.SetTarget(text)
			unit.SetState(xliff.StateSignedOff)
			unit.SetApproved(true)
			logger.Debug("seeded translation for %q", key)
		}
	}

	return e.saveDocument(doc)
}
