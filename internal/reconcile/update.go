package reconcile

import (
	"github.com/custodia-labs/xliffsync-cli/internal/logger"
	"github.com/custodia-labs/xliffsync-cli/internal/xliff"
)

// noteAuthor is recorded as the author of notes this tool appends when
// source text changes.
const noteAuthor = "xliffsync"

// UpdateParams configures the update operation.
type UpdateParams struct {
	// XLIFFPath is the existing document to reconcile.
	XLIFFPath string

	// SourceJSONPath is the refreshed source text.
	SourceJSONPath string

	// RemoveMissing deletes units whose id is absent from the source
	// JSON; when false they are retained with a warning.
	RemoveMissing bool

	// EscapeDots enables tree mode key escaping.
	EscapeDots bool
}

// Update reconciles an existing XLIFF document against a refreshed
// source JSON. Stale units are pruned or retained, changed source text
// is flagged for re-translation with a note recording the old text,
// and new keys become new units inserted in the source JSON's order.
// Running it twice with an unchanged source is a no-op the second
// time.
func (e *Engine) Update(p UpdateParams) error {
	doc, err := xliff.Load(p.XLIFFPath)
	if err != nil {
		return err
	}
	flat, err := readFlat(p.SourceJSONPath, p.EscapeDots)
	if err != nil {
		return err
	}

	// Phase one: prune units no longer present in the source JSON.
	for _, unit := range doc.Units() {
		if flat.Has(unit.ID()) {
			continue
		}
		if p.RemoveMissing {
			logger.Info("removing unit %q, absent from %s", unit.ID(), p.SourceJSONPath)
			doc.RemoveUnit(unit)
		} else {
			logger.Warn("unit %q is absent from %s, keeping it", unit.ID(), p.SourceJSONPath)
		}
	}

	// Phase two: refresh changed source text and insert new keys.
	// prev tracks the unit of the most recently processed key so that
	// new units keep the source JSON's ordering even when interleaved
	// with existing ones. The first new key with no predecessor is
	// appended to the end of the body.
	var prev *xliff.Unit
	for _, key := range flat.Keys() {
		text, err := stringLeaf(flat, key, p.SourceJSONPath)
		if err != nil {
			return err
		}
		if unit, ok := doc.Unit(key); ok {
			if old := unit.Source(); old != text {
				logger.Info("source text changed for %q, flagging for re-translation", key)
				unit.AddNote("previous source text: "+old, noteAuthor)
				unit.SetSource(text)
				unit.SetState(xliff.StateNeedsTranslation)
				unit.SetApproved(false)
			}
			prev = unit
		} else {
			logger.Info("adding unit %q", key)
			prev = doc.CreateUnit(key, text, prev)
		}
	}

	return e.saveDocument(doc)
}
