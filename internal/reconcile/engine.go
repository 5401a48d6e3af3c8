// Package reconcile implements the create, update and export
// operations over the key-path codec and the XLIFF document model.
//
// Structural problems (unparseable input, missing namespace or body,
// non-string leaves) abort an operation with an error. Reconciliation
// mismatches (keys missing on one side, changed source text, missing
// or unapproved translations) never abort: they are logged and the
// operation continues with a documented fallback.
package reconcile

import (
	"errors"
	"fmt"
	"os"

	"github.com/custodia-labs/xliffsync-cli/internal/keypath"
	"github.com/custodia-labs/xliffsync-cli/internal/logger"
	"github.com/custodia-labs/xliffsync-cli/internal/xliff"
)

// ErrNotAString indicates a JSON leaf that had to carry translatable
// text was null instead of a string.
var ErrNotAString = errors.New("leaf value is not a string")

// Options configures an Engine. It replaces ambient global state: the
// command surface builds one per invocation.
type Options struct {
	// DryRun disables all file writes. Operations still run in full
	// and report what they would change.
	DryRun bool
}

// Engine runs the three reconciliation operations.
type Engine struct {
	opts Options
}

// New creates an engine with the given options.
func New(opts Options) *Engine {
	return &Engine{opts: opts}
}

// readFlat loads a JSON file and flattens it into key paths.
func readFlat(path string, escapeDots bool) (*keypath.Flat, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	v, err := keypath.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return keypath.Flatten(v, escapeDots), nil
}

// stringLeaf enforces the string-leaf precondition on a flattened key.
func stringLeaf(flat *keypath.Flat, key, path string) (string, error) {
	v, _ := flat.Get(key)
	s, ok := v.(keypath.String)
	if !ok {
		return "", fmt.Errorf("%s: key %q: %w", path, key, ErrNotAString)
	}
	return string(s), nil
}

// saveDocument persists an XLIFF document unless dry-run is active.
func (e *Engine) saveDocument(d *xliff.Document) error {
	if e.opts.DryRun {
		logger.Info("dry run: not writing %s", d.Path())
		return nil
	}
	return d.Save()
}

// writeFile persists JSON output unless dry-run is active.
func (e *Engine) writeFile(path string, data []byte) error {
	if e.opts.DryRun {
		logger.Info("dry run: not writing %s", path)
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
