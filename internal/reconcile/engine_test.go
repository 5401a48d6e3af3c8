package reconcile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/xliffsync-cli/internal/logger"
	"github.com/custodia-labs/xliffsync-cli/internal/xliff"
)

// writeJSON drops a JSON fixture into the test's temp directory.
func writeJSON(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// captureLog redirects logger output for the duration of the test and
// returns the buffer.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	return &buf
}

// unitIDs returns the document's unit ids in document order.
func unitIDs(d *xliff.Document) []string {
	var ids []string
	for _, u := range d.Units() {
		ids = append(ids, u.ID())
	}
	return ids
}

// seedXLIFF creates an XLIFF file from a source JSON fixture and
// returns its path.
func seedXLIFF(t *testing.T, dir, sourceJSON string) string {
	t.Helper()
	xliffPath := filepath.Join(dir, "test.xlf")
	srcPath := writeJSON(t, dir, "seed.json", sourceJSON)
	err := New(Options{}).Create(CreateParams{
		XLIFFPath:      xliffPath,
		SourceLanguage: "en",
		TargetLanguage: "de",
		SourceJSONPath: srcPath,
	})
	require.NoError(t, err)
	return xliffPath
}
