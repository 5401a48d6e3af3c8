package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/xliffsync-cli/internal/config"
	"github.com/custodia-labs/xliffsync-cli/internal/logger"
	"github.com/custodia-labs/xliffsync-cli/internal/xliff"
)

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "xliffsync", rootCmd.Use)
}

func TestVersionCmd_Executes(t *testing.T) {
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	out, err := execute(t, "version")
	assert.NoError(t, err)
	assert.Contains(t, out, "xliffsync version test-version-1.0.0")
}

// TestRootCmd_ExplicitConfigMissingFails checks that an explicitly
// requested config file must exist, detected through a subcommand run.
func TestRootCmd_ExplicitConfigMissingFails(t *testing.T) {
	t.Cleanup(func() {
		flagConfig = config.DefaultFile
		rootCmd.PersistentFlags().Lookup("config").Changed = false
	})

	_, err := execute(t, "version", "--config", filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestCreateCmd_RequiresLanguages(t *testing.T) {
	// Flag variables persist across executions in one process.
	createSourceLanguage = ""
	createTargetLanguage = ""
	cfg.SourceLanguage = ""
	cfg.TargetLanguage = ""

	_, err := execute(t, "create", filepath.Join(t.TempDir(), "de.xlf"))
	assert.Error(t, err)
}

// TestCommands_EndToEnd drives the full create/update/export workflow
// through the command surface.
func TestCommands_EndToEnd(t *testing.T) {
	logger.SetOutput(new(bytes.Buffer))
	defer logger.SetOutput(os.Stderr)

	dir := t.TempDir()
	xliffPath := filepath.Join(dir, "de.xlf")
	srcPath := filepath.Join(dir, "en.json")
	outPath := filepath.Join(dir, "de.json")

	require.NoError(t, os.WriteFile(srcPath, []byte(`{"greet":"Hello"}`), 0o644))

	out, err := execute(t, "create", xliffPath,
		"--source-language", "en", "--target-language", "de",
		"--from-source", srcPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Created")

	// The source catalogue gains a key.
	require.NoError(t, os.WriteFile(srcPath, []byte(`{"greet":"Hello","bye":"Goodbye"}`), 0o644))

	out, err = execute(t, "update-from", xliffPath, srcPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Updated")

	doc, err := xliff.Load(xliffPath)
	require.NoError(t, err)
	require.Len(t, doc.Units(), 2)

	// --tree-keys is accepted on export for symmetry with the other
	// commands; segmentation is fixed by the unit ids.
	out, err = execute(t, "export-to", xliffPath, outPath, "--ignore-missing", "--tree-keys")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, `{"greet":"Hello","bye":"Goodbye"}`+"\n", string(data))
}

func TestUpdateCmd_DryRunWritesNothing(t *testing.T) {
	logger.SetOutput(new(bytes.Buffer))
	defer logger.SetOutput(os.Stderr)

	dir := t.TempDir()
	xliffPath := filepath.Join(dir, "de.xlf")
	srcPath := filepath.Join(dir, "en.json")
	require.NoError(t, os.WriteFile(srcPath, []byte(`{"greet":"Hello"}`), 0o644))

	_, err := execute(t, "create", xliffPath,
		"--source-language", "en", "--target-language", "de",
		"--from-source", srcPath)
	require.NoError(t, err)

	before, err := os.ReadFile(xliffPath)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(srcPath, []byte(`{"greet":"Changed"}`), 0o644))
	out, err := execute(t, "update-from", "--dry-run", xliffPath, srcPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Dry run")

	after, err := os.ReadFile(xliffPath)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))

	// Reset the persistent flag for subsequent tests.
	flagDryRun = false
}
