package cli

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/xliffsync-cli/internal/logger"
	"github.com/custodia-labs/xliffsync-cli/internal/reconcile"
)

var (
	watchKeepNonexisting bool
	watchTreeKeys        bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [xliff-file] [source-json]",
	Short: "Re-run update-from whenever the source JSON changes",
	Long: `Runs update-from once, then watches the source JSON and re-runs
the update whenever the file is written. Press Ctrl-C to stop.`,
	Args: cobra.ExactArgs(2),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchKeepNonexisting, "keep-nonexisting", false, "keep units whose key is absent from the source JSON")
	watchCmd.Flags().BoolVar(&watchTreeKeys, "tree-keys", false, "escape literal dots in keys (tree mode)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	xliffPath, jsonPath := args[0], args[1]
	params := reconcile.UpdateParams{
		XLIFFPath:      xliffPath,
		SourceJSONPath: jsonPath,
		RemoveMissing:  !watchKeepNonexisting,
		EscapeDots:     treeKeys(cmd, watchTreeKeys),
	}

	// A failed update must not stop the watch; the next save may fix
	// the input.
	runOnce := func() {
		if err := engine().Update(params); err != nil {
			logger.Error("update failed: %v", err)
			return
		}
		cmd.Printf("Updated %s from %s\n", xliffPath, jsonPath)
	}
	runOnce()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory rather than the file: editors often replace
	// the file on save, which would drop a watch on the file itself.
	dir := filepath.Dir(jsonPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	watched, err := filepath.Abs(jsonPath)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", jsonPath, err)
	}
	cmd.Printf("Watching %s (Ctrl-C to stop)\n", jsonPath)

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if watchTriggers(ev, watched) {
				logger.Debug("change detected: %s", ev)
				runOnce()
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", werr)
		}
	}
}

// watchTriggers reports whether ev is a content change of the watched
// file. Writes and creates count; a create covers editors that save by
// replacing the file.
func watchTriggers(ev fsnotify.Event, watched string) bool {
	name, err := filepath.Abs(ev.Name)
	if err != nil || name != watched {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create)
}
