package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/xliffsync-cli/internal/reconcile"
)

var (
	updateKeepNonexisting bool
	updateTreeKeys        bool
)

var updateCmd = &cobra.Command{
	Use:   "update-from [xliff-file] [source-json]",
	Short: "Update an XLIFF file from a refreshed source JSON",
	Long: `Reconciles an existing XLIFF file against a refreshed source JSON:
new keys become new units, changed source text is flagged for
re-translation with a note recording the old text, and keys no longer
present are removed (or kept with a warning under --keep-nonexisting).`,
	Args: cobra.ExactArgs(2),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().BoolVar(&updateKeepNonexisting, "keep-nonexisting", false, "keep units whose key is absent from the source JSON")
	updateCmd.Flags().BoolVar(&updateTreeKeys, "tree-keys", false, "escape literal dots in keys (tree mode)")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	err := engine().Update(reconcile.UpdateParams{
		XLIFFPath:      args[0],
		SourceJSONPath: args[1],
		RemoveMissing:  !updateKeepNonexisting,
		EscapeDots:     treeKeys(cmd, updateTreeKeys),
	})
	if err != nil {
		return err
	}

	if flagDryRun {
		cmd.Printf("Dry run: would update %s from %s\n", args[0], args[1])
	} else {
		cmd.Printf("Updated %s from %s\n", args[0], args[1])
	}
	return nil
}
