package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/xliffsync-cli/internal/reconcile"
)

var (
	createSourceLanguage string
	createTargetLanguage string
	createFromSource     string
	createFromTarget     string
	createTreeKeys       bool
)

var createCmd = &cobra.Command{
	Use:   "create [xliff-file]",
	Short: "Create a new XLIFF file, optionally seeded from JSON",
	Long: `Creates a new XLIFF 1.2 file. With --from-source, one translation
unit is created per key in the flattened JSON. With --from-target,
matching units additionally receive an approved, signed-off
translation; target keys without a matching source unit are skipped
with a warning.`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createSourceLanguage, "source-language", "", "source language tag (BCP 47)")
	createCmd.Flags().StringVar(&createTargetLanguage, "target-language", "", "target language tag (BCP 47)")
	createCmd.Flags().StringVar(&createFromSource, "from-source", "", "JSON file seeding source text")
	createCmd.Flags().StringVar(&createFromTarget, "from-target", "", "JSON file seeding existing translations")
	createCmd.Flags().BoolVar(&createTreeKeys, "tree-keys", false, "escape literal dots in keys (tree mode)")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	sourceLang := createSourceLanguage
	if sourceLang == "" {
		sourceLang = cfg.SourceLanguage
	}
	targetLang := createTargetLanguage
	if targetLang == "" {
		targetLang = cfg.TargetLanguage
	}
	if sourceLang == "" || targetLang == "" {
		return errors.New("source and target languages are required (flags or config file)")
	}

	err := engine().Create(reconcile.CreateParams{
		XLIFFPath:      args[0],
		SourceLanguage: sourceLang,
		TargetLanguage: targetLang,
		SourceJSONPath: createFromSource,
		TargetJSONPath: createFromTarget,
		EscapeDots:     treeKeys(cmd, createTreeKeys),
	})
	if err != nil {
		return err
	}

	if flagDryRun {
		cmd.Printf("Dry run: would create %s\n", args[0])
	} else {
		cmd.Printf("Created %s\n", args[0])
	}
	return nil
}
