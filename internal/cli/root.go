// Package cli implements the xliffsync command surface. Commands are
// a thin translation from flags to reconcile engine parameters; the
// logic lives in internal/reconcile.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/xliffsync-cli/internal/config"
	"github.com/custodia-labs/xliffsync-cli/internal/logger"
	"github.com/custodia-labs/xliffsync-cli/internal/reconcile"
)

var (
	flagVerbose bool
	flagDryRun  bool
	flagConfig  string

	// cfg holds defaults loaded from the optional config file.
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "xliffsync",
	Short: "Synchronise translations between JSON and XLIFF 1.2 files",
	Long: `xliffsync keeps a JSON string catalogue and an XLIFF 1.2
translation-memory file in sync.

Typical workflow:
  xliffsync create de.xlf --source-language en --target-language de --from-source en.json
  xliffsync update-from de.xlf en.json      (after the source strings changed)
  xliffsync export-to de.xlf de.json        (once translations are approved)`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)
		var err error
		cfg, err = config.Load(flagConfig, cmd.Root().PersistentFlags().Changed("config"))
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&flagDryRun, "dry-run", "n", false, "run without writing any files")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", config.DefaultFile, "path to a TOML defaults file")
}

// Execute runs the root command. Interrupts cancel the command
// context so long-running commands like watch shut down cleanly.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// engine builds a reconciliation engine from the global flags.
func engine() *reconcile.Engine {
	return reconcile.New(reconcile.Options{DryRun: flagDryRun})
}

// treeKeys resolves a command's tree-keys flag against the config
// default. An explicit flag wins.
func treeKeys(cmd *cobra.Command, value bool) bool {
	if cmd.Flags().Changed("tree-keys") {
		return value
	}
	return cfg.TreeKeys
}
