package cli

import (
	"github.com/spf13/cobra"
)

// version is injected at build time via -ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("xliffsync version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
