package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scini",
	Short: "Operator shell for the SCINI remotely operated vehicle",
	Long: `scini is the terminal shell the pilot uses to drive the SCINI ROV.
It shows camera, controls, telemetry and troubleshooting pages, follows
network connectivity and relays vehicle telemetry from the MQTT bus.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. malformed persisted values, unreachable storage)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "scini version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newStorageCmd())
}
