// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tabnote",
	Short: "Tabnote agent is the native backend for the Tabnote browser extension",
	Long: `Tabnote agent is the native backend for the Tabnote browser extension.
It stores the extension settings, serves the popup API and drives
content-script injection through the native-messaging bridge.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
