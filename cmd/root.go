// Package cmd implements CLI commands using cobra framework.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "synaudit",
	Short: "synaudit - TCP handshake auditor for packet captures",
	Long: `synaudit reconstructs TCP connections from captured traffic and classifies
each one by handshake completeness: a connection that shows at least one SYN,
one SYN-ACK and one ACK is completed, anything else is incomplete.

Modes:
  analyze  one-shot offline analysis of a pcap file
  export   live capture with Prometheus metrics`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"config file path (optional)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(exportCmd)
}
