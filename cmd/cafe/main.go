package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cafe",
	Short: "Crazy Coffee website",
	Long: `Serve and operate the Crazy Coffee catalog website.

Configuration is read from the environment (and an optional .env file).
Run 'cafe serve' to start the HTTP server.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(hashPasswordCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
