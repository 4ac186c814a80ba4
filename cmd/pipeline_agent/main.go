// Package main provides the entry point for the talent-pipeline CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pipeline_agent",
	Short: "Talent pipeline CLI",
	Long:  "Talent pipeline resolves job requirements, scores candidates against resolved specs, publishes JD versions, and tracks applications through hiring stages.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
