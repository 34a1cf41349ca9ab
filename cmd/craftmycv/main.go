// Package main provides the entry point for the CraftMyCV HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "craftmycv",
	Short: "CraftMyCV HTTP API server",
	Long:  "CraftMyCV serves an in-memory resume editor with template rendering, PDF/DOCX export, and AI-assisted optimization via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
