// Package main provides the entry point for the career guidance CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "guidance_agent",
	Short: "Career guidance recommendation engine",
	Long:  "guidance_agent turns a student's questionnaire responses and a career catalog into ranked, explained career matches with actionable pathway plans.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
