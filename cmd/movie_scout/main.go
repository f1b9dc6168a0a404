// Package main provides the entry point for the Movie Scout CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "movie_scout",
	Short: "Movie Scout recommendation CLI",
	Long:  "Movie Scout turns free-text viewing preferences into catalog-verified, preference-scored movie recommendations.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
