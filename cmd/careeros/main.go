// Package main provides the entry point for the CareerOS skill-gap engine.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careeros",
	Short: "CareerOS skill-gap engine",
	Long:  "CareerOS analyzes the gap between a learner's skills and a target role's requirements, prioritizes what to learn next, estimates timelines, and recommends courses.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
