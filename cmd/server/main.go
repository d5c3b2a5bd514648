// Package main is the entry point for the crew API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "crew-api",
	Short: "Malifaux crew building API",
	Long:  `crew-api serves a JSON HTTP interface for building, analyzing, and saving Malifaux crews.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
