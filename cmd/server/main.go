// Package main is the entry point for the fabula-api server and CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fabula-api",
	Short: "Fabula action resolution service",
	Long:  `fabula-api resolves weapon attacks, spells, skills and alchemy rolls for tactical RPG actors over gRPC or from the command line.`,

	// main prints the returned error once; stdout carries only roll output
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(rollCmd)
}
