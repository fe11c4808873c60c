// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/cultivation-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "cultivation-api",
	Short: "Cultivation API gRPC Server",
	Long:  `Cultivation API provides a gRPC interface for cultivator progression: cultivation, breakthroughs and tribulations.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
