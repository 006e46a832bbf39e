package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zeonix-utils",
	Short: "ZeonixPay dashboard utilities",
	Long:  "Various utilities for the ZeonixPay dashboard including database schema management and session token generation",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
