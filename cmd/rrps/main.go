package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/leon-do/restricted-rock-paper-scissors/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rrps",
		Short: "restricted rock paper scissors wagering ledger",
		Args:  cobra.MinimumNArgs(1),
	}
	rootCmd.PersistentFlags().String("conf", "rrps.toml", "configuration file")

	rootCmd.AddCommand(
		commands.KeyCmd(),
		commands.MatchCmd(),
		commands.WalletCmd(),
		commands.QueryCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
