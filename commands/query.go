package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// QueryCmd groups the read only views over the store.
func QueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "query match and account state",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		QueryMatchCmd(),
		QueryAccountCmd(),
		QueryListCmd(),
	)
	return cmd
}

func QueryMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Show one match slot",
		Run:   queryMatch,
	}
	cmd.Flags().Int64P("slot", "s", 0, "slot id")
	cmd.MarkFlagRequired("slot")
	return cmd
}

func queryMatch(cmd *cobra.Command, args []string) {
	slot, _ := cmd.Flags().GetInt64("slot")

	engine, _, closer := loadEngine(cmd)
	defer closer()

	match, err := engine.QueryMatch(slot)
	if err != nil {
		fatal(err)
	}
	printJSON(match)
}

func QueryAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Show a player's stake, busy flag, collectibles and coin",
		Run:   queryAccount,
	}
	cmd.Flags().StringP("addr", "a", "", "player address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func queryAccount(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")

	engine, bank, closer := loadEngine(cmd)
	defer closer()

	printJSON(engine.QueryAccount(addr))
	printJSON(engine.QueryTokens(addr))
	fmt.Println("coin:", bank.Balance(addr))
}

func QueryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every match slot on record",
		Run:   queryList,
	}
}

func queryList(cmd *cobra.Command, args []string) {
	engine, _, closer := loadEngine(cmd)
	defer closer()

	printJSON(engine.ListMatches())
}
