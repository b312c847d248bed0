// Package commands wires the game engine to a cobra command tree.
// Every command opens the configured store, applies one operation and
// prints the result as JSON, so the CLI doubles as a single node
// deployment of the ledger.
package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leon-do/restricted-rock-paper-scissors/common"
	dbm "github.com/leon-do/restricted-rock-paper-scissors/common/db"
	clog "github.com/leon-do/restricted-rock-paper-scissors/common/log"
	"github.com/leon-do/restricted-rock-paper-scissors/executor"
	"github.com/leon-do/restricted-rock-paper-scissors/types"
)

// loadConfig reads the --conf file, falling back to defaults when the
// file does not exist so the CLI works out of the box.
func loadConfig(cmd *cobra.Command) *types.Config {
	path, _ := cmd.Flags().GetString("conf")
	cfg, err := types.InitCfg(path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.DefaultConfig()
		}
		fatal(err)
	}
	return cfg
}

// loadEngine opens the store and builds the engine plus its local
// coin rail. The caller must invoke the returned close func.
func loadEngine(cmd *cobra.Command) (*executor.Engine, *executor.LocalBank, func()) {
	cfg := loadConfig(cmd)
	clog.SetFileLog(cfg.Log)
	stateDB := dbm.NewDB(types.RRPSX, cfg.Store.Driver, cfg.Store.DbPath, cfg.Store.DbCache)
	bank := executor.NewLocalBank(stateDB)
	engine, err := executor.New(cfg, stateDB, bank)
	if err != nil {
		stateDB.Close()
		fatal(err)
	}
	return engine, bank, stateDB.Close
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(data))
}

func parseChoice(s string) int32 {
	switch s {
	case "scissor":
		return types.Scissor
	case "rock":
		return types.Rock
	case "paper":
		return types.Paper
	}
	fatal(types.ErrInvalidChoice)
	return types.ChoiceNone
}

func parseHex(s string) []byte {
	b, err := common.FromHex(s)
	if err != nil {
		fatal(err)
	}
	return b
}

// MatchCmd groups the match lifecycle commands.
func MatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "match lifecycle management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		MatchOpenCmd(),
		MatchRevealCmd(),
		MatchResolveCmd(),
	)
	return cmd
}

func MatchOpenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open a match from two signed authorizations",
		Run:   matchOpen,
	}
	addMatchOpenFlags(cmd)
	return cmd
}

func addMatchOpenFlags(cmd *cobra.Command) {
	cmd.Flags().Int64P("slot", "s", 0, "slot id")
	cmd.MarkFlagRequired("slot")

	cmd.Flags().String("oppA", "", "opponent address named by player A")
	cmd.MarkFlagRequired("oppA")
	cmd.Flags().String("commitA", "", "player A commitment (hex)")
	cmd.MarkFlagRequired("commitA")
	cmd.Flags().String("sigA", "", "player A signature (hex)")
	cmd.MarkFlagRequired("sigA")

	cmd.Flags().String("oppB", "", "opponent address named by player B")
	cmd.MarkFlagRequired("oppB")
	cmd.Flags().String("commitB", "", "player B commitment (hex)")
	cmd.MarkFlagRequired("commitB")
	cmd.Flags().String("sigB", "", "player B signature (hex)")
	cmd.MarkFlagRequired("sigB")
}

func matchOpen(cmd *cobra.Command, args []string) {
	slot, _ := cmd.Flags().GetInt64("slot")
	oppA, _ := cmd.Flags().GetString("oppA")
	commitA, _ := cmd.Flags().GetString("commitA")
	sigA, _ := cmd.Flags().GetString("sigA")
	oppB, _ := cmd.Flags().GetString("oppB")
	commitB, _ := cmd.Flags().GetString("commitB")
	sigB, _ := cmd.Flags().GetString("sigB")

	engine, _, closer := loadEngine(cmd)
	defer closer()

	open := &types.MatchOpen{
		SlotId: slot,
		AuthA: &types.Authorization{
			Opponent:  oppA,
			Commit:    parseHex(commitA),
			Signature: parseHex(sigA),
		},
		AuthB: &types.Authorization{
			Opponent:  oppB,
			Commit:    parseHex(commitB),
			Signature: parseHex(sigB),
		},
	}
	receipt, err := engine.OpenMatch(open)
	if err != nil {
		fatal(err)
	}
	printJSON(receipt)
}

func MatchRevealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Reveal a committed choice",
		Run:   matchReveal,
	}
	cmd.Flags().Int64P("slot", "s", 0, "slot id")
	cmd.MarkFlagRequired("slot")
	cmd.Flags().Uint64P("nonce", "n", 0, "commitment nonce")
	cmd.MarkFlagRequired("nonce")
	cmd.Flags().StringP("choice", "c", "", "scissor, rock or paper")
	cmd.MarkFlagRequired("choice")
	return cmd
}

func matchReveal(cmd *cobra.Command, args []string) {
	slot, _ := cmd.Flags().GetInt64("slot")
	nonce, _ := cmd.Flags().GetUint64("nonce")
	choice, _ := cmd.Flags().GetString("choice")

	engine, _, closer := loadEngine(cmd)
	defer closer()

	receipt, err := engine.Reveal(&types.MatchReveal{
		SlotId: slot,
		Nonce:  nonce,
		Choice: parseChoice(choice),
	})
	if err != nil {
		fatal(err)
	}
	printJSON(receipt)
}

func MatchResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a match whose reveal window has closed",
		Run:   matchResolve,
	}
	cmd.Flags().Int64P("slot", "s", 0, "slot id")
	cmd.MarkFlagRequired("slot")
	return cmd
}

func matchResolve(cmd *cobra.Command, args []string) {
	slot, _ := cmd.Flags().GetInt64("slot")

	engine, _, closer := loadEngine(cmd)
	defer closer()

	receipt, err := engine.Resolve(&types.MatchResolve{SlotId: slot})
	if err != nil {
		fatal(err)
	}
	printJSON(receipt)
}

// WalletCmd groups the player economy commands.
func WalletCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "player stake and coin management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		BuyInCmd(),
		ConvertCmd(),
		FundCmd(),
	)
	return cmd
}

func BuyInCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buyin",
		Short: "Pay the buy-in fee for a starting stake and collectibles",
		Run:   walletBuyIn,
	}
	cmd.Flags().StringP("addr", "a", "", "player address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func walletBuyIn(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")

	engine, _, closer := loadEngine(cmd)
	defer closer()

	receipt, err := engine.BuyIn(addr)
	if err != nil {
		fatal(err)
	}
	printJSON(receipt)
}

func ConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert the remaining stake back to coin",
		Run:   walletConvert,
	}
	cmd.Flags().StringP("addr", "a", "", "player address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func walletConvert(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")

	engine, _, closer := loadEngine(cmd)
	defer closer()

	payout, receipt, err := engine.ConvertStake(addr)
	if err != nil {
		fatal(err)
	}
	fmt.Println("payout:", payout)
	printJSON(receipt)
}

func FundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fund",
		Short: "Credit coin to an address on the local rail",
		Run:   walletFund,
	}
	cmd.Flags().StringP("addr", "a", "", "address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().Int64P("amount", "m", 0, "coin amount")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func walletFund(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	amount, _ := cmd.Flags().GetInt64("amount")

	_, bank, closer := loadEngine(cmd)
	defer closer()

	if err := bank.Fund(addr, amount); err != nil {
		fatal(err)
	}
	fmt.Println("balance:", bank.Balance(addr))
}
