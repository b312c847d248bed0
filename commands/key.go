package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leon-do/restricted-rock-paper-scissors/authorize"
	"github.com/leon-do/restricted-rock-paper-scissors/common"
)

// KeyCmd groups the client side signing commands. None of them touch
// the store; they produce material the match commands consume.
func KeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "credential and consent signing",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		KeyGenCmd(),
		CommitCmd(),
		AuthCmd(),
	)
	return cmd
}

func KeyGenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gen",
		Short: "Generate a fresh player credential",
		Run:   keyGen,
	}
}

func keyGen(cmd *cobra.Command, args []string) {
	key, err := authorize.GenKey()
	if err != nil {
		fatal(err)
	}
	fmt.Println("addr:", key.Addr())
	fmt.Println("priv:", common.ToHex(key.Bytes()))
}

func CommitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Compute the commitment of a nonce and a choice",
		Run:   keyCommit,
	}
	cmd.Flags().Uint64P("nonce", "n", 0, "secret nonce, keep it until reveal")
	cmd.MarkFlagRequired("nonce")
	cmd.Flags().StringP("choice", "c", "", "scissor, rock or paper")
	cmd.MarkFlagRequired("choice")
	return cmd
}

func keyCommit(cmd *cobra.Command, args []string) {
	nonce, _ := cmd.Flags().GetUint64("nonce")
	choice, _ := cmd.Flags().GetString("choice")
	fmt.Println("commit:", common.ToHex(authorize.ComputeCommitment(nonce, parseChoice(choice))))
}

func AuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Sign consent to a match",
		Run:   keyAuth,
	}
	cmd.Flags().StringP("priv", "k", "", "player private key (hex)")
	cmd.MarkFlagRequired("priv")
	cmd.Flags().Int64P("slot", "s", 0, "slot id")
	cmd.MarkFlagRequired("slot")
	cmd.Flags().StringP("opponent", "o", "", "opponent address")
	cmd.MarkFlagRequired("opponent")
	cmd.Flags().StringP("commit", "c", "", "commitment (hex)")
	cmd.MarkFlagRequired("commit")
	return cmd
}

func keyAuth(cmd *cobra.Command, args []string) {
	priv, _ := cmd.Flags().GetString("priv")
	slot, _ := cmd.Flags().GetInt64("slot")
	opponent, _ := cmd.Flags().GetString("opponent")
	commit, _ := cmd.Flags().GetString("commit")

	key, err := authorize.KeyFromBytes(parseHex(priv))
	if err != nil {
		fatal(err)
	}
	sig, err := key.Sign(slot, opponent, parseHex(commit))
	if err != nil {
		fatal(err)
	}
	fmt.Println("signer:", key.Addr())
	fmt.Println("sig:", common.ToHex(sig))
}
