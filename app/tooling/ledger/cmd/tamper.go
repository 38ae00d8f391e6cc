package cmd

import (
	"fmt"

	"github.com/ardanlabs/hashledger/foundation/blockchain/chain"
	"github.com/ardanlabs/hashledger/foundation/validate"
	"github.com/spf13/cobra"
)

type tamperArgs struct {
	Count   int    `flag:"count" validate:"gte=1,lte=1000000"`
	Index   int    `flag:"index" validate:"gte=0,ltfield=Count"`
	Payload string `flag:"payload"`
}

var tArgs tamperArgs

var tamperCmd = &cobra.Command{
	Use:   "tamper",
	Short: "Change the payload of one block and verify the chain.",
	RunE:  tamperRun,
}

func init() {
	rootCmd.AddCommand(tamperCmd)
	tamperCmd.Flags().IntVarP(&tArgs.Count, "count", "n", 3, "Number of blocks to insert.")
	tamperCmd.Flags().IntVarP(&tArgs.Index, "index", "i", 1, "Position of the block to change.")
	tamperCmd.Flags().StringVarP(&tArgs.Payload, "payload", "p", "x", "Payload to store in the block.")
}

func tamperRun(cmd *cobra.Command, args []string) error {
	if err := validate.Check(tArgs); err != nil {
		return err
	}

	ev, sync, err := evOption()
	if err != nil {
		return err
	}
	defer sync()

	blocks := sequence(tArgs.Count, ev).Blocks()

	// The back reference is kept so only the fingerprint of this block
	// changes and the next block no longer matches it.
	old := blocks[tArgs.Index]
	blocks[tArgs.Index] = chain.NewBlock(old.Index(), tArgs.Payload, old.BackReference())

	printVerdict(cmd, chain.FromBlocks(blocks, ev))

	return nil
}

// printVerdict writes the result of verifying the chain.
func printVerdict(cmd *cobra.Command, c *chain.Chain) {
	out := cmd.OutOrStdout()

	if err := c.Verify(); err != nil {
		fmt.Fprintln(out, "invalid:", err)
		return
	}

	fmt.Fprintln(out, "valid:", c.Len(), "blocks")
}
