package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/ardanlabs/hashledger/foundation/blockchain/chain"
	"github.com/ardanlabs/hashledger/foundation/validate"
	"github.com/spf13/cobra"
)

type buildArgs struct {
	Count int  `flag:"count" validate:"gte=0,lte=1000000"`
	JSON  bool `flag:"json"`
}

var bArgs buildArgs

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a chain of sequentially numbered payloads.",
	RunE:  buildRun,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().IntVarP(&bArgs.Count, "count", "n", 99, "Number of blocks to insert.")
	buildCmd.Flags().BoolVar(&bArgs.JSON, "json", false, "Print the blocks as json.")
}

func buildRun(cmd *cobra.Command, args []string) error {
	if err := validate.Check(bArgs); err != nil {
		return err
	}

	ev, sync, err := evOption()
	if err != nil {
		return err
	}
	defer sync()

	c := sequence(bArgs.Count, ev)
	out := cmd.OutOrStdout()

	if !bArgs.JSON {
		fmt.Fprint(out, c)
		fmt.Fprintln(out, "valid:", c.Validate())
		return nil
	}

	blocks := c.Blocks()
	data := make([]chain.BlockData, len(blocks))
	for i, blk := range blocks {
		data[i] = chain.NewBlockData(blk)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding blocks: %w", err)
	}

	return nil
}
