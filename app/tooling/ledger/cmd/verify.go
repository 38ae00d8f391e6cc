package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ardanlabs/hashledger/foundation/blockchain/chain"
	"github.com/ardanlabs/hashledger/foundation/validate"
	"github.com/spf13/cobra"
)

type verifyArgs struct {
	File string `flag:"file" validate:"required"`
}

var vArgs verifyArgs

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a chain written by build --json.",
	RunE:  verifyRun,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringVarP(&vArgs.File, "file", "f", "", "Path to the json blocks.")
}

func verifyRun(cmd *cobra.Command, args []string) error {
	if err := validate.Check(vArgs); err != nil {
		return err
	}

	content, err := os.ReadFile(vArgs.File)
	if err != nil {
		return err
	}

	var data []chain.BlockData
	if err := json.Unmarshal(content, &data); err != nil {
		return fmt.Errorf("decoding blocks: %w", err)
	}

	blocks := make([]chain.Block, len(data))
	for i, bd := range data {
		blk, err := chain.ToBlock(bd)
		if err != nil {
			return err
		}
		blocks[i] = blk
	}

	ev, sync, err := evOption()
	if err != nil {
		return err
	}
	defer sync()

	printVerdict(cmd, chain.FromBlocks(blocks, ev))

	return nil
}
