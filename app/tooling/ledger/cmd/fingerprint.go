package cmd

import (
	"fmt"

	"github.com/ardanlabs/hashledger/foundation/blockchain/chain"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
)

var (
	fpIndex   uint64
	fpPayload string
	fpBackRef string
)

var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint",
	Short: "Print the fingerprint of a single block.",
	RunE:  fingerprintRun,
}

func init() {
	rootCmd.AddCommand(fingerprintCmd)
	fingerprintCmd.Flags().Uint64VarP(&fpIndex, "index", "i", 0, "Index of the block.")
	fingerprintCmd.Flags().StringVarP(&fpPayload, "payload", "p", "", "Payload of the block.")
	fingerprintCmd.Flags().StringVarP(&fpBackRef, "backref", "b", "0x0", "Hex back reference of the block.")
}

func fingerprintRun(cmd *cobra.Command, args []string) error {
	backRef, err := hexutil.DecodeUint64(fpBackRef)
	if err != nil {
		return fmt.Errorf("decoding back reference: %w", err)
	}

	blk := chain.NewBlock(fpIndex, fpPayload, chain.Fingerprint(backRef))
	fmt.Fprintln(cmd.OutOrStdout(), blk.Fingerprint())

	return nil
}
