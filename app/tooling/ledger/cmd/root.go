// Package cmd contains the ledger tooling commands.
package cmd

import (
	"os"
	"strconv"

	"github.com/ardanlabs/hashledger/foundation/blockchain/chain"
	"github.com/ardanlabs/hashledger/foundation/logger"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log chain events to stderr.")
}

var rootCmd = &cobra.Command{
	Use:          "ledger",
	Short:        "Build and verify hash-linked ledgers",
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// evOption returns the chain option used to report events. Events are only
// logged when the verbose flag is set.
func evOption() (chain.Option, func(), error) {
	if !verbose {
		return chain.WithEvHandler(nil), func() {}, nil
	}

	log, err := logger.New("LEDGER-CLI", "stderr")
	if err != nil {
		return nil, nil, err
	}

	return chain.WithEvHandler(logger.EvHandler(log, uuid.NewString())), func() { log.Sync() }, nil
}

// sequence builds a chain holding the payloads "1" through "n".
func sequence(n int, opts ...chain.Option) *chain.Chain {
	c := chain.New(opts...)
	for i := 1; i <= n; i++ {
		c.Insert(strconv.Itoa(i))
	}

	return c
}
