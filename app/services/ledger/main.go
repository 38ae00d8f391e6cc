package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/ardanlabs/conf/v3"
	"github.com/ardanlabs/hashledger/foundation/blockchain/chain"
	"github.com/ardanlabs/hashledger/foundation/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// build is the git version of this program. It is set using build flags in the makefile.
var build = "develop"

func main() {

	// Construct the application logger. Stdout is kept for the chain output.
	log, err := logger.New("LEDGER", "stderr")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	// Perform the startup and shutdown sequence.
	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =========================================================================
	// Configuration

	cfg := struct {
		conf.Version
		Chain struct {
			Blocks        int    `conf:"default:99"`
			Tamper        int    `conf:"default:-1"`
			TamperPayload string `conf:"default:x"`
		}
	}{
		Version: conf.Version{
			Build: build,
			Desc:  "copyright information here",
		},
	}

	// Parse will set the defaults and then look for any overriding values
	// in environment variables and command line flags.
	const prefix = "LEDGER"
	help, err := conf.Parse(prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	// =========================================================================
	// App Starting

	log.Infow("starting service", "version", build)
	defer log.Infow("shutdown complete")

	// Display the current configuration to the logs.
	out, err := conf.String(&cfg)
	if err != nil {
		return fmt.Errorf("generating config for output: %w", err)
	}
	log.Infow("startup", "config", out)

	// =========================================================================
	// Blockchain Support

	// The chain package accepts a function of this signature to allow the
	// application to log. Every event of this run shares one trace id.
	ev := logger.EvHandler(log, uuid.NewString())

	c := chain.New(chain.WithEvHandler(ev))
	for i := 1; i <= cfg.Chain.Blocks; i++ {
		c.Insert(strconv.Itoa(i))
	}

	fmt.Print(c)
	fmt.Println(c.Validate())

	// =========================================================================
	// Tamper Support

	if cfg.Chain.Tamper < 0 {
		return nil
	}

	blocks := c.Blocks()
	if cfg.Chain.Tamper >= len(blocks) {
		return fmt.Errorf("tamper position %d is outside the chain of %d blocks", cfg.Chain.Tamper, len(blocks))
	}

	old := blocks[cfg.Chain.Tamper]
	blocks[cfg.Chain.Tamper] = chain.NewBlock(old.Index(), cfg.Chain.TamperPayload, old.BackReference())
	log.Infow("tamper", "block", old.Index(), "payload", cfg.Chain.TamperPayload)

	fmt.Println(chain.FromBlocks(blocks, chain.WithEvHandler(ev)).Validate())

	return nil
}
