package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/fabula-api/internal/config"
	"github.com/KirkDiggler/fabula-api/internal/errors"
	"github.com/KirkDiggler/fabula-api/internal/logging"
	"github.com/KirkDiggler/fabula-api/internal/orchestrators/action"
	"github.com/KirkDiggler/fabula-api/internal/sink"
)

var rollFlags struct {
	actorFile string
	actorID   string
	itemID    string
	mode      string
	seed      int64
	logLevel  string
}

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Resolve one item locally and print the message",
	Long:  `Load actors from a YAML file, resolve a single item and print the formatted message to stdout.`,
	RunE:  runRoll,
}

func init() {
	f := rollCmd.Flags()
	f.StringVar(&rollFlags.actorFile, "actors", "", "YAML actor file")
	f.StringVar(&rollFlags.actorID, "actor", "", "actor id")
	f.StringVar(&rollFlags.itemID, "item", "", "item id")
	f.StringVar(&rollFlags.mode, "mode", "public", "roll mode (public, gm, blind, self)")
	f.Int64Var(&rollFlags.seed, "seed", 0, "seed for deterministic dice; 0 uses the system roller")
	f.StringVar(&rollFlags.logLevel, "log-level", "warn", "log level written to stderr")

	_ = rollCmd.MarkFlagRequired("actors")
	_ = rollCmd.MarkFlagRequired("actor")
	_ = rollCmd.MarkFlagRequired("item")
}

func runRoll(cmd *cobra.Command, _ []string) error {
	return roll(cmd, cmd.OutOrStdout())
}

func roll(cmd *cobra.Command, out io.Writer) error {
	mode, ok := sink.ParseRollMode(rollFlags.mode)
	if !ok {
		return errors.InvalidArgumentf("unknown roll mode %q", rollFlags.mode)
	}

	cfg := &config.Config{
		GRPCPort:   50051,
		ActorFile:  rollFlags.actorFile,
		RollMode:   string(mode),
		LogLevel:   rollFlags.logLevel,
		RollLogTTL: action.DefaultRollLogTTL,
		Seed:       rollFlags.seed,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}
	logging.Install(logger)
	defer func() { _ = logger.Sync() }()

	application, err := newApp(cmd.Context(), cfg, sink.NewWriterSink(out))
	if err != nil {
		return err
	}
	defer application.Close()

	_, err = application.actions.RollItem(cmd.Context(), &action.RollItemInput{
		ActorID:  rollFlags.actorID,
		ItemID:   rollFlags.itemID,
		RollMode: cfg.DefaultRollMode(),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to roll %s", rollFlags.itemID)
	}
	return nil
}
