// Package cli defines the detective command.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"detective_quest/config"
	"detective_quest/game"
	"detective_quest/mansion"
	"detective_quest/suspects"
)

// Version is set from main at build time.
var Version = "dev"

// NewRootCommand creates the detective command. It takes no arguments; the
// whole game is played interactively on stdin and stdout.
func NewRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detective",
		Short: "Detective Quest: explore the mansion, collect clues, accuse the culprit",
		Long: `Detective Quest is a text adventure. Walk the rooms of the mansion,
pick up the clues you find and, once you leave, name the culprit.
At least two clues must point at the accused for the case to close.

Settings are read from detective.yaml, a .env file or DETECTIVE_*
environment variables.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// Execute runs the command and exits non-zero only when the game could not be
// set up at all.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	log := config.NewLogger(cfg.Log, stderr)
	gotext.Configure(cfg.Locale.Dir, cfg.Locale.Language, cfg.Locale.Domain)

	fmt.Fprintln(stdout, gotext.Get("DETECTIVE QUEST: FINAL INVESTIGATION"))
	fmt.Fprintln(stdout, "========================================================")

	var table *suspects.Table
	if cfg.Game.Accusation {
		table, err = loadTable(log)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, gotext.Get("Suspect map loaded. %d key suspects.", len(table.Suspects())))
	}

	rooms := buildMap(cfg.Game, log)
	if rooms == nil {
		fmt.Fprintln(stdout, gotext.Get("Could not start the investigation."))
	}

	game.New(rooms, table, game.NewConsole(stdin), stdout, log).Run()
	return nil
}

func loadTable(log zerolog.Logger) (*suspects.Table, error) {
	assocs, err := suspects.DefaultAssociations()
	if err != nil {
		return nil, err
	}
	table := suspects.NewTable()
	for _, clue := range table.Seed(assocs) {
		log.Warn().Str("clue", clue).Msg("clue associated twice, the last suspect wins")
	}
	log.Debug().Int("entries", table.Len()).Msg("suspect table ready")
	return table, nil
}

// buildMap returns nil when no part of the mansion could be built; the game
// then goes straight to the verdict.
func buildMap(cfg config.GameConfig, log zerolog.Logger) *mansion.Room {
	bp, err := mansion.DefaultBlueprint()
	if err != nil {
		log.Error().Err(err).Msg("could not read the mansion blueprint")
		return nil
	}
	b := mansion.NewBuilder(log)
	b.Clues = cfg.Clues
	rooms, err := b.Build(bp)
	if err != nil {
		log.Error().Err(err).Int("rooms", rooms.Len()).Msg("mansion built with missing rooms")
	}
	return rooms
}
