package commands

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/HreshchyshynT/flutter-gsheet-localization-sync/l10n"
)

// InitCmd builds the 'init' subcommand: ARB files -> spreadsheet, replacing
// the worksheet's entire contents.
func InitCmd(options *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Overwrites the spreadsheet with the contents of the local ARB files",
		Long: "Loads every app_<code>.arb file from the project's resource directory, builds a " +
			"translation sheet with an 'id' column plus one column per language, and replaces the " +
			"worksheet's contents with it. Destructive - intended for first-time spreadsheet setup only.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initialise(cmd.Context(), options)
		},
	}
}

func initialise(ctx context.Context, options *Options) error {
	if err := options.validate(); err != nil {
		return err
	}

	dir, err := arbDir(options.Project)
	if err != nil {
		return err
	}

	ws, err := options.worksheet(ctx)
	if err != nil {
		return err
	}

	log.Warn().Msg("replacing the worksheet's entire contents")

	report, err := l10n.Init(ctx, ws, dir)
	if err != nil {
		return err
	}

	log.Info().
		Strs("languages", report.Languages).
		Int("rows", report.Rows).
		Msg("initialised spreadsheet")

	return nil
}
