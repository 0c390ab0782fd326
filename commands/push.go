package commands

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/HreshchyshynT/flutter-gsheet-localization-sync/l10n"
)

// PushCmd builds the 'push' subcommand: appends ids missing from the
// spreadsheet, never updating existing rows.
func PushCmd(options *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Adds translation ids missing from the spreadsheet",
		Long: "Loads the project's ARB files and appends a row for every translation id that is not " +
			"already in the spreadsheet. Existing rows are preserved verbatim - push adds ids, it " +
			"never updates them, even when the local value differs.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return push(cmd.Context(), options)
		},
	}
}

func push(ctx context.Context, options *Options) error {
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

	added, err := l10n.Push(ctx, ws, dir)
	if err != nil {
		return err
	}

	if len(added) == 0 {
		log.Info().Msg("spreadsheet already has every translation id")
	} else {
		log.Info().
			Int("added", len(added)).
			Strs("ids", added).
			Msg("pushed new translation ids")
	}

	return nil
}
