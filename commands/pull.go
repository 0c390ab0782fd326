package commands

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/HreshchyshynT/flutter-gsheet-localization-sync/l10n"
)

// PullCmd builds the 'pull' subcommand: spreadsheet -> ARB files.
func PullCmd(options *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Merges the spreadsheet translations into the local ARB files",
		Long: "Downloads the spreadsheet, parses it as a translation table and merges each language " +
			"column into the matching app_<code>.arb file in the project's resource directory. " +
			"Keys not present in the spreadsheet, and ARB '@' metadata entries, are left untouched.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Pull(cmd.Context(), options)
		},
	}
}

// Pull implements the pull command (and the default action when no
// subcommand is given).
func Pull(ctx context.Context, options *Options) error {
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

	updates, err := l10n.Pull(ctx, ws, dir)
	if err != nil {
		return err
	}

	for _, u := range updates {
		log.Info().
			Str("file", u.File).
			Str("language", u.Language).
			Int("updated", u.Updated).
			Msg("updated resource file")
	}

	return nil
}
