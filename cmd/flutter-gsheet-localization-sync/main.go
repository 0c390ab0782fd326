package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/HreshchyshynT/flutter-gsheet-localization-sync/commands"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	options := commands.DefaultOptions()

	root := &cobra.Command{
		Use:   commands.APP,
		Short: "Synchronizes Flutter ARB localization files with a Google Sheets spreadsheet",
		Long: "Synchronizes the human-authored translations in a Google Sheets spreadsheet with the " +
			"per-language ARB resource files of a Flutter project. Without a subcommand, pulls the " +
			"spreadsheet into the local files.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if options.Debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Pull(cmd.Context(), &options)
		},
	}

	root.PersistentFlags().StringVar(&options.Credentials, "credentials", options.Credentials, "Path to the Google API credentials file")
	root.PersistentFlags().StringVar(&options.URL, "url", options.URL, "Spreadsheet URL (or bare spreadsheet key)")
	root.PersistentFlags().StringVar(&options.Project, "project", options.Project, "Path to the Flutter project directory (the one containing l10n.yaml)")
	root.PersistentFlags().StringVar(&options.Sheet, "sheet", options.Sheet, "Worksheet title. Defaults to the spreadsheet's first worksheet")
	root.PersistentFlags().BoolVar(&options.Debug, "debug", options.Debug, "Enables debugging information")

	root.AddCommand(commands.PullCmd(&options))
	root.AddCommand(commands.InitCmd(&options))
	root.AddCommand(commands.PushCmd(&options))
	root.AddCommand(commands.AuthoriseCmd(&options))
	root.AddCommand(commands.VersionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
