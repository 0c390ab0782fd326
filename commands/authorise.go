package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// AuthoriseCmd builds the 'authorise' subcommand: the one-time interactive
// OAuth exchange for installed-app credentials. The token is cached next to
// the credentials file and reused by every subsequent run.
func AuthoriseCmd(options *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "authorise",
		Short: "Authorises access to the Google Sheets spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return authorise(cmd.Context(), options)
		},
	}
}

func authorise(ctx context.Context, options *Options) error {
	if err := options.validate(); err != nil {
		return err
	}

	b, err := os.ReadFile(options.Credentials)
	if err != nil {
		return err
	}

	if serviceAccount(b) {
		log.Info().Msg("service account credentials do not need authorisation")
		return nil
	}

	config, err := google.ConfigFromJSON(b, SHEETS)
	if err != nil {
		return fmt.Errorf("invalid OAuth client credentials (%v)", err)
	}

	url := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)

	fmt.Printf("Go to the following link in your browser then type the authorization code:\n%v\n", url)

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return fmt.Errorf("unable to read authorization code (%v)", err)
	}

	token, err := config.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("unable to retrieve token from web (%v)", err)
	}

	tokens := tokensFile(options.Credentials)
	if err := saveToken(tokens, token); err != nil {
		return fmt.Errorf("unable to cache OAuth token (%v)", err)
	}

	log.Info().Str("tokens", tokens).Msg("saved OAuth token")

	return nil
}
