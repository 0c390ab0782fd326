package commands

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/HreshchyshynT/flutter-gsheet-localization-sync/l10n"
)

const APP = "flutter-gsheet-localization-sync"

// Options are the flag values shared by every subcommand.
type Options struct {
	Credentials string
	URL         string
	Project     string
	Sheet       string
	Debug       bool
}

var spreadsheetURL = regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`)
var spreadsheetKey = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// DefaultOptions seeds the options from the environment. A .env file in the
// working directory is loaded first, if present.
func DefaultOptions() Options {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using environment variables")
	}

	return Options{
		Credentials: getEnv("ARB_SYNC_CREDENTIALS", "credentials.json"),
		URL:         getEnv("ARB_SYNC_SPREADSHEET", ""),
		Project:     getEnv("ARB_SYNC_PROJECT", "."),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func (options *Options) validate() error {
	if strings.TrimSpace(options.Credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(options.URL) == "" {
		return fmt.Errorf("--url is a required option")
	}

	if strings.TrimSpace(options.Project) == "" {
		return fmt.Errorf("--project is a required option")
	}

	return nil
}

// worksheet authorizes against the Google Sheets API and wraps the
// configured worksheet as an l10n.Worksheet.
func (options *Options) worksheet(ctx context.Context) (l10n.Worksheet, error) {
	id, err := spreadsheetID(options.URL)
	if err != nil {
		return nil, err
	}

	client, err := authorize(options.Credentials, SHEETS)
	if err != nil {
		return nil, fmt.Errorf("authentication/authorization error (%v)", err)
	}

	return newWorksheet(ctx, client, id, options.Sheet)
}

// spreadsheetID accepts either a full spreadsheet URL or a bare spreadsheet
// key and returns the key.
func spreadsheetID(url string) (string, error) {
	url = strings.TrimSpace(url)

	if match := spreadsheetURL.FindStringSubmatch(url); len(match) == 2 && match[1] != "" {
		return match[1], nil
	}

	if spreadsheetKey.MatchString(url) {
		return url, nil
	}

	return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
}
