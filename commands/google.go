package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const SHEETS = "https://www.googleapis.com/auth/spreadsheets"

// worksheet implements l10n.Worksheet against a single Google Sheets
// worksheet.
type worksheet struct {
	service     *sheets.Service
	spreadsheet string
	name        string
}

func newWorksheet(ctx context.Context, client *http.Client, spreadsheet string, name string) (*worksheet, error) {
	service, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%v)", err)
	}

	// ... default to the first worksheet
	if name == "" {
		s, err := service.Spreadsheets.Get(spreadsheet).Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("failed to fetch spreadsheet (%v)", err)
		}

		if len(s.Sheets) == 0 {
			return nil, fmt.Errorf("spreadsheet has no worksheets")
		}

		name = s.Sheets[0].Properties.Title
	}

	return &worksheet{
		service:     service,
		spreadsheet: spreadsheet,
		name:        name,
	}, nil
}

func (ws *worksheet) Get(ctx context.Context) ([][]string, error) {
	response, err := ws.service.Spreadsheets.Values.Get(ws.spreadsheet, ws.name).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from sheet (%v)", err)
	}

	grid := make([][]string, len(response.Values))
	for i, row := range response.Values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = fmt.Sprintf("%v", v)
		}

		grid[i] = cells
	}

	return grid, nil
}

func (ws *worksheet) Clear(ctx context.Context) error {
	rq := sheets.BatchClearValuesRequest{
		Ranges: []string{ws.name},
	}

	if _, err := ws.service.Spreadsheets.Values.BatchClear(ws.spreadsheet, &rq).Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to clear sheet (%v)", err)
	}

	return nil
}

func (ws *worksheet) Put(ctx context.Context, grid [][]string) error {
	values := make([][]interface{}, len(grid))
	for i, row := range grid {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}

		values[i] = cells
	}

	rq := sheets.ValueRange{
		Range:  fmt.Sprintf("%s!A1", ws.name),
		Values: values,
	}

	// RAW, not USER_ENTERED - translations must never be interpreted as
	// formulas or dates
	if _, err := ws.service.Spreadsheets.Values.Update(ws.spreadsheet, rq.Range, &rq).ValueInputOption("RAW").Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to write to sheet (%v)", err)
	}

	return nil
}

// authorize builds an HTTP client for the Sheets API from either service
// account credentials or an installed-app OAuth client (with a previously
// cached token - see the authorise command).
func authorize(credentials string, scope string) (*http.Client, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, err
	}

	if serviceAccount(b) {
		config, err := google.JWTConfigFromJSON(b, scope)
		if err != nil {
			return nil, err
		}

		return config.Client(context.Background()), nil
	}

	config, err := google.ConfigFromJSON(b, scope)
	if err != nil {
		return nil, err
	}

	token, err := tokenFromFile(tokensFile(credentials))
	if err != nil {
		return nil, fmt.Errorf("no cached OAuth token - run '%s authorise' first (%v)", APP, err)
	}

	return config.Client(context.Background(), token), nil
}

func serviceAccount(credentials []byte) bool {
	probe := struct {
		Type string `json:"type"`
	}{}

	if err := json.Unmarshal(credentials, &probe); err != nil {
		return false
	}

	return probe.Type == "service_account"
}

// tokensFile is the cached OAuth token path for a credentials file -
// '<dir>/<name>.tokens', alongside the credentials.
func tokensFile(credentials string) string {
	dir, file := filepath.Split(credentials)
	name := strings.TrimSuffix(file, filepath.Ext(file))

	return filepath.Join(dir, fmt.Sprintf("%s.tokens", name))
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	token := oauth2.Token{}
	if err := json.NewDecoder(f).Decode(&token); err != nil {
		return nil, err
	}

	return &token, nil
}

func saveToken(path string, token *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}
