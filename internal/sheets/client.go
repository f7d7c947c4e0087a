// Package sheets wraps the Google Sheets API behind the
// contract.SheetValuesReader interface.
package sheets

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/diegoclair/slack-sheet-monitor/internal/domain/contract"
)

type Client struct {
	svc *sheetsapi.Service
}

// New authenticates with a service account and returns a read-only sheets
// client. Credentials come from credentialsJSON (raw or base64-encoded
// service account JSON) when set, otherwise from the file at
// credentialsPath.
func New(ctx context.Context, credentialsPath, credentialsJSON string) (*Client, error) {
	data, err := loadCredentials(credentialsPath, credentialsJSON)
	if err != nil {
		return nil, err
	}

	jwtConfig, err := google.JWTConfigFromJSON(data, sheetsapi.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}

	svc, err := sheetsapi.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{svc: svc}, nil
}

var _ contract.SheetValuesReader = (*Client)(nil)

// ReadRange fetches the values of a range in A1 notation, e.g. "QU-PU!A1:C".
// Cells are returned trimmed-free as strings; short rows stay short.
func (c *Client) ReadRange(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet range %s: %w", readRange, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			if cell == nil {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, fmt.Sprint(cell))
		}
		rows = append(rows, cells)
	}

	return rows, nil
}

func loadCredentials(path, inline string) ([]byte, error) {
	if inline != "" {
		return decodeCredentials(inline)
	}

	if path == "" {
		return nil, fmt.Errorf("no google credentials provided")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return data, nil
}

// decodeCredentials accepts the credentials env var either as raw service
// account JSON or base64-encoded JSON (the form used for CI secrets).
func decodeCredentials(raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)

	if json.Valid([]byte(raw)) {
		return []byte(raw), nil
	}

	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("credentials are neither valid JSON nor base64: %w", err)
	}
	if !json.Valid(decoded) {
		return nil, fmt.Errorf("base64-decoded credentials are not valid JSON")
	}

	return decoded, nil
}
