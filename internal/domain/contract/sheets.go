package contract

import "context"

// SheetValuesReader defines the read-only spreadsheet access the monitors
// need. readRange uses A1 notation including the tab name, e.g. "QU-PU!A1:C".
type SheetValuesReader interface {
	ReadRange(ctx context.Context, spreadsheetID, readRange string) ([][]string, error)
}
