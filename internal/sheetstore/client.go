package sheetstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client wraps the Google Sheets API for a single spreadsheet. It is built
// once at startup and reused for every request; the underlying service is
// safe for concurrent use.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
	timeout       time.Duration

	sheetIDMu       sync.Mutex
	sheetID         int64
	sheetIDResolved bool
}

// NewClient creates the process-scoped Sheets client using a service
// account credentials file.
func NewClient(ctx context.Context, credentialsFile, spreadsheetID, sheetName string, timeout time.Duration) (*Client, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		timeout:       timeout,
	}, nil
}

// opContext bounds a single outbound call. A timeout surfaces to the caller
// as a failed operation; there is no automatic retry.
func (c *Client) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}

func (c *Client) rangeName(a1 string) string {
	if c.sheetName == "" {
		return a1
	}
	return fmt.Sprintf("%s!%s", c.sheetName, a1)
}

// ReadHeaders reads the header row of the sheet.
func (c *Client) ReadHeaders(ctx context.Context) ([]string, error) {
	ctx, cancel := c.opContext(ctx)
	defer cancel()

	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.rangeName("A1:AH1")).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}
	return toStringRow(resp.Values[0]), nil
}

// ReadRows reads every data row below the header.
func (c *Client) ReadRows(ctx context.Context) ([][]string, error) {
	ctx, cancel := c.opContext(ctx)
	defer cancel()

	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.rangeName("A2:AH")).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read data rows: %w", err)
	}

	rows := make([][]string, len(resp.Values))
	for i, raw := range resp.Values {
		rows[i] = toStringRow(raw)
	}
	return rows, nil
}

// AppendRow appends one row after the last populated row.
func (c *Client) AppendRow(ctx context.Context, row []string) error {
	ctx, cancel := c.opContext(ctx)
	defer cancel()

	valueRange := &sheets.ValueRange{Values: [][]interface{}{toInterfaceRow(row)}}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, c.rangeName("A:AH"), valueRange).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append row: %w", err)
	}
	return nil
}

// UpdateRow overwrites the data row at the given zero-based index. The +2
// skips the header row and converts to the sheet's one-based addressing.
func (c *Client) UpdateRow(ctx context.Context, rowIndex int, row []string) error {
	ctx, cancel := c.opContext(ctx)
	defer cancel()

	rangeA1 := fmt.Sprintf("A%d:AH%d", rowIndex+2, rowIndex+2)
	valueRange := &sheets.ValueRange{Values: [][]interface{}{toInterfaceRow(row)}}
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, c.rangeName(rangeA1), valueRange).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to update row %d: %w", rowIndex, err)
	}
	return nil
}

// DeleteRow removes the data row at the given zero-based index.
func (c *Client) DeleteRow(ctx context.Context, rowIndex int) error {
	sheetID, err := c.resolveSheetID(ctx)
	if err != nil {
		return err
	}

	ctx, cancel := c.opContext(ctx)
	defer cancel()

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				DeleteDimension: &sheets.DeleteDimensionRequest{
					Range: &sheets.DimensionRange{
						SheetId:    sheetID,
						Dimension:  "ROWS",
						StartIndex: int64(rowIndex + 1), // +1 skips the header row
						EndIndex:   int64(rowIndex + 2),
					},
				},
			},
		},
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete row %d: %w", rowIndex, err)
	}
	return nil
}

// Metadata fetches the spreadsheet properties, used by the connection test.
func (c *Client) Metadata(ctx context.Context) (*sheets.Spreadsheet, error) {
	ctx, cancel := c.opContext(ctx)
	defer cancel()

	meta, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spreadsheet metadata: %w", err)
	}
	return meta, nil
}

// resolveSheetID looks up the numeric sheet id for the configured sheet
// name. Deletes address rows by sheet id, not name. The id is cached after
// the first successful lookup; a failed lookup is retried on the next call.
func (c *Client) resolveSheetID(ctx context.Context) (int64, error) {
	c.sheetIDMu.Lock()
	defer c.sheetIDMu.Unlock()

	if c.sheetIDResolved {
		return c.sheetID, nil
	}

	meta, err := c.Metadata(ctx)
	if err != nil {
		return 0, err
	}

	if c.sheetName == "" {
		if len(meta.Sheets) > 0 && meta.Sheets[0].Properties != nil {
			c.sheetID = meta.Sheets[0].Properties.SheetId
			c.sheetIDResolved = true
			return c.sheetID, nil
		}
		return 0, fmt.Errorf("spreadsheet has no sheets")
	}

	for _, sheet := range meta.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == c.sheetName {
			c.sheetID = sheet.Properties.SheetId
			c.sheetIDResolved = true
			return c.sheetID, nil
		}
	}
	return 0, fmt.Errorf("sheet %q not found in spreadsheet", c.sheetName)
}

func toStringRow(raw []interface{}) []string {
	row := make([]string, len(raw))
	for i, v := range raw {
		if s, ok := v.(string); ok {
			row[i] = s
		} else {
			row[i] = fmt.Sprint(v)
		}
	}
	return row
}

func toInterfaceRow(row []string) []interface{} {
	out := make([]interface{}, len(row))
	for i, v := range row {
		out[i] = v
	}
	return out
}
