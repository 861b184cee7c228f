// Package roster loads contact phone numbers from Excel workbooks and
// normalizes them to E.164.
package roster

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const fetchTimeout = 60 * time.Second

// LoadExcel reads the named column from the first sheet of a local workbook.
func LoadExcel(path, column string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	return columnValues(f, column)
}

// FetchExcel downloads a workbook over HTTP(S) and reads the named column
// from its first sheet.
func FetchExcel(ctx context.Context, url, column string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build workbook request: %w", err)
	}

	client := &http.Client{Timeout: fetchTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download workbook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download workbook: HTTP %d", resp.StatusCode)
	}

	f, err := excelize.OpenReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}
	defer f.Close()

	return columnValues(f, column)
}

// columnValues extracts every cell under the header matching column
// case-insensitively. Rows shorter than the header contribute an empty
// value so each data row yields exactly one entry.
func columnValues(f *excelize.File, column string) ([]string, error) {
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s has no header row", sheet)
	}

	header := rows[0]
	idx := -1
	for i, name := range header {
		if strings.EqualFold(name, column) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("column %q not found, available: %s", column, strings.Join(header, ", "))
	}

	values := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if idx < len(row) {
			values = append(values, row[idx])
		} else {
			values = append(values, "")
		}
	}
	return values, nil
}
