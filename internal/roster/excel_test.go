package roster

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]any) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	for i, row := range rows {
		for j, cell := range row {
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", name, cell))
		}
	}
	return f
}

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "contacts.xlsx")
	require.NoError(t, buildWorkbook(t, rows).SaveAs(path))
	return path
}

func TestLoadExcel(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Name", "Phone"},
		{"Ada", "+14155552671"},
		{"Grace", "4155552671"},
	})

	values, err := LoadExcel(path, "phone")
	require.NoError(t, err)
	assert.Equal(t, []string{"+14155552671", "4155552671"}, values)
}

func TestLoadExcelShortRowsYieldEmptyValues(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Name", "Phone"},
		{"Ada", "+14155552671"},
		{"Bob"},
		{"Eve", "+447911123456"},
	})

	values, err := LoadExcel(path, "Phone")
	require.NoError(t, err)
	assert.Equal(t, []string{"+14155552671", "", "+447911123456"}, values)
}

func TestLoadExcelMissingColumn(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Name", "Phone"},
		{"Ada", "+14155552671"},
	})

	_, err := LoadExcel(path, "mobile")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "mobile" not found`)
	assert.Contains(t, err.Error(), "Name, Phone")
}

func TestLoadExcelMissingFile(t *testing.T) {
	_, err := LoadExcel(filepath.Join(t.TempDir(), "absent.xlsx"), "phone")
	assert.Error(t, err)
}

func TestFetchExcel(t *testing.T) {
	var buf *bytes.Buffer
	{
		f := buildWorkbook(t, [][]any{
			{"phone"},
			{"+14155552671"},
			{"+447911123456"},
		})
		b, err := f.WriteToBuffer()
		require.NoError(t, err)
		buf = b
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(buf.Bytes())
	}))
	defer srv.Close()

	values, err := FetchExcel(context.Background(), srv.URL, "Phone")
	require.NoError(t, err)
	assert.Equal(t, []string{"+14155552671", "+447911123456"}, values)
}

func TestFetchExcelBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := FetchExcel(context.Background(), srv.URL, "phone")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}
