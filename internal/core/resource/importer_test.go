package resource_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/txsn/navigator/internal/core/resource"
)

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()

	workbook := excelize.NewFile()
	sheet := workbook.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, workbook.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "directory.xlsx")
	require.NoError(t, workbook.SaveAs(path))
	require.NoError(t, workbook.Close())
	return path
}

func TestParseWorkbook(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"resource_id", "category", "title", "scope", "county_name", "is_locator", "requires_zip", "priority", "last_verified", "phone"},
		{"0190c2a4-67d1-7e9a-b7fb-000000000001", "transport", "Harris County Rides", "county", "Harris", "true", "1", "10", "2026-05-01", "(713) 555-0100"},
		{"", "meds", "Statewide Medication Fund", "state", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", "", "", ""},
	})

	resources, err := resource.ParseWorkbook(path)
	require.NoError(t, err)
	require.Len(t, resources, 2)

	first := resources[0]
	assert.Equal(t, "0190c2a4-67d1-7e9a-b7fb-000000000001", first.ResourceID)
	assert.Equal(t, "transport", first.Category)
	assert.Equal(t, "Harris County Rides", first.Title)
	assert.Equal(t, resource.ScopeCounty, first.Scope)
	require.NotNil(t, first.CountyName)
	assert.Equal(t, "Harris", *first.CountyName)
	assert.True(t, first.IsLocator)
	assert.True(t, first.RequiresZip)
	assert.Equal(t, 10, first.Priority)
	require.NotNil(t, first.LastVerified)
	assert.Equal(t, "2026-05-01", first.LastVerified.Format("2006-01-02"))

	second := resources[1]
	// Blank IDs are minted on import.
	assert.NotEmpty(t, second.ResourceID)
	assert.Nil(t, second.CountyName)
	assert.False(t, second.IsLocator)
	assert.Zero(t, second.Priority)
	assert.Nil(t, second.LastVerified)
}

func TestParseWorkbook_MissingRequiredColumn(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"resource_id", "title"},
		{"", "No category column"},
	})

	_, err := resource.ParseWorkbook(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category")
}

func TestParseWorkbook_BadDate(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"category", "title", "scope", "last_verified"},
		{"meds", "Fund", "state", "05/01/2026"},
	})

	_, err := resource.ParseWorkbook(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "last_verified")
}

func TestParseWorkbook_NoDataRows(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"category", "title", "scope"},
	})

	_, err := resource.ParseWorkbook(path)
	assert.Error(t, err)
}
