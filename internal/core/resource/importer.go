package resource

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/txsn/navigator/pkg/convert"
	"github.com/txsn/navigator/pkg/pointer"
)

// lastVerifiedLayout is the date format curators use in the workbook.
const lastVerifiedLayout = "2006-01-02"

// ParseWorkbook reads a curator-maintained XLSX directory export into
// resources ready for [Service.ImportResources].
//
// The first sheet is used. Row 1 must be a header row whose cells name the
// resource columns (resource_id, category, title, scope, ...); column order
// does not matter. Rows with an empty resource_id get a fresh UUID so new
// entries can be added without generating IDs by hand.
func ParseWorkbook(path string) ([]*Resource, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheets[0])
	}

	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"category", "title", "scope"} {
		if _, ok := header[required]; !ok {
			return nil, fmt.Errorf("sheet %q is missing the %q column", sheets[0], required)
		}
	}

	resources := make([]*Resource, 0, len(rows)-1)
	for rowNum, row := range rows[1:] {
		cell := func(name string) string {
			idx, ok := header[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		// Fully blank rows are common at the bottom of hand-edited sheets.
		if cell("title") == "" && cell("category") == "" {
			continue
		}

		resource := &Resource{
			ResourceID:      cell("resource_id"),
			Category:        cell("category"),
			Title:           cell("title"),
			Organization:    pointer.NilIfEmpty(cell("organization")),
			DescriptionEN:   pointer.NilIfEmpty(cell("description_en")),
			DescriptionES:   pointer.NilIfEmpty(cell("description_es")),
			Phone:           pointer.NilIfEmpty(cell("phone")),
			WebsiteURL:      pointer.NilIfEmpty(cell("website_url")),
			WebsiteTemplate: pointer.NilIfEmpty(cell("website_template")),
			Languages:       pointer.NilIfEmpty(cell("languages")),
			Eligibility:     pointer.NilIfEmpty(cell("eligibility")),
			AccessNotes:     pointer.NilIfEmpty(cell("access_notes")),
			Hours:           pointer.NilIfEmpty(cell("hours")),
			Cost:            pointer.NilIfEmpty(cell("cost")),
			Scope:           strings.ToLower(cell("scope")),
			CountyName:      pointer.NilIfEmpty(cell("county_name")),
			RegionName:      pointer.NilIfEmpty(cell("region_name")),
			IsLocator:       convert.ToBool(cell("is_locator")),
			RequiresZip:     convert.ToBool(cell("requires_zip")),
			Priority:        convert.ToIntD(cell("priority"), 0),
			SourceURL:       pointer.NilIfEmpty(cell("source_url")),
		}

		if resource.ResourceID == "" {
			id, err := uuid.NewV7()
			if err != nil {
				return nil, fmt.Errorf("row %d: generate resource id: %w", rowNum+2, err)
			}
			resource.ResourceID = id.String()
		}

		if raw := cell("last_verified"); raw != "" {
			verified, err := time.Parse(lastVerifiedLayout, raw)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid last_verified %q (want YYYY-MM-DD)", rowNum+2, raw)
			}
			resource.LastVerified = &verified
		}

		resources = append(resources, resource)
	}

	return resources, nil
}
