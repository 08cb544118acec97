package county_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/txsn/navigator/internal/core/county"
)

var gulfCoast = []county.County{
	{CountyName: "Brazoria", RegionName: "Gulf Coast"},
	{CountyName: "Harris", RegionName: "Gulf Coast"},
	{CountyName: "Travis", RegionName: "Central Texas"},
	{CountyName: "Loving", RegionName: ""},
}

func TestResolve_PickMode(t *testing.T) {
	tests := []struct {
		name       string
		county     string
		wantCounty string
		wantRegion string
	}{
		{"known_county", "Harris", "Harris", "Gulf Coast"},
		{"case_insensitive_lookup", "harris", "harris", "Gulf Coast"},
		{"trims_input", "  Travis  ", "Travis", "Central Texas"},
		{"unknown_county_degrades_statewide", "Atlantis", "Atlantis", ""},
		{"county_without_region", "Loving", "Loving", ""},
		{"empty_input", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := county.Resolve(county.ModePick, tt.county, "", gulfCoast)
			assert.Equal(t, tt.wantCounty, loc.County)
			assert.Equal(t, tt.wantRegion, loc.Region)
		})
	}
}

func TestResolve_OtherMode(t *testing.T) {
	// The chosen region passes through untouched by the county list.
	loc := county.Resolve(county.ModeOther, "Somewhere", "Panhandle", gulfCoast)
	assert.Equal(t, "Somewhere", loc.County)
	assert.Equal(t, "Panhandle", loc.Region)

	// The Other/Unknown sentinel resolves to an empty region (statewide).
	loc = county.Resolve(county.ModeOther, "Somewhere", "Other/Unknown", gulfCoast)
	assert.Equal(t, "Somewhere", loc.County)
	assert.Empty(t, loc.Region)
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, county.ModeOther, county.ParseMode("other"))
	assert.Equal(t, county.ModeOther, county.ParseMode(" OTHER "))
	assert.Equal(t, county.ModePick, county.ParseMode("pick"))
	assert.Equal(t, county.ModePick, county.ParseMode(""))
	assert.Equal(t, county.ModePick, county.ParseMode("garbage"))
}

func TestRegionOptions(t *testing.T) {
	options := county.RegionOptions(gulfCoast)

	// Distinct, sorted, sentinel last, empty regions skipped.
	assert.Equal(t, []string{"Central Texas", "Gulf Coast", "Other/Unknown"}, options)
}

func TestRegionOptions_EmptyList(t *testing.T) {
	options := county.RegionOptions(nil)
	assert.Equal(t, []string{"Other/Unknown"}, options)
}
