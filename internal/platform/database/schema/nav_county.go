package schema

// NavCountyTable represents the 'nav.county' table
type NavCountyTable struct {
	Table      string
	CountyName string
	RegionName string
}

// NavCounty is the schema definition for nav.county
var NavCounty = NavCountyTable{
	Table:      "nav.county",
	CountyName: "county_name",
	RegionName: "region_name",
}

func (t NavCountyTable) Columns() []string { return []string{t.CountyName, t.RegionName} }
