package county

// County represents a Texas county and its assigned service region.
type County struct {
	CountyName string `json:"county_name"`
	RegionName string `json:"region_name"`
}
