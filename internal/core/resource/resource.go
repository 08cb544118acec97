package resource

import "time"

// Coverage scopes for a directory entry. Scope determines which rank tier a
// matching query can award: county hits rank 3, region hits rank 2, and
// statewide entries always match at rank 1.
const (
	ScopeCounty = "county"
	ScopeRegion = "region"
	ScopeState  = "state"
)

// Resource is one entry of the assistance directory.
type Resource struct {
	ResourceID    string  `json:"resource_id"`
	Category      string  `json:"category"`
	Title         string  `json:"title"`
	Organization  *string `json:"organization"`
	DescriptionEN *string `json:"description_en"`
	DescriptionES *string `json:"description_es"`
	Phone         *string `json:"phone"`
	WebsiteURL    *string `json:"website_url"`

	// WebsiteTemplate, when set, takes precedence over WebsiteURL and may
	// contain the literal placeholders {county}, {region}, and {zip}.
	WebsiteTemplate *string `json:"website_template"`

	Languages   *string `json:"languages"`
	Eligibility *string `json:"eligibility"`
	AccessNotes *string `json:"access_notes"`
	Hours       *string `json:"hours"`
	Cost        *string `json:"cost"`

	Scope      string  `json:"scope"`
	CountyName *string `json:"county_name,omitempty"`
	RegionName *string `json:"region_name,omitempty"`

	// IsLocator marks directory/search tools (e.g. ride finders) rather than
	// direct services. A locator with RequiresZip is unusable until the
	// caller supplies a ZIP.
	IsLocator   bool `json:"is_locator"`
	RequiresZip bool `json:"requires_zip"`

	// Priority breaks ties within a rank tier; higher sorts first.
	Priority int `json:"priority"`

	LastVerified *time.Time `json:"last_verified"`
	SourceURL    *string    `json:"source_url"`
	CreatedAt    time.Time  `json:"-"`
}

// Match is a directory entry returned by one of the ranking queries.
type Match struct {
	Resource

	// MatchRank encodes proximity: 3=county, 2=region, 1=statewide.
	MatchRank int `json:"match_rank"`

	// LinkStrength (1..5) is only present on issue-ranked matches and
	// reflects how strongly the resource is curated for the playbook.
	LinkStrength *int `json:"link_strength,omitempty"`
}
