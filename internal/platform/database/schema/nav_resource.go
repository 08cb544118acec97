package schema

// NavResourceTable represents the 'nav.resource' table
type NavResourceTable struct {
	Table           string
	ResourceID      string
	Category        string
	Title           string
	Organization    string
	DescriptionEN   string
	DescriptionES   string
	Phone           string
	WebsiteURL      string
	WebsiteTemplate string
	Languages       string
	Eligibility     string
	AccessNotes     string
	Hours           string
	Cost            string
	Scope           string
	CountyName      string
	RegionName      string
	IsLocator       string
	RequiresZip     string
	Priority        string
	LastVerified    string
	SourceURL       string
	CreatedAt       string
}

// NavResource is the schema definition for nav.resource
var NavResource = NavResourceTable{
	Table:           "nav.resource",
	ResourceID:      "resource_id",
	Category:        "category",
	Title:           "title",
	Organization:    "organization",
	DescriptionEN:   "description_en",
	DescriptionES:   "description_es",
	Phone:           "phone",
	WebsiteURL:      "website_url",
	WebsiteTemplate: "website_template",
	Languages:       "languages",
	Eligibility:     "eligibility",
	AccessNotes:     "access_notes",
	Hours:           "hours",
	Cost:            "cost",
	Scope:           "scope",
	CountyName:      "county_name",
	RegionName:      "region_name",
	IsLocator:       "is_locator",
	RequiresZip:     "requires_zip",
	Priority:        "priority",
	LastVerified:    "last_verified",
	SourceURL:       "source_url",
	CreatedAt:       "created_at",
}

func (t NavResourceTable) Columns() []string {
	return []string{
		t.ResourceID, t.Category, t.Title, t.Organization, t.DescriptionEN, t.DescriptionES,
		t.Phone, t.WebsiteURL, t.WebsiteTemplate, t.Languages, t.Eligibility, t.AccessNotes,
		t.Hours, t.Cost, t.Scope, t.CountyName, t.RegionName, t.IsLocator, t.RequiresZip,
		t.Priority, t.LastVerified, t.SourceURL, t.CreatedAt,
	}
}
