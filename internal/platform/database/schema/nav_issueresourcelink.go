package schema

// NavIssueResourceLinkTable represents the 'nav.issue_resource_link' table
type NavIssueResourceLinkTable struct {
	Table        string
	PlaybookID   string
	ResourceID   string
	LinkStrength string
	CreatedAt    string
}

// NavIssueResourceLink is the schema definition for nav.issue_resource_link
var NavIssueResourceLink = NavIssueResourceLinkTable{
	Table:        "nav.issue_resource_link",
	PlaybookID:   "playbook_id",
	ResourceID:   "resource_id",
	LinkStrength: "link_strength",
	CreatedAt:    "created_at",
}

func (t NavIssueResourceLinkTable) Columns() []string {
	return []string{t.PlaybookID, t.ResourceID, t.LinkStrength, t.CreatedAt}
}
