package schema

// NavIssuePlaybookTable represents the 'nav.issue_playbook' table
type NavIssuePlaybookTable struct {
	Table        string
	PlaybookID   string
	Category     string
	IssueKey     string
	UrgencyLevel string
	TitleEN      string
	TitleES      string
	SummaryEN    string
	SummaryES    string
	CreatedAt    string
}

// NavIssuePlaybook is the schema definition for nav.issue_playbook
var NavIssuePlaybook = NavIssuePlaybookTable{
	Table:        "nav.issue_playbook",
	PlaybookID:   "playbook_id",
	Category:     "category",
	IssueKey:     "issue_key",
	UrgencyLevel: "urgency_level",
	TitleEN:      "title_en",
	TitleES:      "title_es",
	SummaryEN:    "summary_en",
	SummaryES:    "summary_es",
	CreatedAt:    "created_at",
}

func (t NavIssuePlaybookTable) Columns() []string {
	return []string{t.PlaybookID, t.Category, t.IssueKey, t.UrgencyLevel, t.TitleEN, t.TitleES, t.SummaryEN, t.SummaryES, t.CreatedAt}
}
