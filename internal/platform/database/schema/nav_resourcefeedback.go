package schema

// NavResourceFeedbackTable represents the 'nav.resource_feedback' table
type NavResourceFeedbackTable struct {
	Table      string
	FeedbackID string
	ResourceID string
	CountyName string
	RegionName string
	Zip        string
	IssueType  string
	Message    string
	Language   string
	CreatedAt  string
}

// NavResourceFeedback is the schema definition for nav.resource_feedback
var NavResourceFeedback = NavResourceFeedbackTable{
	Table:      "nav.resource_feedback",
	FeedbackID: "feedback_id",
	ResourceID: "resource_id",
	CountyName: "county_name",
	RegionName: "region_name",
	Zip:        "zip",
	IssueType:  "issue_type",
	Message:    "message",
	Language:   "language",
	CreatedAt:  "created_at",
}

func (t NavResourceFeedbackTable) Columns() []string {
	return []string{t.FeedbackID, t.ResourceID, t.CountyName, t.RegionName, t.Zip, t.IssueType, t.Message, t.Language, t.CreatedAt}
}
