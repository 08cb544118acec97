package feedback

import "time"

// Issue types a reader can report about a directory entry.
const (
	IssueWrongPhone  = "wrong_phone"
	IssueBrokenLink  = "broken_link"
	IssueNotEligible = "not_eligible"
	IssueClosed      = "closed"
	IssueOther       = "other"
)

// IssueTypes returns the accepted issue type values.
func IssueTypes() []string {
	return []string{IssueWrongPhone, IssueBrokenLink, IssueNotEligible, IssueClosed, IssueOther}
}

// Report is one reader-submitted problem report about a resource. The
// location snapshot records where the reader was searching from, which helps
// curators reproduce scoped listing problems.
type Report struct {
	FeedbackID string  `json:"feedback_id"`
	ResourceID string  `json:"resource_id"`
	CountyName *string `json:"county_name,omitempty"`
	RegionName *string `json:"region_name,omitempty"`
	Zip        *string `json:"zip,omitempty"`
	IssueType  string  `json:"issue_type"`
	Message    *string `json:"message,omitempty"`
	Language   string  `json:"language"`

	CreatedAt time.Time `json:"created_at"`
}
