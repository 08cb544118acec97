package schema

// NavIssueStepTable represents the 'nav.issue_step' table
type NavIssueStepTable struct {
	Table         string
	StepID        string
	PlaybookID    string
	StepOrder     string
	TitleEN       string
	TitleES       string
	BodyEN        string
	BodyES        string
	ActionType    string
	ActionLabelEN string
	ActionLabelES string
	ActionURL     string
	CreatedAt     string
}

// NavIssueStep is the schema definition for nav.issue_step
var NavIssueStep = NavIssueStepTable{
	Table:         "nav.issue_step",
	StepID:        "step_id",
	PlaybookID:    "playbook_id",
	StepOrder:     "step_order",
	TitleEN:       "title_en",
	TitleES:       "title_es",
	BodyEN:        "body_en",
	BodyES:        "body_es",
	ActionType:    "action_type",
	ActionLabelEN: "action_label_en",
	ActionLabelES: "action_label_es",
	ActionURL:     "action_url",
	CreatedAt:     "created_at",
}

func (t NavIssueStepTable) Columns() []string {
	return []string{t.StepID, t.PlaybookID, t.StepOrder, t.TitleEN, t.TitleES, t.BodyEN, t.BodyES, t.ActionType, t.ActionLabelEN, t.ActionLabelES, t.ActionURL, t.CreatedAt}
}
