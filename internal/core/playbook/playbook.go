package playbook

import "time"

// Urgency tiers, ordered by how quickly the survivor needs to act.
const (
	UrgencyUrgent   = "urgent"
	UrgencySoon     = "soon"
	UrgencyPlanning = "planning"
)

// Playbook is a situational guide for one issue within a category
// (e.g. "insurance denial appeal" under bills_coverage).
type Playbook struct {
	PlaybookID   string    `json:"playbook_id"`
	Category     string    `json:"category"`
	IssueKey     string    `json:"issue_key"`
	UrgencyLevel string    `json:"urgency_level"`
	TitleEN      string    `json:"title_en"`
	TitleES      string    `json:"title_es"`
	SummaryEN    string    `json:"summary_en"`
	SummaryES    string    `json:"summary_es"`
	CreatedAt    time.Time `json:"-"`
}

// Step is one ordered instruction within a playbook, optionally carrying an
// action link ("call this number", "open this form").
type Step struct {
	StepID        string    `json:"step_id"`
	PlaybookID    string    `json:"playbook_id"`
	StepOrder     int       `json:"step_order"`
	TitleEN       string    `json:"title_en"`
	TitleES       string    `json:"title_es"`
	BodyEN        string    `json:"body_en"`
	BodyES        string    `json:"body_es"`
	ActionType    *string   `json:"action_type"`
	ActionLabelEN *string   `json:"action_label_en"`
	ActionLabelES *string   `json:"action_label_es"`
	ActionURL     *string   `json:"action_url"`
	CreatedAt     time.Time `json:"-"`
}
