package playbook

import "context"

// Repository defines the data access contract.
type Repository interface {
	ListPlaybooks(context context.Context, category string) ([]*Playbook, error)
	ListSteps(context context.Context, playbookID string) ([]*Step, error)
	PlaybookExists(context context.Context, playbookID string) (bool, error)
}
