package feedback

import "context"

// Repository defines the data access contract.
type Repository interface {
	// CreateReport stores one problem report.
	CreateReport(context context.Context, report *Report) error
}
