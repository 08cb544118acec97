package playbook

import (
	"context"
	"log/slog"

	"github.com/txsn/navigator/internal/platform/apperr"
	"github.com/txsn/navigator/internal/platform/constants"
	"github.com/txsn/navigator/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListPlaybooks returns the playbooks for one category, ordered by urgency.
func (service *Service) ListPlaybooks(context context.Context, category string) ([]*Playbook, error) {
	v := &validate.Validator{}
	if err := v.
		Required("category", category).
		OneOf("category", category,
			constants.CategoryBillsCoverage, constants.CategoryMeds, constants.CategoryTransport).
		Err(); err != nil {
		return nil, err
	}

	return service.repo.ListPlaybooks(context, category)
}

// ListSteps returns the ordered steps of one playbook.
func (service *Service) ListSteps(context context.Context, playbookID string) ([]*Step, error) {
	v := &validate.Validator{}
	if err := v.UUID("playbook_id", playbookID).Err(); err != nil {
		return nil, err
	}

	exists, err := service.repo.PlaybookExists(context, playbookID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Playbook")
	}

	return service.repo.ListSteps(context, playbookID)
}
