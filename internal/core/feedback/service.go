package feedback

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/txsn/navigator/internal/platform/i18n"
	"github.com/txsn/navigator/internal/platform/validate"
	"github.com/txsn/navigator/pkg/pointer"
)

// maxMessageLen bounds the free-text field; reports are short problem notes,
// not essays.
const maxMessageLen = 2000

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

// SubmitRequest is the report payload as received from the client.
type SubmitRequest struct {
	ResourceID string `json:"resource_id"`
	IssueType  string `json:"issue_type"`
	Message    string `json:"message"`
	Language   string `json:"language"`

	// Location snapshot at the time of the report.
	CountyName string `json:"county_name"`
	RegionName string `json:"region_name"`
	Zip        string `json:"zip"`
}

// Submit validates and stores one problem report.
func (service *Service) Submit(context context.Context, request SubmitRequest) (*Report, error) {
	v := &validate.Validator{}
	if err := v.
		Required("resource_id", request.ResourceID).
		UUID("resource_id", request.ResourceID).
		OneOf("issue_type", request.IssueType, IssueTypes()...).
		OneOf("language", request.Language, i18n.Supported()...).
		MaxLen("message", request.Message, maxMessageLen).
		Zip("zip", strings.TrimSpace(request.Zip)).
		Err(); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	report := &Report{
		FeedbackID: id.String(),
		ResourceID: request.ResourceID,
		CountyName: pointer.NilIfEmpty(strings.TrimSpace(request.CountyName)),
		RegionName: pointer.NilIfEmpty(strings.TrimSpace(request.RegionName)),
		Zip:        pointer.NilIfEmpty(strings.TrimSpace(request.Zip)),
		IssueType:  request.IssueType,
		Message:    pointer.NilIfEmpty(strings.TrimSpace(request.Message)),
		Language:   request.Language,
	}

	if err := service.repo.CreateReport(context, report); err != nil {
		return nil, err
	}

	service.logger.Info("feedback_submitted",
		slog.String("feedback_id", report.FeedbackID),
		slog.String("resource_id", report.ResourceID),
		slog.String("issue_type", report.IssueType))

	return report, nil
}
