package feedback_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/txsn/navigator/internal/core/feedback"
	"github.com/txsn/navigator/internal/platform/apperr"
)

type fakeRepo struct {
	created []*feedback.Report
	err     error
}

func (f *fakeRepo) CreateReport(_ context.Context, report *feedback.Report) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, report)
	return nil
}

func validRequest() feedback.SubmitRequest {
	return feedback.SubmitRequest{
		ResourceID: "0190c2a4-67d1-7e9a-b7fb-000000000001",
		IssueType:  feedback.IssueWrongPhone,
		Language:   "en",
		Message:    "The listed number is disconnected.",
		CountyName: "Harris",
		Zip:        "77030",
	}
}

func TestService_Submit(t *testing.T) {
	repo := &fakeRepo{}
	service := feedback.NewService(repo, slog.Default())

	report, err := service.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, report.FeedbackID)
	assert.Equal(t, feedback.IssueWrongPhone, report.IssueType)
	require.NotNil(t, report.CountyName)
	assert.Equal(t, "Harris", *report.CountyName)
	assert.Nil(t, report.RegionName)
	require.Len(t, repo.created, 1)
}

func TestService_Submit_BlankOptionalsStoredAsNil(t *testing.T) {
	service := feedback.NewService(&fakeRepo{}, slog.Default())

	request := validRequest()
	request.Message = "   "
	request.CountyName = ""
	request.Zip = ""

	report, err := service.Submit(context.Background(), request)
	require.NoError(t, err)

	assert.Nil(t, report.Message)
	assert.Nil(t, report.CountyName)
	assert.Nil(t, report.Zip)
}

func TestService_Submit_Validation(t *testing.T) {
	service := feedback.NewService(&fakeRepo{}, slog.Default())

	tests := []struct {
		name   string
		mutate func(*feedback.SubmitRequest)
	}{
		{"missing resource id", func(r *feedback.SubmitRequest) { r.ResourceID = "" }},
		{"bad resource id", func(r *feedback.SubmitRequest) { r.ResourceID = "not-a-uuid" }},
		{"unknown issue type", func(r *feedback.SubmitRequest) { r.IssueType = "too_loud" }},
		{"unknown language", func(r *feedback.SubmitRequest) { r.Language = "fr" }},
		{"bad zip", func(r *feedback.SubmitRequest) { r.Zip = "770" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := validRequest()
			tt.mutate(&request)

			_, err := service.Submit(context.Background(), request)
			require.Error(t, err)

			var appError *apperr.AppError
			require.ErrorAs(t, err, &appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
		})
	}
}

func TestService_Submit_RepoError(t *testing.T) {
	service := feedback.NewService(&fakeRepo{err: errors.New("db down")}, slog.Default())

	_, err := service.Submit(context.Background(), validRequest())
	assert.Error(t, err)
}
