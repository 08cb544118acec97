package playbook_test

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/txsn/navigator/internal/core/playbook"
	"github.com/txsn/navigator/internal/platform/apperr"
)

const knownPlaybookID = "0190c2a4-67d1-7e9a-b7fb-1f2e3d4c5b6a"

type fakeRepo struct {
	playbooks []*playbook.Playbook
	steps     []*playbook.Step
}

func (f *fakeRepo) ListPlaybooks(_ context.Context, category string) ([]*playbook.Playbook, error) {
	var out []*playbook.Playbook
	for _, p := range f.playbooks {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListSteps(_ context.Context, playbookID string) ([]*playbook.Step, error) {
	var out []*playbook.Step
	for _, s := range f.steps {
		if s.PlaybookID == playbookID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepo) PlaybookExists(_ context.Context, playbookID string) (bool, error) {
	return playbookID == knownPlaybookID, nil
}

func newService() *playbook.Service {
	repo := &fakeRepo{
		playbooks: []*playbook.Playbook{
			{PlaybookID: knownPlaybookID, Category: "bills_coverage", IssueKey: "denial_appeal", UrgencyLevel: playbook.UrgencyUrgent},
		},
		steps: []*playbook.Step{
			{StepID: "s1", PlaybookID: knownPlaybookID, StepOrder: 1},
			{StepID: "s2", PlaybookID: knownPlaybookID, StepOrder: 2},
		},
	}
	return playbook.NewService(repo, slog.Default())
}

func TestService_ListPlaybooks(t *testing.T) {
	service := newService()

	playbooks, err := service.ListPlaybooks(context.Background(), "bills_coverage")
	require.NoError(t, err)
	assert.Len(t, playbooks, 1)
}

func TestService_ListPlaybooks_RejectsUnknownCategory(t *testing.T) {
	service := newService()

	_, err := service.ListPlaybooks(context.Background(), "housing")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

func TestService_ListSteps(t *testing.T) {
	service := newService()

	steps, err := service.ListSteps(context.Background(), knownPlaybookID)
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, 1, steps[0].StepOrder)
	assert.Equal(t, 2, steps[1].StepOrder)
}

func TestService_ListSteps_UnknownPlaybook(t *testing.T) {
	service := newService()

	_, err := service.ListSteps(context.Background(), "0190c2a4-67d1-7e9a-b7fb-000000000000")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
}

func TestService_ListSteps_InvalidID(t *testing.T) {
	service := newService()

	_, err := service.ListSteps(context.Background(), "not-a-uuid")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}
