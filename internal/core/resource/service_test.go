package resource_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/txsn/navigator/internal/core/county"
	"github.com/txsn/navigator/internal/core/resource"
	"github.com/txsn/navigator/internal/platform/apperr"
	"github.com/txsn/navigator/internal/platform/constants"
	"github.com/txsn/navigator/internal/platform/i18n"
)

const knownPlaybookID = "0190c2a4-67d1-7e9a-b7fb-1f2e3d4c5b6a"

type fakeRepo struct {
	general    []*resource.Match
	generalErr error

	issue    []*resource.Match
	issueErr error

	generalCalls int
	issueCalls   int

	upserted []*resource.Resource
}

func (f *fakeRepo) MatchResources(_ context.Context, _ string, _, _ *string) ([]*resource.Match, error) {
	f.generalCalls++
	return f.general, f.generalErr
}

func (f *fakeRepo) MatchIssueResources(_ context.Context, _ string, _, _ *string, _ string) ([]*resource.Match, error) {
	f.issueCalls++
	return f.issue, f.issueErr
}

func (f *fakeRepo) ListResources(_ context.Context, _ string, _, _ int) ([]*resource.Resource, int, error) {
	return nil, 0, nil
}

func (f *fakeRepo) UpsertResource(_ context.Context, r *resource.Resource) error {
	f.upserted = append(f.upserted, r)
	return nil
}

type fakeResolver struct {
	location county.Location
}

func (f *fakeResolver) ResolveLocation(_ context.Context, _ county.Mode, _, _ string) (county.Location, error) {
	return f.location, nil
}

func newService(repo *fakeRepo) *resource.Service {
	resolver := &fakeResolver{location: county.Location{County: "Harris", Region: "Gulf Coast"}}
	return resource.NewService(repo, resolver, slog.Default())
}

func validRequest() resource.MatchRequest {
	return resource.MatchRequest{
		Category: constants.CategoryTransport,
		County:   "Harris",
		Lang:     i18n.LangEN,
	}
}

func TestService_Match_GeneralDirectory(t *testing.T) {
	repo := &fakeRepo{general: matchFixture()}
	service := newService(repo)

	result, err := service.Match(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, resource.SourceGeneral, result.Source)
	assert.Len(t, result.Matches, 3)
	assert.Zero(t, repo.issueCalls)
	assert.Nil(t, result.Notice)
	assert.Equal(t, "Harris", result.Location.County)
}

func TestService_Match_PrefersIssueRanking(t *testing.T) {
	repo := &fakeRepo{
		general: matchFixture(),
		issue:   matchFixture()[:1],
	}
	service := newService(repo)

	request := validRequest()
	request.PlaybookID = knownPlaybookID

	result, err := service.Match(context.Background(), request)
	require.NoError(t, err)

	assert.Equal(t, resource.SourceIssue, result.Source)
	assert.Len(t, result.Matches, 1)
	assert.Zero(t, repo.generalCalls)
}

func TestService_Match_EmptyIssueFallsBack(t *testing.T) {
	repo := &fakeRepo{general: matchFixture()}
	service := newService(repo)

	request := validRequest()
	request.PlaybookID = knownPlaybookID

	result, err := service.Match(context.Background(), request)
	require.NoError(t, err)

	assert.Equal(t, resource.SourceGeneral, result.Source)
	assert.Len(t, result.Matches, 3)
	assert.Equal(t, 1, repo.issueCalls)
}

func TestService_Match_IssueErrorFallsBack(t *testing.T) {
	repo := &fakeRepo{
		general:  matchFixture(),
		issueErr: errors.New("link table gone"),
	}
	service := newService(repo)

	request := validRequest()
	request.PlaybookID = knownPlaybookID

	result, err := service.Match(context.Background(), request)
	require.NoError(t, err)

	assert.Equal(t, resource.SourceGeneral, result.Source)
	assert.Len(t, result.Matches, 3)
}

func TestService_Match_GeneralErrorIsFatal(t *testing.T) {
	repo := &fakeRepo{generalErr: errors.New("db down")}
	service := newService(repo)

	_, err := service.Match(context.Background(), validRequest())
	assert.Error(t, err)
}

func TestService_Match_EmptyResultCarriesNotice(t *testing.T) {
	service := newService(&fakeRepo{})

	request := validRequest()
	request.Lang = i18n.LangES

	result, err := service.Match(context.Background(), request)
	require.NoError(t, err)

	require.NotNil(t, result.Notice)
	assert.Contains(t, *result.Notice, "No encontramos")
}

func TestService_Match_AppliesFilter(t *testing.T) {
	service := newService(&fakeRepo{general: matchFixture()})

	request := validRequest()
	request.Rank = 3

	result, err := service.Match(context.Background(), request)
	require.NoError(t, err)

	require.Len(t, result.Matches, 1)
	assert.Equal(t, "a", result.Matches[0].ResourceID)
}

func TestService_Match_Validation(t *testing.T) {
	service := newService(&fakeRepo{})

	tests := []struct {
		name   string
		mutate func(*resource.MatchRequest)
	}{
		{"missing category", func(r *resource.MatchRequest) { r.Category = "" }},
		{"unknown category", func(r *resource.MatchRequest) { r.Category = "housing" }},
		{"no county or region", func(r *resource.MatchRequest) { r.County = "" }},
		{"rank out of range", func(r *resource.MatchRequest) { r.Rank = 4 }},
		{"bad playbook id", func(r *resource.MatchRequest) { r.PlaybookID = "not-a-uuid" }},
		{"bad zip", func(r *resource.MatchRequest) { r.Zip = "7703" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := validRequest()
			tt.mutate(&request)

			_, err := service.Match(context.Background(), request)
			require.Error(t, err)

			var appError *apperr.AppError
			require.ErrorAs(t, err, &appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
		})
	}
}

func TestService_Match_RegionOnlyIsValid(t *testing.T) {
	service := resource.NewService(
		&fakeRepo{general: matchFixture()},
		&fakeResolver{location: county.Location{Region: "Gulf Coast"}},
		slog.Default(),
	)

	request := validRequest()
	request.County = ""
	request.Region = "Gulf Coast"
	request.Mode = "other"

	result, err := service.Match(context.Background(), request)
	require.NoError(t, err)
	assert.Len(t, result.Matches, 3)
}

func TestService_ImportResources(t *testing.T) {
	repo := &fakeRepo{}
	service := newService(repo)

	valid := &resource.Resource{
		ResourceID: "0190c2a4-67d1-7e9a-b7fb-000000000001",
		Category:   constants.CategoryMeds,
		Title:      "Medication Fund",
		Scope:      resource.ScopeState,
	}

	count, err := service.ImportResources(context.Background(), []*resource.Resource{valid})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Len(t, repo.upserted, 1)

	// A bad row stops the batch and reports how many made it.
	bad := &resource.Resource{ResourceID: "nope", Category: "housing", Title: "", Scope: "galaxy"}
	count, err = service.ImportResources(context.Background(), []*resource.Resource{valid, bad})
	require.Error(t, err)
	assert.Equal(t, 1, count)
}
