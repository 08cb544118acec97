package resource

import (
	"context"
	"log/slog"
	"strings"

	"github.com/txsn/navigator/internal/core/county"
	"github.com/txsn/navigator/internal/platform/constants"
	"github.com/txsn/navigator/internal/platform/i18n"
	"github.com/txsn/navigator/internal/platform/validate"
	"github.com/txsn/navigator/pkg/pointer"
)

// Match sources, reported back to the client so it can tell curated results
// from the general directory fallback.
const (
	SourceIssue   = "issue"
	SourceGeneral = "general"
)

// LocationResolver derives the effective county/region from user input.
// Satisfied by [county.Service].
type LocationResolver interface {
	ResolveLocation(context context.Context, mode county.Mode, countyInput, regionInput string) (county.Location, error)
}

type Service struct {
	repo      Repository
	locations LocationResolver
	logger    *slog.Logger
}

func NewService(repo Repository, locations LocationResolver, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		locations: locations,
		logger:    logger,
	}
}

// MatchRequest carries the full search input from the wizard.
type MatchRequest struct {
	Category string
	County   string
	Region   string
	Mode     string

	// PlaybookID, when set, prefers the curated resource list for that
	// playbook over the general directory.
	PlaybookID string

	// Rank filters to one proximity tier client-side (0 = all tiers).
	Rank  int
	Query string

	Zip  string
	Lang i18n.Lang
}

// MatchResult is the resolved, ranked, filtered, and annotated search outcome.
type MatchResult struct {
	Location county.Location `json:"location"`
	Source   string          `json:"source"`
	Matches  []*Annotated    `json:"matches"`

	// Notice carries a localized message when the match list came back empty.
	Notice *string `json:"notice,omitempty"`
}

// Match runs the full pipeline: validate, resolve the location, rank
// (curated first when a playbook is given, with a silent fallback to the
// general directory), filter, and annotate.
func (service *Service) Match(context context.Context, request MatchRequest) (*MatchResult, error) {
	v := &validate.Validator{}
	v.Required("category", request.Category).
		OneOf("category", request.Category,
			constants.CategoryBillsCoverage, constants.CategoryMeds, constants.CategoryTransport).
		Custom("county",
			strings.TrimSpace(request.County) == "" && strings.TrimSpace(request.Region) == "",
			"Either county or region is required").
		Range("rank", request.Rank, 0, constants.RankCounty).
		Zip("zip", strings.TrimSpace(request.Zip))
	if request.PlaybookID != "" {
		v.UUID("playbook_id", request.PlaybookID)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	location, err := service.locations.ResolveLocation(context,
		county.ParseMode(request.Mode), request.County, request.Region)
	if err != nil {
		return nil, err
	}
	location.Zip = strings.TrimSpace(request.Zip)

	matches, source, err := service.rank(context, request, location)
	if err != nil {
		return nil, err
	}

	matches = Apply(matches, Filter{Rank: request.Rank, Query: request.Query})

	result := &MatchResult{
		Location: location,
		Source:   source,
		Matches:  make([]*Annotated, 0, len(matches)),
	}
	for _, m := range matches {
		result.Matches = append(result.Matches, Annotate(m, request.Lang, location))
	}

	if len(result.Matches) == 0 {
		notice := i18n.T(request.Lang, i18n.KeyNoticeNoResults)
		result.Notice = &notice
	}

	return result, nil
}

// rank picks the ranking query. A playbook search that errors or comes back
// empty falls through to the general directory so the caller never sees an
// empty screen because of a curation gap.
func (service *Service) rank(context context.Context, request MatchRequest, location county.Location) ([]*Match, string, error) {
	countyParam := pointer.NilIfEmpty(location.County)
	regionParam := pointer.NilIfEmpty(location.Region)

	if request.PlaybookID != "" {
		matches, err := service.repo.MatchIssueResources(context,
			request.Category, countyParam, regionParam, request.PlaybookID)
		if err != nil {
			service.logger.Warn("issue_match_failed",
				slog.String("playbook_id", request.PlaybookID),
				slog.Any("error", err))
		} else if len(matches) > 0 {
			return matches, SourceIssue, nil
		}
	}

	matches, err := service.repo.MatchResources(context, request.Category, countyParam, regionParam)
	if err != nil {
		return nil, "", err
	}
	return matches, SourceGeneral, nil
}

// ListResources pages the raw directory for browse/curation views. An empty
// category means all categories.
func (service *Service) ListResources(context context.Context, category string, limit, offset int) ([]*Resource, int, error) {
	if category != "" {
		v := &validate.Validator{}
		if err := v.OneOf("category", category,
			constants.CategoryBillsCoverage, constants.CategoryMeds, constants.CategoryTransport).
			Err(); err != nil {
			return nil, 0, err
		}
	}

	return service.repo.ListResources(context, category, limit, offset)
}

// ImportResources upserts a batch of directory entries, returning the number
// stored. The batch stops at the first failure.
func (service *Service) ImportResources(context context.Context, resources []*Resource) (int, error) {
	for i, r := range resources {
		v := &validate.Validator{}
		if err := v.
			UUID("resource_id", r.ResourceID).
			Required("title", r.Title).
			OneOf("category", r.Category,
				constants.CategoryBillsCoverage, constants.CategoryMeds, constants.CategoryTransport).
			OneOf("scope", r.Scope, ScopeCounty, ScopeRegion, ScopeState).
			Err(); err != nil {
			return i, err
		}

		if err := service.repo.UpsertResource(context, r); err != nil {
			return i, err
		}
	}

	return len(resources), nil
}
