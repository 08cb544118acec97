package resource

import "context"

// Repository defines the data access contract.
//
// County and region are nil when unknown; the ranking queries treat a nil
// value as "no hit possible at that tier" and still return statewide rows.
type Repository interface {
	// MatchResources is the general location/category ranking query.
	MatchResources(context context.Context, category string, county, region *string) ([]*Match, error)

	// MatchIssueResources is the playbook-curated ranking query. Only
	// resources linked to the playbook are returned.
	MatchIssueResources(context context.Context, category string, county, region *string, playbookID string) ([]*Match, error)

	// ListResources pages through the raw directory for curators.
	ListResources(context context.Context, category string, limit, offset int) ([]*Resource, int, error)

	// UpsertResource inserts or replaces one directory entry by ID.
	UpsertResource(context context.Context, resource *Resource) error
}
