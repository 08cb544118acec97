package resource

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/txsn/navigator/internal/platform/database/schema"
	"github.com/txsn/navigator/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// resourceColumns is the canonical select list for directory rows, in the
// order expected by scanTargets. CreatedAt is deliberately excluded from
// read paths.
func resourceColumns(alias string) string {
	t := schema.NavResource
	cols := []string{
		t.ResourceID, t.Category, t.Title, t.Organization, t.DescriptionEN, t.DescriptionES,
		t.Phone, t.WebsiteURL, t.WebsiteTemplate, t.Languages, t.Eligibility, t.AccessNotes,
		t.Hours, t.Cost, t.Scope, t.CountyName, t.RegionName, t.IsLocator, t.RequiresZip,
		t.Priority, t.LastVerified, t.SourceURL,
	}
	for i := range cols {
		cols[i] = alias + "." + cols[i]
	}
	return strings.Join(cols, ", ")
}

// scanTargets returns scan destinations matching resourceColumns order.
func scanTargets(r *Resource) []any {
	return []any{
		&r.ResourceID, &r.Category, &r.Title, &r.Organization, &r.DescriptionEN, &r.DescriptionES,
		&r.Phone, &r.WebsiteURL, &r.WebsiteTemplate, &r.Languages, &r.Eligibility, &r.AccessNotes,
		&r.Hours, &r.Cost, &r.Scope, &r.CountyName, &r.RegionName, &r.IsLocator, &r.RequiresZip,
		&r.Priority, &r.LastVerified, &r.SourceURL,
	}
}

// MatchResources ranks the directory for a location and category.
//
// Rank semantics: 3 = the caller's county, 2 = the caller's region,
// 1 = statewide. Scoped rows only match their own tier; statewide rows
// always match, so an unknown location still yields results.
func (repository *PostgresRepository) MatchResources(context context.Context, category string, county, region *string) ([]*Match, error) {
	t := schema.NavResource
	query := fmt.Sprintf(`
		SELECT %s,
		       CASE
		           WHEN r.%s = 'county' THEN 3
		           WHEN r.%s = 'region' THEN 2
		           ELSE 1
		       END AS match_rank
		FROM %s r
		WHERE r.%s = $1
		  AND (
		      r.%s = 'state'
		      OR (r.%s = 'county' AND r.%s = $2::text)
		      OR (r.%s = 'region' AND r.%s = $3::text)
		  )
		ORDER BY match_rank DESC, r.%s DESC, r.%s ASC;
	`,
		resourceColumns("r"),
		t.Scope, t.Scope,
		t.Table,
		t.Category,
		t.Scope,
		t.Scope, t.CountyName,
		t.Scope, t.RegionName,
		t.Priority, t.Title,
	)

	rows, err := repository.db.Query(context, query, category, county, region)
	if err != nil {
		return nil, dberr.Wrap(err, "match_resources")
	}
	defer rows.Close()

	matches := make([]*Match, 0)
	for rows.Next() {
		m := &Match{}
		targets := append(scanTargets(&m.Resource), &m.MatchRank)
		if err := rows.Scan(targets...); err != nil {
			return nil, dberr.Wrap(err, "scan_match")
		}
		matches = append(matches, m)
	}

	return matches, nil
}

// MatchIssueResources ranks only the resources curated for a playbook,
// ordering stronger curation links ahead within each rank tier.
func (repository *PostgresRepository) MatchIssueResources(context context.Context, category string, county, region *string, playbookID string) ([]*Match, error) {
	t := schema.NavResource
	l := schema.NavIssueResourceLink
	query := fmt.Sprintf(`
		SELECT %s, l.%s,
		       CASE
		           WHEN r.%s = 'county' THEN 3
		           WHEN r.%s = 'region' THEN 2
		           ELSE 1
		       END AS match_rank
		FROM %s r
		JOIN %s l ON l.%s = r.%s AND l.%s = $4
		WHERE r.%s = $1
		  AND (
		      r.%s = 'state'
		      OR (r.%s = 'county' AND r.%s = $2::text)
		      OR (r.%s = 'region' AND r.%s = $3::text)
		  )
		ORDER BY match_rank DESC, l.%s DESC, r.%s DESC, r.%s ASC;
	`,
		resourceColumns("r"), l.LinkStrength,
		t.Scope, t.Scope,
		t.Table,
		l.Table, l.ResourceID, t.ResourceID, l.PlaybookID,
		t.Category,
		t.Scope,
		t.Scope, t.CountyName,
		t.Scope, t.RegionName,
		l.LinkStrength, t.Priority, t.Title,
	)

	rows, err := repository.db.Query(context, query, category, county, region, playbookID)
	if err != nil {
		return nil, dberr.Wrap(err, "match_issue_resources")
	}
	defer rows.Close()

	matches := make([]*Match, 0)
	for rows.Next() {
		m := &Match{}
		targets := append(scanTargets(&m.Resource), &m.LinkStrength, &m.MatchRank)
		if err := rows.Scan(targets...); err != nil {
			return nil, dberr.Wrap(err, "scan_issue_match")
		}
		matches = append(matches, m)
	}

	return matches, nil
}

// ListResources pages the raw directory alphabetically, optionally filtered
// by category (empty string = all categories).
func (repository *PostgresRepository) ListResources(context context.Context, category string, limit, offset int) ([]*Resource, int, error) {
	t := schema.NavResource

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM %s
		WHERE ($1::text = '' OR %s = $1);
	`, t.Table, t.Category)

	var total int
	if err := repository.db.QueryRow(context, countQuery, category).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_resources")
	}

	listQuery := fmt.Sprintf(`
		SELECT %s
		FROM %s r
		WHERE ($1::text = '' OR r.%s = $1)
		ORDER BY r.%s ASC
		LIMIT $2 OFFSET $3;
	`,
		resourceColumns("r"),
		t.Table,
		t.Category,
		t.Title,
	)

	rows, err := repository.db.Query(context, listQuery, category, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_resources")
	}
	defer rows.Close()

	resources := make([]*Resource, 0)
	for rows.Next() {
		r := &Resource{}
		if err := rows.Scan(scanTargets(r)...); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_resource")
		}
		resources = append(resources, r)
	}

	return resources, total, nil
}

// UpsertResource inserts or fully replaces a directory entry keyed by ID.
func (repository *PostgresRepository) UpsertResource(context context.Context, resource *Resource) error {
	t := schema.NavResource
	cols := []string{
		t.ResourceID, t.Category, t.Title, t.Organization, t.DescriptionEN, t.DescriptionES,
		t.Phone, t.WebsiteURL, t.WebsiteTemplate, t.Languages, t.Eligibility, t.AccessNotes,
		t.Hours, t.Cost, t.Scope, t.CountyName, t.RegionName, t.IsLocator, t.RequiresZip,
		t.Priority, t.LastVerified, t.SourceURL,
	}

	placeholders := make([]string, len(cols))
	assignments := make([]string, 0, len(cols)-1)
	for i, col := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		if col != t.ResourceID {
			assignments = append(assignments, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
		}
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES (%s)
		ON CONFLICT (%s) DO UPDATE SET %s;
	`,
		t.Table,
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
		t.ResourceID,
		strings.Join(assignments, ", "),
	)

	_, err := repository.db.Exec(context, query,
		resource.ResourceID, resource.Category, resource.Title, resource.Organization,
		resource.DescriptionEN, resource.DescriptionES, resource.Phone, resource.WebsiteURL,
		resource.WebsiteTemplate, resource.Languages, resource.Eligibility, resource.AccessNotes,
		resource.Hours, resource.Cost, resource.Scope, resource.CountyName, resource.RegionName,
		resource.IsLocator, resource.RequiresZip, resource.Priority, resource.LastVerified,
		resource.SourceURL,
	)
	return dberr.Wrap(err, "upsert_resource")
}
