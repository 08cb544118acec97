package feedback

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

// CreateReport inserts one problem report. A dangling resource_id surfaces
// as an unprocessable error via the foreign key.
func (repository *PostgresRepository) CreateReport(context context.Context, report *Report) error {
	t := schema.NavResourceFeedback
	cols := []string{
		t.FeedbackID, t.ResourceID, t.CountyName, t.RegionName,
		t.Zip, t.IssueType, t.Message, t.Language,
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s;
	`,
		t.Table,
		strings.Join(cols, ", "),
		t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		report.FeedbackID, report.ResourceID, report.CountyName, report.RegionName,
		report.Zip, report.IssueType, report.Message, report.Language,
	).Scan(&report.CreatedAt)
	return dberr.Wrap(err, "create_feedback")
}
