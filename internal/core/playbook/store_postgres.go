package playbook

import (
	"context"
	"fmt"

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

func (repository *PostgresRepository) ListPlaybooks(context context.Context, category string) ([]*Playbook, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC;
	`,
		schema.NavIssuePlaybook.PlaybookID,
		schema.NavIssuePlaybook.Category,
		schema.NavIssuePlaybook.IssueKey,
		schema.NavIssuePlaybook.UrgencyLevel,
		schema.NavIssuePlaybook.TitleEN,
		schema.NavIssuePlaybook.TitleES,
		schema.NavIssuePlaybook.SummaryEN,
		schema.NavIssuePlaybook.SummaryES,
		schema.NavIssuePlaybook.CreatedAt,
		schema.NavIssuePlaybook.Table,
		schema.NavIssuePlaybook.Category,
		schema.NavIssuePlaybook.UrgencyLevel,
	)

	rows, err := repository.db.Query(context, query, category)
	if err != nil {
		return nil, dberr.Wrap(err, "list_playbooks")
	}
	defer rows.Close()

	playbooks := make([]*Playbook, 0)
	for rows.Next() {
		p := &Playbook{}
		if err := rows.Scan(
			&p.PlaybookID, &p.Category, &p.IssueKey, &p.UrgencyLevel,
			&p.TitleEN, &p.TitleES, &p.SummaryEN, &p.SummaryES, &p.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_playbook")
		}
		playbooks = append(playbooks, p)
	}

	return playbooks, nil
}

func (repository *PostgresRepository) ListSteps(context context.Context, playbookID string) ([]*Step, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC;
	`,
		schema.NavIssueStep.StepID,
		schema.NavIssueStep.PlaybookID,
		schema.NavIssueStep.StepOrder,
		schema.NavIssueStep.TitleEN,
		schema.NavIssueStep.TitleES,
		schema.NavIssueStep.BodyEN,
		schema.NavIssueStep.BodyES,
		schema.NavIssueStep.ActionType,
		schema.NavIssueStep.ActionLabelEN,
		schema.NavIssueStep.ActionLabelES,
		schema.NavIssueStep.ActionURL,
		schema.NavIssueStep.CreatedAt,
		schema.NavIssueStep.Table,
		schema.NavIssueStep.PlaybookID,
		schema.NavIssueStep.StepOrder,
	)

	rows, err := repository.db.Query(context, query, playbookID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_steps")
	}
	defer rows.Close()

	steps := make([]*Step, 0)
	for rows.Next() {
		s := &Step{}
		if err := rows.Scan(
			&s.StepID, &s.PlaybookID, &s.StepOrder,
			&s.TitleEN, &s.TitleES, &s.BodyEN, &s.BodyES,
			&s.ActionType, &s.ActionLabelEN, &s.ActionLabelES, &s.ActionURL,
			&s.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_step")
		}
		steps = append(steps, s)
	}

	return steps, nil
}

func (repository *PostgresRepository) PlaybookExists(context context.Context, playbookID string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1);`,
		schema.NavIssuePlaybook.Table,
		schema.NavIssuePlaybook.PlaybookID,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, playbookID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "playbook_exists")
	}

	return exists, nil
}
