package county

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

func (repository *PostgresRepository) ListCounties(context context.Context) ([]County, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		ORDER BY %s ASC;
	`,
		schema.NavCounty.CountyName,
		schema.NavCounty.RegionName,
		schema.NavCounty.Table,
		schema.NavCounty.CountyName,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_counties")
	}
	defer rows.Close()

	counties := make([]County, 0)
	for rows.Next() {
		var c County
		if err := rows.Scan(&c.CountyName, &c.RegionName); err != nil {
			return nil, dberr.Wrap(err, "scan_county")
		}
		counties = append(counties, c)
	}

	return counties, nil
}
