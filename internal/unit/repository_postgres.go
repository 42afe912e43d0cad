package unit

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Unit, error) {
	rows, err := r.db.Query(ctx, `
		SELECT unit_id, COALESCE(sing, ''), COALESCE(plur, '')
		FROM units
		ORDER BY sing
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []Unit
	for rows.Next() {
		var u Unit
		if err := rows.Scan(&u.UnitID, &u.Singular, &u.Plural); err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, rows.Err()
}
