package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/rental-insights-api/infrastructure/database/postgres"
)

const (
	apartmentsTable = "apartments ap"
)

type ApartmentRepository interface {
	ListApartmentIDs(ctx context.Context) ([]string, error)
}

type apartmentRepository struct {
	conn postgres.Queryer
}

func NewApartmentRepository(conn postgres.Queryer) ApartmentRepository {
	return &apartmentRepository{
		conn: conn,
	}
}

func buildApartmentQuery() (string, []interface{}, error) {
	return squirrel.
		Select("ap.id").
		From(apartmentsTable).
		Where(squirrel.Eq{"ap.active": true}).
		OrderBy("ap.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *apartmentRepository) ListApartmentIDs(ctx context.Context) ([]string, error) {
	query, args, err := buildApartmentQuery()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de apartamentos")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar apartamentos")
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear apartamento")
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return ids, nil
}
