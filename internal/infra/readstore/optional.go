package readstore

import (
	"context"

	"autoflow/internal/infra"
	"autoflow/internal/infra/db"
	"autoflow/internal/pkg/pgconv"
	"autoflow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const optionalViewColumns = `id, code, name, description, price::text, created_at, updated_at`

type OptionalReadStore struct {
	db db.DBTX
}

func NewOptionalReadStore(db db.DBTX) *OptionalReadStore {
	return &OptionalReadStore{db: db}
}

func (r *OptionalReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OptionalView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+optionalViewColumns+` FROM optionals WHERE id = $1`, id)
	view, err := scanOptionalView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find optional view", err)
	}
	return view, nil
}

func (r *OptionalReadStore) List(ctx context.Context) ([]*queries.OptionalView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+optionalViewColumns+` FROM optionals ORDER BY code`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list optionals", err)
	}
	defer rows.Close()

	result := make([]*queries.OptionalView, 0)
	for rows.Next() {
		view, err := scanOptionalView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan optional view", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate optional views", err)
	}
	return result, nil
}

func scanOptionalView(row pgx.Row) (*queries.OptionalView, error) {
	var (
		o     queries.OptionalView
		price string
	)
	if err := row.Scan(&o.ID, &o.Code, &o.Name, &o.Description, &price, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	m, err := pgconv.MoneyFromText(price)
	if err != nil {
		return nil, err
	}
	o.Price = m
	return &o, nil
}
