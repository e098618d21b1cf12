package repository

import (
	"context"
	"time"

	"autoflow/internal/domain/catalog"
	"autoflow/internal/infra"
	"autoflow/internal/infra/db"
	"autoflow/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const optionalColumns = `id, code, name, description, price::text, created_at, updated_at`

type OptionalRepository struct {
	db db.DBTX
}

func NewOptionalRepository(db db.DBTX) *OptionalRepository {
	return &OptionalRepository{db: db}
}

func (r *OptionalRepository) Create(ctx context.Context, o *catalog.Optional) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO optionals (id, code, name, description, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		o.ID(), o.Code(), o.Name(), o.Description(), pgconv.MoneyParam(o.Price()), o.CreatedAt(), o.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create optional", err)
	}
	return nil
}

func (r *OptionalRepository) Update(ctx context.Context, o *catalog.Optional) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE optionals SET code = $2, name = $3, description = $4, price = $5, updated_at = $6
		WHERE id = $1`,
		o.ID(), o.Code(), o.Name(), o.Description(), pgconv.MoneyParam(o.Price()), o.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update optional", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("optional not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete removes the row. Configurations keep the dangling ID and pricing ignores it.
func (r *OptionalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM optionals WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete optional", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("optional not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OptionalRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Optional, error) {
	row := r.db.QueryRow(ctx, `SELECT `+optionalColumns+` FROM optionals WHERE id = $1`, id)
	o, err := scanOptional(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find optional", err)
	}
	return o, nil
}

func (r *OptionalRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*catalog.Optional, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.list(ctx, `SELECT `+optionalColumns+` FROM optionals WHERE id = ANY($1) ORDER BY code`, ids)
}

func (r *OptionalRepository) List(ctx context.Context) ([]*catalog.Optional, error) {
	return r.list(ctx, `SELECT `+optionalColumns+` FROM optionals ORDER BY code`)
}

func (r *OptionalRepository) list(ctx context.Context, sql string, args ...any) ([]*catalog.Optional, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list optionals", err)
	}
	defer rows.Close()

	var out []*catalog.Optional
	for rows.Next() {
		o, err := scanOptional(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan optional", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate optionals", err)
	}
	return out, nil
}

func scanOptional(row pgx.Row) (*catalog.Optional, error) {
	var (
		id                      uuid.UUID
		code, name, description string
		price                   string
		createdAt, updatedAt    time.Time
	)
	if err := row.Scan(&id, &code, &name, &description, &price, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	p, err := pgconv.MoneyFromText(price)
	if err != nil {
		return nil, err
	}
	return catalog.ReconstructOptional(id, code, name, description, p, createdAt, updatedAt), nil
}
