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

const configurationViewSelect = `
	SELECT c.id, c.client_id, c.vehicle_id, v.brand, v.model, c.optional_ids, c.base_price::text, c.total_price::text,
	       c.note, EXISTS (SELECT 1 FROM proposals p WHERE p.configuration_id = c.id), c.created_at, c.updated_at
	FROM configurations c
	JOIN vehicles v ON v.id = c.vehicle_id`

type ConfigurationReadStore struct {
	db db.DBTX
}

func NewConfigurationReadStore(db db.DBTX) *ConfigurationReadStore {
	return &ConfigurationReadStore{db: db}
}

func (r *ConfigurationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ConfigurationView, error) {
	row := r.db.QueryRow(ctx, configurationViewSelect+` WHERE c.id = $1 AND c.deleted_at IS NULL`, id)
	view, err := scanConfigurationView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find configuration view", err)
	}
	return view, nil
}

func (r *ConfigurationReadStore) List(ctx context.Context, filters queries.ConfigurationFilters) ([]*queries.ConfigurationView, error) {
	rows, err := r.db.Query(ctx, configurationViewSelect+`
		WHERE c.deleted_at IS NULL AND ($1::uuid IS NULL OR c.client_id = $1)
		ORDER BY c.created_at DESC, c.id DESC`,
		filters.ClientID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list configurations", err)
	}
	defer rows.Close()

	result := make([]*queries.ConfigurationView, 0)
	for rows.Next() {
		view, err := scanConfigurationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan configuration view", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate configuration views", err)
	}
	return result, nil
}

func scanConfigurationView(row pgx.Row) (*queries.ConfigurationView, error) {
	var (
		c                queries.ConfigurationView
		basePrice, total string
	)
	if err := row.Scan(
		&c.ID, &c.ClientID, &c.VehicleID, &c.VehicleBrand, &c.VehicleModel, &c.OptionalIDs,
		&basePrice, &total, &c.Note, &c.Locked, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	var err error
	if c.BasePrice, err = pgconv.MoneyFromText(basePrice); err != nil {
		return nil, err
	}
	if c.TotalPrice, err = pgconv.MoneyFromText(total); err != nil {
		return nil, err
	}
	if c.OptionalIDs == nil {
		c.OptionalIDs = []uuid.UUID{}
	}
	return &c, nil
}
