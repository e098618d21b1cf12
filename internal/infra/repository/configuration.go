package repository

import (
	"context"
	"time"

	"autoflow/internal/domain/configuration"
	"autoflow/internal/infra"
	"autoflow/internal/infra/db"
	"autoflow/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const configurationColumns = `id, client_id, vehicle_id, optional_ids, base_price::text, total_price::text, note, created_at, updated_at, deleted_at`

type ConfigurationRepository struct {
	db db.DBTX
}

func NewConfigurationRepository(db db.DBTX) *ConfigurationRepository {
	return &ConfigurationRepository{db: db}
}

func (r *ConfigurationRepository) Create(ctx context.Context, c *configuration.Configuration) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO configurations (id, client_id, vehicle_id, optional_ids, base_price, total_price, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID(), c.ClientID(), c.VehicleID(), c.OptionalIDs(), pgconv.MoneyParam(c.BasePrice()),
		pgconv.MoneyParam(c.TotalPrice()), c.Note(), c.CreatedAt(), c.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create configuration", err)
	}
	return nil
}

func (r *ConfigurationRepository) Update(ctx context.Context, c *configuration.Configuration) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE configurations
		SET vehicle_id = $2, optional_ids = $3, base_price = $4, total_price = $5, note = $6,
		    updated_at = $7, deleted_at = $8
		WHERE id = $1`,
		c.ID(), c.VehicleID(), c.OptionalIDs(), pgconv.MoneyParam(c.BasePrice()),
		pgconv.MoneyParam(c.TotalPrice()), c.Note(), c.UpdatedAt(), c.DeletedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update configuration", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("configuration not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ConfigurationRepository) FindByID(ctx context.Context, id uuid.UUID) (*configuration.Configuration, error) {
	row := r.db.QueryRow(ctx, `SELECT `+configurationColumns+` FROM configurations WHERE id = $1`, id)
	c, err := scanConfiguration(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find configuration", err)
	}
	return c, nil
}

func (r *ConfigurationRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*configuration.Configuration, error) {
	row := r.db.QueryRow(ctx, `SELECT `+configurationColumns+` FROM configurations WHERE id = $1 FOR UPDATE`, id)
	c, err := scanConfiguration(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock configuration", err)
	}
	return c, nil
}

func scanConfiguration(row pgx.Row) (*configuration.Configuration, error) {
	var (
		id, clientID, vehicleID uuid.UUID
		optionalIDs             []uuid.UUID
		base, total             string
		note                    string
		createdAt, updatedAt    time.Time
		deletedAt               *time.Time
	)
	if err := row.Scan(&id, &clientID, &vehicleID, &optionalIDs, &base, &total, &note, &createdAt, &updatedAt, &deletedAt); err != nil {
		return nil, err
	}
	basePrice, err := pgconv.MoneyFromText(base)
	if err != nil {
		return nil, err
	}
	totalPrice, err := pgconv.MoneyFromText(total)
	if err != nil {
		return nil, err
	}
	return configuration.ReconstructConfiguration(
		id, clientID, vehicleID, optionalIDs, basePrice, totalPrice, note, createdAt, updatedAt, deletedAt,
	), nil
}
