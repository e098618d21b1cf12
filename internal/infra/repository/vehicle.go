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

const vehicleColumns = `id, brand, model, year, plate, vin, base_price::text, mileage, fuel, gearbox, colour, status, listed, created_at, updated_at`

type VehicleRepository struct {
	db db.DBTX
}

func NewVehicleRepository(db db.DBTX) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(ctx context.Context, v *catalog.Vehicle) error {
	s := v.Spec()
	_, err := r.db.Exec(ctx, `
		INSERT INTO vehicles (id, brand, model, year, plate, vin, base_price, mileage, fuel, gearbox, colour, status, listed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		v.ID(), s.Brand, s.Model, s.Year, s.Plate, s.VIN, pgconv.MoneyParam(s.BasePrice), s.Mileage,
		s.Fuel, s.Gearbox, s.Colour, v.Status().String(), s.Listed, v.CreatedAt(), v.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create vehicle", err)
	}
	return nil
}

func (r *VehicleRepository) Update(ctx context.Context, v *catalog.Vehicle) error {
	s := v.Spec()
	tag, err := r.db.Exec(ctx, `
		UPDATE vehicles
		SET brand = $2, model = $3, year = $4, plate = $5, vin = $6, base_price = $7, mileage = $8,
		    fuel = $9, gearbox = $10, colour = $11, status = $12, listed = $13, updated_at = $14
		WHERE id = $1`,
		v.ID(), s.Brand, s.Model, s.Year, s.Plate, s.VIN, pgconv.MoneyParam(s.BasePrice), s.Mileage,
		s.Fuel, s.Gearbox, s.Colour, v.Status().String(), s.Listed, v.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update vehicle", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Vehicle, error) {
	row := r.db.QueryRow(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1`, id)
	v, err := scanVehicle(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find vehicle", err)
	}
	return v, nil
}

func (r *VehicleRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Vehicle, error) {
	row := r.db.QueryRow(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1 FOR UPDATE`, id)
	v, err := scanVehicle(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock vehicle", err)
	}
	return v, nil
}

func (r *VehicleRepository) List(ctx context.Context) ([]*catalog.Vehicle, error) {
	rows, err := r.db.Query(ctx, `SELECT `+vehicleColumns+` FROM vehicles ORDER BY brand, model, id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vehicles", err)
	}
	defer rows.Close()

	var out []*catalog.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan vehicle", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate vehicles", err)
	}
	return out, nil
}

func scanVehicle(row pgx.Row) (*catalog.Vehicle, error) {
	var (
		id                   uuid.UUID
		spec                 catalog.VehicleSpec
		price                string
		status               string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(
		&id, &spec.Brand, &spec.Model, &spec.Year, &spec.Plate, &spec.VIN, &price, &spec.Mileage,
		&spec.Fuel, &spec.Gearbox, &spec.Colour, &status, &spec.Listed, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	basePrice, err := pgconv.MoneyFromText(price)
	if err != nil {
		return nil, err
	}
	spec.BasePrice = basePrice
	return catalog.ReconstructVehicle(id, spec, catalog.VehicleStatus(status), createdAt, updatedAt), nil
}
