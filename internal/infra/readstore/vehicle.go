package readstore

import (
	"context"
	"strings"

	"autoflow/internal/domain/catalog"
	"autoflow/internal/domain/money"
	"autoflow/internal/infra"
	"autoflow/internal/infra/db"
	"autoflow/internal/pkg/pgconv"
	"autoflow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const vehicleViewColumns = `id, brand, model, year, plate, vin, base_price::text, mileage, fuel, gearbox, colour, status, listed, created_at, updated_at`

type VehicleReadStore struct {
	db db.DBTX
}

func NewVehicleReadStore(db db.DBTX) *VehicleReadStore {
	return &VehicleReadStore{db: db}
}

func (r *VehicleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VehicleView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+vehicleViewColumns+` FROM vehicles WHERE id = $1`, id)
	view, err := scanVehicleView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find vehicle view", err)
	}
	return view, nil
}

func (r *VehicleReadStore) List(ctx context.Context) ([]*queries.VehicleView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+vehicleViewColumns+` FROM vehicles ORDER BY brand, model, created_at DESC, id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vehicles", err)
	}
	return collectVehicleViews(rows)
}

func (r *VehicleReadStore) SearchShowroom(ctx context.Context, filters queries.ShowroomFilters) ([]*queries.VehicleView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+vehicleViewColumns+` FROM vehicles
		WHERE status = $1 AND listed
		  AND ($2 = '' OR brand ILIKE '%' || $2 || '%')
		  AND ($3 = '' OR model ILIKE '%' || $3 || '%')
		  AND ($4::numeric IS NULL OR base_price >= $4::numeric)
		  AND ($5::numeric IS NULL OR base_price <= $5::numeric)
		ORDER BY base_price, brand, model, id`,
		catalog.StatusAvailable.String(),
		escapeLike(strings.TrimSpace(filters.Brand)),
		escapeLike(strings.TrimSpace(filters.Model)),
		moneyParamPtr(filters.MinPrice),
		moneyParamPtr(filters.MaxPrice),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search showroom", err)
	}
	return collectVehicleViews(rows)
}

func (r *VehicleReadStore) FindShowroomByID(ctx context.Context, id uuid.UUID) (*queries.VehicleView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+vehicleViewColumns+` FROM vehicles WHERE id = $1 AND status = $2 AND listed`,
		id, catalog.StatusAvailable.String())
	view, err := scanVehicleView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find showroom vehicle", err)
	}
	return view, nil
}

func collectVehicleViews(rows pgx.Rows) ([]*queries.VehicleView, error) {
	defer rows.Close()
	result := make([]*queries.VehicleView, 0)
	for rows.Next() {
		view, err := scanVehicleView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan vehicle view", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate vehicle views", err)
	}
	return result, nil
}

func scanVehicleView(row pgx.Row) (*queries.VehicleView, error) {
	var (
		v         queries.VehicleView
		basePrice string
	)
	if err := row.Scan(
		&v.ID, &v.Brand, &v.Model, &v.Year, &v.Plate, &v.VIN, &basePrice, &v.Mileage,
		&v.Fuel, &v.Gearbox, &v.Colour, &v.Status, &v.Listed, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	price, err := pgconv.MoneyFromText(basePrice)
	if err != nil {
		return nil, err
	}
	v.BasePrice = price
	return &v, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func moneyParamPtr(m *money.Money) *string {
	if m == nil {
		return nil
	}
	s := pgconv.MoneyParam(*m)
	return &s
}
