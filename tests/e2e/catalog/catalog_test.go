//go:build e2e

package catalog_test

import (
	"net/http"
	"testing"

	"autoflow/internal/domain/actor"
	"autoflow/internal/domain/catalog"
	reqdto "autoflow/internal/handler/dto/request"
	resdto "autoflow/internal/handler/dto/response"
	"autoflow/tests/common/authtest"
	"autoflow/tests/common/builder"
	"autoflow/tests/common/dbtest"
	"autoflow/tests/common/httptest"
	"autoflow/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	vehiclesURL  = "/api/vehicles"
	optionalsURL = "/api/optionals"
	showroomURL  = "/api/showroom/vehicles"
	previewURL   = "/api/pricing/preview"
)

type CatalogSuite struct {
	e2e.SharedSuite
	staff authtest.Caller
}

func (s *CatalogSuite) SetupTest() {
	s.SharedSuite.SetupTest()
	s.staff = s.JWT.NewCaller(s.T(), actor.RoleSalesStaff)
}

func TestCatalogSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CatalogSuite))
}

// =============================================================================
// TestVehicles - catalog administration against the real constraints
// =============================================================================

func (s *CatalogSuite) TestVehicles() {
	s.Run("Normal case: staff register a vehicle", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, vehiclesURL, builder.NewVehicleBuilder().BuildRequestDTO(), s.staff.Token)
		var created resdto.CreatedResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, vehiclesURL+"/"+created.ID, w.Header().Get("Location"))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, vehiclesURL+"/"+created.ID, nil, s.staff.Token)
		var got resdto.VehicleResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, "AVAILABLE", got.Status)
		require.Equal(t, "20000.00", got.BasePrice)
	})

	s.Run("Error case: plate and VIN are unique", func() {
		t := s.T()
		dbtest.SeedVehicle(t, s.DB, builder.NewVehicleBuilder())

		samePlate := builder.NewVehicleBuilder().WithVIN("ZFA31200000999999").BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, vehiclesURL, samePlate, s.staff.Token)
		httptest.AssertErrorCode(t, w, http.StatusConflict, "CONFLICT", "plate or VIN already registered")

		sameVIN := builder.NewVehicleBuilder().WithPlate("ZZ999ZZ").BuildRequestDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, vehiclesURL, sameVIN, s.staff.Token)
		httptest.AssertErrorCode(t, w, http.StatusConflict, "CONFLICT", "plate or VIN already registered")

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "vehicles", ""))
	})

	s.Run("Error case: clients may not manage the catalog", func() {
		t := s.T()
		client := s.JWT.NewCaller(t, actor.RoleClient)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, vehiclesURL, builder.NewVehicleBuilder().BuildRequestDTO(), client.Token)
		httptest.AssertErrorCode(t, w, http.StatusForbidden, "FORBIDDEN", "role may not perform this operation")
	})

	s.Run("Error case: unauthenticated", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, vehiclesURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
	})
}

// =============================================================================
// TestShowroom - the public listing
// =============================================================================

func (s *CatalogSuite) TestShowroom() {
	s.Run("Normal case: only listed available vehicles are shown", func() {
		t := s.T()
		shown := dbtest.SeedVehicle(t, s.DB, builder.NewVehicleBuilder())
		hidden := dbtest.SeedVehicle(t, s.DB, builder.NewVehicleBuilder().
			WithPlate("CD456EF").WithVIN("ZFA31200000000002").WithStatus(catalog.StatusHidden))
		dbtest.SeedVehicle(t, s.DB, builder.NewVehicleBuilder().
			WithPlate("GH789IJ").WithVIN("ZFA31200000000003").Unlisted())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, showroomURL, nil, "")
		var got []resdto.ShowroomVehicleResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Len(t, got, 1)
		require.Equal(t, shown.ID(), got[0].ID)
		require.NotContains(t, w.Body.String(), "AB123CD", "plates stay private")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, showroomURL+"/"+hidden.ID().String(), nil, "")
		httptest.AssertErrorCode(t, w, http.StatusNotFound, "NOT_FOUND", "vehicle not found")
	})

	s.Run("Error case: inverted price range", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, showroomURL+"?min_price=30000&max_price=10000", nil, "")
		httptest.AssertErrorCode(t, w, http.StatusUnprocessableEntity, "VALIDATION", "minimum price exceeds maximum price")
	})
}

// =============================================================================
// TestOptionals - accessories and pricing preview
// =============================================================================

func (s *CatalogSuite) TestOptionals() {
	t := s.T()
	vehicle := dbtest.SeedVehicle(t, s.DB, builder.NewVehicleBuilder())

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, optionalsURL, builder.NewOptionalBuilder().BuildRequestDTO(), s.staff.Token)
	var created resdto.CreatedResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	navID := uuid.MustParse(created.ID)

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, optionalsURL, builder.NewOptionalBuilder().BuildRequestDTO(), s.staff.Token)
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	client := s.JWT.NewCaller(t, actor.RoleClient)
	w = httptest.PerformRequest(t, s.Router, http.MethodPost, previewURL,
		reqdto.PricingPreviewRequest{VehicleID: vehicle.ID(), OptionalIDs: []uuid.UUID{navID, uuid.New()}}, client.Token)
	var pricing resdto.PricingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &pricing)
	require.Equal(t, "21500.00", pricing.Total)
	require.Equal(t, []uuid.UUID{navID}, pricing.Applied)

	w = httptest.PerformRequest(t, s.Router, http.MethodDelete, optionalsURL+"/"+navID.String(), nil, s.staff.Token)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	w = httptest.PerformRequest(t, s.Router, http.MethodGet, optionalsURL+"/"+navID.String(), nil, s.staff.Token)
	httptest.AssertErrorCode(t, w, http.StatusNotFound, "NOT_FOUND", "optional accessory not found")
}
