//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"autoflow/internal/domain/actor"
	"autoflow/internal/domain/catalog"
	"autoflow/internal/domain/money"
	"autoflow/internal/handler/api"
	reqdto "autoflow/internal/handler/dto/request"
	resdto "autoflow/internal/handler/dto/response"
	"autoflow/internal/usecase/commands"
	"autoflow/internal/usecase/queries"
	"autoflow/tests/common/builder"
	"autoflow/tests/common/httptest"
	"autoflow/tests/common/testutil"
	commandsmock "autoflow/tests/mock/commands"
	queriesmock "autoflow/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCatalogCommands
	mockQueries  *queriesmock.MockCatalogQueries
	handler      *api.CatalogHandler
	client       actor.Context
	staff        actor.Context
	admin        actor.Context
}

func (s *CatalogHandlerTestSuite) SetupSuite() {
	s.Require().NoError(reqdto.RegisterValidations())
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockCommands, s.mockQueries)

	s.client = builder.ClientActor(uuid.New())
	s.staff = builder.StaffActor()
	s.admin = builder.AdminActor()

	g := s.router.Group("/api", fakeAuth(s.client, s.staff, s.admin))
	g.GET("/vehicles", s.handler.ListVehicles)
	g.POST("/vehicles", s.handler.CreateVehicle)
	g.GET("/vehicles/:id", s.handler.GetVehicle)
	g.PUT("/vehicles/:id", s.handler.UpdateVehicle)
	g.PATCH("/vehicles/:id/status", s.handler.ChangeVehicleStatus)
	g.POST("/vehicles/:id/duplicate", s.handler.DuplicateVehicle)
	g.GET("/optionals", s.handler.ListOptionals)
	g.POST("/optionals", s.handler.CreateOptional)
	g.GET("/optionals/:id", s.handler.GetOptional)
	g.PUT("/optionals/:id", s.handler.UpdateOptional)
	g.DELETE("/optionals/:id", s.handler.DeleteOptional)
	g.POST("/pricing/preview", s.handler.PreviewPricing)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

type testCaseCatalog struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// Vehicles
// ================================================================================

func (s *CatalogHandlerTestSuite) TestCreateVehicle() {
	url := "/api/vehicles"
	reqBody := builder.NewVehicleBuilder().BuildRequestDTO()
	newID := uuid.New()

	plate := []testCaseCatalog{
		{name: "plate OK (2 chars)", mutate: testutil.Field("plate", "AB"), expectCode: http.StatusCreated},
		{name: "plate OK (12 chars with separators)", mutate: testutil.Field("plate", "AB-123-CD 99"), expectCode: http.StatusCreated},
		{name: "plate invalid (1 char)", mutate: testutil.Field("plate", "A"), expectCode: http.StatusBadRequest},
		{name: "plate invalid (13 chars)", mutate: testutil.Field("plate", "AB-123-CD 999"), expectCode: http.StatusBadRequest},
		{name: "plate invalid (leading separator)", mutate: testutil.Field("plate", "-AB123"), expectCode: http.StatusBadRequest},
		{name: "plate invalid (symbol)", mutate: testutil.Field("plate", "AB_123"), expectCode: http.StatusBadRequest},
	}

	vin := []testCaseCatalog{
		{name: "vin invalid (16 chars)", mutate: testutil.Field("vin", "ZFA3120000012345"), expectCode: http.StatusBadRequest},
		{name: "vin invalid (18 chars)", mutate: testutil.Field("vin", "ZFA312000001234567"), expectCode: http.StatusBadRequest},
		{name: "vin invalid (symbol)", mutate: testutil.Field("vin", "ZFA31200000-23456"), expectCode: http.StatusBadRequest},
	}

	price := []testCaseCatalog{
		{name: "price OK (zero)", mutate: testutil.Field("base_price", "0"), expectCode: http.StatusCreated},
		{name: "price OK (cents)", mutate: testutil.Field("base_price", "15999.99"), expectCode: http.StatusCreated},
		{name: "price invalid (negative)", mutate: testutil.Field("base_price", "-100"), expectCode: http.StatusBadRequest},
		{name: "price invalid (text)", mutate: testutil.Field("base_price", "twenty"), expectCode: http.StatusBadRequest},
	}

	other := []testCaseCatalog{
		{name: "year OK (1900)", mutate: testutil.Field("year", 1900), expectCode: http.StatusCreated},
		{name: "year invalid (1899)", mutate: testutil.Field("year", 1899), expectCode: http.StatusBadRequest},
		{name: "mileage invalid (negative)", mutate: testutil.Field("mileage", -1), expectCode: http.StatusBadRequest},
		{name: "brand invalid (81 chars)", mutate: testutil.Field("brand", strings.Repeat("b", 81)), expectCode: http.StatusBadRequest},
		{name: "missing field: brand (required)", mutate: testutil.Field("brand", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: plate (required)", mutate: testutil.Field("plate", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: base_price (required)", mutate: testutil.Field("base_price", nil), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created with Location", func() {
		s.mockCommands.EXPECT().CreateVehicle(gomock.Any(), s.staff, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ actor.Context, spec catalog.VehicleSpec) (uuid.UUID, error) {
				s.Equal("AB123CD", spec.Plate)
				s.True(spec.BasePrice.Equal(money.FromInt(20000)))
				s.True(spec.Listed)
				return newID, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, staffToken)

		var body resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(newID.String(), body.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/vehicles/" + newID.String()})
	})

	s.Run("success: listed defaults to true", func() {
		s.mockCommands.EXPECT().CreateVehicle(gomock.Any(), s.staff, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ actor.Context, spec catalog.VehicleSpec) (uuid.UUID, error) {
				s.True(spec.Listed)
				return newID, nil
			}).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("listed", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, staffToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, group := range [][]testCaseCatalog{plate, vin, price, other} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().CreateVehicle(gomock.Any(), gomock.Any(), gomock.Any()).
							Return(newID, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, staffToken)
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
					}
				})
			}
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name   string
			token  string
			err    error
			status int
		}{
			{name: "client may not manage the catalog", token: clientToken, err: actor.ErrOperationDenied, status: http.StatusForbidden},
			{name: "plate already registered", token: staffToken, err: catalog.ErrDuplicatePlateOrVIN, status: http.StatusConflict},
			{name: "domain rejects the data", token: staffToken, err: catalog.ErrInvalidVehicle, status: http.StatusUnprocessableEntity},
			{name: "database failure", token: staffToken, err: errors.New("db down"), status: http.StatusInternalServerError},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateVehicle(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(uuid.Nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, tc.token)
				s.Equal(tc.status, rec.Code)
			})
		}
	})
}

func (s *CatalogHandlerTestSuite) TestGetAndListVehicles() {
	view := builder.NewVehicleBuilder().BuildView()

	s.Run("success: get renders price with two decimals", func() {
		s.mockQueries.EXPECT().GetVehicle(gomock.Any(), s.staff, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/vehicles/"+view.ID.String(), nil, staffToken)

		var body resdto.VehicleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("20000.00", body.BasePrice)
		s.Equal("AB123CD", body.Plate)
		s.Equal("AVAILABLE", body.Status)
	})

	s.Run("error: 404 for an unknown vehicle", func() {
		s.mockQueries.EXPECT().GetVehicle(gomock.Any(), s.staff, view.ID).Return(nil, catalog.ErrVehicleNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/vehicles/"+view.ID.String(), nil, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Resource not found")
	})

	s.Run("success: list", func() {
		sold := builder.NewVehicleBuilder().AsSold().BuildView()
		s.mockQueries.EXPECT().ListVehicles(gomock.Any(), s.admin).Return([]*queries.VehicleView{view, sold}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/vehicles", nil, adminToken)

		var body []resdto.VehicleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("SOLD", body[1].Status)
	})
}

func (s *CatalogHandlerTestSuite) TestUpdateVehicle() {
	id := uuid.New()
	url := "/api/vehicles/" + id.String()
	reqBody := builder.NewVehicleBuilder().WithBasePrice("21000").BuildRequestDTO()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().UpdateVehicle(gomock.Any(), s.staff, id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ actor.Context, _ uuid.UUID, spec catalog.VehicleSpec) error {
				s.Equal("21000.00", spec.BasePrice.String())
				return nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, staffToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on invalid plate", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("plate", "!"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *CatalogHandlerTestSuite) TestChangeVehicleStatus() {
	id := uuid.New()
	url := "/api/vehicles/" + id.String() + "/status"

	s.Run("success: known status is forwarded", func() {
		s.mockCommands.EXPECT().ChangeVehicleStatus(gomock.Any(), s.staff, id, catalog.StatusHidden).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqdto.VehicleStatusRequest{Status: "HIDDEN"}, staffToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 422 on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqdto.VehicleStatusRequest{Status: "PARKED"}, staffToken)
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		s.Equal("invalid vehicle status", decodeErrorDetail(s.T(), rec).Detail.Reason)
	})

	s.Run("error: 422 when the vehicle cannot change status", func() {
		s.mockCommands.EXPECT().ChangeVehicleStatus(gomock.Any(), s.staff, id, catalog.StatusAvailable).
			Return(catalog.ErrVehicleUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqdto.VehicleStatusRequest{Status: "AVAILABLE"}, staffToken)
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})
}

func (s *CatalogHandlerTestSuite) TestDuplicateVehicle() {
	id := uuid.New()
	newID := uuid.New()
	url := "/api/vehicles/" + id.String() + "/duplicate"

	s.Run("success: 201 with the copy's id", func() {
		s.mockCommands.EXPECT().DuplicateVehicle(gomock.Any(), s.staff, id, "XY987ZW", "ZFA31200000654321").
			Return(newID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.DuplicateVehicleRequest{Plate: "XY987ZW", VIN: "ZFA31200000654321"}, staffToken)

		var body resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(newID.String(), body.ID)
	})

	s.Run("error: 409 on duplicate identifiers", func() {
		s.mockCommands.EXPECT().DuplicateVehicle(gomock.Any(), s.staff, id, gomock.Any(), gomock.Any()).
			Return(uuid.Nil, catalog.ErrDuplicatePlateOrVIN).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.DuplicateVehicleRequest{Plate: "AB123CD", VIN: "ZFA31200000123456"}, staffToken)
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: 400 without a VIN", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"plate": "XY987ZW"}, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// Optionals
// ================================================================================

func (s *CatalogHandlerTestSuite) TestCreateOptional() {
	url := "/api/optionals"
	reqBody := builder.NewOptionalBuilder().BuildRequestDTO()
	newID := uuid.New()

	cases := []testCaseCatalog{
		{name: "code invalid (41 chars)", mutate: testutil.Field("code", strings.Repeat("C", 41)), expectCode: http.StatusBadRequest},
		{name: "name invalid (121 chars)", mutate: testutil.Field("name", strings.Repeat("n", 121)), expectCode: http.StatusBadRequest},
		{name: "description OK (1000 chars)", mutate: testutil.Field("description", strings.Repeat("d", 1000)), expectCode: http.StatusCreated},
		{name: "description invalid (1001 chars)", mutate: testutil.Field("description", strings.Repeat("d", 1001)), expectCode: http.StatusBadRequest},
		{name: "price invalid (negative)", mutate: testutil.Field("price", "-0.01"), expectCode: http.StatusBadRequest},
		{name: "missing field: code (required)", mutate: testutil.Field("code", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: price (required)", mutate: testutil.Field("price", nil), expectCode: http.StatusBadRequest},
	}

	s.Run("success: 201 Created", func() {
		s.mockCommands.EXPECT().CreateOptional(gomock.Any(), s.staff, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ actor.Context, in commands.OptionalInput) (uuid.UUID, error) {
				s.Equal("NAV", in.Code)
				s.Equal("1500.00", in.Price.String())
				return newID, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, staffToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/optionals/" + newID.String()})
	})

	s.Run("error: validation", func() {
		for _, tc := range cases {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().CreateOptional(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(newID, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), staffToken)
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})

	s.Run("error: 409 on duplicate code", func() {
		s.mockCommands.EXPECT().CreateOptional(gomock.Any(), s.staff, gomock.Any()).
			Return(uuid.Nil, catalog.ErrDuplicateOptionalCode).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, staffToken)
		s.Equal(http.StatusConflict, rec.Code)
		s.Equal("optional accessory code already registered", decodeErrorDetail(s.T(), rec).Detail.Reason)
	})
}

func (s *CatalogHandlerTestSuite) TestOptionalReadsAndWrites() {
	id := uuid.New()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	view := &queries.OptionalView{ID: id, Code: "NAV", Name: "Navigation system", Price: money.MustParse("1500"), CreatedAt: now, UpdatedAt: now}

	s.Run("get", func() {
		s.mockQueries.EXPECT().GetOptional(gomock.Any(), s.client, id).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/optionals/"+id.String(), nil, clientToken)

		var body resdto.OptionalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("1500.00", body.Price)
	})

	s.Run("list", func() {
		s.mockQueries.EXPECT().ListOptionals(gomock.Any(), s.client).Return([]*queries.OptionalView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/optionals", nil, clientToken)

		var body []resdto.OptionalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("update", func() {
		s.mockCommands.EXPECT().UpdateOptional(gomock.Any(), s.staff, id, gomock.Any()).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/optionals/"+id.String(),
			builder.NewOptionalBuilder().WithPrice("1750").BuildRequestDTO(), staffToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("delete", func() {
		s.mockCommands.EXPECT().DeleteOptional(gomock.Any(), s.staff, id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/optionals/"+id.String(), nil, staffToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("delete unknown", func() {
		s.mockCommands.EXPECT().DeleteOptional(gomock.Any(), s.staff, id).Return(catalog.ErrOptionalNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/optionals/"+id.String(), nil, staffToken)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

// ================================================================================
// Pricing
// ================================================================================

func (s *CatalogHandlerTestSuite) TestPreviewPricing() {
	vehicleID := uuid.New()
	optionalIDs := []uuid.UUID{uuid.New(), uuid.New()}
	url := "/api/pricing/preview"

	s.Run("success: returns base and total", func() {
		view := &queries.PricingView{
			VehicleID: vehicleID,
			Base:      money.MustParse("20000"),
			Total:     money.MustParse("23000.50"),
			Applied:   optionalIDs,
			PricedAt:  time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		}
		s.mockQueries.EXPECT().PreviewPricing(gomock.Any(), s.client, vehicleID, optionalIDs).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.PricingPreviewRequest{VehicleID: vehicleID, OptionalIDs: optionalIDs}, clientToken)

		var body resdto.PricingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("20000.00", body.Base)
		s.Equal("23000.50", body.Total)
		s.Equal(optionalIDs, body.Applied)
	})

	s.Run("error: 400 without a vehicle", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"optional_ids": []string{}}, clientToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 404 for an unknown optional", func() {
		s.mockQueries.EXPECT().PreviewPricing(gomock.Any(), s.client, vehicleID, gomock.Any()).
			Return(nil, catalog.ErrOptionalNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.PricingPreviewRequest{VehicleID: vehicleID, OptionalIDs: optionalIDs}, clientToken)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
