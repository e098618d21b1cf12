//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"autoflow/internal/domain/catalog"
	"autoflow/internal/domain/money"
	"autoflow/internal/handler/api"
	reqdto "autoflow/internal/handler/dto/request"
	resdto "autoflow/internal/handler/dto/response"
	"autoflow/internal/usecase/queries"
	"autoflow/tests/common/builder"
	"autoflow/tests/common/httptest"
	queriesmock "autoflow/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ShowroomHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCatalogQueries
}

func (s *ShowroomHandlerTestSuite) SetupSuite() {
	s.Require().NoError(reqdto.RegisterValidations())
}

func (s *ShowroomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	handler := api.NewShowroomHandler(s.mockQueries)

	s.router.GET("/api/showroom/vehicles", handler.Search)
	s.router.GET("/api/showroom/vehicles/:id", handler.Get)
}

func (s *ShowroomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestShowroomHandlerSuite(t *testing.T) {
	suite.Run(t, new(ShowroomHandlerTestSuite))
}

func (s *ShowroomHandlerTestSuite) TestSearch() {
	s.Run("success: anonymous search hides registration details", func() {
		view := builder.NewVehicleBuilder().BuildView()
		s.mockQueries.EXPECT().SearchShowroom(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f queries.ShowroomFilters) ([]*queries.VehicleView, error) {
				s.Equal("Fiat", f.Brand)
				s.Require().NotNil(f.MinPrice)
				s.True(f.MinPrice.Equal(money.FromInt(10000)))
				s.Nil(f.MaxPrice)
				return []*queries.VehicleView{view}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/showroom/vehicles?brand=Fiat&min_price=10000", nil, "")

		var body []resdto.ShowroomVehicleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("20000.00", body[0].BasePrice)
		s.NotContains(rec.Body.String(), view.Plate)
		s.NotContains(rec.Body.String(), view.VIN)
	})

	s.Run("error: 400 on a malformed price bound", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/showroom/vehicles?max_price=lots", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 422 when min exceeds max", func() {
		s.mockQueries.EXPECT().SearchShowroom(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrInvalidPriceRange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/showroom/vehicles?min_price=30000&max_price=10000", nil, "")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		s.Equal("minimum price exceeds maximum price", decodeErrorDetail(s.T(), rec).Detail.Reason)
	})
}

func (s *ShowroomHandlerTestSuite) TestGet() {
	id := uuid.New()

	s.Run("404 for hidden or sold vehicles", func() {
		s.mockQueries.EXPECT().ShowroomVehicle(gomock.Any(), id).Return(nil, catalog.ErrVehicleNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/showroom/vehicles/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Resource not found")
	})

	s.Run("200 for a listed vehicle", func() {
		view := builder.NewVehicleBuilder().BuildView()
		s.mockQueries.EXPECT().ShowroomVehicle(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/showroom/vehicles/"+view.ID.String(), nil, "")

		var body resdto.ShowroomVehicleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("Panda", body.Model)
	})
}
