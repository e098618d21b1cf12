//go:build unit

package api_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"autoflow/internal/domain/actor"
	"autoflow/internal/domain/catalog"
	"autoflow/internal/domain/configuration"
	"autoflow/internal/domain/money"
	"autoflow/internal/handler/api"
	reqdto "autoflow/internal/handler/dto/request"
	resdto "autoflow/internal/handler/dto/response"
	"autoflow/internal/usecase/commands"
	"autoflow/internal/usecase/queries"
	"autoflow/tests/common/builder"
	"autoflow/tests/common/httptest"
	commandsmock "autoflow/tests/mock/commands"
	queriesmock "autoflow/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ConfigurationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockConfigurationCommands
	mockQueries  *queriesmock.MockConfigurationQueries
	client       actor.Context
	staff        actor.Context
}

func (s *ConfigurationHandlerTestSuite) SetupSuite() {
	s.Require().NoError(reqdto.RegisterValidations())
}

func (s *ConfigurationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockConfigurationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockConfigurationQueries(s.mockCtrl)
	handler := api.NewConfigurationHandler(s.mockCommands, s.mockQueries)

	s.client = builder.ClientActor(uuid.New())
	s.staff = builder.StaffActor()

	g := s.router.Group("/api/configurations", fakeAuth(s.client, s.staff, builder.AdminActor()))
	g.GET("", handler.List)
	g.POST("", handler.Create)
	g.GET("/:id", handler.Get)
	g.PATCH("/:id", handler.Update)
	g.DELETE("/:id", handler.Delete)
}

func (s *ConfigurationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestConfigurationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ConfigurationHandlerTestSuite))
}

func (s *ConfigurationHandlerTestSuite) view() *queries.ConfigurationView {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return &queries.ConfigurationView{
		ID:           uuid.New(),
		ClientID:     s.client.ID(),
		VehicleID:    uuid.New(),
		VehicleBrand: "Fiat",
		VehicleModel: "Panda",
		OptionalIDs:  []uuid.UUID{uuid.New()},
		BasePrice:    money.MustParse("20000"),
		TotalPrice:   money.MustParse("21500"),
		Note:         "red interior",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (s *ConfigurationHandlerTestSuite) TestCreate() {
	vehicleID := uuid.New()
	optionalIDs := []uuid.UUID{uuid.New(), uuid.New()}
	newID := uuid.New()

	s.Run("success: 201 with Location", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.client, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ actor.Context, in commands.CreateConfigurationInput) (uuid.UUID, error) {
				s.Nil(in.ClientID)
				s.Equal(vehicleID, in.VehicleID)
				s.Equal(optionalIDs, in.OptionalIDs)
				return newID, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/configurations",
			reqdto.CreateConfigurationRequest{VehicleID: vehicleID, OptionalIDs: optionalIDs}, clientToken)

		var body resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(newID.String(), body.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/configurations/" + newID.String()})
	})

	s.Run("success: staff configure on behalf of a client", func() {
		clientID := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), s.staff, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ actor.Context, in commands.CreateConfigurationInput) (uuid.UUID, error) {
				s.Require().NotNil(in.ClientID)
				s.Equal(clientID, *in.ClientID)
				return newID, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/configurations",
			reqdto.CreateConfigurationRequest{ClientID: &clientID, VehicleID: vehicleID}, staffToken)
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("error: 400 on validation errors", func() {
		for name, body := range map[string]any{
			"missing vehicle": map[string]any{"note": "x"},
			"note too long":   map[string]any{"vehicle_id": vehicleID, "note": strings.Repeat("n", 1001)},
			"bad optional id": map[string]any{"vehicle_id": vehicleID, "optional_ids": []string{"nope"}},
		} {
			s.Run(name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/configurations", body, clientToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors", func() {
		testCases := []struct {
			name   string
			err    error
			status int
		}{
			{name: "sold vehicle", err: configuration.ErrVehicleSold, status: http.StatusUnprocessableEntity},
			{name: "unknown vehicle", err: catalog.ErrVehicleNotFound, status: http.StatusNotFound},
			{name: "staff without client", err: commands.ErrClientRequired, status: http.StatusUnprocessableEntity},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/configurations",
					reqdto.CreateConfigurationRequest{VehicleID: vehicleID}, clientToken)
				s.Equal(tc.status, rec.Code)
				s.Equal(tc.err.Error(), decodeErrorDetail(s.T(), rec).Detail.Reason)
			})
		}
	})
}

func (s *ConfigurationHandlerTestSuite) TestGetAndList() {
	view := s.view()

	s.Run("get renders prices", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), s.client, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/configurations/"+view.ID.String(), nil, clientToken)

		var body resdto.ConfigurationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("20000.00", body.BasePrice)
		s.Equal("21500.00", body.TotalPrice)
		s.Equal(view.OptionalIDs, body.OptionalIDs)
		s.False(body.Locked)
	})

	s.Run("staff filter by client", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), s.staff, queries.ConfigurationFilters{ClientID: &view.ClientID}).
			Return([]*queries.ConfigurationView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/configurations?client_id="+view.ClientID.String(), nil, staffToken)

		var body []resdto.ConfigurationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("400 on malformed client filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/configurations?client_id=abc", nil, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("403 for another client's configuration", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), s.client, view.ID).Return(nil, actor.ErrNotOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/configurations/"+view.ID.String(), nil, clientToken)
		s.Equal(http.StatusForbidden, rec.Code)
	})
}

func (s *ConfigurationHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	url := "/api/configurations/" + id.String()

	s.Run("success: patch carries only given fields", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.client, id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ actor.Context, _ uuid.UUID, p configuration.Patch) error {
				s.Nil(p.VehicleID)
				s.Require().NotNil(p.OptionalIDs)
				s.Empty(*p.OptionalIDs)
				s.Nil(p.Note)
				return nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"optional_ids": []string{}}, clientToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 423 on a locked configuration", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.client, id, gomock.Any()).
			Return(configuration.ErrConfigurationLocked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"note": "new"}, clientToken)
		s.Equal(http.StatusLocked, rec.Code)
		s.Equal("LOCKED", decodeErrorDetail(s.T(), rec).Detail.Code)
	})

	s.Run("error: 422 when the note is too long for the domain", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.client, id, gomock.Any()).
			Return(configuration.ErrNoteTooLong).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"note": "n"}, clientToken)
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})
}

func (s *ConfigurationHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/api/configurations/" + id.String()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.client, id).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, clientToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 423 when a proposal references it", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.client, id).Return(configuration.ErrConfigurationLocked).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, clientToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusLocked, "Resource is locked")
	})
}
