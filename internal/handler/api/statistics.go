package api

import (
	"net/http"

	resdto "autoflow/internal/handler/dto/response"
	"autoflow/internal/handler/httperr"
	"autoflow/internal/pkg/clock"
	"autoflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	q     queries.StatisticsQueries
	clock clock.Clock
}

func NewStatisticsHandler(q queries.StatisticsQueries, clk clock.Clock) *StatisticsHandler {
	return &StatisticsHandler{q: q, clock: clk}
}

// @Summary Dashboard
// @Description Counters for the admin dashboard
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardResponse
// @Failure 403 {object} httperr.Response
// @Router /api/statistics/dashboard [get]
func (h *StatisticsHandler) Dashboard(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}
	view, err := h.q.Dashboard(c.Request.Context(), a, h.clock.Now())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	res, err := resdto.FromDashboardView(view)
	render(c, http.StatusOK, res, err)
}
