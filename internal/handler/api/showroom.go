package api

import (
	"net/http"

	reqdto "autoflow/internal/handler/dto/request"
	resdto "autoflow/internal/handler/dto/response"
	"autoflow/internal/handler/httperr"
	"autoflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// ShowroomHandler serves the public vehicle listing. No authentication.
type ShowroomHandler struct {
	q queries.CatalogQueries
}

func NewShowroomHandler(q queries.CatalogQueries) *ShowroomHandler {
	return &ShowroomHandler{q: q}
}

// @Summary Search showroom
// @Description Listed, available vehicles filtered by brand, model and price range
// @Tags showroom
// @Produce json
// @Param brand query string false "Brand (substring, case-insensitive)"
// @Param model query string false "Model (substring, case-insensitive)"
// @Param min_price query string false "Minimum base price"
// @Param max_price query string false "Maximum base price"
// @Success 200 {array} resdto.ShowroomVehicleResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/showroom/vehicles [get]
func (h *ShowroomHandler) Search(c *gin.Context) {
	var q reqdto.ShowroomQuery
	if !bindQuery(c, &q) {
		return
	}
	filters, err := q.ToFilters()
	if err != nil {
		httperr.BadRequest(c, err)
		return
	}
	views, err := h.q.SearchShowroom(c.Request.Context(), filters)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	res, err := resdto.FromShowroomViews(views)
	render(c, http.StatusOK, res, err)
}

// @Summary Showroom vehicle
// @Tags showroom
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} resdto.ShowroomVehicleResponse
// @Failure 404 {object} httperr.Response
// @Router /api/showroom/vehicles/{id} [get]
func (h *ShowroomHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.ShowroomVehicle(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	res, err := resdto.FromShowroomView(view)
	render(c, http.StatusOK, res, err)
}
