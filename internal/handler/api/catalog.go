package api

import (
	"net/http"

	"autoflow/internal/domain/catalog"
	reqdto "autoflow/internal/handler/dto/request"
	resdto "autoflow/internal/handler/dto/response"
	"autoflow/internal/handler/httperr"
	"autoflow/internal/usecase/commands"
	"autoflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, q: q}
}

// @Summary List vehicles
// @Description List every vehicle in the catalog, including hidden and sold ones
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.VehicleResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/vehicles [get]
func (h *CatalogHandler) ListVehicles(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}
	views, err := h.q.ListVehicles(c.Request.Context(), a)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	res, err := resdto.FromVehicleViews(views)
	render(c, http.StatusOK, res, err)
}

// @Summary Create vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.VehicleRequest true "Vehicle"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/vehicles [post]
func (h *CatalogHandler) CreateVehicle(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.VehicleRequest
	if !bindJSON(c, &req) {
		return
	}
	spec, err := req.ToSpec()
	if err != nil {
		httperr.BadRequest(c, err)
		return
	}
	id, err := h.cmds.CreateVehicle(c.Request.Context(), a, spec)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	created(c, "/api/vehicles", id)
}

// @Summary Get vehicle
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 200 {object} resdto.VehicleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/vehicles/{id} [get]
func (h *CatalogHandler) GetVehicle(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetVehicle(c.Request.Context(), a, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	res, err := resdto.FromVehicleView(view)
	render(c, http.StatusOK, res, err)
}

// @Summary Update vehicle
// @Tags vehicles
// @Accept json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Param request body reqdto.VehicleRequest true "Vehicle"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/vehicles/{id} [put]
func (h *CatalogHandler) UpdateVehicle(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.VehicleRequest
	if !bindJSON(c, &req) {
		return
	}
	spec, err := req.ToSpec()
	if err != nil {
		httperr.BadRequest(c, err)
		return
	}
	if err := h.cmds.UpdateVehicle(c.Request.Context(), a, id, spec); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Change vehicle status
// @Tags vehicles
// @Accept json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Param request body reqdto.VehicleStatusRequest true "Status"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/vehicles/{id}/status [patch]
func (h *CatalogHandler) ChangeVehicleStatus(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.VehicleStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	status, err := catalog.NewVehicleStatus(req.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if err := h.cmds.ChangeVehicleStatus(c.Request.Context(), a, id, status); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Duplicate vehicle
// @Description Copy a vehicle's spec under a new plate and VIN
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Source vehicle ID"
// @Param request body reqdto.DuplicateVehicleRequest true "New identifiers"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/vehicles/{id}/duplicate [post]
func (h *CatalogHandler) DuplicateVehicle(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.DuplicateVehicleRequest
	if !bindJSON(c, &req) {
		return
	}
	newID, err := h.cmds.DuplicateVehicle(c.Request.Context(), a, id, req.Plate, req.VIN)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	created(c, "/api/vehicles", newID)
}

// @Summary List optionals
// @Tags optionals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OptionalResponse
// @Router /api/optionals [get]
func (h *CatalogHandler) ListOptionals(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}
	views, err := h.q.ListOptionals(c.Request.Context(), a)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	res, err := resdto.FromOptionalViews(views)
	render(c, http.StatusOK, res, err)
}

// @Summary Create optional
// @Tags optionals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OptionalRequest true "Optional"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/optionals [post]
func (h *CatalogHandler) CreateOptional(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.OptionalRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.BadRequest(c, err)
		return
	}
	id, err := h.cmds.CreateOptional(c.Request.Context(), a, in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	created(c, "/api/optionals", id)
}

// @Summary Get optional
// @Tags optionals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Optional ID"
// @Success 200 {object} resdto.OptionalResponse
// @Failure 404 {object} httperr.Response
// @Router /api/optionals/{id} [get]
func (h *CatalogHandler) GetOptional(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetOptional(c.Request.Context(), a, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	res, err := resdto.FromOptionalView(view)
	render(c, http.StatusOK, res, err)
}

// @Summary Update optional
// @Description Existing configurations keep the price they were saved with
// @Tags optionals
// @Accept json
// @Security BearerAuth
// @Param id path string true "Optional ID"
// @Param request body reqdto.OptionalRequest true "Optional"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/optionals/{id} [put]
func (h *CatalogHandler) UpdateOptional(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.OptionalRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.BadRequest(c, err)
		return
	}
	if err := h.cmds.UpdateOptional(c.Request.Context(), a, id, in); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete optional
// @Tags optionals
// @Security BearerAuth
// @Param id path string true "Optional ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/optionals/{id} [delete]
func (h *CatalogHandler) DeleteOptional(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteOptional(c.Request.Context(), a, id); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Pricing preview
// @Description Price a vehicle with a set of optionals against the current catalog
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PricingPreviewRequest true "Selection"
// @Success 200 {object} resdto.PricingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/pricing/preview [post]
func (h *CatalogHandler) PreviewPricing(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.PricingPreviewRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.q.PreviewPricing(c.Request.Context(), a, req.VehicleID, req.OptionalIDs)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	res, err := resdto.FromPricingView(view)
	render(c, http.StatusOK, res, err)
}
