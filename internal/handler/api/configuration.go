package api

import (
	"net/http"

	reqdto "autoflow/internal/handler/dto/request"
	resdto "autoflow/internal/handler/dto/response"
	"autoflow/internal/handler/httperr"
	"autoflow/internal/usecase/commands"
	"autoflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ConfigurationHandler struct {
	cmds commands.ConfigurationCommands
	q    queries.ConfigurationQueries
}

func NewConfigurationHandler(cmds commands.ConfigurationCommands, q queries.ConfigurationQueries) *ConfigurationHandler {
	return &ConfigurationHandler{cmds: cmds, q: q}
}

// @Summary List configurations
// @Description Clients only see their own configurations
// @Tags configurations
// @Produce json
// @Security BearerAuth
// @Param client_id query string false "Client ID (staff only)"
// @Success 200 {array} resdto.ConfigurationResponse
// @Router /api/configurations [get]
func (h *ConfigurationHandler) List(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}
	var q reqdto.ConfigurationListQuery
	if !bindQuery(c, &q) {
		return
	}
	views, err := h.q.List(c.Request.Context(), a, queries.ConfigurationFilters{ClientID: q.ClientFilter()})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	res, err := resdto.FromConfigurationViews(views)
	render(c, http.StatusOK, res, err)
}

// @Summary Create configuration
// @Description Prices the selection against the current catalog and stores it
// @Tags configurations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateConfigurationRequest true "Configuration"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/configurations [post]
func (h *ConfigurationHandler) Create(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateConfigurationRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), a, req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	created(c, "/api/configurations", id)
}

// @Summary Get configuration
// @Tags configurations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Configuration ID"
// @Success 200 {object} resdto.ConfigurationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/configurations/{id} [get]
func (h *ConfigurationHandler) Get(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), a, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	res, err := resdto.FromConfigurationView(view)
	render(c, http.StatusOK, res, err)
}

// @Summary Update configuration
// @Description Omitted fields are kept; the total is recomputed from the current catalog
// @Tags configurations
// @Accept json
// @Security BearerAuth
// @Param id path string true "Configuration ID"
// @Param request body reqdto.UpdateConfigurationRequest true "Patch"
// @Success 204 "No Content"
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 423 {object} httperr.Response
// @Router /api/configurations/{id} [patch]
func (h *ConfigurationHandler) Update(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateConfigurationRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Update(c.Request.Context(), a, id, req.ToPatch()); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete configuration
// @Tags configurations
// @Security BearerAuth
// @Param id path string true "Configuration ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 423 {object} httperr.Response
// @Router /api/configurations/{id} [delete]
func (h *ConfigurationHandler) Delete(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), a, id); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
