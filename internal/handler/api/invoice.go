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

type InvoiceHandler struct {
	cmds commands.InvoiceCommands
	q    queries.InvoiceQueries
}

func NewInvoiceHandler(cmds commands.InvoiceCommands, q queries.InvoiceQueries) *InvoiceHandler {
	return &InvoiceHandler{cmds: cmds, q: q}
}

// @Summary Request invoice
// @Description Issues the invoice of a completed proposal
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Proposal ID"
// @Param request body reqdto.RequestInvoiceRequest false "Invoice details"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 412 {object} httperr.Response
// @Router /api/proposals/{id}/invoice [post]
func (h *InvoiceHandler) Request(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}
	proposalID, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.RequestInvoiceRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.BadRequest(c, err)
		return
	}
	id, err := h.cmds.RequestInvoice(c.Request.Context(), a, proposalID, in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	created(c, "/api/invoices", id)
}

// @Summary List invoices
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param client_id query string false "Client ID (staff only)"
// @Param after query string false "Cursor from a previous page"
// @Param limit query int false "Page size (1-200)"
// @Success 200 {object} resdto.PageResponse[resdto.InvoiceResponse]
// @Router /api/invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}
	var q reqdto.InvoiceListQuery
	if !bindQuery(c, &q) {
		return
	}
	views, next, err := h.q.List(c.Request.Context(), a, q.ToFilters(), q.Cursor(), q.Limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	res, err := resdto.FromInvoicePage(views, next)
	render(c, http.StatusOK, res, err)
}

// @Summary Get invoice
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/invoices/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
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
	res, err := resdto.FromInvoiceView(view)
	render(c, http.StatusOK, res, err)
}
