package api

import (
	"context"
	"net/http"

	"autoflow/internal/domain/actor"
	"autoflow/internal/domain/proposal"
	reqdto "autoflow/internal/handler/dto/request"
	resdto "autoflow/internal/handler/dto/response"
	"autoflow/internal/handler/httperr"
	"autoflow/internal/usecase/commands"
	"autoflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProposalHandler struct {
	cmds commands.ProposalCommands
	q    queries.ProposalQueries
}

func NewProposalHandler(cmds commands.ProposalCommands, q queries.ProposalQueries) *ProposalHandler {
	return &ProposalHandler{cmds: cmds, q: q}
}

// @Summary List proposals
// @Description Newest first, keyset paginated. Clients only see their own proposals
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Param client_id query string false "Client ID"
// @Param staff_id query string false "Staff ID"
// @Param status query string false "Status"
// @Param after query string false "Cursor from a previous page"
// @Param limit query int false "Page size (1-200)"
// @Success 200 {object} resdto.PageResponse[resdto.ProposalResponse]
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/proposals [get]
func (h *ProposalHandler) List(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}
	var q reqdto.ProposalListQuery
	if !bindQuery(c, &q) {
		return
	}
	views, next, err := h.q.List(c.Request.Context(), a, q.ToFilters(), q.Cursor(), q.Limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	res, err := resdto.FromProposalPage(views, next)
	render(c, http.StatusOK, res, err)
}

// @Summary Create proposal
// @Description Freezes the configuration price and options the vehicle
// @Tags proposals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateProposalRequest true "Proposal"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/proposals [post]
func (h *ProposalHandler) Create(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateProposalRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.BadRequest(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), a, in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	created(c, "/api/proposals", id)
}

// @Summary Get proposal
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Proposal ID"
// @Success 200 {object} resdto.ProposalResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/proposals/{id} [get]
func (h *ProposalHandler) Get(c *gin.Context) {
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
	res, err := resdto.FromProposalView(view)
	render(c, http.StatusOK, res, err)
}

// @Summary Proposal history
// @Description Every status change with its actor, oldest first
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Proposal ID"
// @Success 200 {array} resdto.TransitionResponse
// @Failure 404 {object} httperr.Response
// @Router /api/proposals/{id}/history [get]
func (h *ProposalHandler) History(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	views, err := h.q.History(c.Request.Context(), a, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	res, err := resdto.FromTransitionViews(views)
	render(c, http.StatusOK, res, err)
}

// @Summary Accept proposal
// @Tags proposals
// @Security BearerAuth
// @Param id path string true "Proposal ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/proposals/{id}/accept [post]
func (h *ProposalHandler) Accept(c *gin.Context) {
	h.transition(c, h.cmds.Accept)
}

// @Summary Confirm proposal
// @Description The client confirms an accepted proposal; the vehicle is sold
// @Tags proposals
// @Security BearerAuth
// @Param id path string true "Proposal ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/proposals/{id}/confirm [post]
func (h *ProposalHandler) Confirm(c *gin.Context) {
	h.transition(c, h.cmds.Confirm)
}

// @Summary Expire proposal
// @Tags proposals
// @Security BearerAuth
// @Param id path string true "Proposal ID"
// @Success 204 "No Content"
// @Failure 412 {object} httperr.Response
// @Router /api/proposals/{id}/expire [post]
func (h *ProposalHandler) Expire(c *gin.Context) {
	h.transition(c, h.cmds.Expire)
}

// @Summary Reject proposal
// @Tags proposals
// @Accept json
// @Security BearerAuth
// @Param id path string true "Proposal ID"
// @Param request body reqdto.RejectProposalRequest false "Reason"
// @Success 204 "No Content"
// @Failure 422 {object} httperr.Response
// @Router /api/proposals/{id}/reject [post]
func (h *ProposalHandler) Reject(c *gin.Context) {
	var req reqdto.RejectProposalRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	h.transition(c, func(ctx context.Context, a actor.Context, id uuid.UUID) error {
		return h.cmds.Reject(ctx, a, id, req.Reason)
	})
}

// @Summary Override proposal status
// @Description Administrative move to any status, recorded with its reason
// @Tags proposals
// @Accept json
// @Security BearerAuth
// @Param id path string true "Proposal ID"
// @Param request body reqdto.OverrideProposalRequest true "Target status and reason"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/proposals/{id}/override [post]
func (h *ProposalHandler) Override(c *gin.Context) {
	var req reqdto.OverrideProposalRequest
	if !bindJSON(c, &req) {
		return
	}
	to, err := proposal.ParseStatus(req.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	h.transition(c, func(ctx context.Context, a actor.Context, id uuid.UUID) error {
		return h.cmds.Override(ctx, a, id, to, req.Reason)
	})
}

// @Summary Edit proposal terms
// @Tags proposals
// @Accept json
// @Security BearerAuth
// @Param id path string true "Proposal ID"
// @Param request body reqdto.TermsRequest true "Terms"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/proposals/{id}/terms [patch]
func (h *ProposalHandler) UpdateTerms(c *gin.Context) {
	var req reqdto.TermsRequest
	if !bindJSON(c, &req) {
		return
	}
	terms, err := req.ToTerms()
	if err != nil {
		httperr.BadRequest(c, err)
		return
	}
	h.transition(c, func(ctx context.Context, a actor.Context, id uuid.UUID) error {
		return h.cmds.UpdateTerms(ctx, a, id, terms)
	})
}

// @Summary Expire overdue proposals
// @Description Expires every submitted or accepted proposal past its expiry date
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ExpiredResponse
// @Failure 403 {object} httperr.Response
// @Router /api/proposals/expire-overdue [post]
func (h *ProposalHandler) ExpireOverdue(c *gin.Context) {
	a, ok := requireActor(c)
	if !ok {
		return
	}
	ids, err := h.cmds.ExpireOverdue(c.Request.Context(), a)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	res := resdto.ExpiredResponse{Expired: make([]string, len(ids))}
	for i, id := range ids {
		res.Expired[i] = id.String()
	}
	c.JSON(http.StatusOK, res)
}

func (h *ProposalHandler) transition(c *gin.Context, move func(context.Context, actor.Context, uuid.UUID) error) {
	a, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := move(c.Request.Context(), a, id); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
