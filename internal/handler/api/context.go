package api

import (
	"net/http"

	"autoflow/internal/domain/actor"
	"autoflow/internal/handler/httperr"
	"autoflow/internal/handler/middleware"
	"autoflow/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errMissingActor = errs.New("no authenticated actor on request")
	errInvalidID    = errs.New("invalid id")
)

// requireActor must run behind AuthMiddleware.RequireAuth.
func requireActor(c *gin.Context) (actor.Context, bool) {
	a, ok := middleware.GetActor(c)
	if !ok {
		httperr.Unauthorized(c, errMissingActor)
		return actor.Context{}, false
	}
	return a, true
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidID), "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.BadRequest(c, err)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		httperr.BadRequest(c, err)
		return false
	}
	return true
}

func created(c *gin.Context, location string, id uuid.UUID) {
	c.Header("Location", location+"/"+id.String())
	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// render writes body, or a 500 when mapping the view failed.
func render[T any](c *gin.Context, status int, body T, err error) {
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(status, body)
}
