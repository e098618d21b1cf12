package httperr

import (
	"net/http"

	"autoflow/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// Detail names the error kind and the specific rule that was broken.
type Detail struct {
	Code   string `json:"code"`
	Reason string `json:"reason,omitempty"`
}

type kindStatus struct {
	status  int
	message string
}

var kindStatuses = map[errs.Kind]kindStatus{
	errs.KindValidation:   {http.StatusUnprocessableEntity, "Request violates a business rule"},
	errs.KindLocked:       {http.StatusLocked, "Resource is locked"},
	errs.KindConflict:     {http.StatusConflict, "Conflicting concurrent change"},
	errs.KindPrecondition: {http.StatusPreconditionFailed, "Operation is not ready yet"},
	errs.KindNotFound:     {http.StatusNotFound, "Resource not found"},
	errs.KindForbidden:    {http.StatusForbidden, "Operation not permitted"},
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusOf maps an error's kind to its HTTP status and public message.
func StatusOf(err error) (int, string) {
	if ks, ok := kindStatuses[errs.KindOf(err)]; ok {
		return ks.status, ks.message
	}
	return http.StatusInternalServerError, "Internal error"
}

// Respond aborts with the status of err's kind. Internal errors carry no detail.
func Respond(c *gin.Context, err error) {
	status, msg := StatusOf(err)
	if status == http.StatusInternalServerError {
		AbortWithError(c, status, err, msg, nil)
		return
	}
	AbortWithError(c, status, err, msg, Detail{Code: string(errs.KindOf(err)), Reason: errs.Reason(err)})
}

func BadRequest(c *gin.Context, err error) {
	AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
}

func Unauthorized(c *gin.Context, err error) {
	AbortWithError(c, http.StatusUnauthorized, err, "Unauthorized", nil)
}
