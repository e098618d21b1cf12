//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"autoflow/internal/handler/httperr"
	"autoflow/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "validation", err: errs.NewKind(errs.ErrValidation, "bad"), status: http.StatusUnprocessableEntity},
		{name: "locked", err: errs.NewKind(errs.ErrLocked, "locked"), status: http.StatusLocked},
		{name: "conflict", err: errs.NewKind(errs.ErrConflict, "dup"), status: http.StatusConflict},
		{name: "precondition", err: errs.NewKind(errs.ErrPrecondition, "not yet"), status: http.StatusPreconditionFailed},
		{name: "not found", err: errs.NewKind(errs.ErrNotFound, "missing"), status: http.StatusNotFound},
		{name: "forbidden", err: errs.NewKind(errs.ErrForbidden, "no"), status: http.StatusForbidden},
		{name: "wrapped kind keeps its status", err: errs.Wrap(errs.NewKind(errs.ErrLocked, "locked"), "update config"), status: http.StatusLocked},
		{name: "plain error", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := httperr.StatusOf(tt.err)
			assert.Equal(t, tt.status, status)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestRespond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(err error) (*httptest.ResponseRecorder, map[string]any) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		httperr.Respond(c, err)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return rec, body
	}

	t.Run("business errors carry code and reason", func(t *testing.T) {
		sentinel := errs.NewKind(errs.ErrConflict, "plate or VIN already registered")
		rec, body := run(errs.Wrap(sentinel, "create vehicle"))

		assert.Equal(t, http.StatusConflict, rec.Code)
		detail, ok := body["detail"].(map[string]any)
		require.True(t, ok, rec.Body.String())
		assert.Equal(t, "CONFLICT", detail["code"])
		assert.Equal(t, "plate or VIN already registered", detail["reason"])
	})

	t.Run("internal errors carry no detail", func(t *testing.T) {
		rec, body := run(errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, body, "detail")
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}

func TestAbortWithError_NilPanics(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Panics(t, func() {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "x", nil)
	})
}
