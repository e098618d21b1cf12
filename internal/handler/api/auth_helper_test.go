//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"autoflow/internal/domain/actor"
	"autoflow/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	clientToken = "client-token"
	staffToken  = "staff-token"
	adminToken  = "admin-token"
)

// fakeAuth resolves the fixed bearer tokens above to actors, standing in for RequireAuth.
func fakeAuth(client, staff, admin actor.Context) gin.HandlerFunc {
	actors := map[string]actor.Context{
		"Bearer " + clientToken: client,
		"Bearer " + staffToken:  staff,
		"Bearer " + adminToken:  admin,
	}
	return func(c *gin.Context) {
		a, ok := actors[c.GetHeader("Authorization")]
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetActor(c, a)
		c.Next()
	}
}

type errorDetail struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail struct {
		Code   string `json:"code"`
		Reason string `json:"reason"`
	} `json:"detail"`
}

func decodeErrorDetail(t *testing.T, rec *httptest.ResponseRecorder) errorDetail {
	t.Helper()
	var body errorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}
