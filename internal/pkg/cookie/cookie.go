package cookie

import "github.com/gin-gonic/gin"

const AccessTokenCookieName = "access_token"

// GetAccessToken returns the token set by the identity service, or "".
func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
