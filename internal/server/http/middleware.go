package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/blogd-io/blogd/internal/common"
	"github.com/blogd-io/blogd/internal/server/auth"
)

const userIDContextKey = "userID"

// requireAccessToken admits only requests carrying a valid bearer access
// token and stores the authenticated user id in the request context.
func (s *Server) requireAccessToken(c *gin.Context) {
	header := c.GetHeader(common.AuthorizationHeaderName)
	if header == "" || !strings.HasPrefix(header, common.BearerPrefix) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}

	token := strings.TrimPrefix(header, common.BearerPrefix)

	userID, err := s.issuer.Verify(token, auth.KindAccess)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	c.Set(userIDContextKey, userID)
	c.Next()
}

// currentUserID returns the user id stored by requireAccessToken.
func currentUserID(c *gin.Context) string {
	return c.GetString(userIDContextKey)
}
