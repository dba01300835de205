package server

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// requireAPIKey guards routes that change state. Without a configured key everything passes.
func (s *Server) requireAPIKey(c *gin.Context) {
	if s.Params.APIKey == "" {
		return
	}
	given := c.GetHeader("X-Api-Key")
	if given == "" {
		given = c.Query("apikey")
	}
	if subtle.ConstantTimeCompare([]byte(given), []byte(s.Params.APIKey)) != 1 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid api key"})
	}
}
