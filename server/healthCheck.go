package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
