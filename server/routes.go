package server

import "github.com/gin-gonic/gin"

func (s *Server) setupRoutes(r *gin.Engine) {
	r.GET("/health", s.HealthCheck)
	r.GET("/search", s.searchHandler)
	r.GET("/search/feed", s.feedHandler)
	r.GET("/history", s.historyHandler)
	r.POST("/add", s.requireAPIKey, s.addHandler)
}
