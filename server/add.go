package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sp0x/insearch/torrent"
)

type addRequest struct {
	URLs []string `json:"urls" binding:"required,min=1"`
}

type addResponse struct {
	URL   string         `json:"url"`
	Added *torrent.Added `json:"added,omitempty"`
	Error string         `json:"error,omitempty"`
}

func (s *Server) addHandler(c *gin.Context) {
	var req addRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	outcomes := torrent.AddAll(c.Request.Context(), s.adder, req.URLs)
	response := make([]addResponse, len(outcomes))
	for i, o := range outcomes {
		response[i] = addResponse{URL: o.URL, Added: o.Added}
		if o.Err != nil {
			response[i].Error = o.Err.Error()
		}
	}
	status := http.StatusOK
	if torrent.Failed(outcomes) == len(outcomes) {
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"results": response})
}

func (s *Server) historyHandler(c *gin.Context) {
	if s.history == nil {
		c.JSON(http.StatusOK, gin.H{"entries": []interface{}{}})
		return
	}
	entries, err := s.history.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
