package server

import (
	"fmt"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/sp0x/insearch/config"
	"github.com/sp0x/insearch/isohunt"
	"github.com/sp0x/insearch/storage"
	"github.com/sp0x/insearch/torrent"
)

// HistoryLister lists torrents that were already added.
type HistoryLister interface {
	List() ([]storage.Entry, error)
}

type Server struct {
	searcher isohunt.Searcher
	adder    torrent.Adder
	history  HistoryLister
	Params   Params
}

type Params struct {
	Port    int
	APIKey  string
	Verbose bool
}

func NewServer(cfg config.Config, searcher isohunt.Searcher, adder torrent.Adder, history HistoryLister) *Server {
	s := &Server{
		searcher: searcher,
		adder:    adder,
		history:  history,
	}
	s.Params.Port = cfg.GetInt("port")
	s.Params.APIKey = cfg.GetString("api_key")
	s.Params.Verbose = cfg.GetBool("verbose")
	return s
}

// Handler builds the gin engine with all of our routes.
func (s *Server) Handler() *gin.Engine {
	if !s.Params.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	s.setupRoutes(r)
	if s.Params.Verbose {
		pprof.Register(r)
	}
	return r
}

// Listen serves until the listener fails.
func (s *Server) Listen() error {
	addr := fmt.Sprintf(":%d", s.Params.Port)
	log.Infof("Starting server on %s", addr)
	return s.Handler().Run(addr)
}
