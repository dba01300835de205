package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/feeds"

	"github.com/sp0x/insearch/isohunt"
	"github.com/sp0x/insearch/presentation"
)

func queryFromRequest(c *gin.Context) (*isohunt.Query, error) {
	age, err := isohunt.ParseAge(c.Query("age"))
	if err != nil {
		return nil, err
	}
	return isohunt.NewQuery(c.Query("q"), age)
}

// searchHandler answers 502 when the index couldn't be reached, so that
// clients can tell it apart from a search without hits.
func (s *Server) searchHandler(c *gin.Context) {
	q, err := queryFromRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	set := s.searcher.Search(c.Request.Context(), *q)
	status := http.StatusOK
	if set == nil {
		status = http.StatusBadGateway
	}
	c.JSON(status, presentation.NewView(set))
}

func (s *Server) feedHandler(c *gin.Context) {
	q, err := queryFromRequest(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	set := s.searcher.Search(c.Request.Context(), *q)
	if set == nil {
		c.String(http.StatusBadGateway, "search failed")
		return
	}
	atom, err := newFeed(c.Request.URL.String(), set).ToAtom()
	if err != nil {
		_ = c.Error(err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Header("Content-Type", "application/atom+xml; charset=utf-8")
	c.String(http.StatusOK, atom)
}

func newFeed(link string, set *isohunt.ResultSet) *feeds.Feed {
	now := time.Now()
	feed := &feeds.Feed{
		Title:       fmt.Sprintf("isoHunt search for %s", set.Query),
		Link:        &feeds.Link{Href: link},
		Description: set.Query.Text,
		Created:     now,
	}
	feed.Items = make([]*feeds.Item, len(set.Items))
	for i, r := range set.Items {
		published, err := presentation.ParsePublished(r.PublishedAt)
		if err != nil {
			published = now
		}
		feed.Items[i] = &feeds.Item{
			Id:          r.DownloadURL,
			Title:       presentation.PlainTitle(r.Title),
			Link:        &feeds.Link{Href: r.DownloadURL, Type: "application/x-bittorrent"},
			Description: fmt.Sprintf("%s, %d seeds, %d leechers", r.Size, r.Seeds, r.Leechers),
			Created:     published,
		}
		if r.DetailsURL != "" {
			feed.Items[i].Source = &feeds.Link{Href: r.DetailsURL}
		}
	}
	return feed
}
