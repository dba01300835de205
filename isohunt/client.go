package isohunt

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/sp0x/insearch/requests"
)

const (
	// DefaultEndpoint is the index's JSON API.
	DefaultEndpoint = "http://isohunt.com/js/json.php"
	// AgeCookie carries the age filter, the API has no query parameter for it.
	AgeCookie = "torrent_age"

	pageSize  = 10
	sortOrder = "seeds"
)

// Searcher runs index queries. A nil result means the search could not run.
//go:generate mockgen -destination=mocks/mock_searcher.go -package=mocks . Searcher
type Searcher interface {
	Search(ctx context.Context, q Query) *ResultSet
}

// Client queries the isoHunt JSON API.
// It holds no per-search state and may be used from several goroutines.
type Client struct {
	endpoint   string
	httpClient *http.Client
	userAgent  string
}

type Option func(c *Client)

// WithEndpoint overrides the API endpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithHTTPClient sets the http client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout bounds each request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		endpoint:   DefaultEndpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BuildURL returns the request url for a query.
func (c *Client) BuildURL(q Query) string {
	params := url.Values{}
	params.Set("ihq", q.Text)
	params.Set("rows", strconv.Itoa(pageSize))
	params.Set("sort", sortOrder)
	return c.endpoint + "?" + params.Encode()
}

func (c *Client) newRequest(ctx context.Context, q Query) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BuildURL(q), nil)
	if err != nil {
		return nil, err
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if q.MaxAge != AgeAny {
		req.AddCookie(&http.Cookie{Name: AgeCookie, Value: strconv.Itoa(int(q.MaxAge))})
	}
	return req, nil
}

// Search runs the query and blocks until it completes.
// Transport failures give a nil set, a response that can't be read as a
// result list gives an empty one. No error ever reaches the caller.
func (c *Client) Search(ctx context.Context, q Query) *ResultSet {
	logger := log.WithFields(log.Fields{"query": q.Text, "age": int(q.MaxAge)})
	req, err := c.newRequest(ctx, q)
	if err != nil {
		logger.WithError(err).Warn("Could not build search request")
		return nil
	}
	started := time.Now()
	body, err := requests.Do(c.httpClient, req)
	if err != nil {
		logger.WithError(err).Warn("Search request failed")
		return nil
	}
	set := &ResultSet{Query: q, Items: parseResults(body)}
	logger.WithFields(log.Fields{
		"results": len(set.Items),
		"took":    time.Since(started),
	}).Debug("Search completed")
	return set
}

// SearchAsync starts the search on its own goroutine. The channel receives
// exactly one value, nil when the search could not run, and is then closed.
func (c *Client) SearchAsync(ctx context.Context, q Query) <-chan *ResultSet {
	return Async(ctx, c, q)
}

// Async runs any Searcher without blocking the caller.
func Async(ctx context.Context, s Searcher, q Query) <-chan *ResultSet {
	out := make(chan *ResultSet, 1)
	go func() {
		defer close(out)
		out <- s.Search(ctx, q)
	}()
	return out
}
