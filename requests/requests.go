package requests

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// UserAgent is sent with every request unless overridden by a header.
var UserAgent = "insearch/0.2"

// StatusError is returned when the remote side answers with a non-success status.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.URL, e.Code)
}

var defaultHeaders = map[string]string{
	"cache-control":  "no-cache",
	"Accept-Charset": "utf-8",
}

// setupHeaders fills in the default headers that the request doesn't set itself.
func setupHeaders(req *http.Request) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", UserAgent)
	}
	for k, v := range defaultHeaders {
		if req.Header.Get(k) == "" {
			req.Header.Set(k, v)
		}
	}
}

// Do executes the request and reads the whole body.
// Any status outside of 2xx results in a *StatusError, the body is still returned.
func Do(client *http.Client, req *http.Request) ([]byte, error) {
	if client == nil {
		return nil, fmt.Errorf("null transport client")
	}
	setupHeaders(req)
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return body, &StatusError{Code: res.StatusCode, URL: req.URL.String()}
	}
	return body, err
}

// Get fetches a route, the given headers override the default ones.
func Get(ctx context.Context, client *http.Client, route string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, route, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return Do(client, req)
}
