package requests

import (
	"fmt"
	"net/http"
	"os"

	"github.com/f2prateek/train"
	trainlog "github.com/f2prateek/train/log"
)

// NewTransport wraps the base transport with request logging, depending on DEBUG_HTTP.
func NewTransport(base http.RoundTripper) (http.RoundTripper, error) {
	if base == nil {
		base = http.DefaultTransport
	}
	switch os.Getenv("DEBUG_HTTP") {
	case "1", "true", "basic":
		return train.TransportWith(base, trainlog.New(os.Stderr, trainlog.Basic)), nil
	case "body":
		return train.TransportWith(base, trainlog.New(os.Stderr, trainlog.Body)), nil
	case "":
		return base, nil
	default:
		return nil, fmt.Errorf("unknown value for DEBUG_HTTP: %s", os.Getenv("DEBUG_HTTP"))
	}
}
