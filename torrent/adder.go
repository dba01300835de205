package torrent

import (
	"context"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Adder hands a torrent over to a BitTorrent client, by its download or magnet url.
//go:generate mockgen -destination=mocks/mock_adder.go -package=mocks . Adder
type Adder interface {
	AddTorrentURL(ctx context.Context, torrentURL string) (*Added, error)
}

// Added describes a torrent that the client accepted.
type Added struct {
	URL       string `json:"url"`
	InfoHash  string `json:"info_hash"`
	Name      string `json:"name,omitempty"`
	Path      string `json:"path,omitempty"`
	Duplicate bool   `json:"duplicate"`
}

// AddOutcome is the result of adding a single url.
type AddOutcome struct {
	URL   string `json:"url"`
	Added *Added `json:"added,omitempty"`
	Err   error  `json:"-"`
}

// AddAll adds every url concurrently. Outcomes keep the order of urls,
// a failing url doesn't stop the rest.
func AddAll(ctx context.Context, adder Adder, urls []string) []AddOutcome {
	outcomes := make([]AddOutcome, len(urls))
	g := errgroup.Group{}
	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			added, err := adder.AddTorrentURL(ctx, u)
			outcomes[i] = AddOutcome{URL: u, Added: added, Err: err}
			if err != nil {
				log.WithFields(log.Fields{"url": u}).WithError(err).Warn("Could not add torrent")
			}
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

// Failed counts the outcomes that carry an error.
func Failed(outcomes []AddOutcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}
