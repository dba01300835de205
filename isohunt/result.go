package isohunt

import "fmt"

// Result is a single normalized hit from the index.
type Result struct {
	Title       string `json:"title" yaml:"title"`
	Seeds       int    `json:"seeds" yaml:"seeds"`
	Leechers    int    `json:"leechers" yaml:"leechers"`
	Size        string `json:"size" yaml:"size"`
	DownloadURL string `json:"download_url" yaml:"download_url"`
	DetailsURL  string `json:"details_url,omitempty" yaml:"details_url,omitempty"`
	// PublishedAt is the raw upstream date, left unparsed.
	PublishedAt string `json:"published_at,omitempty" yaml:"published_at,omitempty"`
	// Votes is the raw vote score, it may be negative.
	Votes string `json:"votes,omitempty" yaml:"votes,omitempty"`
}

func (r *Result) String() string {
	return fmt.Sprintf("%s [S:%d L:%d %s]", r.Title, r.Seeds, r.Leechers, r.Size)
}

// ResultSet is the outcome of a search that reached the index.
// A nil *ResultSet means the search could not be executed.
type ResultSet struct {
	Query Query    `json:"query" yaml:"query"`
	Items []Result `json:"items" yaml:"items"`
}

// Len is safe to call on a nil set.
func (s *ResultSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Items)
}

// Empty reports whether the search ran but found nothing.
func (s *ResultSet) Empty() bool {
	return s != nil && len(s.Items) == 0
}
