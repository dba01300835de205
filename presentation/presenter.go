package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v2"

	"github.com/sp0x/insearch/isohunt"
)

// Presenter shows a search outcome to the user.
type Presenter interface {
	Render(w io.Writer, set *isohunt.ResultSet) error
}

// View is the serialized form of a search outcome.
type View struct {
	Query   *isohunt.Query   `json:"query,omitempty" yaml:"query,omitempty"`
	Failed  bool             `json:"failed" yaml:"failed"`
	Results []isohunt.Result `json:"results" yaml:"results"`
}

// NewView keeps the difference between a failed search and one without hits.
func NewView(set *isohunt.ResultSet) View {
	if set == nil {
		return View{Failed: true, Results: []isohunt.Result{}}
	}
	q := set.Query
	results := set.Items
	if results == nil {
		results = []isohunt.Result{}
	}
	return View{Query: &q, Results: results}
}

// NewPresenter picks a presenter by output format: table, json or yaml.
func NewPresenter(format string) (Presenter, error) {
	switch format {
	case "", "table":
		return &TablePresenter{Now: time.Now}, nil
	case "json":
		return jsonPresenter{}, nil
	case "yaml":
		return yamlPresenter{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// Select maps 1-based row numbers to the download urls of the rows.
func Select(set *isohunt.ResultSet, rows []int) ([]string, error) {
	urls := make([]string, 0, len(rows))
	for _, row := range rows {
		if row < 1 || row > set.Len() {
			return nil, fmt.Errorf("row %d is out of range, there are %d results", row, set.Len())
		}
		urls = append(urls, set.Items[row-1].DownloadURL)
	}
	return urls, nil
}

// TablePresenter prints the results as aligned columns.
type TablePresenter struct {
	Now func() time.Time
}

func (t *TablePresenter) Render(w io.Writer, set *isohunt.ResultSet) error {
	if set == nil {
		_, err := fmt.Fprintln(w, "Search failed, the index could not be reached.")
		return err
	}
	if len(set.Items) == 0 {
		_, err := fmt.Fprintf(w, "No results for %s.\n", set.Query)
		return err
	}
	now := time.Now()
	if t.Now != nil {
		now = t.Now()
	}
	tabWr := new(tabwriter.Writer)
	tabWr.Init(w, 0, 8, 1, '\t', 0)
	_, _ = fmt.Fprintln(tabWr, "#\tTitle\tSeeds\tLeechers\tSize\tAge\tVotes")
	for i, r := range set.Items {
		_, _ = fmt.Fprintf(tabWr, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1, PlainTitle(r.Title), humanize.Comma(int64(r.Seeds)), humanize.Comma(int64(r.Leechers)),
			r.Size, Age(r.PublishedAt, now), r.Votes)
	}
	return tabWr.Flush()
}

type jsonPresenter struct{}

func (jsonPresenter) Render(w io.Writer, set *isohunt.ResultSet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewView(set))
}

type yamlPresenter struct{}

func (yamlPresenter) Render(w io.Writer, set *isohunt.ResultSet) error {
	out, err := yaml.Marshal(NewView(set))
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
