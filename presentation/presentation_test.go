package presentation

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/onsi/gomega"
	"gopkg.in/yaml.v2"

	"github.com/sp0x/insearch/isohunt"
)

var now = time.Date(2009, time.July, 1, 12, 0, 0, 0, time.UTC)

func sampleSet() *isohunt.ResultSet {
	return &isohunt.ResultSet{
		Query: isohunt.Query{Text: "ubuntu", MaxAge: isohunt.AgeMonth},
		Items: []isohunt.Result{
			{Title: "<b>Ubuntu</b> 9.04 Desktop", Seeds: 1520, Leechers: 3, Size: "698.8 MB",
				DownloadURL: "http://isohunt.com/download/1/ubuntu.torrent", PublishedAt: "Thu, 25 Jun 2009 12:00:00 GMT", Votes: "-2"},
			{Title: "Ubuntu Server", Seeds: 4, Leechers: 0, Size: "600 MB",
				DownloadURL: "http://isohunt.com/download/2/server.torrent", PublishedAt: "sometime"},
		},
	}
}

func TestPlainTitle(t *testing.T) {
	g := gomega.NewWithT(t)
	g.Expect(PlainTitle("<b>Ubuntu</b> 9.04")).To(gomega.Equal("Ubuntu 9.04"))
	g.Expect(PlainTitle("Tom &amp; Jerry")).To(gomega.Equal("Tom & Jerry"))
	g.Expect(PlainTitle("plain")).To(gomega.Equal("plain"))
}

func TestParsePublished(t *testing.T) {
	g := gomega.NewWithT(t)
	pub, err := ParsePublished("Thu, 25 Jun 2009 12:00:00 +0000")
	g.Expect(err).To(gomega.BeNil())
	g.Expect(pub.Equal(time.Date(2009, time.June, 25, 12, 0, 0, 0, time.UTC))).To(gomega.BeTrue())

	_, err = ParsePublished("")
	g.Expect(err).ToNot(gomega.BeNil())
}

func TestAge(t *testing.T) {
	g := gomega.NewWithT(t)
	g.Expect(Age("Thu, 25 Jun 2009 12:00:00 +0000", now)).To(gomega.Equal("6 days ago"))
	g.Expect(Age("sometime", now)).To(gomega.Equal("sometime"))
}

func TestParsePicks(t *testing.T) {
	g := gomega.NewWithT(t)
	picks, err := ParsePicks("1, 3-5,4,,2")
	g.Expect(err).To(gomega.BeNil())
	g.Expect(picks).To(gomega.Equal([]int{1, 3, 4, 5, 2}))

	picks, err = ParsePicks("")
	g.Expect(err).To(gomega.BeNil())
	g.Expect(picks).To(gomega.BeEmpty())

	for _, bad := range []string{"0", "a", "3-1", "-2", "1-x"} {
		_, err = ParsePicks(bad)
		g.Expect(err).ToNot(gomega.BeNil(), bad)
	}
}

func TestSelect(t *testing.T) {
	g := gomega.NewWithT(t)
	urls, err := Select(sampleSet(), []int{2, 1})
	g.Expect(err).To(gomega.BeNil())
	g.Expect(urls).To(gomega.Equal([]string{
		"http://isohunt.com/download/2/server.torrent",
		"http://isohunt.com/download/1/ubuntu.torrent",
	}))

	_, err = Select(sampleSet(), []int{3})
	g.Expect(err).ToNot(gomega.BeNil())
	_, err = Select(nil, []int{1})
	g.Expect(err).ToNot(gomega.BeNil())
}

func TestTablePresenter(t *testing.T) {
	g := gomega.NewWithT(t)
	p := &TablePresenter{Now: func() time.Time { return now }}
	buf := &bytes.Buffer{}
	g.Expect(p.Render(buf, sampleSet())).To(gomega.Succeed())
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	g.Expect(lines).To(gomega.HaveLen(3))
	g.Expect(lines[0]).To(gomega.HavePrefix("#"))
	g.Expect(lines[1]).To(gomega.ContainSubstring("Ubuntu 9.04 Desktop"))
	g.Expect(lines[1]).To(gomega.ContainSubstring("1,520"))
	g.Expect(lines[1]).To(gomega.ContainSubstring("6 days ago"))
	g.Expect(lines[1]).ToNot(gomega.ContainSubstring("<b>"))

	buf.Reset()
	g.Expect(p.Render(buf, nil)).To(gomega.Succeed())
	g.Expect(buf.String()).To(gomega.ContainSubstring("Search failed"))

	buf.Reset()
	g.Expect(p.Render(buf, &isohunt.ResultSet{Query: isohunt.Query{Text: "zzz"}})).To(gomega.Succeed())
	g.Expect(buf.String()).To(gomega.ContainSubstring("No results"))
}

func TestJSONPresenter(t *testing.T) {
	g := gomega.NewWithT(t)
	p, err := NewPresenter("json")
	g.Expect(err).To(gomega.BeNil())

	buf := &bytes.Buffer{}
	g.Expect(p.Render(buf, sampleSet())).To(gomega.Succeed())
	var view View
	g.Expect(json.Unmarshal(buf.Bytes(), &view)).To(gomega.Succeed())
	g.Expect(view.Failed).To(gomega.BeFalse())
	g.Expect(view.Results).To(gomega.HaveLen(2))
	g.Expect(view.Query.MaxAge).To(gomega.Equal(isohunt.AgeMonth))

	buf.Reset()
	g.Expect(p.Render(buf, nil)).To(gomega.Succeed())
	g.Expect(buf.String()).To(gomega.ContainSubstring(`"failed": true`))

	buf.Reset()
	g.Expect(p.Render(buf, &isohunt.ResultSet{})).To(gomega.Succeed())
	g.Expect(buf.String()).To(gomega.ContainSubstring(`"results": []`))
	g.Expect(buf.String()).To(gomega.ContainSubstring(`"failed": false`))
}

func TestYAMLPresenter(t *testing.T) {
	g := gomega.NewWithT(t)
	p, err := NewPresenter("yaml")
	g.Expect(err).To(gomega.BeNil())
	buf := &bytes.Buffer{}
	g.Expect(p.Render(buf, sampleSet())).To(gomega.Succeed())
	var view View
	g.Expect(yaml.Unmarshal(buf.Bytes(), &view)).To(gomega.Succeed())
	g.Expect(view.Results[1].Title).To(gomega.Equal("Ubuntu Server"))

	_, err = NewPresenter("xml")
	g.Expect(err).ToNot(gomega.BeNil())
}
