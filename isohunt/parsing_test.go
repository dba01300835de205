package isohunt

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/onsi/gomega"
)

func TestParseResults_SeedsNotANumber(t *testing.T) {
	g := gomega.NewWithT(t)
	body := `{"items":{"list":[{"title":"A","Seeds":"not-a-number","leechers":"3","size":"1GB","enclosure_url":"u1"}]}}`
	results := parseResults([]byte(body))
	g.Expect(results).To(gomega.HaveLen(1))
	g.Expect(results[0].Seeds).To(gomega.Equal(0))
	g.Expect(results[0].Leechers).To(gomega.Equal(0))
}

func TestParseResults_LeechersNotANumber(t *testing.T) {
	g := gomega.NewWithT(t)
	body := `{"items":{"list":[{"title":"A","Seeds":"40","leechers":"","size":"1GB","enclosure_url":"u1"}]}}`
	results := parseResults([]byte(body))
	g.Expect(results).To(gomega.HaveLen(1))
	g.Expect(results[0].Seeds).To(gomega.Equal(0))
	g.Expect(results[0].Leechers).To(gomega.Equal(0))
}

func TestParseResults_NumericCounts(t *testing.T) {
	g := gomega.NewWithT(t)
	body := `{"items":{"list":[{"title":"A","Seeds":40,"leechers":2,"size":"1GB","enclosure_url":"u1","votes":-3}]}}`
	results := parseResults([]byte(body))
	g.Expect(results).To(gomega.HaveLen(1))
	g.Expect(results[0].Seeds).To(gomega.Equal(40))
	g.Expect(results[0].Leechers).To(gomega.Equal(2))
	g.Expect(results[0].Votes).To(gomega.Equal("-3"))
}

func TestParseResults_NegativeCountsReset(t *testing.T) {
	g := gomega.NewWithT(t)
	body := `{"items":{"list":[{"title":"A","Seeds":"-1","leechers":"9","size":"1GB","enclosure_url":"u1"}]}}`
	results := parseResults([]byte(body))
	g.Expect(results[0].Seeds).To(gomega.Equal(0))
	g.Expect(results[0].Leechers).To(gomega.Equal(0))
}

func TestParseResults_MissingMandatoryFields(t *testing.T) {
	g := gomega.NewWithT(t)
	body := `{"items":{"list":[
		{"Seeds":"1","leechers":"1","size":"1MB","enclosure_url":"no-title"},
		{"title":"ok-1","Seeds":"1","leechers":"1","size":"1MB","enclosure_url":"u1"},
		{"title":"no-size","Seeds":"1","leechers":"1","enclosure_url":"u2"},
		{"title":"no-url","Seeds":"1","leechers":"1","size":"1MB"},
		{"title":null,"Seeds":"1","leechers":"1","size":"1MB","enclosure_url":"u3"},
		"garbage",
		{"title":"ok-2","size":"2MB","enclosure_url":"u4"}]}}`
	results := parseResults([]byte(body))
	g.Expect(results).To(gomega.HaveLen(2))
	g.Expect(results[0].Title).To(gomega.Equal("ok-1"))
	g.Expect(results[1].Title).To(gomega.Equal("ok-2"))
	g.Expect(results[1].Seeds).To(gomega.Equal(0))
}

func TestParseResults_ExactFieldCasing(t *testing.T) {
	g := gomega.NewWithT(t)
	// Lower-case seeds and capitalized Leechers aren't the index's names.
	body := `{"items":{"list":[{"title":"A","seeds":"12","Leechers":"3","size":"1GB","enclosure_url":"u1"}]}}`
	results := parseResults([]byte(body))
	g.Expect(results).To(gomega.HaveLen(1))
	g.Expect(results[0].Seeds).To(gomega.Equal(0))
	g.Expect(results[0].Leechers).To(gomega.Equal(0))
}

func TestParseResults_Malformed(t *testing.T) {
	g := gomega.NewWithT(t)
	for _, body := range []string{"", "null", "[]", `{"items":[]}`, `{"items":{"list":{}}}`, "{"} {
		results := parseResults([]byte(body))
		g.Expect(results).ToNot(gomega.BeNil(), body)
		g.Expect(results).To(gomega.BeEmpty(), body)
	}
}

func TestParseItem_FieldError(t *testing.T) {
	g := gomega.NewWithT(t)
	_, err := parseItem(json.RawMessage(`{"title":"A","size":"1"}`))
	g.Expect(err).ToNot(gomega.BeNil())
	g.Expect(errors.Is(err, errMissingField)).To(gomega.BeTrue())
	g.Expect(err.Error()).To(gomega.ContainSubstring(fieldURL))
}

func TestTextValue(t *testing.T) {
	g := gomega.NewWithT(t)
	cases := map[string]struct {
		value string
		ok    bool
	}{
		`"abc"`:   {"abc", true},
		`12`:      {"12", true},
		`-4`:      {"-4", true},
		`null`:    {"", false},
		`{"a":1}`: {"", false},
		`[1]`:     {"", false},
		``:        {"", false},
		`true`:    {"", false},
	}
	for raw, expected := range cases {
		v, ok := textValue(json.RawMessage(raw))
		g.Expect(v).To(gomega.Equal(expected.value), raw)
		g.Expect(ok).To(gomega.Equal(expected.ok), raw)
	}
}
