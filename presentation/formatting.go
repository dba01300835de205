package presentation

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/bcampbell/fuzzytime"
	"github.com/dustin/go-humanize"
)

// PlainTitle drops the markup the index puts around matched terms, <b>ubuntu</b> 9.04 becomes ubuntu 9.04.
func PlainTitle(title string) string {
	if !strings.ContainsAny(title, "<&") {
		return title
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(title))
	if err != nil {
		return title
	}
	return strings.TrimSpace(doc.Text())
}

// ParsePublished reads the upstream publish date. It's usually RFC-2822,
// anything else goes through fuzzy date extraction.
func ParsePublished(src string) (time.Time, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return time.Time{}, fmt.Errorf("no date")
	}
	for _, layout := range []string{time.RFC1123Z, time.RFC1123, "Mon, 2 Jan 2006 15:04:05 -0700"} {
		if t, err := time.Parse(layout, src); err == nil {
			return t, nil
		}
	}
	dt, _, err := fuzzytime.USContext.Extract(src)
	if err != nil {
		return time.Time{}, fmt.Errorf("error extracting date from %q: %v", src, err)
	}
	if !dt.HasFullDate() {
		return time.Time{}, fmt.Errorf("found only partial date %v", dt.ISOFormat())
	}
	if dt.Time.Empty() {
		dt.Time.SetHour(0)
		dt.Time.SetMinute(0)
	}
	if !dt.Time.HasSecond() {
		dt.Time.SetSecond(0)
	}
	if !dt.HasTZOffset() {
		dt.Time.SetTZOffset(0)
	}
	return time.Parse("2006-01-02T15:04:05Z07:00", dt.ISOFormat())
}

// Age renders the publish date relative to now, or the raw value if it can't be read.
func Age(published string, now time.Time) string {
	t, err := ParsePublished(published)
	if err != nil {
		return published
	}
	return humanize.RelTime(t, now, "ago", "from now")
}
