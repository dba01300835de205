package isohunt

import (
	"fmt"
	"strconv"
	"strings"
)

// AgeFilter limits results to torrents published within the given number of days.
type AgeFilter int

const (
	AgeAny   AgeFilter = 0
	AgeDay   AgeFilter = 1
	AgeWeek  AgeFilter = 7
	AgeMonth AgeFilter = 30
	AgeYear  AgeFilter = 365
)

var ageNames = map[string]AgeFilter{
	"any":   AgeAny,
	"day":   AgeDay,
	"week":  AgeWeek,
	"month": AgeMonth,
	"year":  AgeYear,
}

// Valid reports whether the upstream understands this age value.
func (a AgeFilter) Valid() bool {
	switch a {
	case AgeAny, AgeDay, AgeWeek, AgeMonth, AgeYear:
		return true
	}
	return false
}

func (a AgeFilter) String() string {
	for name, v := range ageNames {
		if v == a {
			return name
		}
	}
	return strconv.Itoa(int(a))
}

// ParseAge reads an age filter either by days (0, 1, 7, 30, 365) or by name (any, day, week, month, year).
func ParseAge(s string) (AgeFilter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return AgeAny, nil
	}
	if a, ok := ageNames[s]; ok {
		return a, nil
	}
	days, err := strconv.Atoi(s)
	if err != nil {
		return AgeAny, fmt.Errorf("invalid age filter %q", s)
	}
	a := AgeFilter(days)
	if !a.Valid() {
		return AgeAny, fmt.Errorf("unsupported age filter %d, use one of 0, 1, 7, 30, 365", days)
	}
	return a, nil
}

// Query is a single search request. Build a new one per search.
type Query struct {
	Text   string    `json:"text" yaml:"text"`
	MaxAge AgeFilter `json:"max_age" yaml:"max_age"`
}

// NewQuery creates a query, an empty text means no filter on the terms.
func NewQuery(text string, maxAge AgeFilter) (*Query, error) {
	if !maxAge.Valid() {
		return nil, fmt.Errorf("unsupported age filter %d", maxAge)
	}
	return &Query{Text: text, MaxAge: maxAge}, nil
}

func (q Query) String() string {
	if q.MaxAge == AgeAny {
		return fmt.Sprintf("%q", q.Text)
	}
	return fmt.Sprintf("%q (last %d days)", q.Text, q.MaxAge)
}
