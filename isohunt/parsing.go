package isohunt

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
)

// Upstream field names. The casing is the index's own and is matched exactly.
const (
	fieldTitle    = "title"
	fieldSeeds    = "Seeds"
	fieldLeechers = "leechers"
	fieldSize     = "size"
	fieldURL      = "enclosure_url"
	fieldLink     = "link"
	fieldPubDate  = "pubDate"
	fieldVotes    = "votes"
)

var errMissingField = errors.New("missing mandatory field")

type payload struct {
	Items *struct {
		List []json.RawMessage `json:"list"`
	} `json:"items"`
}

// parseResults decodes a response body. A body that isn't the expected
// shape yields no items, never an error.
func parseResults(body []byte) []Result {
	results := []Result{}
	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		log.WithError(err).Debug("Response is not a valid search payload")
		return results
	}
	if p.Items == nil {
		log.Debug("Response has no item list")
		return results
	}
	for i, raw := range p.Items.List {
		res, err := parseItem(raw)
		if err != nil {
			log.WithFields(log.Fields{"index": i, "error": err}).Debug("Skipping search item")
			if log.IsLevelEnabled(log.TraceLevel) {
				log.Trace(spew.Sdump(string(raw)))
			}
			continue
		}
		results = append(results, *res)
	}
	return results
}

// parseItem maps one raw item. Fields are looked up by their exact upstream name,
// encoding/json's case-insensitive struct matching would blur Seeds and seeds.
func parseItem(raw json.RawMessage) (*Result, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	title, ok := textValue(fields[fieldTitle])
	if !ok {
		return nil, errField(fieldTitle)
	}
	size, ok := textValue(fields[fieldSize])
	if !ok {
		return nil, errField(fieldSize)
	}
	downloadURL, ok := textValue(fields[fieldURL])
	if !ok {
		return nil, errField(fieldURL)
	}
	res := &Result{
		Title:       title,
		Size:        size,
		DownloadURL: downloadURL,
	}
	res.DetailsURL, _ = textValue(fields[fieldLink])
	res.PublishedAt, _ = textValue(fields[fieldPubDate])
	res.Votes, _ = textValue(fields[fieldVotes])

	seeds, seedsErr := countValue(fields[fieldSeeds])
	leechers, leechersErr := countValue(fields[fieldLeechers])
	if seedsErr == nil && leechersErr == nil {
		res.Seeds = seeds
		res.Leechers = leechers
	}
	return res, nil
}

func errField(name string) error {
	return &fieldError{name: name}
}

type fieldError struct {
	name string
}

func (e *fieldError) Error() string {
	return errMissingField.Error() + ": " + e.name
}

func (e *fieldError) Unwrap() error {
	return errMissingField
}

// textValue reads a JSON string or number as text. Null, missing and
// composite values are reported as absent.
func textValue(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", false
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	case 'n', '{', '[':
		return "", false
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return "", false
		}
		return n.String(), true
	}
}

// countValue reads a non-negative integer given either as a number or as a numeric string.
func countValue(raw json.RawMessage) (int, error) {
	s, ok := textValue(raw)
	if !ok {
		return 0, errors.New("no value")
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.New("negative count")
	}
	return n, nil
}
