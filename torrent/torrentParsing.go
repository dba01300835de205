package torrent

import (
	"bytes"
	"crypto/sha1"
	"encoding/base32"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/jackpal/bencode-go"
)

var (
	rxMagnet = regexp.MustCompile("^(stream-)?magnet:")
	rxHex    = regexp.MustCompile("^[a-fA-F0-9]{40}$")
	rxBase32 = regexp.MustCompile("^[a-zA-Z2-7]{32}$")
)

var ErrInvalidTorrent = errors.New("invalid torrent")

type Definition struct {
	Announce     string         `bencode:"announce"`
	AnnounceList [][]string     `bencode:"announce-list"`
	Comment      string         `bencode:"comment"`
	CreatedBy    string         `bencode:"created by"`
	CreationDate int64          `bencode:"creation date"`
	Encoding     string         `bencode:"encoding"`
	Info         DefinitionInfo `bencode:"info"`
	InfoHash     string         `bencode:"-"`
}

type DefinitionInfo struct {
	Files       []DefinitionFile `bencode:"files"`
	Length      int64            `bencode:"length"`
	Name        string           `bencode:"name"`
	PieceLength int64            `bencode:"piece length"`
	Pieces      string           `bencode:"pieces"`
	Private     int64            `bencode:"private"`
}

type DefinitionFile struct {
	Length int64    `bencode:"length"`
	Path   []string `bencode:"path"`
}

func (d *Definition) ToMagnetURL() string {
	magnet := fmt.Sprintf("magnet:?xt=urn:btih:%s", d.InfoHash)
	if d.Info.Name != "" {
		magnet += "&dn=" + url.QueryEscape(d.Info.Name)
	}
	return magnet
}

// TotalSize is the size of the content, for both single and multi file torrents.
func (d *Definition) TotalSize() int64 {
	if len(d.Info.Files) == 0 {
		return d.Info.Length
	}
	total := int64(0)
	for _, f := range d.Info.Files {
		total += f.Length
	}
	return total
}

// IsMagnet tells if the link is a magnet uri.
func IsMagnet(link string) bool {
	return rxMagnet.MatchString(link)
}

// ParseTorrent decodes a metainfo file and computes its info hash.
func ParseTorrent(buff []byte) (*Definition, error) {
	if len(buff) == 0 || buff[0] != 'd' {
		return nil, ErrInvalidTorrent
	}
	var def Definition
	if err := bencode.Unmarshal(bytes.NewReader(buff), &def); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTorrent, err)
	}
	hash, err := infoHash(buff)
	if err != nil {
		return nil, err
	}
	def.InfoHash = hash
	return &def, nil
}

// infoHash hashes the info dictionary as found in the file, fields the
// Definition doesn't know about are part of the hash too.
func infoHash(buff []byte) (string, error) {
	raw, err := bencode.Decode(bytes.NewReader(buff))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTorrent, err)
	}
	root, ok := raw.(map[string]interface{})
	if !ok {
		return "", ErrInvalidTorrent
	}
	info, ok := root["info"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("%w: no info dictionary", ErrInvalidTorrent)
	}
	encoded := &bytes.Buffer{}
	if err := bencode.Marshal(encoded, info); err != nil {
		return "", err
	}
	sum := sha1.Sum(encoded.Bytes())
	return hex.EncodeToString(sum[:]), nil
}

// ParseMagnet reads the info hash and display name out of a magnet uri.
// Base32 hashes are converted to hex.
func ParseMagnet(m string) (*Definition, error) {
	m = strings.TrimPrefix(m, "stream-")
	u, err := url.Parse(m)
	if err != nil || u.Scheme != "magnet" {
		return nil, fmt.Errorf("%w: not a magnet uri", ErrInvalidTorrent)
	}
	params := u.Query()
	for _, xt := range params["xt"] {
		if !strings.HasPrefix(xt, "urn:btih:") {
			continue
		}
		hash, err := normalizeHash(strings.TrimPrefix(xt, "urn:btih:"))
		if err != nil {
			return nil, err
		}
		def := &Definition{InfoHash: hash}
		def.Info.Name = params.Get("dn")
		def.AnnounceList = [][]string{}
		for _, tr := range params["tr"] {
			def.AnnounceList = append(def.AnnounceList, []string{tr})
		}
		if len(def.AnnounceList) > 0 {
			def.Announce = def.AnnounceList[0][0]
		}
		return def, nil
	}
	return nil, fmt.Errorf("%w: magnet has no btih", ErrInvalidTorrent)
}

func normalizeHash(h string) (string, error) {
	switch {
	case rxHex.MatchString(h):
		return strings.ToLower(h), nil
	case rxBase32.MatchString(h):
		raw, err := base32.StdEncoding.DecodeString(strings.ToUpper(h))
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidTorrent, err)
		}
		return hex.EncodeToString(raw), nil
	}
	return "", fmt.Errorf("%w: bad info hash %q", ErrInvalidTorrent, h)
}
