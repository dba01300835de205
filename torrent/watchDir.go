package torrent

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/sp0x/insearch/requests"
	"github.com/sp0x/insearch/storage"
)

// Recorder remembers which torrents were already added.
type Recorder interface {
	Has(infoHash string) (bool, error)
	Record(entry *storage.Entry) error
}

// WatchDirAdder drops torrents into a directory that the BitTorrent client
// watches for new files. Magnets are written as .magnet files.
type WatchDirAdder struct {
	dir      string
	client   *http.Client
	recorder Recorder
	mux      sync.Mutex
}

// NewWatchDirAdder creates the watch directory if needed. The recorder is optional.
func NewWatchDirAdder(dir string, client *http.Client, recorder Recorder) (*WatchDirAdder, error) {
	if dir == "" {
		return nil, fmt.Errorf("watch directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &WatchDirAdder{dir: dir, client: client, recorder: recorder}, nil
}

func (w *WatchDirAdder) Dir() string {
	return w.dir
}

func (w *WatchDirAdder) AddTorrentURL(ctx context.Context, torrentURL string) (*Added, error) {
	def, content, ext, err := w.resolve(ctx, torrentURL)
	if err != nil {
		return nil, err
	}
	added := &Added{URL: torrentURL, InfoHash: def.InfoHash, Name: def.Info.Name}
	w.mux.Lock()
	defer w.mux.Unlock()
	if w.recorder != nil {
		seen, err := w.recorder.Has(def.InfoHash)
		if err != nil {
			return nil, err
		}
		if seen {
			added.Duplicate = true
			log.WithFields(log.Fields{"hash": def.InfoHash, "name": def.Info.Name}).Info("Torrent was already added")
			return added, nil
		}
	}
	target := filepath.Join(w.dir, def.InfoHash+ext)
	if err := writeFileAtomic(target, content); err != nil {
		return nil, err
	}
	added.Path = target
	if w.recorder != nil {
		err = w.recorder.Record(&storage.Entry{
			InfoHash:  def.InfoHash,
			Name:      def.Info.Name,
			SourceURL: torrentURL,
			Path:      target,
		})
		if err != nil {
			log.WithError(err).Warn("Could not record added torrent")
		}
	}
	log.WithFields(log.Fields{"hash": def.InfoHash, "path": target}).Info("Added torrent")
	return added, nil
}

// resolve gets the torrent behind the url, along with the file content to write.
func (w *WatchDirAdder) resolve(ctx context.Context, torrentURL string) (*Definition, []byte, string, error) {
	if IsMagnet(torrentURL) {
		def, err := ParseMagnet(torrentURL)
		if err != nil {
			return nil, nil, "", err
		}
		return def, []byte(torrentURL), ".magnet", nil
	}
	u, err := url.Parse(torrentURL)
	if err != nil {
		return nil, nil, "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, nil, "", fmt.Errorf("unsupported torrent url scheme %q", u.Scheme)
	}
	body, err := requests.Get(ctx, w.client, torrentURL, map[string]string{
		"Accept": "application/x-bittorrent",
	})
	if err != nil {
		return nil, nil, "", err
	}
	def, err := ParseTorrent(body)
	if err != nil {
		return nil, nil, "", err
	}
	return def, body, ".torrent", nil
}

func writeFileAtomic(target string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(target), ".insearch-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), target)
}
