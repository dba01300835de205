package storage

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/boltdb/bolt"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/sp0x/insearch/storage/serializers"
	"github.com/sp0x/insearch/storage/serializers/json"
)

const addedBucket = "added"

var ErrNotFound = errors.New("not found")

// Entry is a torrent that was handed to the client.
type Entry struct {
	ID        string    `json:"id"`
	InfoHash  string    `json:"info_hash"`
	Name      string    `json:"name"`
	SourceURL string    `json:"source_url"`
	Path      string    `json:"path"`
	AddedAt   time.Time `json:"added_at"`
}

// History keeps the torrents that were added, keyed by info hash.
type History struct {
	Database  *bolt.DB
	marshaler serializers.MarshalUnmarshaler
}

// NewHistory opens or creates the history database at dbPath.
func NewHistory(dbPath string) (*History, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}
	db, err := GetBoltDb(dbPath)
	if err != nil {
		return nil, err
	}
	return &History{Database: db, marshaler: json.Serializer}, nil
}

// GetBoltDb opens the db and makes sure our buckets exist.
func GetBoltDb(file string) (*bolt.DB, error) {
	db, err := bolt.Open(file, 0600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(addedBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func (h *History) Has(infoHash string) (bool, error) {
	found := false
	err := h.Database.View(func(tx *bolt.Tx) error {
		found = tx.Bucket([]byte(addedBucket)).Get([]byte(infoHash)) != nil
		return nil
	})
	return found, err
}

func (h *History) Get(infoHash string) (*Entry, error) {
	var entry *Entry
	err := h.Database.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket([]byte(addedBucket)).Get([]byte(infoHash))
		if raw == nil {
			return ErrNotFound
		}
		entry = &Entry{}
		return h.marshaler.Unmarshal(raw, entry)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Record stores the entry, replacing any previous one with the same hash.
func (h *History) Record(entry *Entry) error {
	if entry.InfoHash == "" {
		return errors.New("info hash is required")
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.AddedAt.IsZero() {
		entry.AddedAt = time.Now().UTC()
	}
	data, err := h.marshaler.Marshal(entry)
	if err != nil {
		return err
	}
	return h.Database.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(addedBucket)).Put([]byte(entry.InfoHash), data)
	})
}

// List returns every entry, newest first.
func (h *History) List() ([]Entry, error) {
	entries := []Entry{}
	err := h.Database.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(addedBucket)).ForEach(func(k, v []byte) error {
			var e Entry
			if err := h.marshaler.Unmarshal(v, &e); err != nil {
				log.WithField("key", string(k)).WithError(err).Warn("Skipping unreadable history entry")
				return nil
			}
			entries = append(entries, e)
			return nil
		})
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].AddedAt.After(entries[j].AddedAt)
	})
	return entries, err
}

// Truncate removes all entries.
func (h *History) Truncate() error {
	return h.Database.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(addedBucket)); err != nil {
			return err
		}
		_, err := tx.CreateBucket([]byte(addedBucket))
		return err
	})
}

func (h *History) Close() error {
	return h.Database.Close()
}
