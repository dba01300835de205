package storage

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("History", func() {
	var (
		history *History
		dbPath  string
	)

	BeforeEach(func() {
		dbPath = tempfile()
		var err error
		history, err = NewHistory(dbPath)
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		_ = history.Close()
		_ = os.Remove(dbPath)
	})

	It("Should create the parent directory", func() {
		dir, err := os.MkdirTemp("", "history-")
		Expect(err).ToNot(HaveOccurred())
		defer os.RemoveAll(dir)
		nested, err := NewHistory(filepath.Join(dir, "a", "b", "history.db"))
		Expect(err).ToNot(HaveOccurred())
		Expect(nested.Close()).To(Succeed())
	})

	It("Should record and find entries by hash", func() {
		Expect(history.Has("abc")).To(BeFalse())
		entry := &Entry{InfoHash: "abc", Name: "ubuntu", SourceURL: "http://x/1.torrent"}
		Expect(history.Record(entry)).To(Succeed())
		Expect(entry.ID).ToNot(BeEmpty())
		Expect(entry.AddedAt.IsZero()).To(BeFalse())

		Expect(history.Has("abc")).To(BeTrue())
		found, err := history.Get("abc")
		Expect(err).ToNot(HaveOccurred())
		Expect(found.Name).To(Equal("ubuntu"))
		Expect(found.ID).To(Equal(entry.ID))
	})

	It("Should require an info hash", func() {
		Expect(history.Record(&Entry{Name: "x"})).ToNot(Succeed())
	})

	It("Should report missing entries", func() {
		_, err := history.Get("nope")
		Expect(err).To(Equal(ErrNotFound))
	})

	It("Should list newest first", func() {
		now := time.Now().UTC()
		Expect(history.Record(&Entry{InfoHash: "old", AddedAt: now.Add(-time.Hour)})).To(Succeed())
		Expect(history.Record(&Entry{InfoHash: "new", AddedAt: now})).To(Succeed())
		Expect(history.Record(&Entry{InfoHash: "mid", AddedAt: now.Add(-time.Minute)})).To(Succeed())

		entries, err := history.List()
		Expect(err).ToNot(HaveOccurred())
		Expect(entries).To(HaveLen(3))
		Expect(entries[0].InfoHash).To(Equal("new"))
		Expect(entries[1].InfoHash).To(Equal("mid"))
		Expect(entries[2].InfoHash).To(Equal("old"))
	})

	It("Should truncate", func() {
		Expect(history.Record(&Entry{InfoHash: "a"})).To(Succeed())
		Expect(history.Truncate()).To(Succeed())
		entries, err := history.List()
		Expect(err).ToNot(HaveOccurred())
		Expect(entries).To(BeEmpty())
	})
})
