package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"concatident/internal/diag"
	"concatident/internal/project"
	"concatident/internal/source"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит результаты раскрытия шаблонов на диске.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is a cached expansion result. Spans are stored as offsets: the
// FileID is rebound to the file being expanded when the entry is read.
type DiskPayload struct {
	Schema   uint16
	Output   []byte
	Diags    []DiskDiagnostic
	Rounds   int
	Expanded int
}

type DiskDiagnostic struct {
	Severity uint8
	Code     uint16
	Message  string
	Start    uint32
	End      uint32
	Notes    []DiskNote
}

type DiskNote struct {
	Start uint32
	End   uint32
	Msg   string
}

// OpenDiskCache opens the cache under $XDG_CACHE_HOME/app (or ~/.cache/app).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt opens a cache rooted at dir.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string { return c.dir }

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := key.Hex()
	// подкаталог по первым двум символам, чтобы не держать всё в одной папке
	return filepath.Join(c.dir, "expand", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key project.Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads a payload. A missing entry or one from another schema is a miss.
func (c *DiskCache) Get(key project.Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, fmt.Errorf("decode cache entry: %w", err)
	}
	return out.Schema == diskCacheSchemaVersion, nil
}

// DropAll removes every cached entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименовываем и удаляем, чтобы параллельный процесс не увидел полупустой каталог
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

// cacheKey covers the file content, its name (the header mentions it) and every
// option that changes output.
func cacheKey(opts Options, file *source.File) project.Digest {
	return project.Combine(project.Digest(file.Hash), opts.cacheDigest(),
		project.HashString(filepath.Base(file.Path)))
}

func loadCached(opts Options, file *source.File, res *Result) bool {
	var payload DiskPayload
	ok, err := opts.Cache.Get(cacheKey(opts, file), &payload)
	if err != nil || !ok {
		return false
	}
	res.Output = payload.Output
	res.Rounds = payload.Rounds
	res.Expanded = payload.Expanded
	res.Cached = true
	for _, d := range payload.Diags {
		item := diag.New(diag.Severity(d.Severity), diag.Code(d.Code),
			source.Span{File: file.ID, Start: d.Start, End: d.End}, d.Message)
		for _, n := range d.Notes {
			item = item.WithNote(source.Span{File: file.ID, Start: n.Start, End: n.End}, n.Msg)
		}
		res.Bag.Add(item)
	}
	return true
}

// storeCached is best effort: a failed write only costs a cache miss later.
func storeCached(opts Options, file *source.File, res *Result) {
	payload := &DiskPayload{
		Schema:   diskCacheSchemaVersion,
		Output:   res.Output,
		Rounds:   res.Rounds,
		Expanded: res.Expanded,
	}
	for _, d := range res.Bag.Items() {
		dd := DiskDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
		for _, n := range d.Notes {
			dd.Notes = append(dd.Notes, DiskNote{Start: n.Span.Start, End: n.Span.End, Msg: n.Msg})
		}
		payload.Diags = append(payload.Diags, dd)
	}
	_ = opts.Cache.Put(cacheKey(opts, file), payload)
}
