package driver

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"scooter/internal/ir"
	"scooter/internal/project"
	"scooter/internal/source"
	"scooter/internal/version"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// CacheKey addresses one compiled unit: source hash salted with the
// compiler version, cache schema and the options that change the outcome.
type CacheKey = project.Digest

// KeyFor computes the cache key of a loaded file compiled with opts.
func KeyFor(f *source.File, opts Options) CacheKey {
	schema := []byte{byte(diskCacheSchemaVersion >> 8), byte(diskCacheSchemaVersion)}
	var checks byte
	if opts.NoMain {
		checks |= 1
	}
	return project.Combine(project.Digest(f.Hash), []byte(version.Version), schema, []byte{checks})
}

// DiskCache хранит IR успешно скомпилированных файлов, ключ - CacheKey.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the on-disk record. IR holds ir.Encode output.
type DiskPayload struct {
	Schema uint16 `msgpack:"schema"`
	Path   string `msgpack:"path"`
	IR     []byte `msgpack:"ir"`
}

// OpenDiskCache opens the cache under $XDG_CACHE_HOME/<app> (or ~/.cache/<app>).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCache(filepath.Join(base, app))
}

// NewDiskCache opens a cache rooted at dir, creating it if needed.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key CacheKey) string {
	return filepath.Join(c.dir, "units", key.String()+".mp")
}

// Put writes root for key. The file is replaced atomically.
func (c *DiskCache) Put(key CacheKey, path string, root *ir.Root) error {
	if c == nil {
		return nil
	}
	var buf bytes.Buffer
	if err := ir.Encode(&buf, root); err != nil {
		return err
	}
	payload := DiskPayload{Schema: diskCacheSchemaVersion, Path: path, IR: buf.Bytes()}

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
	tmp := f.Name()
	defer os.Remove(tmp) // после Rename файла уже нет

	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, p)
}

// Get returns the cached root for key. A missing entry or one with another
// schema is a miss, not an error.
func (c *DiskCache) Get(key CacheKey) (*ir.Root, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var payload DiskPayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, false, fmt.Errorf("cache entry %s: %w", key, err)
	}
	if payload.Schema != diskCacheSchemaVersion {
		return nil, false, nil
	}
	root, err := ir.Decode(bytes.NewReader(payload.IR))
	if err != nil {
		return nil, false, fmt.Errorf("cache entry %s: %w", key, err)
	}
	return root, true, nil
}

// DropAll removes every cached unit.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "units"))
}
