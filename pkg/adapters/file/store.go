// Package file implements core.Store on a single local ledger file.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/stockroom/pkg/core"
)

// Store persists ledger snapshots to one file, with the codec chosen by the
// file extension (.json by default, .yaml/.yml supported).
type Store struct {
	Path   string
	config Config
	codec  Codec
	ext    string

	mu            sync.Mutex
	lastSave      time.Time
	watcherActive bool
}

// Config holds the configuration for the file store.
type Config struct {
	Path      string
	MustExist bool
	ReadOnly  bool
	Logger    *slog.Logger

	// Codecs maps file extensions to codecs. Nil means DefaultCodecs().
	Codecs map[string]Codec

	// EventBuffer is the watcher channel buffer. Zero means default (16).
	EventBuffer int

	// ErrorHandler is invoked for runtime watcher failures. Optional.
	ErrorHandler func(error)
}

// NewStore creates a file-backed store for the given config.
func NewStore(config Config) (*Store, error) {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	codecs := config.Codecs
	if codecs == nil {
		codecs = DefaultCodecs()
	}
	ext := strings.ToLower(filepath.Ext(config.Path))
	codec, ok := codecs[ext]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported ledger file extension %q", core.ErrInvalidArgument, ext)
	}

	if config.MustExist {
		if _, err := os.Stat(config.Path); os.IsNotExist(err) {
			return nil, fmt.Errorf("ledger file does not exist: %s", config.Path)
		}
	}

	return &Store{Path: config.Path, config: config, codec: codec, ext: ext}, nil
}

// Load reads the persisted snapshot and returns a validated mapping.
// A missing file yields an empty mapping. A file that cannot be parsed fails
// with core.ErrBadFormat; a parseable file whose top level is not an object
// fails with core.ErrInvalidArgument. Individual entries whose value is not
// an integer are skipped with a warning.
func (s *Store) Load(ctx context.Context) (map[string]int, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		s.config.Logger.Warn("ledger file not found, starting empty", "path", s.Path)
		return map[string]int{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger file: %w", err)
	}

	raw, err := s.codec.Decode(data)
	if err != nil {
		s.config.Logger.Error("failed to decode ledger file", "path", s.Path, "error", err)
		return nil, err
	}

	validated := make(map[string]int, len(raw))
	for name, value := range raw {
		qty, ok := asInt(value)
		if !ok {
			s.config.Logger.Warn("skipping invalid entry", "item", name, "value", value)
			continue
		}
		validated[name] = qty
	}

	s.config.Logger.Info("ledger loaded", "items", len(validated), "path", s.Path)
	return validated, nil
}

// Save persists the snapshot, replacing the previous file contents. The write
// is atomic (temp file + rename). Read-only stores refuse with ErrReadOnly.
func (s *Store) Save(ctx context.Context, snapshot map[string]int) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}

	data, err := s.codec.Encode(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}

	s.markSelfWrite()
	if err := writeFileAtomic(s.Path, data, 0644); err != nil {
		return err
	}

	s.config.Logger.Info("ledger saved", "items", len(snapshot), "path", s.Path)
	return nil
}

// asInt reports whether value is an integer, converting it if so. Floats are
// rejected even when integral ("2.0" is not an integer quantity), as are
// bools and strings.
func asInt(value any) (int, bool) {
	switch v := value.(type) {
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}

// markSelfWrite records that the next filesystem event on the ledger file was
// caused by this process, so the watcher can suppress it.
func (s *Store) markSelfWrite() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSave = time.Now()
}

// isSelfWrite reports whether a filesystem event observed at t is close enough
// to our own last save to be an echo of it.
func (s *Store) isSelfWrite(t time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.lastSave.IsZero() && t.Sub(s.lastSave) < selfWriteWindow
}

const selfWriteWindow = 250 * time.Millisecond
