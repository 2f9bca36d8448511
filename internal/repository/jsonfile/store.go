// Package jsonfile implements the content repositories on top of flat JSON
// files. Every call re-reads and re-decodes its file; nothing is cached.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Default file names inside the content directory.
const (
	EventsFile      = "events.json"
	AmbassadorsFile = "ambassadors.json"
	BlogFile        = "blog.json"
)

// Store locates content files under a directory.
type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore returns a Store reading files from dir.
func NewStore(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{dir: dir, logger: logger}
}

// Path returns the location of name inside the store directory.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// readJSON decodes the named file into a T. A missing file yields the zero T
// and no error; so does a file that fails to decode, after logging it. Any
// other I/O failure is returned.
func readJSON[T any](ctx context.Context, s *Store, name string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	path := s.Path(name)
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.DebugContext(ctx, "content file missing, serving empty", "path", path)
			return zero, nil
		}
		return zero, fmt.Errorf("read %s: %w", path, err)
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		s.logger.WarnContext(ctx, "content file unreadable, serving empty", "path", path, "err", err)
		return zero, nil
	}
	return v, nil
}

// compact drops nil entries left by `null` items in a JSON array and never returns nil.
func compact[T any](items []*T) []*T {
	out := make([]*T, 0, len(items))
	for _, it := range items {
		if it != nil {
			out = append(out, it)
		}
	}
	return out
}
