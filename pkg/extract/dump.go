package extract

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/goopsie/pckFileTools/pkg/pck"
)

// DumpOption configures Dump.
type DumpOption func(*dumpConfig)

type dumpConfig struct {
	include []string
	exclude []string
	log     *slog.Logger
}

// WithInclude restricts the dump to sections whose relative path matches one
// of the glob patterns. "**" matches across directories.
func WithInclude(patterns ...string) DumpOption {
	return func(c *dumpConfig) {
		c.include = append(c.include, patterns...)
	}
}

// WithExclude skips sections whose relative path matches one of the patterns.
func WithExclude(patterns ...string) DumpOption {
	return func(c *dumpConfig) {
		c.exclude = append(c.exclude, patterns...)
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) DumpOption {
	return func(c *dumpConfig) {
		c.log = l
	}
}

// TimestampDir returns the dump directory for a run started at t.
func TimestampDir(root string, t time.Time) string {
	return filepath.Join(root, "ss_"+t.Format("20060102_150405"))
}

// Dump writes the bytes of every section to its sanitized name under root and
// marks the written sections as extracted. Existing files are overwritten.
// Sections whose name escapes root are skipped; write failures abort the dump.
// It returns the number of files written.
func Dump(data []byte, sections []pck.Section, root string, opts ...DumpOption) (int, error) {
	cfg := &dumpConfig{log: slog.Default().With("component", "extract")}
	for _, opt := range opts {
		opt(cfg)
	}
	for _, patterns := range [][]string{cfg.include, cfg.exclude} {
		for _, p := range patterns {
			if !doublestar.ValidatePattern(p) {
				return 0, fmt.Errorf("invalid pattern %q: %w", p, doublestar.ErrBadPattern)
			}
		}
	}

	written := 0
	for i := range sections {
		s := &sections[i]
		s.Extracted = false
		if s.End <= s.Start || s.Start < 0 || s.End > int64(len(data)) {
			continue
		}

		rel := RelPath(s.Name)
		if !cfg.selected(rel) {
			continue
		}

		path, err := SafeJoin(root, s.Name)
		if err != nil {
			if errors.Is(err, ErrPathTraversal) {
				cfg.log.Warn("sectionSkipped", "name", s.Name, "err", err)
				continue
			}
			return written, err
		}

		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return written, fmt.Errorf("create directory for %s: %w", rel, err)
		}
		if err := os.WriteFile(path, data[s.Start:s.End], 0644); err != nil {
			return written, fmt.Errorf("write %s: %w", rel, err)
		}
		s.Extracted = true
		written++
		cfg.log.Debug("sectionWritten", "path", rel, "size", s.Size())
	}
	return written, nil
}

func (c *dumpConfig) selected(rel string) bool {
	if len(c.include) > 0 && !matchAny(c.include, rel) {
		return false
	}
	return !matchAny(c.exclude, rel)
}

func matchAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}
