// Package extract writes pack sections to a directory tree.
package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrPathTraversal is returned when a section name resolves outside the output root.
var ErrPathTraversal = errors.New("unsafe path traversal")

// MaxSegmentLength caps each path segment, in runes.
const MaxSegmentLength = 120

// placeholder names sections whose name sanitizes to nothing.
const placeholder = "noname"

var (
	controlRuns  = regexp.MustCompile(`[\x00-\x1f\x7f]+`)
	reservedRuns = regexp.MustCompile(`[<>:"|?*]+`)
)

// sanitizeSegment makes one path segment safe for common filesystems.
func sanitizeSegment(seg string) string {
	seg = strings.TrimSpace(seg)
	seg = controlRuns.ReplaceAllString(seg, "_")
	seg = reservedRuns.ReplaceAllString(seg, "_")
	seg = strings.TrimRight(seg, " .")
	if seg == "" {
		return placeholder
	}
	if r := []rune(seg); len(r) > MaxSegmentLength {
		seg = string(r[:MaxSegmentLength])
	}
	return seg
}

// RelPath turns a section name into a relative slash-separated path. Both
// slash kinds separate segments; empty, "." and ".." segments are dropped.
func RelPath(name string) string {
	var parts []string
	for _, seg := range strings.Split(strings.ReplaceAll(name, `\`, "/"), "/") {
		switch seg {
		case "", ".", "..":
			continue
		}
		parts = append(parts, sanitizeSegment(seg))
	}
	if len(parts) == 0 {
		return placeholder
	}
	return strings.Join(parts, "/")
}

// SafeJoin resolves name under root and fails with ErrPathTraversal when the
// result is neither root nor inside it.
func SafeJoin(root, name string) (string, error) {
	base, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve root: %w", err)
	}

	out := filepath.Join(base, filepath.FromSlash(RelPath(name)))
	prefix := base
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	if out != base && !strings.HasPrefix(out, prefix) {
		return "", fmt.Errorf("%w: %q", ErrPathTraversal, name)
	}
	return out, nil
}
