// Package selector filters decoded chunks by shell patterns matched against
// their type names.
package selector

import (
	"fmt"
	"strings"

	"github.com/danwakefield/fnmatch"
	"github.com/retroenv/ticdump/internal/chunk"
)

// Selector selects chunks whose type name matches any of its patterns.
// A selector without patterns selects all chunks.
type Selector struct {
	patterns []string
}

// New creates a selector from a comma separated pattern list like
// "Til*,Palette". Matching ignores case. A pattern that can not match any
// chunk type is reported as error, to catch typos early.
func New(list string) (*Selector, error) {
	s := &Selector{}

	for _, pattern := range strings.Split(list, ",") {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if !matchesAnyType(pattern) {
			return nil, fmt.Errorf("chunk pattern '%s' does not match any chunk type", pattern)
		}
		s.patterns = append(s.patterns, pattern)
	}

	return s, nil
}

// Match returns whether the chunk type is selected.
func (s *Selector) Match(t chunk.Type) bool {
	if len(s.patterns) == 0 {
		return true
	}
	name := t.String()
	for _, pattern := range s.patterns {
		if fnmatch.Match(pattern, name, fnmatch.FNM_IGNORECASE) {
			return true
		}
	}
	return false
}

// Filter returns the selected chunks in input order.
func (s *Selector) Filter(chunks []chunk.Chunk) []chunk.Chunk {
	if len(s.patterns) == 0 {
		return chunks
	}

	var result []chunk.Chunk
	for _, c := range chunks {
		if s.Match(c.Type) {
			result = append(result, c)
		}
	}
	return result
}

// Patterns returns the patterns of the selector.
func (s *Selector) Patterns() []string {
	return s.patterns
}

func matchesAnyType(pattern string) bool {
	for _, t := range chunk.Types() {
		if fnmatch.Match(pattern, t.String(), fnmatch.FNM_IGNORECASE) {
			return true
		}
	}
	return false
}
