package domain

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Exclusions matches module-relative filenames that should not be parsed.
type Exclusions struct {
	globs []glob.Glob
}

// CompileExclusions compiles glob patterns. '*' does not cross '/', "**"
// does.
func CompileExclusions(patterns []string) (Exclusions, error) {
	ex := Exclusions{}

	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		g, err := glob.Compile(p, '/')
		if err != nil {
			return Exclusions{}, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}

		ex.globs = append(ex.globs, g)
	}

	return ex, nil
}

// Match reports whether filename matches any pattern.
func (e Exclusions) Match(filename string) bool {
	for _, g := range e.globs {
		if g.Match(filename) {
			return true
		}
	}

	return false
}
