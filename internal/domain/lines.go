package domain

import (
	"strings"

	m "github.com/mouse-blink/hdrlint/internal/model"
)

// CountLines returns the statistics of a single file made of lines.
func CountLines(lines []string) m.Stats {
	stats := m.Stats{Files: 1, TotalLines: len(lines)}

	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			stats.NonEmptyLines++
		}
	}

	return stats
}
