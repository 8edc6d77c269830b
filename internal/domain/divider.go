package domain

import (
	"log/slog"
	"strings"

	m "github.com/mouse-blink/hdrlint/internal/model"
)

type divideState int

const (
	stateStart divideState = iota
	stateHead
	statePreamble
)

// Divide partitions lines into the head, preamble and body sections of a
// header titled title. Blank lines are skipped but still count as seen, so
// a NotGuarded error after the last line points at the end of the file. The
// scan stops at the first line that is not a preamble directive; the body is
// never inspected.
func (c Convention) Divide(title string, lines []string) (m.Sections, error) {
	var (
		sec        m.Sections
		state      = stateStart
		pragmaOpen bool
		macroOpen  bool
		lastLine   int
		bodyStart  = len(lines)
	)

scan:
	for i, raw := range lines {
		lastLine = i + 1

		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch state {
		case stateStart:
			if !strings.HasPrefix(line, "/*") {
				return m.Sections{}, newStructuralError(title, lastLine, InvalidStart, "invalid starting line")
			}

			sec.Head.Start = i
			state = stateHead

			if len(line) >= 4 && strings.HasSuffix(line, "*/") {
				sec.Head.End = i + 1
				state = statePreamble
			}

		case stateHead:
			// Only a line opening with the block close ends the head; a
			// continuation that happens to end with "*/" is still consumed.
			switch {
			case strings.HasPrefix(line, "*/"):
				sec.Head.End = i + 1
				state = statePreamble
			case strings.HasPrefix(line, "*"):
				// continuation
			default:
				return m.Sections{}, newStructuralError(title, lastLine, InvalidHeadLine, "invalid line in head section")
			}

		case statePreamble:
			inPreamble := false

			d := c.classify(line)
			switch d.kind {
			case dirCompilerIf:
				pragmaOpen = true
				inPreamble = true
			case dirPragma, dirPragmaOnce, dirInclude:
				inPreamble = true
			case dirGuardOpen:
				macroOpen = true
				inPreamble = true
			case dirGuardDefine:
				// A define without an open #ifndef still marks the file as
				// guarded but ends the preamble.
				inPreamble = macroOpen
				if !macroOpen && !sec.Guarded {
					sec.LooseGuard = true
					slog.Debug("guard define without open #ifndef", "title", title, "line", lastLine)
				}

				macroOpen = false
				sec.Guarded = true
			case dirEndif:
				inPreamble = pragmaOpen
				pragmaOpen = false
			case dirOther:
			}

			if !inPreamble {
				bodyStart = i
				break scan
			}
		}
	}

	if state == stateStart {
		return m.Sections{}, newStructuralError(title, lastLine, InvalidStart, "invalid starting line")
	}

	if !sec.Guarded {
		return m.Sections{}, newStructuralError(title, lastLine, NotGuarded, "file is not guarded")
	}

	sec.Preamble = m.LineRange{Start: sec.Head.End, End: bodyStart}
	sec.Body = m.LineRange{Start: bodyStart, End: len(lines)}

	return sec, nil
}
