package domain

import "strings"

type directiveKind int

const (
	dirOther directiveKind = iota
	dirCompilerIf
	dirPragma
	dirPragmaOnce
	dirGuardOpen
	dirGuardDefine
	dirInclude
	dirEndif
)

type directive struct {
	kind directiveKind
	// macro is the guard macro name for dirGuardOpen and dirGuardDefine.
	macro string
}

const (
	compilerMacro = "_MSC_VER"
	pragmaOnceArg = "once"
)

// classify maps a trimmed, non-blank preamble line to the directive it
// carries. Both the divider and the preamble validator read the preamble
// through it.
func (c Convention) classify(trimmed string) directive {
	stem := c.guardStem()

	switch {
	case hasDirective(trimmed, "ifdef") && firstField(directiveArg(trimmed, "ifdef")) == compilerMacro:
		return directive{kind: dirCompilerIf}
	case hasDirective(trimmed, "pragma") && firstField(directiveArg(trimmed, "pragma")) == pragmaOnceArg:
		return directive{kind: dirPragmaOnce}
	case hasDirective(trimmed, "pragma"):
		return directive{kind: dirPragma}
	case hasDirective(trimmed, "ifndef") && strings.HasPrefix(directiveArg(trimmed, "ifndef"), stem):
		return directive{kind: dirGuardOpen, macro: firstField(directiveArg(trimmed, "ifndef"))}
	case hasDirective(trimmed, "define") && strings.HasPrefix(directiveArg(trimmed, "define"), stem):
		return directive{kind: dirGuardDefine, macro: firstField(directiveArg(trimmed, "define"))}
	case hasDirective(trimmed, "include"):
		return directive{kind: dirInclude}
	case hasDirective(trimmed, "endif"):
		return directive{kind: dirEndif}
	default:
		return directive{kind: dirOther}
	}
}

// hasDirective reports whether line is the preprocessor directive name,
// tolerating blanks between '#' and the name.
func hasDirective(line, name string) bool {
	if !strings.HasPrefix(line, "#") {
		return false
	}

	rest := strings.TrimLeft(line[1:], " \t")
	if !strings.HasPrefix(rest, name) {
		return false
	}

	tail := rest[len(name):]

	return tail == "" || tail[0] == ' ' || tail[0] == '\t' || tail[0] == '<' || tail[0] == '"' || tail[0] == '/'
}

func directiveArg(line, name string) string {
	rest := strings.TrimLeft(line[1:], " \t")
	return strings.TrimSpace(rest[len(name):])
}

func firstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}
