package domain

import "strings"

// Default convention values.
const (
	DefaultGuardPrefix = "LIGHTMAT"
	DefaultExtension   = ".h"
	DefaultInternalDir = "internal"
)

// Convention holds the naming rules headers are checked against.
type Convention struct {
	// GuardPrefix starts every include-guard macro, without the trailing
	// underscore.
	GuardPrefix string
	Extension   string
	InternalDir string
}

// DefaultConvention returns the convention used by the library.
func DefaultConvention() Convention {
	return Convention{
		GuardPrefix: DefaultGuardPrefix,
		Extension:   DefaultExtension,
		InternalDir: DefaultInternalDir,
	}
}

// withDefaults fills empty fields with the default values.
func (c Convention) withDefaults() Convention {
	if strings.TrimSpace(c.GuardPrefix) == "" {
		c.GuardPrefix = DefaultGuardPrefix
	}

	if strings.TrimSpace(c.Extension) == "" {
		c.Extension = DefaultExtension
	}

	if strings.TrimSpace(c.InternalDir) == "" {
		c.InternalDir = DefaultInternalDir
	}

	return c
}

// GuardMacro returns the include-guard macro expected for a header title,
// e.g. LIGHTMAT_MATRIX_BASE_H_ for matrix_base.
func (c Convention) GuardMacro(baseTitle string) string {
	return c.guardStem() + strings.ToUpper(baseTitle) + "_H_"
}

func (c Convention) guardStem() string {
	return strings.TrimSuffix(c.GuardPrefix, "_") + "_"
}
