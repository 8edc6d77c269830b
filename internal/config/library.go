package config

import (
	"errors"
	"fmt"
	"os"

	m "github.com/mouse-blink/hdrlint/internal/model"
)

var (
	// ErrIncludeNotFound is returned when the include path is not a directory.
	ErrIncludeNotFound = errors.New("include path does not exist")
	// ErrModuleNotFound is returned when a declared module has no directory.
	ErrModuleNotFound = errors.New("module directory does not exist")
	// ErrUnknownModule is returned when a module is not part of the library.
	ErrUnknownModule = errors.New("unknown module")
)

// DirInspector is the filesystem surface needed to check the library layout.
type DirInspector interface {
	FileInfo(path m.Path) (os.FileInfo, error)
	JoinPath(elem ...string) m.Path
}

// Library is the module layout of the audited library. It is built once and
// read-only afterwards.
type Library struct {
	IncludePath m.Path
	Modules     []string
	paths       map[string]m.Path
}

// NewLibrary checks that includePath and every module directory exist.
func NewLibrary(fs DirInspector, includePath m.Path, names []string) (*Library, error) {
	if err := requireDir(fs, includePath, ErrIncludeNotFound); err != nil {
		return nil, fmt.Errorf("%s: %w", includePath, err)
	}

	lib := &Library{
		IncludePath: includePath,
		Modules:     make([]string, 0, len(names)),
		paths:       make(map[string]m.Path, len(names)),
	}

	for _, name := range names {
		if _, dup := lib.paths[name]; dup {
			continue
		}

		path := fs.JoinPath(string(includePath), name)
		if err := requireDir(fs, path, ErrModuleNotFound); err != nil {
			return nil, fmt.Errorf("module %s at %s: %w", name, path, err)
		}

		lib.Modules = append(lib.Modules, name)
		lib.paths[name] = path
	}

	return lib, nil
}

// ModulePath returns the directory of a declared module.
func (l *Library) ModulePath(name string) (m.Path, error) {
	path, ok := l.paths[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownModule, name)
	}

	return path, nil
}

func requireDir(fs DirInspector, path m.Path, missing error) error {
	info, err := fs.FileInfo(path)
	if err != nil {
		if os.IsNotExist(err) {
			return missing
		}

		return err
	}

	if !info.IsDir() {
		return missing
	}

	return nil
}
