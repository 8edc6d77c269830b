// Package adapter contains filesystem and persistence adapters for hdrlint.
package adapter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "github.com/mouse-blink/hdrlint/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning a library. It hides direct `os` access so the
// scanning logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// ReadLines loads a file and returns its lines without line terminators.
	ReadLines(path m.Path) ([]string, error)

	// ListFiles returns the files directly under dir whose extension is ext,
	// sorted by name. A missing dir yields no files.
	ListFiles(dir m.Path, ext string) ([]m.Path, error)

	// ReadModuleList reads a newline-delimited list of module names.
	ReadModuleList(path m.Path) ([]string, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadLines reads path line by line. A final line without a trailing newline
// is kept; carriage returns are dropped.
func (a *LocalSourceFSAdapter) ReadLines(path m.Path) ([]string, error) {
	// #nosec G304 - path comes from the configured library tree
	f, err := os.Open(string(path))
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = f.Close()
	}()

	reader := bufio.NewReader(f)
	lines := []string{}

	for {
		line, err := reader.ReadString('\n')
		if errors.Is(err, io.EOF) {
			if len(line) > 0 {
				lines = append(lines, trimEOL(line))
			}

			break
		}

		if err != nil {
			return nil, err
		}

		lines = append(lines, trimEOL(line))
	}

	return lines, nil
}

func trimEOL(line string) string {
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
}

// ListFiles lists regular files with extension ext directly under dir.
func (a *LocalSourceFSAdapter) ListFiles(dir m.Path, ext string) ([]m.Path, error) {
	info, err := a.FileInfo(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []m.Path{}, nil
		}

		return nil, err
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	files := []m.Path{}

	err = a.Walk(dir, false, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() || filepath.Ext(path) != ext {
			return nil
		}

		files = append(files, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files, nil
}

// ReadModuleList returns the trimmed, non-blank lines of the list at path.
func (a *LocalSourceFSAdapter) ReadModuleList(path m.Path) ([]string, error) {
	lines, err := a.ReadLines(path)
	if err != nil {
		return nil, fmt.Errorf("read module list: %w", err)
	}

	names := make([]string, 0, len(lines))

	for _, line := range lines {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}

		names = append(names, name)
	}

	return names, nil
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
