package domain

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// conformingHeader returns the lines of a header named title.h that passes
// every check under prefix.
func conformingHeader(title, prefix string) []string {
	macro := prefix + "_" + strings.ToUpper(title) + "_H_"

	return []string{
		"/**",
		" * @file " + title + ".h",
		" *",
		" * @brief test header",
		" */",
		"",
		"#ifdef _MSC_VER",
		"#pragma once",
		"#endif",
		"",
		"#ifndef " + macro,
		"#define " + macro,
		"",
		"#include <vector>",
		"",
		"namespace lmat {",
		"}",
		"",
		"#endif",
	}
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func writeHeader(t *testing.T, path string, lines []string) {
	t.Helper()
	writeTestFile(t, path, strings.Join(lines, "\n")+"\n")
}

// writeLibrary lays out a small library under root: module core with a
// conforming header, a misdeclared header and an internal header, and
// module mat with one conforming header.
func writeLibrary(t *testing.T, root string) {
	t.Helper()

	include := filepath.Join(root, "light_mat")

	writeHeader(t, filepath.Join(include, "core", "a.h"), conformingHeader("a", "LIGHTMAT"))
	writeHeader(t, filepath.Join(include, "core", "b.h"), conformingHeader("a", "LIGHTMAT"))
	writeHeader(t, filepath.Join(include, "core", "internal", "a_impl.h"), conformingHeader("a_impl", "LIGHTMAT"))
	writeTestFile(t, filepath.Join(include, "core", "notes.txt"), "not a header\n")
	writeHeader(t, filepath.Join(include, "mat", "m.h"), conformingHeader("m", "LIGHTMAT"))

	writeTestFile(t, filepath.Join(root, "tools", "modules.lst"), "core\n\nmat\n")
}
