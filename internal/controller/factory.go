package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewUI returns the interactive report browser when useTTY is set and the
// tabular writer on the command's output otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a file backed by a character device. Buffers,
// pipes and regular files are not.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
