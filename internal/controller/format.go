package controller

import (
	"fmt"

	"github.com/dustin/go-humanize"

	m "github.com/mouse-blink/hdrlint/internal/model"
)

func formatCount(n int) string {
	return humanize.Comma(int64(n))
}

func formatRange(r m.LineRange) string {
	if r.Empty() {
		return "-"
	}

	return fmt.Sprintf("%d-%d", r.Start+1, r.End)
}

func violationLocation(v m.Violation) string {
	location := v.Filename
	if v.Module != "" {
		location = v.Module + "/" + v.Filename
	}

	if v.Line > 0 {
		location = fmt.Sprintf("%s:%d", location, v.Line)
	}

	return location
}
