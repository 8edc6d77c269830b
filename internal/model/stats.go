package model

// Stats captures line-count statistics for one or more files.
type Stats struct {
	Files         int `json:"files" yaml:"files"`
	TotalLines    int `json:"total_lines" yaml:"total_lines"`
	NonEmptyLines int `json:"non_empty_lines" yaml:"non_empty_lines"`
}

// Add returns the sum of s and o. Neither operand is modified.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Files:         s.Files + o.Files,
		TotalLines:    s.TotalLines + o.TotalLines,
		NonEmptyLines: s.NonEmptyLines + o.NonEmptyLines,
	}
}

// SumStats folds all records into a single total.
func SumStats(all ...Stats) Stats {
	var total Stats
	for _, s := range all {
		total = total.Add(s)
	}

	return total
}
