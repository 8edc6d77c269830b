package model

// Sections holds the three contiguous ranges a header is divided into.
type Sections struct {
	Head     LineRange `json:"head" yaml:"head"`
	Preamble LineRange `json:"preamble" yaml:"preamble"`
	Body     LineRange `json:"body" yaml:"body"`
	// Guarded is set once a guard define has been seen in the preamble.
	Guarded bool `json:"guarded" yaml:"guarded"`
	// LooseGuard is set when the guard define was seen without an open
	// #ifndef. Such files are still accepted as guarded.
	LooseGuard bool `json:"loose_guard,omitempty" yaml:"loose_guard,omitempty"`
}

// ParsedFile is a header that passed every structural check.
type ParsedFile struct {
	Source   SourceFile `json:"source" yaml:"source"`
	Sections Sections   `json:"sections" yaml:"sections"`
	// Declared is the name captured from the @file tag.
	Declared string `json:"declared" yaml:"declared"`
	Stats    Stats  `json:"stats" yaml:"stats"`
}

// Violation records why a single file could not be parsed.
type Violation struct {
	Module   string `json:"module" yaml:"module"`
	Filename string `json:"filename" yaml:"filename"`
	Line     int    `json:"line" yaml:"line"`
	Kind     string `json:"kind" yaml:"kind"`
	Message  string `json:"message" yaml:"message"`
}

// ModuleReport holds the scan results of one library module.
type ModuleReport struct {
	Name       string       `json:"name" yaml:"name"`
	Path       Path         `json:"path" yaml:"path"`
	Files      []ParsedFile `json:"files" yaml:"files"`
	Violations []Violation  `json:"violations,omitempty" yaml:"violations,omitempty"`
	Stats      Stats        `json:"stats" yaml:"stats"`
}

// LibraryReport holds the scan results of every requested module.
type LibraryReport struct {
	Root    Path           `json:"root" yaml:"root"`
	Modules []ModuleReport `json:"modules" yaml:"modules"`
	Stats   Stats          `json:"stats" yaml:"stats"`
}

// Violations returns the violations of all modules in module order.
func (r LibraryReport) Violations() []Violation {
	var all []Violation
	for _, md := range r.Modules {
		all = append(all, md.Violations...)
	}

	return all
}

// ModuleListing summarises the headers present in a module.
type ModuleListing struct {
	Name            string
	Path            Path
	Headers         int
	InternalHeaders int
}
