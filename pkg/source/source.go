// Package source abstracts where input documents come from so the CLI, the
// scripts, and tests can share one loading path.
package source

import "path/filepath"

// SourceKind discriminates loader strategies.
type SourceKind string

const (
	// SourceKindFile reads from an on-disk path.
	SourceKindFile SourceKind = "file"
	// SourceKindFS reads from an fs.FS supplied to the Loader.
	SourceKindFS SourceKind = "fs"
	// SourceKindStdin reads the standard input stream once.
	SourceKindStdin SourceKind = "stdin"
)

// Source identifies one input document.
type Source interface {
	Location() string
	Kind() SourceKind
}

// fileSource identifies on-disk documents.
type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// FromFile returns a Source pointing to a file path.
func FromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// fsSource references a path within an fs.FS.
type fsSource struct {
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// FromFS returns a Source identifying a resource inside an fs.FS.
func FromFS(name string) Source {
	return fsSource{name: name}
}

// stdinSource reads the process standard input.
type stdinSource struct{}

func (stdinSource) Location() string {
	return "-"
}

func (stdinSource) Kind() SourceKind {
	return SourceKindStdin
}

// FromStdin returns a Source reading standard input.
func FromStdin() Source {
	return stdinSource{}
}

// FromArg maps a command-line argument to a Source, treating "-" as stdin.
func FromArg(arg string) Source {
	if arg == "-" {
		return FromStdin()
	}
	return FromFile(arg)
}
