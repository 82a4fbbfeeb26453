package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Loader reads the full content behind a Source. The zero value handles file
// and stdin sources; fs.FS sources need WithFS.
type Loader struct {
	fs    fs.FS
	stdin io.Reader
}

// LoaderOption mutates the Loader during construction.
type LoaderOption func(*Loader)

// WithFS enables loading SourceKindFS sources from the supplied filesystem.
func WithFS(files fs.FS) LoaderOption {
	return func(l *Loader) {
		if files != nil {
			l.fs = files
		}
	}
}

// WithStdin overrides the standard input stream, mainly for tests.
func WithStdin(r io.Reader) LoaderOption {
	return func(l *Loader) {
		if r != nil {
			l.stdin = r
		}
	}
}

// NewLoader constructs a Loader with the provided options applied.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{stdin: os.Stdin}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// Load fetches the full content of src.
func (l *Loader) Load(ctx context.Context, src Source) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	if src == nil {
		return nil, errors.New("source: source is nil")
	}

	switch src.Kind() {
	case SourceKindFile:
		data, err := os.ReadFile(src.Location())
		if err != nil {
			return nil, fmt.Errorf("source: read %s: %w", src.Location(), err)
		}
		return data, nil
	case SourceKindFS:
		if l.fs == nil {
			return nil, errors.New("source: fs support disabled")
		}
		data, err := fs.ReadFile(l.fs, src.Location())
		if err != nil {
			return nil, fmt.Errorf("source: read %s: %w", src.Location(), err)
		}
		return data, nil
	case SourceKindStdin:
		data, err := io.ReadAll(l.stdin)
		if err != nil {
			return nil, fmt.Errorf("source: read stdin: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("source: unsupported source kind %q", src.Kind())
	}
}
