// Package jsxmod rewrites createElement-style component calls into tag
// syntax. The root package re-exports the core rewriting surface; the full
// API lives under pkg/rewrite, pkg/source, and pkg/report.
package jsxmod

import (
	"context"
	"fmt"
	"os"

	"github.com/goliatone/go-jsxmod/internal/atomicfile"
	"github.com/goliatone/go-jsxmod/pkg/rewrite"
	"github.com/goliatone/go-jsxmod/pkg/source"
)

// Result aliases rewrite.Result for callers using only the root package.
type Result = rewrite.Result

// Report aliases rewrite.Report.
type Report = rewrite.Report

// Option aliases rewrite.Option.
type Option = rewrite.Option

// NewRewriter exposes the rewriter constructor from the top-level module.
func NewRewriter(options ...Option) (*rewrite.Rewriter, error) {
	return rewrite.New(options...)
}

// WithComponent sets the component identifier the rewriter targets.
func WithComponent(name string) Option {
	return rewrite.WithComponent(name)
}

// WithCreateCall sets the call token that is rewritten.
func WithCreateCall(name string) Option {
	return rewrite.WithCreateCall(name)
}

// WithRenderCall sets the wrapper emitted around structured rewrites.
func WithRenderCall(name string) Option {
	return rewrite.WithRenderCall(name)
}

// WithBaseIndent sets the indent prefix for emitted blocks.
func WithBaseIndent(indent string) Option {
	return rewrite.WithBaseIndent(indent)
}

// Convert rewrites text in memory and returns the result with diagnostics.
// It is the simplest entry point for callers that already hold the source.
func Convert(ctx context.Context, text string, options ...Option) (Result, error) {
	r, err := rewrite.New(options...)
	if err != nil {
		return Result{}, err
	}
	return r.Rewrite(ctx, text)
}

// ConvertFile loads path, rewrites its content in memory, and returns the
// result without touching the file.
func ConvertFile(ctx context.Context, path string, options ...Option) (Result, error) {
	data, err := source.NewLoader().Load(ctx, source.FromFile(path))
	if err != nil {
		return Result{}, err
	}
	return Convert(ctx, string(data), options...)
}

// ConvertFileInPlace rewrites path on disk. The file is replaced through an
// atomic rename, keeping its permissions, and only when the content changed.
func ConvertFileInPlace(ctx context.Context, path string, options ...Option) (Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("jsxmod: stat %s: %w", path, err)
	}

	res, err := ConvertFile(ctx, path, options...)
	if err != nil {
		return Result{}, err
	}
	if !res.Changed {
		return res, nil
	}

	if err := atomicfile.WriteFile(path, []byte(res.Text), info.Mode().Perm()); err != nil {
		return Result{}, err
	}
	return res, nil
}
