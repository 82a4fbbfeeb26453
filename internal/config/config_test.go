package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-jsxmod/pkg/rewrite"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Component != "Label" || cfg.CreateCall != "createElement" || cfg.RenderCall != "render" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Indent != "\t\t" {
		t.Fatalf("unexpected default indent %q", cfg.Indent)
	}
	if cfg.Report.Format != "text" {
		t.Fatalf("unexpected default report format %q", cfg.Report.Format)
	}
}

func TestParseJSON(t *testing.T) {
	data := []byte(`{
		"component": "Tag",
		"createCall": "h",
		"renderCall": "mount",
		"indent": "  ",
		"files": ["a.tsx", "b.tsx"],
		"report": {"path": "out.html", "format": "html"}
	}`)

	cfg, err := Parse(data, "jsxmod.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := Config{
		Component:  "Tag",
		CreateCall: "h",
		RenderCall: "mount",
		Indent:     "  ",
		Files:      []string{"a.tsx", "b.tsx"},
		Report:     ReportConfig{Path: "out.html", Format: "html"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("unexpected config (-want +got):\n%s", diff)
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte("component: Tag\nindent: \"\\t\\t\\t\"\nfiles:\n  - src/Tag.test.tsx\nreport:\n  format: html\n")

	cfg, err := Parse(data, "jsxmod.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if cfg.Component != "Tag" {
		t.Fatalf("unexpected component %q", cfg.Component)
	}
	if cfg.Indent != "\t\t\t" {
		t.Fatalf("unexpected indent %q", cfg.Indent)
	}
	if len(cfg.Files) != 1 || cfg.Files[0] != "src/Tag.test.tsx" {
		t.Fatalf("unexpected files %v", cfg.Files)
	}
	if cfg.Report.Format != "html" {
		t.Fatalf("unexpected report format %q", cfg.Report.Format)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("component: Badge\n"), "jsxmod.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if cfg.Component != "Badge" {
		t.Fatalf("unexpected component %q", cfg.Component)
	}
	if cfg.CreateCall != "createElement" || cfg.RenderCall != "render" || cfg.Indent != "\t\t" {
		t.Fatalf("expected untouched defaults, got %+v", cfg)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse([]byte("{{{"), "broken.yaml"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestParseRejectsEmpty(t *testing.T) {
	if _, err := Parse([]byte("   \n"), "empty.yaml"); err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jsxmod.yaml")
	if err := os.WriteFile(path, []byte("component: Chip\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Component != "Chip" {
		t.Fatalf("unexpected component %q", cfg.Component)
	}
}

func TestOptionsFeedRewriter(t *testing.T) {
	cfg := Default()
	cfg.Component = "Tag"
	cfg.CreateCall = "h"
	cfg.Indent = ""

	r, err := rewrite.New(cfg.Options()...)
	if err != nil {
		t.Fatalf("new rewriter: %v", err)
	}

	res, err := r.Rewrite(context.Background(), `h(Tag, null, "Hi")`)
	if err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	if res.Text != "<Tag>Hi</Tag>" {
		t.Fatalf("unexpected output %q", res.Text)
	}
}
