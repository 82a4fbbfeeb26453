// Package config loads run configuration for the rewriting CLI from JSON or
// YAML files. Construction helpers keep flag handling in the CLI; this
// package only parses and carries values.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-jsxmod/pkg/rewrite"
)

// ReportConfig selects where and how the run summary is rendered.
type ReportConfig struct {
	Path   string `json:"path" yaml:"path"`
	Format string `json:"format" yaml:"format"`
}

// Config captures everything a run needs beyond positional file arguments.
type Config struct {
	Component  string       `json:"component" yaml:"component"`
	CreateCall string       `json:"createCall" yaml:"createCall"`
	RenderCall string       `json:"renderCall" yaml:"renderCall"`
	Indent     string       `json:"indent" yaml:"indent"`
	Files      []string     `json:"files" yaml:"files"`
	Report     ReportConfig `json:"report" yaml:"report"`
}

// Default returns the configuration used when no file overrides it.
func Default() Config {
	return Config{
		Component:  rewrite.DefaultComponent,
		CreateCall: rewrite.DefaultCreateCall,
		RenderCall: rewrite.DefaultRenderCall,
		Indent:     rewrite.DefaultBaseIndent,
		Report:     ReportConfig{Format: "text"},
	}
}

// Load reads and parses the file at path over the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes data over the defaults. Content is sniffed rather than
// trusting the extension: JSON first, then YAML.
func Parse(data []byte, sourceName string) (Config, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, fmt.Errorf("config: file %s is empty", sourceName)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err == nil {
		return cfg, nil
	}

	cfg = Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: invalid JSON or YAML: %w", sourceName, err)
	}
	return cfg, nil
}

// Options converts the configuration into rewriter options. Empty token
// values fall back to the rewriter defaults.
func (c Config) Options() []rewrite.Option {
	return []rewrite.Option{
		rewrite.WithComponent(c.Component),
		rewrite.WithCreateCall(c.CreateCall),
		rewrite.WithRenderCall(c.RenderCall),
		rewrite.WithBaseIndent(c.Indent),
	}
}
