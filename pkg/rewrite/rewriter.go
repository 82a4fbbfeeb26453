package rewrite

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Rewriter converts createElement-style calls targeting one component into
// tag syntax. Construct with New; the zero value is not usable.
type Rewriter struct {
	cfg          config
	simpleRe     *regexp.Regexp
	structuredRe *regexp.Regexp
}

// New builds a Rewriter, applying options over the defaults.
func New(opts ...Option) (*Rewriter, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	create := regexp.QuoteMeta(cfg.createCall)
	component := regexp.QuoteMeta(cfg.component)
	return &Rewriter{
		cfg: cfg,
		// Child literals exclude newlines: a multi-line string child is not
		// convertible to the single-line child slot of the emitted tag.
		simpleRe:     regexp.MustCompile(create + `\(` + component + `,\s*null,\s*"([^"\n]+)"\)`),
		structuredRe: regexp.MustCompile(create + `\(\s*` + component + `,\s*\{([^}]+)\},\s*"([^"\n]+)"\s*\)`),
	}, nil
}

// Rewrite applies both passes to text and returns the result with
// diagnostics. Input that cannot be converted degrades to pass-through;
// the only error path is context cancellation.
func (r *Rewriter) Rewrite(ctx context.Context, text string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("rewrite: %w", err)
	}

	var report Report
	out := r.rewriteSimple(text, &report)
	out = r.rewriteStructured(out, &report)
	return Result{Text: out, Changed: out != text, Report: report}, nil
}

func (c config) validate() error {
	if err := validToken("component", c.component); err != nil {
		return err
	}
	if err := validToken("create call", c.createCall); err != nil {
		return err
	}
	if strings.TrimSpace(c.renderCall) == "" {
		return fmt.Errorf("rewrite: render call is required")
	}
	return nil
}

func validToken(what, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("rewrite: %s is required", what)
	}
	if strings.ContainsAny(value, " \t\r\n(){}") {
		return fmt.Errorf("rewrite: %s %q contains invalid characters", what, value)
	}
	return nil
}
