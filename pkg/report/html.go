package report

import (
	"context"
	"fmt"
)

const htmlTemplate = "templates/report.html.tpl"

type htmlRenderer struct {
	engine *engine
}

var _ Renderer = (*htmlRenderer)(nil)

// NewHTMLRenderer renders summaries as a standalone HTML page. Template
// autoescaping stays on so JSX fragments in diagnostics render as text.
func NewHTMLRenderer() Renderer {
	return &htmlRenderer{engine: newEngine(embeddedTemplates)}
}

func (r *htmlRenderer) Name() string {
	return "html"
}

func (r *htmlRenderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *htmlRenderer) Render(ctx context.Context, summary Summary) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	return r.engine.render(htmlTemplate, summary)
}
