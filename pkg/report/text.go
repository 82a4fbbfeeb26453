package report

import (
	"context"
	"fmt"
)

const textTemplate = "templates/report.txt.tpl"

type textRenderer struct {
	engine *engine
}

var _ Renderer = (*textRenderer)(nil)

// NewTextRenderer renders summaries as plain text.
func NewTextRenderer() Renderer {
	return &textRenderer{engine: newEngine(embeddedTemplates)}
}

func (r *textRenderer) Name() string {
	return "text"
}

func (r *textRenderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *textRenderer) Render(ctx context.Context, summary Summary) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	return r.engine.render(textTemplate, summary)
}
