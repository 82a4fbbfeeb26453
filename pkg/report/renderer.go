package report

import "context"

// Renderer converts a Summary into a byte representation (text, HTML, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, summary Summary) ([]byte, error)
}
