package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// engine wraps a pongo2 template set loading from an fs.FS and caches
// compiled templates.
type engine struct {
	mu          sync.RWMutex
	templateSet *pongo2.TemplateSet
	templates   map[string]*pongo2.Template
}

func newEngine(files fs.FS) *engine {
	return &engine{
		templateSet: pongo2.NewSet("jsxmod", pongo2.NewFSLoader(files)),
		templates:   make(map[string]*pongo2.Template),
	}
}

func (e *engine) render(name string, data any) ([]byte, error) {
	tmpl, err := e.template(name)
	if err != nil {
		return nil, err
	}

	viewContext, err := convertToContext(data)
	if err != nil {
		return nil, fmt.Errorf("report: convert data: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(viewContext, &buf); err != nil {
		return nil, fmt.Errorf("report: execute template %q: %w", name, err)
	}
	return buf.Bytes(), nil
}

func (e *engine) template(name string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.templates[name]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.templates[name]; ok {
		return tmpl, nil
	}

	tmpl, err := e.templateSet.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("report: load template %q: %w", name, err)
	}
	e.templates[name] = tmpl
	return tmpl, nil
}

// convertToContext flattens data through a JSON round-trip so templates see
// plain maps keyed by the JSON tags. UseNumber keeps counts printing as
// integers.
func convertToContext(data any) (pongo2.Context, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return pongo2.Context(out), nil
}
