package rewrite

import "strings"

// emitBlock renders the replacement for a matched call span. Two or fewer
// attributes fit on one line; more switch to the multi-line layout with one
// attribute per line, each nesting level adding one tab to the base indent.
func (r *Rewriter) emitBlock(attrs []string, text string) string {
	base := r.cfg.baseIndent

	if len(attrs) <= 2 {
		open := "<" + r.cfg.component
		if len(attrs) > 0 {
			open += " " + strings.Join(attrs, " ")
		}
		return base + r.cfg.renderCall + "(" + open + ">" + text + "</" + r.cfg.component + ">);"
	}

	var b strings.Builder
	b.WriteString(base + r.cfg.renderCall + "(\n")
	b.WriteString(base + "\t<" + r.cfg.component + "\n")
	for _, attr := range attrs {
		b.WriteString(base + "\t\t" + attr + "\n")
	}
	b.WriteString(base + "\t>\n")
	b.WriteString(base + "\t\t" + text + "\n")
	b.WriteString(base + "\t</" + r.cfg.component + ">,\n")
	b.WriteString(base + ");")
	return b.String()
}
