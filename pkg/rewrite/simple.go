package rewrite

// rewriteSimple replaces every no-properties literal call, e.g.
// createElement(Label, null, "Name"), with the short tag form
// <Label>Name</Label>. The replacement contains no call token, so the pass
// is idempotent on its own output.
func (r *Rewriter) rewriteSimple(text string, report *Report) string {
	return r.simpleRe.ReplaceAllStringFunc(text, func(match string) string {
		sub := r.simpleRe.FindStringSubmatch(match)
		report.SimpleRewrites++
		return "<" + r.cfg.component + ">" + sub[1] + "</" + r.cfg.component + ">"
	})
}
