package rewrite

import "strings"

// rewriteStructured scans line-by-line for property-bag calls. Each
// candidate span is collected by parenthesis balancing, matched against the
// structured call shape, and either replaced by an emitted block or passed
// through verbatim with a diagnostic. Nested candidate spans are not
// tracked; a span belongs to the first candidate line that opened it.
func (r *Rewriter) rewriteStructured(text string, report *Report) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if !r.isCandidate(line) {
			out = append(out, line)
			continue
		}

		span, terminated := collectSpan(lines, i)
		if !terminated {
			// The call never closes. Emit the rest untouched and stop
			// scanning; there is nothing balanced left to convert.
			out = append(out, span...)
			report.SkippedSpans = append(report.SkippedSpans, SkippedSpan{
				StartLine: i + 1,
				EndLine:   len(lines),
				Reason:    reasonUnterminated,
			})
			break
		}

		if block, ok := r.convertSpan(span, i+1, report); ok {
			out = append(out, strings.Split(block, "\n")...)
			report.StructuredRewrites++
		} else {
			out = append(out, span...)
			report.SkippedSpans = append(report.SkippedSpans, SkippedSpan{
				StartLine: i + 1,
				EndLine:   i + len(span),
				Reason:    reasonNoMatch,
			})
		}
		i += len(span) - 1
	}

	return strings.Join(out, "\n")
}

func (r *Rewriter) isCandidate(line string) bool {
	return strings.Contains(line, r.cfg.createCall+"(") &&
		strings.Contains(line, r.cfg.component) &&
		strings.Contains(line, "{")
}

// collectSpan gathers lines from start until the cumulative parenthesis
// balance returns to zero. terminated is false when the input ends first.
func collectSpan(lines []string, start int) (span []string, terminated bool) {
	depth := 0
	for i := start; i < len(lines); i++ {
		depth += strings.Count(lines[i], "(") - strings.Count(lines[i], ")")
		if depth <= 0 {
			return lines[start : i+1], true
		}
	}
	return lines[start:], false
}

// convertSpan matches the span against the structured call shape and, on
// success, returns the replacement block. The whole span collapses into the
// block; any text on the span's lines outside the matched call (such as an
// original render wrapper) is subsumed by it.
func (r *Rewriter) convertSpan(span []string, startLine int, report *Report) (string, bool) {
	spanText := strings.Join(span, "\n")
	loc := r.structuredRe.FindStringSubmatchIndex(spanText)
	if loc == nil {
		return "", false
	}

	bag := spanText[loc[2]:loc[3]]
	text := spanText[loc[4]:loc[5]]
	bagLine := startLine + strings.Count(spanText[:loc[2]], "\n")
	attrs := r.buildAttributes(bag, bagLine, report)
	return r.emitBlock(attrs, text), true
}
