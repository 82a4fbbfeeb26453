package rewrite

import "strings"

// Recognized property keys. Boolean-style keys emit the bare name when the
// value is exactly true; everything else keeps the raw expression text.
var (
	booleanKeys = map[string]bool{
		"required": true,
		"disabled": true,
	}
	valueKeys = map[string]bool{
		"data-testid":      true,
		"size":             true,
		"className":        true,
		"htmlFor":          true,
		"id":               true,
		"aria-label":       true,
		"aria-describedby": true,
	}
)

// buildAttributes converts property-bag lines into attribute strings,
// preserving source order. The key is the text before the first colon,
// trimmed and unquoted; the value is the text after it, trimmed, carried
// verbatim with no quoting adjustments. Lines that yield no attribute are
// recorded as dropped. baseLine is the 1-based input line holding the
// start of the bag interior.
func (r *Rewriter) buildAttributes(bag string, baseLine int, report *Report) []string {
	var attrs []string
	for offset, raw := range strings.Split(bag, "\n") {
		line := strings.TrimRight(strings.TrimSpace(raw), ",")
		if line == "" {
			continue
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			report.DroppedProps = append(report.DroppedProps, DroppedProp{
				Line: baseLine + offset,
				Text: line,
			})
			continue
		}
		key = trimQuotes(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch {
		case booleanKeys[key]:
			if value == "true" {
				attrs = append(attrs, key)
			} else {
				attrs = append(attrs, key+"={"+value+"}")
			}
		case valueKeys[key]:
			attrs = append(attrs, key+"="+value)
		default:
			report.DroppedProps = append(report.DroppedProps, DroppedProp{
				Line: baseLine + offset,
				Key:  key,
				Text: line,
			})
		}
	}
	return attrs
}

func trimQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
