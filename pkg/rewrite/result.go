package rewrite

// Result carries the rewritten text and the run diagnostics.
type Result struct {
	// Text is the full output document.
	Text string
	// Changed reports whether Text differs from the input.
	Changed bool
	// Report aggregates counts and diagnostics for the run.
	Report Report
}

// Report aggregates what the two passes did to one document.
type Report struct {
	// SimpleRewrites counts pass-one literal call replacements.
	SimpleRewrites int `json:"simpleRewrites"`
	// StructuredRewrites counts pass-two call spans converted to tags.
	StructuredRewrites int `json:"structuredRewrites"`
	// SkippedSpans lists candidate call spans emitted verbatim.
	SkippedSpans []SkippedSpan `json:"skippedSpans,omitempty"`
	// DroppedProps lists property-bag lines that produced no attribute.
	DroppedProps []DroppedProp `json:"droppedProps,omitempty"`
}

// SkippedSpan identifies a candidate call span that was left untouched.
// Lines are 1-based positions in the pass-two input text, inclusive.
type SkippedSpan struct {
	StartLine int    `json:"startLine"`
	EndLine   int    `json:"endLine"`
	Reason    string `json:"reason"`
}

// DroppedProp identifies a property-bag line whose information was lost.
// Key is empty when the line held no colon.
type DroppedProp struct {
	Line int    `json:"line"`
	Key  string `json:"key,omitempty"`
	Text string `json:"text"`
}

const (
	reasonNoMatch      = "no structured call match"
	reasonUnterminated = "unterminated call span"
)
