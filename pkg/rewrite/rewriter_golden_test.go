package rewrite

import (
	"path/filepath"
	"testing"

	"github.com/goliatone/go-jsxmod/pkg/testsupport"
)

// The fixture mirrors a component test file indented three levels deep, the
// shape this tool was originally written against.
func TestRewriteLabelTestFileGolden(t *testing.T) {
	input := testsupport.MustReadFixtureString(t, filepath.Join("testdata", "label_tests_input.tsx"))

	r := newTestRewriter(t, WithBaseIndent("\t\t\t"))
	res := mustRewrite(t, r, input)

	if res.Report.SimpleRewrites != 1 {
		t.Fatalf("expected 1 simple rewrite, got %d", res.Report.SimpleRewrites)
	}
	if res.Report.StructuredRewrites != 3 {
		t.Fatalf("expected 3 structured rewrites, got %d", res.Report.StructuredRewrites)
	}
	if len(res.Report.SkippedSpans) != 0 || len(res.Report.DroppedProps) != 0 {
		t.Fatalf("expected clean report, got %+v", res.Report)
	}

	golden := filepath.Join("testdata", "label_tests_output.golden.tsx")
	if testsupport.WriteMaybeGolden(t, golden, []byte(res.Text)) {
		return
	}
	want := testsupport.MustReadGoldenString(t, golden)
	if diff := testsupport.CompareGolden(want, res.Text); diff != "" {
		t.Fatalf("golden mismatch (-want +got):\n%s", diff)
	}
}
