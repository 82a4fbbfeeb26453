package main

import (
	"context"
	"fmt"
	"os"

	jsxmod "github.com/goliatone/go-jsxmod"
)

func main() {
	ctx := context.Background()

	const (
		targetPath = "packages/ui/src/Label/Label.test.tsx"
		baseIndent = "\t\t\t"
	)

	res, err := jsxmod.ConvertFileInPlace(ctx, targetPath, jsxmod.WithBaseIndent(baseIndent))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to convert %s: %v\n", targetPath, err)
		os.Exit(1)
	}

	for _, span := range res.Report.SkippedSpans {
		fmt.Fprintf(os.Stderr, "skipped lines %d-%d: %s\n", span.StartLine, span.EndLine, span.Reason)
	}
	for _, prop := range res.Report.DroppedProps {
		fmt.Fprintf(os.Stderr, "dropped property on line %d: %s\n", prop.Line, prop.Text)
	}

	if res.Changed {
		fmt.Printf("✓ Rewrote %s (%d simple, %d structured rewrites)\n",
			targetPath, res.Report.SimpleRewrites, res.Report.StructuredRewrites)
	}
	fmt.Println("Conversion complete!")
}
