// Package report renders run summaries as text or HTML through a registry
// of template-backed renderers.
package report

import (
	"time"

	"github.com/goliatone/go-jsxmod/pkg/rewrite"
)

// FileReport ties one input's rewrite report to its path.
type FileReport struct {
	Path    string         `json:"path"`
	Changed bool           `json:"changed"`
	Report  rewrite.Report `json:"report"`
}

// Summary aggregates one run across all processed files.
type Summary struct {
	GeneratedAt     time.Time    `json:"generatedAt"`
	Files           []FileReport `json:"files"`
	ChangedFiles    int          `json:"changedFiles"`
	TotalSimple     int          `json:"totalSimple"`
	TotalStructured int          `json:"totalStructured"`
	TotalSkipped    int          `json:"totalSkipped"`
	TotalDropped    int          `json:"totalDropped"`
}

// BuildSummary computes totals over per-file reports.
func BuildSummary(files []FileReport) Summary {
	s := Summary{GeneratedAt: time.Now().UTC(), Files: files}
	for _, f := range files {
		s.TotalSimple += f.Report.SimpleRewrites
		s.TotalStructured += f.Report.StructuredRewrites
		s.TotalSkipped += len(f.Report.SkippedSpans)
		s.TotalDropped += len(f.Report.DroppedProps)
		if f.Changed {
			s.ChangedFiles++
		}
	}
	return s
}
