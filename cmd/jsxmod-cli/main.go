package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/goliatone/go-jsxmod/internal/atomicfile"
	"github.com/goliatone/go-jsxmod/internal/config"
	"github.com/goliatone/go-jsxmod/internal/prompt"
	"github.com/goliatone/go-jsxmod/pkg/report"
	"github.com/goliatone/go-jsxmod/pkg/rewrite"
	"github.com/goliatone/go-jsxmod/pkg/source"
)

type fileResult struct {
	src    source.Source
	result rewrite.Result
}

func main() {
	configPath := flag.String("config", "", "config file (JSON or YAML)")
	component := flag.String("component", "", "component identifier to rewrite")
	createCall := flag.String("create-call", "", "call token to rewrite")
	renderCall := flag.String("render-call", "", "wrapper emitted around structured rewrites")
	indent := flag.String("indent", "", `base indent for emitted blocks (\t escapes honoured)`)
	write := flag.Bool("write", false, "rewrite changed files in place")
	yes := flag.Bool("yes", false, "skip the confirmation prompt before writing")
	reportPath := flag.String("report", "", "write a run report to this path")
	reportFormat := flag.String("report-format", "", "report renderer: text or html")
	verbose := flag.Bool("verbose", false, "print per-file rewrite counts")
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [file ...]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nRewrite createElement calls into tag syntax. Use - to read stdin.\n\n"); err != nil {
			panic(err)
		}
		flag.PrintDefaults()
	}
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("jsxmod-cli: ")

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("%v", err)
		}
		cfg = loaded
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "component":
			cfg.Component = *component
		case "create-call":
			cfg.CreateCall = *createCall
		case "render-call":
			cfg.RenderCall = *renderCall
		case "indent":
			cfg.Indent = interpretIndent(*indent)
		case "report":
			cfg.Report.Path = *reportPath
		case "report-format":
			cfg.Report.Format = *reportFormat
		}
	})
	if cfg.Report.Format == "" {
		cfg.Report.Format = "text"
	}

	files := flag.Args()
	if len(files) == 0 {
		files = cfg.Files
	}
	if len(files) == 0 {
		log.Fatalf("no input files (pass paths or set files in the config)")
	}

	ctx := context.Background()

	rewriter, err := rewrite.New(cfg.Options()...)
	if err != nil {
		log.Fatalf("%v", err)
	}

	loader := source.NewLoader()
	results := make([]fileResult, 0, len(files))
	fileReports := make([]report.FileReport, 0, len(files))
	hadStdin := false

	for _, arg := range files {
		src := source.FromArg(arg)
		data, err := loader.Load(ctx, src)
		if err != nil {
			log.Fatalf("%v", err)
		}

		res, err := rewriter.Rewrite(ctx, string(data))
		if err != nil {
			log.Fatalf("%v", err)
		}

		if src.Kind() == source.SourceKindStdin {
			hadStdin = true
			if _, err := io.WriteString(os.Stdout, res.Text); err != nil {
				log.Fatalf("write stdout: %v", err)
			}
		}

		results = append(results, fileResult{src: src, result: res})
		fileReports = append(fileReports, report.FileReport{
			Path:    src.Location(),
			Changed: res.Changed,
			Report:  res.Report,
		})
	}

	printDiagnostics(results)

	summary := report.BuildSummary(fileReports)
	if cfg.Report.Path != "" {
		renderer, err := report.Default().Get(cfg.Report.Format)
		if err != nil {
			log.Fatalf("%v", err)
		}
		payload, err := renderer.Render(ctx, summary)
		if err != nil {
			log.Fatalf("%v", err)
		}
		if err := atomicfile.WriteFile(cfg.Report.Path, payload, 0o644); err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", cfg.Report.Path)
	}

	changed := changedFileTargets(results)
	wrote := false
	if *write && len(changed) > 0 {
		proceed := *yes
		if !proceed {
			ok, err := prompt.NewSurveyConfirmer().Confirm(ctx, prompt.Prompt{
				Message: fmt.Sprintf("Rewrite %d file(s) in place?", len(changed)),
				Default: true,
				Help:    "Files are replaced atomically; rerun without -write for a dry run.",
			})
			if err != nil {
				if errors.Is(err, prompt.ErrAborted) {
					log.Fatalf("aborted, no files written")
				}
				log.Fatalf("confirm: %v", err)
			}
			proceed = ok
		}
		if proceed {
			for _, fr := range changed {
				if err := writeInPlace(fr.src.Location(), fr.result.Text); err != nil {
					log.Fatalf("%v", err)
				}
			}
			wrote = true
		}
	}

	out := io.Writer(os.Stdout)
	if hadStdin {
		out = os.Stderr
	}
	printSummary(out, summary, results, changed, wrote, *write, *verbose)
}

// interpretIndent expands backslash-t sequences so shells without $'\t'
// support can still pass tab indents.
func interpretIndent(raw string) string {
	return strings.ReplaceAll(raw, `\t`, "\t")
}

func changedFileTargets(results []fileResult) []fileResult {
	var out []fileResult
	for _, fr := range results {
		if fr.result.Changed && fr.src.Kind() == source.SourceKindFile {
			out = append(out, fr)
		}
	}
	return out
}

func writeInPlace(path, text string) error {
	perm := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	return atomicfile.WriteFile(path, []byte(text), perm)
}

type diagnostic struct {
	file    string
	line    int
	message string
}

// printDiagnostics lists skipped spans and dropped properties on stderr,
// sorted by file then line.
func printDiagnostics(results []fileResult) {
	var diags []diagnostic
	for _, fr := range results {
		path := fr.src.Location()
		for _, span := range fr.result.Report.SkippedSpans {
			diags = append(diags, diagnostic{
				file:    path,
				line:    span.StartLine,
				message: fmt.Sprintf("%d-%d: %s", span.StartLine, span.EndLine, span.Reason),
			})
		}
		for _, prop := range fr.result.Report.DroppedProps {
			name := prop.Key
			if name == "" {
				name = prop.Text
			}
			diags = append(diags, diagnostic{
				file:    path,
				line:    prop.Line,
				message: fmt.Sprintf("%d: dropped property %s", prop.Line, name),
			})
		}
	}

	sort.Slice(diags, func(i, j int) bool {
		if diags[i].file == diags[j].file {
			if diags[i].line == diags[j].line {
				return diags[i].message < diags[j].message
			}
			return diags[i].line < diags[j].line
		}
		return diags[i].file < diags[j].file
	})
	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "%s:%s\n", d.file, d.message)
	}
}

func printSummary(out io.Writer, summary report.Summary, results, changed []fileResult, wrote, writeRequested, verbose bool) {
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	switch {
	case wrote:
		green.Fprintf(out, "✓ rewrote %d of %d files (%d simple, %d structured)\n",
			len(changed), len(results), summary.TotalSimple, summary.TotalStructured)
	case writeRequested && len(changed) > 0:
		yellow.Fprintf(out, "declined: %d of %d files left untouched\n", len(changed), len(results))
	case writeRequested && summary.ChangedFiles > 0:
		yellow.Fprintf(out, "stdin rewritten on stdout; no file targets to write\n")
	case summary.ChangedFiles > 0:
		yellow.Fprintf(out, "dry run: %d of %d files would change (%d simple, %d structured); pass -write to apply\n",
			summary.ChangedFiles, len(results), summary.TotalSimple, summary.TotalStructured)
	default:
		fmt.Fprintf(out, "no changes in %d files\n", len(results))
	}

	if !verbose {
		return
	}
	for _, fr := range results {
		rep := fr.result.Report
		fmt.Fprintf(out, "  %s: %d simple, %d structured, %d skipped, %d dropped\n",
			fr.src.Location(), rep.SimpleRewrites, rep.StructuredRewrites,
			len(rep.SkippedSpans), len(rep.DroppedProps))
	}
}
