// Command codeshot converts source files into styled, line-numbered code
// windows for embedding in typeset documents.
//
// Usage:
//
//	codeshot [flags] [file ...]
//
// With no file arguments, all files matching -pattern under -source are
// processed. Each file's outcome is reported independently; one file's
// failure never aborts the batch.
//
// Flags:
//
//	-source string    Directory searched when no files are given (default "source")
//	-pattern string   Glob pattern for discovery (default "**/*.py")
//	-out string       Output directory (default "images")
//	-format string    Output dialect: latex, ansi (default "latex")
//	-width int        Maximum visible line width (default 62)
//	-indent string    Continuation line indent (default four spaces)
//	-font string      Font preamble mode: primary, fallback (default "primary")
//	-lang string      Source language (default "python"; others use chroma)
//	-screenshot       Also export a PNG via the CodeImage web app
//	-theme string     CodeImage theme for -screenshot (default "VSCode Dark")
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/fwojciec/codeshot"
	"github.com/fwojciec/codeshot/ansi"
	"github.com/fwojciec/codeshot/chroma"
	"github.com/fwojciec/codeshot/codeimage"
	"github.com/fwojciec/codeshot/fs"
	"github.com/fwojciec/codeshot/latex"
	"github.com/fwojciec/codeshot/layout"
	"github.com/fwojciec/codeshot/python"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "codeshot: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		sourceDir  = flag.String("source", "source", "Directory searched when no files are given")
		pattern    = flag.String("pattern", "**/*.py", "Glob pattern for discovery")
		outDir     = flag.String("out", "images", "Output directory")
		format     = flag.String("format", "latex", "Output dialect: latex, ansi")
		width      = flag.Int("width", 62, "Maximum visible line width")
		indent     = flag.String("indent", "    ", "Continuation line indent")
		font       = flag.String("font", "primary", "Font preamble mode: primary, fallback")
		lang       = flag.String("lang", "python", "Source language")
		screenshot = flag.Bool("screenshot", false, "Also export a PNG via the CodeImage web app")
		theme      = flag.String("theme", "VSCode Dark", "CodeImage theme for -screenshot")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fontMode, err := codeshot.ParseFontMode(*font)
	if err != nil {
		return err
	}
	config := codeshot.Config{
		MaxVisibleWidth:    *width,
		ContinuationIndent: *indent,
		FontMode:           fontMode,
	}
	if err := config.Validate(); err != nil {
		return err
	}

	classifier, err := resolveClassifier(*lang)
	if err != nil {
		return err
	}

	var renderer codeshot.Renderer
	var ext string
	switch *format {
	case "latex":
		renderer, ext = latex.New(), ".tex"
	case "ansi":
		renderer, ext = ansi.New(), ".txt"
	default:
		return fmt.Errorf("format must be latex or ansi, got %q: %w", *format, codeshot.ErrValidation)
	}

	assembler, err := layout.NewAssembler(classifier, renderer, codeshot.DefaultPalette(), config)
	if err != nil {
		return err
	}

	files := flag.Args()
	if len(files) == 0 {
		files, err = fs.Discover(*sourceDir, *pattern)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no files matching %q in %s: %w", *pattern, *sourceDir, codeshot.ErrResource)
		}
	}

	var exporter codeshot.ScreenshotExporter
	if *screenshot {
		exporter = codeimage.New()
	}

	failures := 0
	for _, f := range files {
		fmt.Printf("Processing: %s\n", f)
		if err := exportFile(ctx, assembler, exporter, f, *outDir, ext, *format, *lang, *theme); err != nil {
			fmt.Fprintf(os.Stderr, "  ERROR: %s: %v\n", f, err)
			failures++
		}
	}
	if failures == len(files) {
		return fmt.Errorf("all %d files failed", failures)
	}
	fmt.Println("Done.")
	return nil
}

// resolveClassifier picks the builtin Python scanner or a chroma lexer.
func resolveClassifier(lang string) (codeshot.Classifier, error) {
	if lang == "python" {
		return python.New(), nil
	}
	if !chroma.Supported(lang) {
		return nil, fmt.Errorf("unsupported language %q: %w", lang, codeshot.ErrValidation)
	}
	return chroma.New(lang), nil
}

// exportFile runs the pipeline for one file and writes its outputs.
func exportFile(ctx context.Context, assembler *layout.Assembler, exporter codeshot.ScreenshotExporter, path, outDir, ext, format, lang, theme string) error {
	source, err := fs.ReadSource(path)
	if err != nil {
		return err
	}
	name := filepath.Base(path)

	fragment, err := assembler.Assemble(name, source)
	if err != nil {
		return err
	}
	preamble, err := assembler.Preamble()
	if err != nil {
		return err
	}

	var out string
	if format == "latex" {
		out = latex.Document(name, preamble, fragment)
	} else {
		out = preamble + fragment
	}

	stem := strings.TrimSuffix(name, filepath.Ext(name))
	outPath := filepath.Join(outDir, stem+ext)
	if err := fs.WriteAtomic(outPath, []byte(out)); err != nil {
		return err
	}
	fmt.Printf("  Written: %s\n", outPath)

	if exporter != nil {
		img, err := exporter.Export(ctx, source, codeshot.StyleConfig{
			Language:      uiLabel(lang),
			Theme:         theme,
			HideWatermark: true,
		})
		if err != nil {
			return fmt.Errorf("screenshot: %w", err)
		}
		pngPath := filepath.Join(outDir, stem+".png")
		if err := fs.WriteAtomic(pngPath, img); err != nil {
			return err
		}
		fmt.Printf("  Written: %s\n", pngPath)
	}
	return nil
}

// uiLabel upper-cases a language flag into the label CodeImage shows in
// its picker ("python" -> "Python").
func uiLabel(lang string) string {
	if lang == "" {
		return lang
	}
	return strings.ToUpper(lang[:1]) + lang[1:]
}
