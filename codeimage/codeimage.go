// Package codeimage exports code screenshots by driving the CodeImage web
// app (https://app.codeimage.dev) in a headless browser: it injects the
// source into the CodeMirror editor, applies the language and theme, and
// captures the styled frame as image bytes. The rest of the pipeline
// treats this as an opaque collaborator.
package codeimage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"
	"github.com/fwojciec/codeshot"
)

// Compile-time interface verification.
var _ codeshot.ScreenshotExporter = (*Exporter)(nil)

// DefaultURL is the hosted CodeImage app.
const DefaultURL = "https://app.codeimage.dev/"

// frameSelector locates the exportable styled frame in the CodeImage DOM.
const frameSelector = `#frame`

// Exporter drives CodeImage through chromedp.
type Exporter struct {
	url     string
	timeout time.Duration
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithURL points the exporter at a different CodeImage deployment.
func WithURL(u string) Option {
	return func(e *Exporter) { e.url = u }
}

// WithTimeout bounds one export end to end. Default is 60 seconds.
func WithTimeout(d time.Duration) Option {
	return func(e *Exporter) { e.timeout = d }
}

// New creates an exporter.
func New(opts ...Option) *Exporter {
	e := &Exporter{url: DefaultURL, timeout: 60 * time.Second}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export renders source in CodeImage and returns a PNG of the styled
// frame. A deadline overrun reports ErrExportTimeout; any other automation
// failure reports ErrAutomation.
func (e *Exporter) Export(ctx context.Context, source string, cfg codeshot.StyleConfig) ([]byte, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, e.timeout)
	defer cancelRun()

	var buf []byte
	if err := chromedp.Run(runCtx, e.tasks(source, cfg, &buf)...); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("export after %s: %w", e.timeout, codeshot.ErrExportTimeout)
		}
		return nil, fmt.Errorf("export: %v: %w", err, codeshot.ErrAutomation)
	}
	return buf, nil
}

func (e *Exporter) tasks(source string, cfg codeshot.StyleConfig, buf *[]byte) []chromedp.Action {
	actions := []chromedp.Action{
		chromedp.Navigate(e.url),
		chromedp.WaitVisible(`.cm-content`, chromedp.ByQuery),
		// Dismiss any "what's new" modal.
		chromedp.KeyEvent(kb.Escape),
		chromedp.Sleep(300 * time.Millisecond),
	}

	if cfg.Language != "" {
		actions = append(actions,
			chromedp.Click(`#frameLanguageField-trigger`, chromedp.ByQuery),
			clickOption(cfg.Language),
		)
	}
	if cfg.Theme != "" {
		actions = append(actions,
			chromedp.Click(`#frameSyntaxHighlightField-trigger`, chromedp.ByQuery),
			clickOption(cfg.Theme),
		)
	}
	if cfg.HideWatermark {
		actions = append(actions,
			chromedp.Click(
				`//label[@for="frameShowWatermarkField"]/following::*[@role="tab"][normalize-space()="Hide"][1]`,
				chromedp.BySearch,
			),
			chromedp.Sleep(300*time.Millisecond),
		)
	}

	actions = append(actions,
		setEditorCode(source),
		chromedp.Sleep(500*time.Millisecond),
		chromedp.Screenshot(frameSelector, buf, chromedp.NodeVisible, chromedp.ByQuery),
	)
	return actions
}

// clickOption clicks a listbox option by its visible label.
func clickOption(label string) chromedp.Action {
	sel := fmt.Sprintf(`//*[@role="option"][normalize-space()=%q]`, label)
	return chromedp.Tasks{
		chromedp.Click(sel, chromedp.BySearch),
		chromedp.Sleep(300 * time.Millisecond),
	}
}

// setEditorCode replaces the CodeMirror document through its dispatch API,
// which is reliable where synthetic keystrokes are not.
func setEditorCode(source string) chromedp.Action {
	quoted, _ := json.Marshal(source)
	js := fmt.Sprintf(`(() => {
		const el = document.querySelector('.cm-content[contenteditable="true"]');
		const view = el?.cmView?.rootView;
		if (!view) return false;
		view.dispatch({
			changes: { from: 0, to: view.state.doc.length, insert: %s },
		});
		return true;
	})()`, quoted)
	var ok bool
	return chromedp.Tasks{
		chromedp.Evaluate(js, &ok),
	}
}
