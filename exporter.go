package codeshot

import "context"

// StyleConfig selects the presentation options for a screenshot export.
type StyleConfig struct {
	Language      string // editor language, e.g. "python"
	Theme         string // styling tool theme name, e.g. "VSCode Dark"
	HideWatermark bool
}

// ScreenshotExporter produces a rasterized or vector image of source text
// by driving a remote styling tool through UI automation. The core
// pipeline never depends on its internals; failures are either
// ErrExportTimeout or ErrAutomation.
type ScreenshotExporter interface {
	Export(ctx context.Context, source string, cfg StyleConfig) ([]byte, error)
}
