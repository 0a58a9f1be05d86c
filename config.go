package codeshot

import "fmt"

// FontMode selects which font directives the document preamble emits. It
// has no effect on classification or layout.
type FontMode int

const (
	// FontPrimary emits the JetBrains Mono fontspec setup and requires a
	// Unicode-aware LaTeX engine.
	FontPrimary FontMode = iota

	// FontFallback emits the stock monospace family and compiles anywhere.
	FontFallback
)

// ParseFontMode parses "primary" or "fallback".
func ParseFontMode(s string) (FontMode, error) {
	switch s {
	case "primary":
		return FontPrimary, nil
	case "fallback":
		return FontFallback, nil
	default:
		return 0, fmt.Errorf("font mode must be primary or fallback, got %q: %w", s, ErrValidation)
	}
}

// Config carries the layout options for one pipeline invocation.
type Config struct {
	// MaxVisibleWidth is the per-line budget in display cells, counting
	// content only (markup overhead is excluded from measurement).
	MaxVisibleWidth int

	// ContinuationIndent prefixes every wrapped continuation line, before
	// the continuation marker.
	ContinuationIndent string

	FontMode FontMode
}

// DefaultConfig returns the standard layout options.
func DefaultConfig() Config {
	return Config{
		MaxVisibleWidth:    62,
		ContinuationIndent: "    ",
		FontMode:           FontPrimary,
	}
}

// Validate checks universal constraints on Config.
func (c Config) Validate() error {
	if c.MaxVisibleWidth < 1 {
		return fmt.Errorf("max visible width must be positive, got %d: %w", c.MaxVisibleWidth, ErrValidation)
	}
	return nil
}
