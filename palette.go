package codeshot

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex parses a "#RRGGBB" string into an RGB value.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("hex color must be 6 digits, got %q: %w", s, ErrValidation)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, ErrValidation)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Palette maps categories to display colors. It is built once at startup
// and never mutated, so a single Palette is safe to share across
// concurrent pipeline invocations.
type Palette map[Category]RGB

// Color returns the color for a category. A missing entry is a
// configuration bug, reported as ErrUnmappedCategory.
func (p Palette) Color(c Category) (RGB, error) {
	rgb, ok := p[c]
	if !ok {
		return RGB{}, fmt.Errorf("%s: %w", c, ErrUnmappedCategory)
	}
	return rgb, nil
}

// Validate checks that the palette covers the full category enumeration.
func (p Palette) Validate() error {
	for _, c := range AllCategories() {
		if _, ok := p[c]; !ok {
			return fmt.Errorf("%s: %w", c, ErrUnmappedCategory)
		}
	}
	return nil
}

// DefaultPalette returns the VSCode Dark color table.
func DefaultPalette() Palette {
	return Palette{
		CategoryDefault:    {R: 0x9A, G: 0xD6, B: 0xFE},
		CategoryKeyword:    {R: 0x52, G: 0x9D, B: 0xDA},
		CategoryFunction:   {R: 0xDC, G: 0xDC, B: 0xA8},
		CategoryType:       {R: 0x4E, G: 0xC9, B: 0xB0},
		CategoryNumber:     {R: 0xB4, G: 0xCD, B: 0xA7},
		CategoryString:     {R: 0xCE, G: 0x91, B: 0x78},
		CategoryComment:    {R: 0x8D, G: 0xA1, B: 0xB9},
		CategoryOperator:   {R: 0xFA, G: 0xFA, B: 0xFA},
		CategoryBracket:    {R: 0xDB, G: 0xD7, B: 0x00},
		CategoryDecorator:  {R: 0xDC, G: 0xDC, B: 0xA8},
		CategoryLineNo:     {R: 0x7C, G: 0x80, B: 0x83},
		CategorySelection:  {R: 0x26, G: 0x4F, B: 0x78},
		CategoryBackground: {R: 0x1E, G: 0x1E, B: 0x1E},
		CategoryFrame:      {R: 0x15, G: 0x15, B: 0x16},
		CategoryBtnRed:     {R: 0xFF, G: 0x5F, B: 0x57},
		CategoryBtnYellow:  {R: 0xFE, G: 0xBC, B: 0x2E},
		CategoryBtnGreen:   {R: 0x28, G: 0xC8, B: 0x40},
	}
}
