package codeshot

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a configuration value failed validation.
	ErrValidation = errors.New("validation error")

	// ErrUnmappedCategory indicates a category used by spans or a renderer
	// has no entry in the Palette. This is a configuration bug, surfaced
	// before any output is produced.
	ErrUnmappedCategory = errors.New("category not mapped in palette")

	// ErrResource indicates an input file or output path was unavailable.
	ErrResource = errors.New("resource unavailable")

	// ErrAutomation indicates the screenshot exporter's browser automation
	// failed partway through.
	ErrAutomation = errors.New("automation error")

	// ErrExportTimeout indicates the screenshot exporter ran out of time.
	ErrExportTimeout = errors.New("export timed out")
)
