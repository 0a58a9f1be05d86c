package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/codeshot"
	"github.com/fwojciec/codeshot/chroma"
	"github.com/fwojciec/codeshot/latex"
	"github.com/fwojciec/codeshot/layout"
	"github.com/fwojciec/codeshot/python"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveClassifier(t *testing.T) {
	t.Parallel()

	c, err := resolveClassifier("python")
	require.NoError(t, err)
	assert.IsType(t, &python.Classifier{}, c, "python uses the builtin scanner")

	c, err = resolveClassifier("go")
	require.NoError(t, err)
	assert.IsType(t, &chroma.Classifier{}, c)

	_, err = resolveClassifier("no-such-language")
	assert.ErrorIs(t, err, codeshot.ErrValidation)
}

func TestExportFile_IndependentOutcomes(t *testing.T) {
	t.Parallel()

	srcDir, outDir := t.TempDir(), t.TempDir()
	good := filepath.Join(srcDir, "good.py")
	require.NoError(t, os.WriteFile(good, []byte("x = 1\n"), 0o644))
	missing := filepath.Join(srcDir, "missing.py")

	assembler, err := layout.NewAssembler(python.New(), latex.New(), codeshot.DefaultPalette(), codeshot.DefaultConfig())
	require.NoError(t, err)

	ctx := context.Background()
	err = exportFile(ctx, assembler, nil, missing, outDir, ".tex", "latex", "python", "")
	assert.ErrorIs(t, err, codeshot.ErrResource)

	// The earlier failure must not poison a later file.
	require.NoError(t, exportFile(ctx, assembler, nil, good, outDir, ".tex", "latex", "python", ""))

	data, err := os.ReadFile(filepath.Join(outDir, "good.tex"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `\begin{document}`)
	assert.Contains(t, string(data), "good.py")
}

func TestUILabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Python", uiLabel("python"))
	assert.Equal(t, "Go", uiLabel("go"))
	assert.Equal(t, "", uiLabel(""))
}
