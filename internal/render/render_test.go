package render

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/umlgridgo/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	testCases := map[string]string{
		"output/uml_class_diagram.png": "png",
		"diagram.SVG":                  "svg",
		"diagram.pdf":                  "pdf",
		"diagram.jpeg":                 "jpg",
		"diagram.jpg":                  "jpg",
		"diagram.gv":                   FormatDOT,
		"diagram.dot":                  FormatDOT,
		"diagram":                      DefaultFormat,
		"diagram.tiff":                 DefaultFormat,
		"-":                            DefaultFormat,
	}
	for path, want := range testCases {
		assert.Equal(t, want, FormatFromPath(path), "FormatFromPath(%q)", path)
	}
}

func TestValidateFormat(t *testing.T) {
	t.Parallel()

	for _, f := range Formats() {
		require.NoError(t, ValidateFormat(f), f)
	}
	err := ValidateFormat("bmp")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "png, svg, pdf, jpg, dot")
}

func TestDot_MissingExecutable(t *testing.T) {
	t.Parallel()

	ctx := ctxlog.Discard(context.Background())
	d := NewDot(filepath.Join(t.TempDir(), "no-such-dot"))

	_, err := d.Check(ctx)
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "no-such-dot")

	_, err = d.Render(ctx, []byte("digraph {}"), "png")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestDot_DOTFormatSkipsExecutable(t *testing.T) {
	t.Parallel()

	ctx := ctxlog.Discard(context.Background())
	d := NewDot(filepath.Join(t.TempDir(), "no-such-dot"))

	src := []byte("digraph {\n}\n")
	out, err := d.Render(ctx, src, FormatDOT)
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestDot_RejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := NewDot("").Render(ctxlog.Discard(context.Background()), nil, "bmp")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDot_RendersWithGraphviz(t *testing.T) {
	if _, err := exec.LookPath(DefaultDotPath); err != nil {
		t.Skip("graphviz is not installed")
	}
	t.Parallel()

	ctx := ctxlog.Discard(context.Background())
	d := NewDot("")

	version, err := d.Check(ctx)
	require.NoError(t, err)
	assert.Contains(t, version, "graphviz")

	out, err := d.Render(ctx, []byte(`digraph { A [shape=record,label="{A|x: int\l|}"]; }`), "svg")
	require.NoError(t, err)
	assert.Contains(t, string(out), "<svg")
}
