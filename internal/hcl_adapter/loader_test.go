package hcl_adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/umlgridgo/internal/catalog"
	"github.com/specialistvlad/umlgridgo/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return ctxlog.Discard(context.Background())
}

func TestLoadSource_Classes(t *testing.T) {
	t.Parallel()

	src := `
class "User" {
  attributes = ["id: int", format("%s: %s", "email", "string")]
  methods    = ["login(password: string): bool"]
  related    = ["Order"]
}

class "Admin" {
  inherits   = "User"
  attributes = formatlist("%s: %s", ["level", "scope"], ["int", "string"])
}

class "Order" {}
`
	model, err := NewLoader().LoadSource(testContext(), "classes.hcl", []byte(src))
	require.NoError(t, err)

	require.Equal(t, []string{"User", "Admin", "Order"}, model.Catalog.Names())
	assert.Nil(t, model.Diagram)
	assert.Equal(t, []string{"classes.hcl"}, model.Files)

	want := []*catalog.Class{
		{
			Name:       "User",
			Attributes: []string{"id: int", "email: string"},
			Methods:    []string{"login(password: string): bool"},
			Related:    []string{"Order"},
		},
		{
			Name:       "Admin",
			Inherits:   "User",
			Attributes: []string{"level: int", "scope: string"},
		},
		{Name: "Order"},
	}
	if diff := cmp.Diff(want, model.Catalog.Classes()); diff != "" {
		t.Errorf("classes mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSource_Diagram(t *testing.T) {
	t.Parallel()

	src := `
diagram {
  root = "Account"
  style {
    preset          = "classic"
    font_family     = "Helvetica"
    font_size       = 16
    font_weight     = "bold"
    page_size       = [8.5, 11]
    dpi             = 300
    node_separation = 0.6
  }
}
`
	model, err := NewLoader().LoadSource(testContext(), "diagram.hcl", []byte(src))
	require.NoError(t, err)
	require.NotNil(t, model.Diagram)
	require.NotNil(t, model.Diagram.Root)
	assert.Equal(t, "Account", *model.Diagram.Root)

	style := model.Diagram.Style
	require.NotNil(t, style)
	assert.Equal(t, "classic", *style.Preset)
	assert.Equal(t, "Helvetica", *style.FontFamily)
	assert.Equal(t, 16, *style.FontSize)
	assert.Equal(t, "bold", *style.FontWeight)
	assert.Nil(t, style.FontColor)
	assert.Equal(t, &[2]float64{8.5, 11}, style.PageSize)
	assert.Equal(t, 300, *style.DPI)
	assert.InDelta(t, 0.6, *style.NodeSeparation, 1e-9)
}

func TestLoadSource_DiagramWithoutStyle(t *testing.T) {
	t.Parallel()

	model, err := NewLoader().LoadSource(testContext(), "d.hcl", []byte(`diagram {}`))
	require.NoError(t, err)
	require.NotNil(t, model.Diagram)
	assert.Nil(t, model.Diagram.Root)
	assert.Nil(t, model.Diagram.Style)
}

func TestLoadSource_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name:    "syntax error",
			src:     `class "A" {`,
			wantErr: "failed to parse HCL file bad.hcl",
		},
		{
			name:    "unknown attribute",
			src:     `class "A" { colour = "red" }`,
			wantErr: "failed to decode HCL file bad.hcl",
		},
		{
			name:    "unknown block",
			src:     `interface "A" {}`,
			wantErr: "failed to decode HCL file bad.hcl",
		},
		{
			name:    "duplicate class",
			src:     "class \"A\" {}\nclass \"A\" {}",
			wantErr: `in bad.hcl: duplicate class: "A"`,
		},
		{
			name:    "two diagram blocks",
			src:     "diagram {}\ndiagram {}",
			wantErr: "only one diagram block is allowed",
		},
		{
			name:    "invalid font weight",
			src:     "diagram {\n  style {\n    font_weight = \"heavy\"\n  }\n}",
			wantErr: "style.font_weight",
		},
		{
			name:    "unknown preset",
			src:     "diagram {\n  style {\n    preset = \"neon\"\n  }\n}",
			wantErr: "unknown style preset",
		},
		{
			name:    "bad page size",
			src:     "diagram {\n  style {\n    page_size = [8.5]\n  }\n}",
			wantErr: "style.page_size must be two positive numbers",
		},
		{
			name:    "zero font size",
			src:     "diagram {\n  style {\n    font_size = 0\n  }\n}",
			wantErr: "style.font_size must be positive",
		},
		{
			name:    "negative dpi",
			src:     "diagram {\n  style {\n    dpi = -1\n  }\n}",
			wantErr: "style.dpi must not be negative",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewLoader().LoadSource(testContext(), "bad.hcl", []byte(tc.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoad_MergesFilesInLexicalOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := map[string]string{
		"b_orders.hcl": `class "Order" { related = ["User"] }`,
		"a_users.hcl":  `class "User" { related = ["Order"] }`,
		"nested/z.hcl": `diagram { root = "Order" }`,
		"README.md":    "not a catalog",
	}
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}

	model, err := NewLoader().Load(testContext(), dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"User", "Order"}, model.Catalog.Names())
	require.NotNil(t, model.Diagram)
	assert.Equal(t, "Order", *model.Diagram.Root)
	assert.Len(t, model.Files, 3)
}

func TestLoad_DuplicateAcrossFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hcl"), []byte(`class "User" {}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.hcl"), []byte(`class "User" {}`), 0644))

	_, err := NewLoader().Load(testContext(), dir)
	require.ErrorIs(t, err, catalog.ErrDuplicateClass)
	assert.Contains(t, err.Error(), "b.hcl")
}

func TestLoad_NoFiles(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(testContext(), t.TempDir())
	require.ErrorIs(t, err, ErrNoFiles)
}

func TestLoad_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(testContext(), filepath.Join(t.TempDir(), "nope.hcl"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
