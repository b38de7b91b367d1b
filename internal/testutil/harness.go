package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/umlgridgo/internal/app"
	"github.com/specialistvlad/umlgridgo/internal/hcl_adapter"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Output    string // whatever the app wrote to its output stream
	Err       error
	Root      string // temporary directory holding the catalog and output
	Config    *app.Config
	Renderer  *FakeRenderer
}

// ReadOutputFile returns the content of the configured output path.
func (r *HarnessResult) ReadOutputFile(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(r.Config.OutputPath)
	require.NoError(t, err)
	return string(data)
}

// WriteFiles writes files (relative path -> content) below root.
func WriteFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		filePath := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}
}

// RunIntegrationTest writes the catalog files into a fresh `catalog`
// directory, runs the app against it with a FakeRenderer and reports what
// happened. configure may adjust the config before it is validated; the
// output path defaults to `out/diagram.png` inside the temporary root.
func RunIntegrationTest(t *testing.T, files map[string]string, configure func(cfg *app.Config)) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithRenderer(t, files, &FakeRenderer{}, configure)
}

// RunIntegrationTestWithRenderer is RunIntegrationTest with a caller-supplied renderer.
func RunIntegrationTestWithRenderer(t *testing.T, files map[string]string, renderer *FakeRenderer, configure func(cfg *app.Config)) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	catalogDir := filepath.Join(tmpDir, "catalog")
	require.NoError(t, os.Mkdir(catalogDir, 0755))
	WriteFiles(t, catalogDir, files)

	cfg := app.Config{
		CatalogPaths: []string{catalogDir},
		OutputPath:   filepath.Join(tmpDir, "out", "diagram.png"),
		LogLevel:     "debug",
		LogFormat:    "text",
	}
	if configure != nil {
		configure(&cfg)
	}

	logBuffer := &SafeBuffer{}
	out := &bytes.Buffer{}
	t.Cleanup(func() {
		if os.Getenv("UMLGRID_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	result := &HarnessResult{Root: tmpDir, Renderer: renderer}

	validated, err := app.NewConfig(cfg)
	if err != nil {
		result.Err = err
		return result
	}
	result.Config = validated

	testApp := app.NewApp(out, logBuffer, validated, hcl_adapter.NewLoader(), renderer)
	result.Err = testApp.Run(context.Background())
	result.LogOutput = logBuffer.String()
	result.Output = out.String()
	return result
}
