package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/specialistvlad/umlgridgo/internal/render"
)

// FakeRenderer stands in for the Graphviz executable. It records the DOT
// source it receives and returns a small marker instead of an image.
type FakeRenderer struct {
	// Unavailable makes Check fail the way a missing executable does.
	Unavailable bool
	// Err, when set, is returned by Render.
	Err error

	mu      sync.Mutex
	calls   int
	checks  int
	lastSrc []byte
	format  string
}

// Check implements render.Renderer.
func (f *FakeRenderer) Check(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.checks++
	if f.Unavailable {
		return "", fmt.Errorf("%w: fake renderer switched off", render.ErrUnavailable)
	}
	return "dot - graphviz version 0.0.0 (fake)", nil
}

// Render implements render.Renderer.
func (f *FakeRenderer) Render(ctx context.Context, dot []byte, format string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastSrc = append([]byte(nil), dot...)
	f.format = format
	if f.Err != nil {
		return nil, f.Err
	}
	if format == render.FormatDOT {
		return dot, nil
	}
	return []byte(RenderedMarker(format)), nil
}

// RenderedMarker is the content FakeRenderer returns for image formats.
func RenderedMarker(format string) string {
	return "FAKE-" + format
}

// Source returns the DOT text passed to the last Render call.
func (f *FakeRenderer) Source() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return string(f.lastSrc)
}

// Format returns the format requested by the last Render call.
func (f *FakeRenderer) Format() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.format
}

// Calls returns how many times Render and Check were invoked.
func (f *FakeRenderer) Calls() (renders, checks int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls, f.checks
}
