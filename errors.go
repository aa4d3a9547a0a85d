package sdlkit

import (
	"errors"
	"fmt"
)

// ErrClosed is returned (wrapped) by any operation invoked on a Context
// after Close. Use errors.Is to detect it.
var ErrClosed = errors.New("sdlkit: context is closed")

// InitError reports a failure while constructing a Context. It names the
// acquisition stage that failed ("init", "window", "renderer"); everything
// acquired before that stage has already been released when the error is
// returned.
type InitError struct {
	Stage string
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("sdlkit: %s setup failed: %v", e.Stage, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// LoadError reports a failure to decode or upload a single texture. The
// cache is left unchanged; calling Context.Texture again with the same
// path retries the load.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("sdlkit: load texture %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// RenderError reports a failure of a single drawing operation. It carries
// no recovery state; the caller decides whether to abandon the frame.
type RenderError struct {
	Op  string
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("sdlkit: render op %s: %v", e.Op, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
