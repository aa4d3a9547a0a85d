package sdlkit

import (
	"io"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/gogpu/sdlkit/internal/cache"
)

// Context owns the SDL resources of one rendering session: the subsystem,
// a window, a renderer, and the texture cache, acquired in that order.
// Close releases them in exactly the reverse order.
// Context implements io.Closer for proper resource cleanup.
//
// A Context is single-threaded: create it and call every method on the
// same OS thread, per SDL's own threading rules.
type Context struct {
	title  string
	width  int32
	height int32

	initFlags uint32
	window    *sdl.Window
	renderer  *sdl.Renderer
	textures  *cache.Cache[string, *sdl.Texture]

	// Lifecycle
	closed bool // Indicates whether Close has been called
}

// Ensure Context implements io.Closer
var _ io.Closer = (*Context)(nil)

// New creates a rendering context with the given window title and size.
// Acquisition order is fixed: SDL subsystem, then window, then renderer.
// If any step fails, everything acquired before it is released and an
// *InitError naming the failed stage is returned.
//
//	ctx, err := sdlkit.New("demo", 800, 600)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctx.Close()
func New(title string, width, height int32, opts ...Option) (*Context, error) {
	// Apply options
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	rendererFlags := options.resolvedRendererFlags()

	if err := sdl.Init(options.initFlags); err != nil {
		return nil, &InitError{Stage: "init", Err: err}
	}
	Logger().Debug("sdl initialized", "flags", options.initFlags)

	for name, value := range options.hints {
		sdl.SetHint(name, value)
	}

	window, err := sdl.CreateWindow(title,
		options.windowX, options.windowY, width, height, options.windowFlags)
	if err != nil {
		sdl.Quit()
		return nil, &InitError{Stage: "window", Err: err}
	}
	Logger().Debug("window created", "title", title, "width", width, "height", height)

	renderer, err := sdl.CreateRenderer(window, -1, rendererFlags)
	if err != nil {
		_ = window.Destroy()
		sdl.Quit()
		return nil, &InitError{Stage: "renderer", Err: err}
	}
	Logger().Debug("renderer created", "flags", rendererFlags)

	return &Context{
		title:     title,
		width:     width,
		height:    height,
		initFlags: options.initFlags,
		window:    window,
		renderer:  renderer,
		textures:  cache.New[string, *sdl.Texture](),
	}, nil
}

// Close releases all resources owned by the Context in reverse acquisition
// order: cached textures, renderer, window, SDL subsystem.
// After Close, every operation returns an error matching ErrClosed.
// Close is idempotent - multiple calls are safe.
// Implements io.Closer.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	c.textures.Clear(func(t *sdl.Texture) {
		if err := t.Destroy(); err != nil {
			Logger().Warn("texture destroy failed", "error", err)
		}
	})
	Logger().Debug("texture cache cleared")

	var firstErr error
	if err := c.renderer.Destroy(); err != nil {
		firstErr = err
		Logger().Warn("renderer destroy failed", "error", err)
	}
	Logger().Debug("renderer destroyed")

	if err := c.window.Destroy(); err != nil {
		if firstErr == nil {
			firstErr = err
		}
		Logger().Warn("window destroy failed", "error", err)
	}
	Logger().Debug("window destroyed")

	if sdl.WasInit(c.initFlags) == c.initFlags {
		sdl.Quit()
	}
	Logger().Debug("sdl terminated")

	return firstErr
}

// guard returns ErrClosed if Close has been called, nil otherwise.
func (c *Context) guard() error {
	if c.closed {
		return ErrClosed
	}
	return nil
}

// Title returns the window title the Context was created with.
func (c *Context) Title() string { return c.title }

// Size returns the window dimensions the Context was created with.
func (c *Context) Size() (width, height int32) { return c.width, c.height }

// Window returns the underlying SDL window.
// The Context retains ownership; do not destroy it.
func (c *Context) Window() *sdl.Window { return c.window }

// Renderer returns the underlying SDL renderer for calls sdlkit does not
// wrap. The Context retains ownership; do not destroy it.
func (c *Context) Renderer() *sdl.Renderer { return c.renderer }
