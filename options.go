package sdlkit

import "github.com/veandco/go-sdl2/sdl"

// Option configures a Context during creation.
// Use functional options to customize Context behavior.
//
// Example:
//
//	// Default video init, shown window, accelerated renderer
//	ctx, err := sdlkit.New("demo", 800, 600)
//
//	// Hidden window with a software renderer
//	ctx, err := sdlkit.New("demo", 800, 600,
//	    sdlkit.WithWindowFlags(sdl.WINDOW_HIDDEN),
//	    sdlkit.WithRendererFlags(sdl.RENDERER_SOFTWARE))
type Option func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	initFlags     uint32
	windowFlags   sdl.WindowFlags
	rendererFlags sdl.RendererFlags
	windowX       int32
	windowY       int32
	vsync         bool
	hints         map[string]string
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		initFlags:     sdl.INIT_VIDEO,
		windowFlags:   sdl.WINDOW_SHOWN,
		rendererFlags: sdl.RENDERER_ACCELERATED,
		windowX:       sdl.WINDOWPOS_UNDEFINED,
		windowY:       sdl.WINDOWPOS_UNDEFINED,
	}
}

// resolvedRendererFlags returns the renderer flags with the vsync option
// folded in.
func (o *contextOptions) resolvedRendererFlags() sdl.RendererFlags {
	flags := o.rendererFlags
	if o.vsync {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}
	return flags
}

// WithInitFlags sets the SDL subsystem init flags.
// The default is sdl.INIT_VIDEO.
func WithInitFlags(flags uint32) Option {
	return func(o *contextOptions) {
		o.initFlags = flags
	}
}

// WithWindowFlags sets the SDL window flags.
// The default is sdl.WINDOW_SHOWN.
func WithWindowFlags(flags sdl.WindowFlags) Option {
	return func(o *contextOptions) {
		o.windowFlags = flags
	}
}

// WithRendererFlags sets the SDL renderer flags.
// The default is sdl.RENDERER_ACCELERATED.
func WithRendererFlags(flags sdl.RendererFlags) Option {
	return func(o *contextOptions) {
		o.rendererFlags = flags
	}
}

// WithWindowPosition sets the initial window position.
// The default lets SDL place the window (sdl.WINDOWPOS_UNDEFINED).
func WithWindowPosition(x, y int32) Option {
	return func(o *contextOptions) {
		o.windowX = x
		o.windowY = y
	}
}

// WithVSync enables vertical sync on the renderer by adding
// sdl.RENDERER_PRESENTVSYNC to the renderer flags.
func WithVSync() Option {
	return func(o *contextOptions) {
		o.vsync = true
	}
}

// WithHint sets an SDL hint before the window is created.
// Hints are applied in unspecified order after subsystem init.
//
// Example:
//
//	sdlkit.WithHint(sdl.HINT_RENDER_SCALE_QUALITY, "linear")
func WithHint(name, value string) Option {
	return func(o *contextOptions) {
		if o.hints == nil {
			o.hints = make(map[string]string)
		}
		o.hints[name] = value
	}
}
