// Package sdlkit provides an ownership-safe convenience layer over SDL2.
//
// # Overview
//
// sdlkit wraps the fundamental objects of SDL2 (via veandco/go-sdl2) in a
// single Context that owns the subsystem, a window, a renderer, and a lazy
// texture cache. Construction acquires resources in a strict order and
// Close releases them in exactly the reverse order, so callers never track
// individual handles. Drawing helpers forward to the renderer and translate
// SDL failures into Go errors.
//
// # Quick Start
//
//	import "github.com/gogpu/sdlkit"
//
//	ctx, err := sdlkit.New("demo", 800, 600)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctx.Close()
//
//	tex, err := ctx.Texture("assets/player.bmp")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx.Clear(sdlkit.RGB(0, 0, 0))
//	ctx.DrawTexture(tex, nil, nil, 0, sdl.FLIP_NONE)
//	ctx.Present()
//
// # Texture Cache
//
// Context.Texture loads an image file at most once per distinct path and
// returns the same *sdl.Texture on every subsequent call. Paths are opaque
// byte-exact keys; no normalization is applied. A failed load inserts
// nothing and may simply be retried. Cached textures are destroyed when the
// Context closes and must not be used afterwards.
//
// # Errors
//
// Failures are reported through three types: InitError (context
// construction), LoadError (texture decode or upload), and RenderError
// (individual draw calls). All support errors.As, and operations on a
// closed Context return errors matching ErrClosed via errors.Is.
//
// # Threading
//
// The API is single-threaded by design, matching SDL's own requirement
// that rendering happens on the thread that created the window. Call
// runtime.LockOSThread in main and keep all Context use on that thread.
package sdlkit

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
