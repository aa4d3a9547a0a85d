package sdlkit

import (
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/gogpu/sdlkit/internal/imageio"
)

// HasTexture reports whether a texture for path is already cached.
// It has no side effects and never triggers a load.
func (c *Context) HasTexture(path string) bool {
	if c.closed {
		return false
	}
	return c.textures.Has(path)
}

// Texture returns the texture for the image file at path, loading and
// caching it on first use. Every later call with the same path returns the
// identical *sdl.Texture; the file is decoded at most once per Context.
//
// Paths are opaque byte-exact cache keys: no normalization, case matters,
// and two spellings of the same file load twice.
//
// On failure a *LoadError is returned and nothing is cached, so the same
// call can simply be retried. A cached texture is never re-validated
// against the file: changes on disk are invisible until the Context is
// recreated.
//
// The returned texture is bound to this Context's renderer and owned by
// the cache; do not destroy it, and do not use it after Close.
func (c *Context) Texture(path string) (*sdl.Texture, error) {
	if err := c.guard(); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	if c.textures.Has(path) {
		Logger().Debug("texture cache hit", "path", path)
	}

	return c.textures.GetOrCreate(path, func() (*sdl.Texture, error) {
		tex, err := c.loadTexture(path)
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		Logger().Debug("texture loaded", "path", path)
		return tex, nil
	})
}

// Textures fetches every path in order and returns the resulting
// path-to-texture mapping. Equivalent to calling Texture for each path:
// the first failure aborts with that error, and textures loaded by earlier
// paths stay cached. Duplicate paths are loaded once.
func (c *Context) Textures(paths ...string) (map[string]*sdl.Texture, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}

	m := make(map[string]*sdl.Texture, len(paths))
	for _, path := range paths {
		tex, err := c.Texture(path)
		if err != nil {
			return nil, err
		}
		m[path] = tex
	}
	return m, nil
}

// TextureCount returns the number of cached textures.
func (c *Context) TextureCount() int {
	return c.textures.Len()
}

// loadTexture decodes the file at path and uploads it as a texture bound
// to the Context's renderer. The intermediate surface is freed before
// returning, matching SDL's surface-to-texture upload pattern.
func (c *Context) loadTexture(path string) (*sdl.Texture, error) {
	img, err := imageio.Load(path)
	if err != nil {
		return nil, err
	}

	w := int32(img.Bounds().Dx())
	h := int32(img.Bounds().Dy())

	// Go RGBA pixel memory is R,G,B,A at increasing addresses, which is
	// ABGR8888 in SDL's packed-format naming.
	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&img.Pix[0]), w, h, 32, int32(img.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	tex, err := c.renderer.CreateTextureFromSurface(surface)
	// The surface borrows img.Pix; keep the buffer alive until the copy
	// into the texture is done.
	runtime.KeepAlive(img)
	return tex, err
}
