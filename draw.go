package sdlkit

import "github.com/veandco/go-sdl2/sdl"

// Drawing operations forward to the renderer one call at a time. Each
// either mutates the pending frame or returns a *RenderError; nothing is
// retried and no state is recovered. The caller decides whether to abort
// the frame or carry on.

// SetDrawColor sets the renderer's current draw color.
func (c *Context) SetDrawColor(col Color) error {
	if err := c.guard(); err != nil {
		return &RenderError{Op: "set_draw_color", Err: err}
	}
	s := col.SDL()
	if err := c.renderer.SetDrawColor(s.R, s.G, s.B, s.A); err != nil {
		return &RenderError{Op: "set_draw_color", Err: err}
	}
	return nil
}

// Clear fills the entire render target with col.
func (c *Context) Clear(col Color) error {
	if err := c.SetDrawColor(col); err != nil {
		return err
	}
	if err := c.renderer.Clear(); err != nil {
		return &RenderError{Op: "clear", Err: err}
	}
	return nil
}

// Present flips the pending frame buffer to the screen.
func (c *Context) Present() error {
	if err := c.guard(); err != nil {
		return &RenderError{Op: "present", Err: err}
	}
	c.renderer.Present()
	return nil
}

// FillRect fills the rectangle with col.
func (c *Context) FillRect(rect sdl.Rect, col Color) error {
	if err := c.SetDrawColor(col); err != nil {
		return err
	}
	if err := c.renderer.FillRect(&rect); err != nil {
		return &RenderError{Op: "fill_rect", Err: err}
	}
	return nil
}

// FillRectF fills the float rectangle with col.
func (c *Context) FillRectF(rect sdl.FRect, col Color) error {
	if err := c.SetDrawColor(col); err != nil {
		return err
	}
	if err := c.renderer.FillRectF(&rect); err != nil {
		return &RenderError{Op: "fill_rect_f", Err: err}
	}
	return nil
}

// DrawTexture copies a texture region onto a destination region with
// optional rotation and flipping. A nil src selects the whole texture; a
// nil dst covers the whole render target. angle is in degrees, clockwise;
// pass sdl.FLIP_NONE for no flipping.
//
// The texture must have been produced by this Context's renderer.
func (c *Context) DrawTexture(tex *sdl.Texture, src, dst *sdl.Rect, angle float64, flip sdl.RendererFlip) error {
	if err := c.guard(); err != nil {
		return &RenderError{Op: "draw_texture", Err: err}
	}
	if err := c.renderer.CopyEx(tex, src, dst, angle, nil, flip); err != nil {
		return &RenderError{Op: "draw_texture", Err: err}
	}
	return nil
}

// DrawTextureF is DrawTexture with a float destination rectangle, for
// sub-pixel placement.
func (c *Context) DrawTextureF(tex *sdl.Texture, src *sdl.Rect, dst *sdl.FRect, angle float64, flip sdl.RendererFlip) error {
	if err := c.guard(); err != nil {
		return &RenderError{Op: "draw_texture_f", Err: err}
	}
	if err := c.renderer.CopyExF(tex, src, dst, angle, nil, flip); err != nil {
		return &RenderError{Op: "draw_texture_f", Err: err}
	}
	return nil
}
