// Command sdlkitdemo demonstrates the sdlkit SDL2 convenience layer.
//
// It opens a window, loads (or generates) a texture, and renders a simple
// animated scene until the window is closed.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/bmp"

	"github.com/gogpu/sdlkit"
)

func main() {
	runtime.LockOSThread()

	var (
		width   = flag.Int("width", 800, "window width")
		height  = flag.Int("height", 600, "window height")
		title   = flag.String("title", "sdlkit demo", "window title")
		img     = flag.String("image", "", "image file to draw (generated if empty)")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		sdlkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	ctx, err := sdlkit.New(*title, int32(*width), int32(*height),
		sdlkit.WithVSync(),
		sdlkit.WithHint(sdl.HINT_RENDER_SCALE_QUALITY, "linear"))
	if err != nil {
		log.Fatal(err)
	}
	defer ctx.Close()

	path := *img
	if path == "" {
		path, err = generateCheckerboard()
		if err != nil {
			log.Fatal(err)
		}
		defer os.Remove(path)
	}

	tex, err := ctx.Texture(path)
	if err != nil {
		log.Fatal(err)
	}

	if err := run(ctx, tex, int32(*width), int32(*height)); err != nil {
		log.Fatal(err)
	}
}

func run(ctx *sdlkit.Context, tex *sdl.Texture, w, h int32) error {
	angle := 0.0
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if _, ok := event.(*sdl.QuitEvent); ok {
				return nil
			}
		}

		if err := ctx.Clear(sdlkit.Hex("#202030")); err != nil {
			return err
		}
		if err := ctx.FillRect(sdl.Rect{X: 20, Y: 20, W: w - 40, H: h - 40}, sdlkit.Hex("#304050")); err != nil {
			return err
		}

		dst := &sdl.Rect{X: w/2 - 64, Y: h/2 - 64, W: 128, H: 128}
		if err := ctx.DrawTexture(tex, nil, dst, angle, sdl.FLIP_NONE); err != nil {
			return err
		}

		if err := ctx.Present(); err != nil {
			return err
		}

		angle += 0.5
		sdl.Delay(16)
	}
}

// generateCheckerboard writes a small checkerboard BMP into a temp file.
func generateCheckerboard() (string, error) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if (x/8+y/8)%2 == 0 {
				img.SetRGBA(x, y, color.RGBA{R: 230, G: 230, B: 230, A: 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{R: 40, G: 40, B: 40, A: 255})
			}
		}
	}

	path := filepath.Join(os.TempDir(), "sdlkitdemo.bmp")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := bmp.Encode(f, img); err != nil {
		return "", err
	}
	return path, nil
}
