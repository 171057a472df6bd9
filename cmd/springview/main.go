// springview is an interactive 3D viewer for spring definition files.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/internal/config"
	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/internal/logger"
	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/internal/preview"
	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/spring"
	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/wirepath"
)

const windowTitle = "Spring Preview"

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: springview [options] <spring.yaml>")
		os.Exit(1)
	}
	springPath := flag.Arg(0)

	def, err := loadDefinition(springPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	res, err := build(def, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("spring built",
		zap.String("file", springPath),
		zap.Float64("wireLength", wirepath.PathLength(res.Points)),
		zap.Int("triangles", len(res.Solid.Indices)/3),
	)

	window, err := preview.NewWindow(preview.WindowConfig{
		Title:      title(springPath, def),
		Width:      cfg.Preview.Width,
		Height:     cfg.Preview.Height,
		Fullscreen: cfg.Preview.Fullscreen,
		VSync:      cfg.Preview.VSync,
	})
	if err != nil {
		logger.Error("window creation failed", zap.Error(err))
		os.Exit(1)
	}
	defer window.Close()

	renderer, err := preview.NewRenderer(window.GetSize())
	if err != nil {
		logger.Error("renderer creation failed", zap.Error(err))
		os.Exit(1)
	}
	defer renderer.Close()

	renderer.SetSolid(res.Solid)

	cam := preview.NewOrbitCamera()
	cam.FitToBounds(res.Solid.Bounds)

	var leftMouseDown bool
	var lastX, lastY float32

	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false

			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					renderer.Resize(window.GetSize())
				}

			case *sdl.MouseButtonEvent:
				if e.Button == sdl.BUTTON_LEFT {
					leftMouseDown = e.State == sdl.PRESSED
					lastX, lastY = float32(e.X), float32(e.Y)
				}

			case *sdl.MouseMotionEvent:
				if leftMouseDown {
					cam.HandleDrag(float32(e.X)-lastX, float32(e.Y)-lastY)
				}
				lastX, lastY = float32(e.X), float32(e.Y)

			case *sdl.MouseWheelEvent:
				cam.HandleZoom(float32(e.Y))

			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN {
					break
				}
				switch e.Keysym.Sym {
				case sdl.K_ESCAPE, sdl.K_q:
					running = false
				case sdl.K_r:
					cam.FitToBounds(res.Solid.Bounds)
				case sdl.K_EQUALS, sdl.K_KP_PLUS:
					if cand := adjustTurns(def, 1); cand != nil {
						if next := rebuild(cand, cfg, renderer); next != nil {
							def, res = cand, next
							window.SetTitle(title(springPath, def))
						}
					}
				case sdl.K_MINUS, sdl.K_KP_MINUS:
					if cand := adjustTurns(def, -1); cand != nil {
						if next := rebuild(cand, cfg, renderer); next != nil {
							def, res = cand, next
							window.SetTitle(title(springPath, def))
						}
					}
				}
			}
		}

		renderer.Draw(cam)
		window.SwapBuffers()
	}
}

func loadDefinition(path string) (spring.Definition, error) {
	sf, err := config.LoadSpringFile(path)
	if err != nil {
		return nil, err
	}
	return sf.Definition()
}

func build(def spring.Definition, cfg *config.Config) (*spring.Result, error) {
	return spring.Build(def, spring.Options{
		BodySamples:     cfg.Build.BodySamples,
		SectionSegments: cfg.Build.SectionSegments,
	})
}

func title(path string, def spring.Definition) string {
	return fmt.Sprintf("%s - %s (%g turns)", windowTitle, path, turnCount(def))
}

func turnCount(def spring.Definition) float64 {
	switch d := def.(type) {
	case spring.Spiral:
		return d.Turns
	case spring.Compression:
		return d.Turns
	case spring.Extension:
		return d.Turns
	}
	return 0
}

// adjustTurns returns a copy of def with the turn count changed by delta,
// or nil if the result would drop below one turn.
func adjustTurns(def spring.Definition, delta float64) spring.Definition {
	switch d := def.(type) {
	case spring.Spiral:
		if d.Turns+delta < 1 {
			return nil
		}
		d.Turns += delta
		return d
	case spring.Compression:
		if d.Turns+delta < 1 {
			return nil
		}
		d.Turns += delta
		return d
	case spring.Extension:
		if d.Turns+delta < 1 {
			return nil
		}
		d.Turns += delta
		return d
	}
	return nil
}

func rebuild(def spring.Definition, cfg *config.Config, renderer *preview.Renderer) *spring.Result {
	res, err := build(def, cfg)
	if err != nil {
		logger.Warn("rebuild failed", zap.Error(err))
		return nil
	}
	renderer.SetSolid(res.Solid)
	logger.Info("spring rebuilt",
		zap.Float64("wireLength", wirepath.PathLength(res.Points)),
		zap.Int("triangles", len(res.Solid.Indices)/3),
	)
	return res
}
