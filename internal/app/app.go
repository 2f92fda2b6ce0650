// Package app wires the window, renderer and event pump into the
// run-until-closed loop.
package app

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/quadview/internal/assets/shaders"
	"github.com/Faultbox/quadview/internal/config"
	"github.com/Faultbox/quadview/internal/engine/debug"
	"github.com/Faultbox/quadview/internal/engine/input"
	"github.com/Faultbox/quadview/internal/engine/renderer"
	"github.com/Faultbox/quadview/internal/engine/shader"
	"github.com/Faultbox/quadview/internal/engine/window"
	"github.com/Faultbox/quadview/internal/logger"
)

// App is the viewer instance.
type App struct {
	cfg      *config.Config
	window   *window.Window
	renderer *renderer.Renderer
	pump     *input.Pump
}

// New creates the window and GL context, loads the shader source and sets
// up the scene. Window creation failures and an unusable shader source
// (unreadable file, missing section) are fatal; a shader that merely fails
// to compile is logged and the app still runs.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:     cfg.Window.Title,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		VSync:     cfg.Window.VSync,
		Resizable: cfg.Window.Resizable,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	a.renderer, err = renderer.New(renderer.Config{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		ClearColor: cfg.Render.ClearColor,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	src, err := a.loadShaderSource()
	if err != nil {
		a.window.Close()
		return nil, err
	}

	if err := a.renderer.SetupScene(src); err != nil {
		// The loop still runs without a usable program; the per-frame
		// probe reports the damage every frame it occurs.
		logger.Error("shader setup failed", zap.Error(err))
	}

	a.pump = input.New()

	return a, nil
}

// loadShaderSource parses the configured shader file, or the embedded
// default when none is configured, and rejects sources with a missing
// section.
func (a *App) loadShaderSource() (shader.Source, error) {
	var (
		src shader.Source
		err error
	)

	if path := a.cfg.Render.ShaderFile; path != "" {
		src, err = shader.ParseFile(path)
		if err != nil {
			return shader.Source{}, err
		}
		logger.Info("shader loaded", zap.String("path", path))
	} else {
		src, err = shader.Parse(strings.NewReader(shaders.Basic))
		if err != nil {
			return shader.Source{}, err
		}
		logger.Info("using embedded default shader")
	}

	if err := src.Validate(); err != nil {
		return shader.Source{}, err
	}
	return src, nil
}

// Run drives the render loop until the window closes. Each iteration:
// poll events, clear, draw with the error probe bracketing the call,
// present. The scene is static, so there is no per-frame state to update.
func (a *App) Run() error {
	captureFile := a.cfg.Render.CaptureFile
	frames := 0

	logger.Info("starting render loop")

	for {
		if a.pump.Update() {
			break
		}
		for _, ev := range a.pump.Events() {
			if ev.Resize {
				a.renderer.Resize(ev.Width, ev.Height)
			}
		}

		a.renderer.DrawFrame()

		// One-shot capture of the first frame, read from the back
		// buffer before it is presented.
		if captureFile != "" {
			pixels, w, h := a.renderer.CapturePixels()
			if err := debug.SavePNG(captureFile, pixels, w, h); err != nil {
				logger.Error("frame capture failed", zap.Error(err))
			} else {
				logger.Info("frame captured", zap.String("path", captureFile))
			}
			captureFile = ""
		}

		a.window.SwapBuffers()
		frames++
	}

	logger.Info("window closed", zap.Int("frames", frames))
	return nil
}

// Close releases the renderer's GL resources and tears the window down.
func (a *App) Close() {
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
