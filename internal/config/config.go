// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds window and context settings.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	VSync     bool   `yaml:"vsync"`
	Resizable bool   `yaml:"resizable"`
}

// RenderConfig holds rendering settings.
type RenderConfig struct {
	// ShaderFile is an optional path to a combined vertex/fragment
	// shader file. Empty means the embedded default shader is used.
	ShaderFile string `yaml:"shader_file"`

	// ClearColor is the RGBA background color, each channel in [0,1].
	ClearColor [4]float32 `yaml:"clear_color"`

	// CaptureFile, when set, saves a PNG of the first rendered frame.
	CaptureFile string `yaml:"capture_file"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "Quad Viewer",
			Width:     640,
			Height:    480,
			VSync:     true,
			Resizable: true,
		},
		Render: RenderConfig{
			ShaderFile:  "",
			ClearColor:  [4]float32{0.1, 0.1, 0.15, 1.0},
			CaptureFile: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
