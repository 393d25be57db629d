// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// SceneConfig holds the line geometry shown by the viewer.
type SceneConfig struct {
	GridExtent  float32 `yaml:"grid_extent"`  // Distance from center to grid edge
	GridSpacing float32 `yaml:"grid_spacing"` // Distance between grid lines
	AxisLength  float32 `yaml:"axis_length"`
	ShowGrid    bool    `yaml:"show_grid"`
	ShowAxes    bool    `yaml:"show_axes"`
	ShowBounds  bool    `yaml:"show_bounds"` // Wireframe box around the grid
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Scene: SceneConfig{
			GridExtent:  50.0,
			GridSpacing: 1.0,
			AxisLength:  10.0,
			ShowGrid:    true,
			ShowAxes:    true,
			ShowBounds:  false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
