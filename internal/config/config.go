// Package config handles tool configuration loading and management.
package config

// Config holds all settings shared by the springgen and springview tools.
type Config struct {
	Build   BuildConfig   `yaml:"build"`
	Export  ExportConfig  `yaml:"export"`
	Preview PreviewConfig `yaml:"preview"`
	Logging LoggingConfig `yaml:"logging"`
}

// BuildConfig holds geometry generation settings.
type BuildConfig struct {
	BodySamples     int `yaml:"body_samples"`     // samples across the coil body
	SectionSegments int `yaml:"section_segments"` // circular cross-section tessellation
}

// ExportConfig holds mesh export settings.
type ExportConfig struct {
	OutputDir string `yaml:"output_dir"`
	STLName   string `yaml:"stl_name"` // solid name embedded in STL headers
}

// PreviewConfig holds preview window settings.
type PreviewConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Build: BuildConfig{
			BodySamples:     800,
			SectionSegments: 16,
		},
		Export: ExportConfig{
			OutputDir: ".",
			STLName:   "spring",
		},
		Preview: PreviewConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
