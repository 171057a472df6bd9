package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagSamples    = flag.Int("samples", 0, "Sample count across the coil body")
	flagSegments   = flag.Int("segments", 0, "Circular cross-section segments")
	flagOutDir     = flag.String("out", "", "Export output directory")
	flagWindowed   = flag.Bool("windowed", false, "Run preview in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run preview in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Preview window width")
	flagHeight     = flag.Int("height", 0, "Preview window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSamples > 0 {
		cfg.Build.BodySamples = *flagSamples
	}
	if *flagSegments > 0 {
		cfg.Build.SectionSegments = *flagSegments
	}
	if *flagOutDir != "" {
		cfg.Export.OutputDir = *flagOutDir
	}
	if *flagWindowed {
		cfg.Preview.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Preview.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Preview.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Preview.Height = *flagHeight
	}
}
