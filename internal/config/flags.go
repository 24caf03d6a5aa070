package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagBoards   = flag.String("boards", "", "Board documents directory")
	flagBoard    = flag.String("board", "", "Board to open on startup")
	flagAutosave = flag.Bool("autosave", false, "Save the open board periodically")
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
	if *flagBoards != "" {
		cfg.Editor.BoardsDir = *flagBoards
	}
	if *flagBoard != "" {
		cfg.Editor.DefaultBoard = *flagBoard
	}
	if *flagAutosave {
		cfg.Editor.Autosave = true
	}
}
