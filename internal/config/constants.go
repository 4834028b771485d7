package config

// Application identity
const (
	AppName        = "lazynav"
	ConfigFileName = "config.yaml"
)

// Environment variable names
const (
	EnvPrefix = "LAZYNAV"
	EnvConfig = "LAZYNAV_CONFIG"
)

// Defaults
const (
	DefaultStartRoute  = "home"
	DefaultAccentColor = "#00ffff"
	DefaultLogLevel    = "info"
)

// UI element sizes
const (
	StatusBarHeight = 1
)
