package main

// Flag names for Viper binding
const (
	// Global flags
	FlagVerbose = "verbose"
	FlagConfig  = "config"
	FlagLogFile = "log-file"

	// Shared rendering flags
	FlagTheme     = "theme"
	FlagRepulsion = "repulsion"
	FlagSeed      = "seed"

	// Render command flags
	FlagOutput   = "output"
	FlagWidth    = "width"
	FlagHeight   = "height"
	FlagMaxTicks = "max-ticks"
)
