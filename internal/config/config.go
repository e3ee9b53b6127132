// Package config loads server settings from the environment.
//
// An optional .env file in the working directory is read first; variables
// already set in the process environment take precedence over it.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
	"github.com/ironsheep/color-tools-mcp/internal/session"
	"github.com/ironsheep/color-tools-mcp/internal/swatch"
)

// Clipboard backends.
const (
	ClipboardOSC52 = "osc52"
	ClipboardNone  = "none"
)

// Config holds the server settings.
type Config struct {
	// Debug enables per-request logging (COLOR_MCP_LOG_LEVEL=debug).
	Debug bool

	// DefaultColor is the color a new session shows (COLOR_MCP_DEFAULT_COLOR).
	DefaultColor colorspace.RGBColor

	// DefaultFormat is the input format a new session selects
	// (COLOR_MCP_DEFAULT_FORMAT).
	DefaultFormat colorspace.Format

	// Strict anchors rgb and ycbcr input to the whole string
	// (COLOR_MCP_STRICT).
	Strict bool

	// Clipboard is "osc52" or "none" (COLOR_MCP_CLIPBOARD).
	Clipboard string

	// SwatchSize is the default swatch edge in pixels (COLOR_MCP_SWATCH_SIZE).
	SwatchSize int
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DefaultColor:  session.DefaultColor,
		DefaultFormat: colorspace.FormatHex,
		Clipboard:     ClipboardOSC52,
		SwatchSize:    swatch.DefaultSize,
	}
}

// Load reads .env if present, then the environment. Invalid values are
// logged and replaced by their defaults.
func Load() Config {
	// Missing .env is the normal case.
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config using getenv for lookups.
func FromEnv(getenv func(string) string) Config {
	cfg := Default()

	cfg.Debug = strings.EqualFold(getenv("COLOR_MCP_LOG_LEVEL"), "debug")

	if v := getenv("COLOR_MCP_DEFAULT_COLOR"); v != "" {
		if c, ok := colorspace.HexToRGB(v); ok {
			cfg.DefaultColor = c
		} else {
			log.Printf("config: COLOR_MCP_DEFAULT_COLOR=%q is not a hex color, using %s", v, cfg.DefaultColor.Hex())
		}
	}

	if v := getenv("COLOR_MCP_DEFAULT_FORMAT"); v != "" {
		if f, err := colorspace.ParseFormat(v); err == nil {
			cfg.DefaultFormat = f
		} else {
			log.Printf("config: COLOR_MCP_DEFAULT_FORMAT: %v, using %s", err, cfg.DefaultFormat)
		}
	}

	if v := getenv("COLOR_MCP_STRICT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Strict = b
		} else {
			log.Printf("config: COLOR_MCP_STRICT=%q is not a boolean, using %v", v, cfg.Strict)
		}
	}

	if v := getenv("COLOR_MCP_CLIPBOARD"); v != "" {
		switch strings.ToLower(v) {
		case ClipboardOSC52, ClipboardNone:
			cfg.Clipboard = strings.ToLower(v)
		default:
			log.Printf("config: COLOR_MCP_CLIPBOARD=%q unknown, using %s", v, cfg.Clipboard)
		}
	}

	if v := getenv("COLOR_MCP_SWATCH_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil && n >= swatch.MinSize && n <= swatch.MaxSize {
			cfg.SwatchSize = n
		} else {
			log.Printf("config: COLOR_MCP_SWATCH_SIZE=%q outside %d-%d, using %d",
				v, swatch.MinSize, swatch.MaxSize, cfg.SwatchSize)
		}
	}

	return cfg
}
