package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
	"github.com/ironsheep/color-tools-mcp/internal/config"
	"github.com/ironsheep/color-tools-mcp/internal/server"
	"github.com/ironsheep/color-tools-mcp/internal/swatch"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := config.Load()

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("color-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage(os.Stdout)
			return
		case "convert":
			os.Exit(runConvert(os.Args[2:], cfg, os.Stdout))
		case "swatch":
			os.Exit(runSwatch(os.Args[2:], cfg))
		default:
			fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
			printUsage(os.Stderr)
			os.Exit(2)
		}
	}

	if cfg.Debug {
		log.Printf("Color MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "color-tools-mcp - MCP server for HEX / RGB / YCbCr color conversion")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  color-tools-mcp                              Run the MCP server on stdin/stdout")
	fmt.Fprintln(w, "  color-tools-mcp convert <format> <text>      Convert one color and print JSON")
	fmt.Fprintln(w, "  color-tools-mcp swatch <hex> <out.png> [--compare]")
	fmt.Fprintln(w, "                                               Write a PNG swatch")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Formats: hex (#RRGGBB), rgb (r, g, b), ycbcr (y, cb, cr; BT.601 limited range)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --version, -v    Print version information")
	fmt.Fprintln(w, "  --help, -h       Print this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables (also read from .env):")
	fmt.Fprintln(w, "  COLOR_MCP_LOG_LEVEL=debug        Enable debug logging")
	fmt.Fprintln(w, "  COLOR_MCP_DEFAULT_COLOR=#3B82F6  Initial session color")
	fmt.Fprintln(w, "  COLOR_MCP_DEFAULT_FORMAT=hex     Initial input format")
	fmt.Fprintln(w, "  COLOR_MCP_STRICT=false           Require rgb/ycbcr input to be only the triple")
	fmt.Fprintln(w, "  COLOR_MCP_CLIPBOARD=osc52        Clipboard backend: osc52 or none")
	fmt.Fprintln(w, "  COLOR_MCP_SWATCH_SIZE=160        Default swatch size in pixels")
}

// runConvert handles "convert <format> <text>" and returns the exit code.
func runConvert(args []string, cfg config.Config, out io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: color-tools-mcp convert <format> <text>")
		return 2
	}
	f, err := colorspace.ParseFormat(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	c, err := colorspace.Parser{Strict: cfg.Strict}.ValidateAndConvert(args[1], f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(colorspace.DeriveDisplay(c)); err != nil {
		log.Printf("Failed to encode result: %v", err)
		return 1
	}
	return 0
}

// runSwatch handles "swatch <hex> <out.png> [--compare]".
func runSwatch(args []string, cfg config.Config) int {
	compare := false
	var pos []string
	for _, a := range args {
		if a == "--compare" {
			compare = true
			continue
		}
		pos = append(pos, a)
	}
	if len(pos) != 2 {
		fmt.Fprintln(os.Stderr, "usage: color-tools-mcp swatch <hex> <out.png> [--compare]")
		return 2
	}

	c, ok := colorspace.HexToRGB(pos[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "not a 6-digit hex color: %q\n", pos[0])
		return 1
	}

	opts := swatch.Options{Width: cfg.SwatchSize, Height: cfg.SwatchSize, Compare: compare}
	if err := swatch.Save(pos[1], colorspace.DeriveDisplay(c), opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
