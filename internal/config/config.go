// Package config loads runtime configuration for the demo binary from CLI
// flags with environment fallbacks.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config captures runtime configuration for the demo application.
type Config struct {
	Menu    Menu
	Logging Logging
	Flags   map[string]string
	Args    []string
}

// Menu holds the options forwarded to the navigation engine and the
// presentation layer.
type Menu struct {
	Wrap             bool
	RetainSelections bool
	Width            int
	Height           int
	ShowFooter       bool
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWrap       = "QUICKMENU_WRAP"
	envRetain     = "QUICKMENU_RETAIN_SELECTIONS"
	envWidth      = "QUICKMENU_WIDTH"
	envHeight     = "QUICKMENU_HEIGHT"
	envShowFooter = "QUICKMENU_FOOTER"
	envTrace      = "QUICKMENU_TRACE"
	envLogFile    = "QUICKMENU_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("quickmenu-demo", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	wrap := fs.Bool("wrap", envOrBool(env, envWrap, true), "wrap cursor movement at both ends of a menu")
	retain := fs.Bool("retain-selections", envOrBool(env, envRetain, false), "preserve cursor positions across menu teardown")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		Menu: Menu{
			Wrap:             *wrap,
			RetainSelections: *retain,
			Width:            *width,
			Height:           *height,
			ShowFooter:       *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"wrap":             strconv.FormatBool(*wrap),
			"retainSelections": strconv.FormatBool(*retain),
			"width":            strconv.Itoa(*width),
			"height":           strconv.Itoa(*height),
			"footer":           strconv.FormatBool(*footer),
			"trace":            strconv.FormatBool(*trace),
			"logFile":          *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
