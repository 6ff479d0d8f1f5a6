// Package config loads widget and twin settings from a YAML file and CLI flags.
package config

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vcrobe/userwidgets/userapi"
)

// API configures the user endpoint.
type API struct {
	BaseURL     string        `yaml:"base_url"`
	ProfilePath string        `yaml:"profile_path"`
	StatusPath  string        `yaml:"status_path"`
	Timeout     time.Duration `yaml:"timeout"`
}

// Widgets configures which users the widgets show and the scripted demo session.
type Widgets struct {
	Greeting      string `yaml:"greeting"`
	ProfileUserID int    `yaml:"profile_user_id"`
	StatusUserID  int    `yaml:"status_user_id"`
	DetailUserIDs []int  `yaml:"detail_user_ids"`
	Clicks        int    `yaml:"clicks"`
	Toggles       int    `yaml:"toggles"`
}

// Twin configures the embedded fake user API.
type Twin struct {
	Enabled  bool          `yaml:"enabled"`
	Port     int           `yaml:"port"`
	SeedFile string        `yaml:"seed_file"`
	Latency  time.Duration `yaml:"latency"`
}

// Log configures logging.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config is the full configuration.
type Config struct {
	API     API     `yaml:"api"`
	Widgets Widgets `yaml:"widgets"`
	Twin    Twin    `yaml:"twin"`
	Log     Log     `yaml:"log"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: API{
			BaseURL:     userapi.DefaultBaseURL,
			ProfilePath: userapi.UsersPath,
			StatusPath:  userapi.UsersPath,
			Timeout:     10 * time.Second,
		},
		Widgets: Widgets{
			Greeting:      "World",
			ProfileUserID: 1,
			StatusUserID:  1,
			DetailUserIDs: []int{1, 2},
			Clicks:        3,
			Toggles:       2,
		},
		Log: Log{Level: "info", Format: "json"},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if !c.Twin.Enabled && c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required unless the twin is enabled")
	}
	for name, tmpl := range map[string]string{"api.profile_path": c.API.ProfilePath, "api.status_path": c.API.StatusPath} {
		if !strings.Contains(tmpl, "{id}") {
			return fmt.Errorf("%s %q must contain {id}", name, tmpl)
		}
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}
	if c.Widgets.ProfileUserID <= 0 || c.Widgets.StatusUserID <= 0 {
		return fmt.Errorf("widget user ids must be positive")
	}
	for _, id := range c.Widgets.DetailUserIDs {
		if id <= 0 {
			return fmt.Errorf("widgets.detail_user_ids: %d is not a positive id", id)
		}
	}
	if c.Widgets.Clicks < 0 || c.Widgets.Toggles < 0 {
		return fmt.Errorf("widgets.clicks and widgets.toggles must not be negative")
	}
	if c.Twin.Port < 0 || c.Twin.Port > 65535 {
		return fmt.Errorf("twin.port %d out of range", c.Twin.Port)
	}
	if c.Twin.Latency < 0 {
		return fmt.Errorf("twin.latency must not be negative")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text, got %q", c.Log.Format)
	}
	return nil
}

// Parse builds a Config from command-line args: -config selects a YAML file and
// explicitly set flags override its values. PORT in the environment sets the twin
// port when neither the file nor a flag did.
func Parse(name string, args []string) (*Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	path := fs.String("config", "", "Path to YAML config file")
	baseURL := fs.String("api", "", "User API base URL")
	timeout := fs.Duration("timeout", 0, "Per-request timeout")
	twin := fs.Bool("twin", false, "Serve an embedded fake user API and point the widgets at it")
	port := fs.Int("port", 0, "Fake user API listen port (default: auto-assigned)")
	seed := fs.String("seed-file", "", "YAML seed file for the fake user API")
	latency := fs.Duration("latency", 0, "Simulated latency for the fake user API")
	users := fs.String("users", "", "Comma-separated user ids to open in the detail view")
	clicks := fs.Int("clicks", 0, "Counter clicks in the demo session")
	toggles := fs.Int("toggles", 0, "Status toggles in the demo session")
	level := fs.String("log-level", "", "Log level: debug, info, warn, error")
	verbose := fs.Bool("verbose", false, "Shorthand for -log-level=debug")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := Load(*path)
	if err != nil {
		return nil, err
	}

	var convErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "api":
			cfg.API.BaseURL = *baseURL
		case "timeout":
			cfg.API.Timeout = *timeout
		case "twin":
			cfg.Twin.Enabled = *twin
		case "port":
			cfg.Twin.Port = *port
		case "seed-file":
			cfg.Twin.SeedFile = *seed
		case "latency":
			cfg.Twin.Latency = *latency
		case "users":
			ids, err := ParseIDs(*users)
			if err != nil {
				convErr = err
				return
			}
			cfg.Widgets.DetailUserIDs = ids
		case "clicks":
			cfg.Widgets.Clicks = *clicks
		case "toggles":
			cfg.Widgets.Toggles = *toggles
		case "log-level":
			cfg.Log.Level = *level
		case "verbose":
			if *verbose {
				cfg.Log.Level = "debug"
			}
		}
	})
	if convErr != nil {
		return nil, convErr
	}

	if cfg.Twin.Port == 0 {
		if p := os.Getenv("PORT"); p != "" {
			n, err := strconv.Atoi(p)
			if err != nil {
				return nil, fmt.Errorf("invalid PORT %q: %w", p, err)
			}
			cfg.Twin.Port = n
		}
	}
	return cfg, cfg.Validate()
}

// ParseIDs parses a comma-separated list of user ids.
func ParseIDs(s string) ([]int, error) {
	var ids []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid user id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return l, nil
}

// NewLogger builds the process logger described by c.Log, writing to stderr.
func (c *Config) NewLogger() *slog.Logger {
	level, err := ParseLevel(c.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}
