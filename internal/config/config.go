// Package config assembles the planner configuration from defaults, an
// optional YAML file, the environment (including a .env file) and command
// line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/ghodss/yaml"
	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const (
	SourceFile     = "file"
	SourceMySQL    = "mysql"
	SourcePostgres = "postgres"

	envPrefix = "FLIGHTPLAN_"
)

var (
	ErrUnknownSource = errors.New("config: unknown network source")
	ErrInvalid       = errors.New("config: invalid value")
)

type Config struct {
	FlightsFile  string `json:"flights_file"`
	RequestsFile string `json:"requests_file"`
	OutputFile   string `json:"output_file"`

	// Source is where flight legs come from: file, mysql or postgres.
	Source string `json:"source"`
	DSN    string `json:"dsn"`

	Addr      string `json:"addr"`
	Workers   int    `json:"workers"`
	MaxPaths  int    `json:"max_paths"`
	MaxDepth  int    `json:"max_depth"`
	Top       int    `json:"top"`
	CacheSize int    `json:"cache_size"`
	LogLevel  string `json:"log_level"`
}

func Default() Config {
	return Config{
		FlightsFile:  "flight_data.txt",
		RequestsFile: "requests.txt",
		OutputFile:   "output.txt",
		Source:       SourceFile,
		Addr:         ":8080",
		Workers:      1,
		Top:          3,
		CacheSize:    2048,
		LogLevel:     "info",
	}
}

// Load returns defaults overlaid with the YAML file at path (skipped when
// path is empty) and then with FLIGHTPLAN_* environment variables. A .env
// file in the working directory is loaded first if present; variables that
// are already set win over it.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	strs := map[string]*string{
		"FLIGHTS_FILE":  &c.FlightsFile,
		"REQUESTS_FILE": &c.RequestsFile,
		"OUTPUT_FILE":   &c.OutputFile,
		"SOURCE":        &c.Source,
		"DSN":           &c.DSN,
		"ADDR":          &c.Addr,
		"LOG_LEVEL":     &c.LogLevel,
	}
	for name, dst := range strs {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"WORKERS":    &c.Workers,
		"MAX_PATHS":  &c.MaxPaths,
		"MAX_DEPTH":  &c.MaxDepth,
		"TOP":        &c.Top,
		"CACHE_SIZE": &c.CacheSize,
	}
	for name, dst := range ints {
		v, ok := os.LookupEnv(envPrefix + name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrInvalid, envPrefix, name, v)
		}
		*dst = n
	}
	return nil
}

// RegisterFlags adds one flag per setting, named like the YAML keys with
// dashes.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("flights-file", d.FlightsFile, "flight leg list")
	fs.String("requests-file", d.RequestsFile, "request list")
	fs.String("output-file", d.OutputFile, "report destination, - for stdout")
	fs.String("source", d.Source, "network source: file, mysql or postgres")
	fs.String("dsn", d.DSN, "database DSN for SQL sources")
	fs.String("addr", d.Addr, "HTTP bind address")
	fs.Int("workers", d.Workers, "queries planned in parallel")
	fs.Int("max-paths", d.MaxPaths, "stop enumerating after this many paths (0 = unlimited)")
	fs.Int("max-depth", d.MaxDepth, "longest path in legs (0 = unlimited)")
	fs.Int("top", d.Top, "paths reported per query")
	fs.Int("cache-size", d.CacheSize, "plan cache capacity")
	fs.String("log-level", d.LogLevel, "log level")
}

// ApplyFlags copies flags the user set explicitly into c.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	strs := map[string]*string{
		"flights-file":  &c.FlightsFile,
		"requests-file": &c.RequestsFile,
		"output-file":   &c.OutputFile,
		"source":        &c.Source,
		"dsn":           &c.DSN,
		"addr":          &c.Addr,
		"log-level":     &c.LogLevel,
	}
	for name, dst := range strs {
		if fs.Lookup(name) == nil || !fs.Changed(name) {
			continue
		}
		v, err := fs.GetString(name)
		if err != nil {
			return err
		}
		*dst = v
	}

	ints := map[string]*int{
		"workers":    &c.Workers,
		"max-paths":  &c.MaxPaths,
		"max-depth":  &c.MaxDepth,
		"top":        &c.Top,
		"cache-size": &c.CacheSize,
	}
	for name, dst := range ints {
		if fs.Lookup(name) == nil || !fs.Changed(name) {
			continue
		}
		v, err := fs.GetInt(name)
		if err != nil {
			return err
		}
		*dst = v
	}
	return nil
}

func (c Config) Validate() error {
	switch c.Source {
	case SourceFile:
		if c.FlightsFile == "" {
			return fmt.Errorf("%w: flights_file is empty", ErrInvalid)
		}
	case SourceMySQL:
		if c.DSN == "" {
			return fmt.Errorf("%w: dsn is required for %s", ErrInvalid, c.Source)
		}
		if _, err := mysql.ParseDSN(c.DSN); err != nil {
			return fmt.Errorf("%w: dsn: %v", ErrInvalid, err)
		}
	case SourcePostgres:
		if c.DSN == "" {
			return fmt.Errorf("%w: dsn is required for %s", ErrInvalid, c.Source)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSource, c.Source)
	}

	switch {
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be >= 1", ErrInvalid)
	case c.MaxPaths < 0:
		return fmt.Errorf("%w: max_paths must be >= 0", ErrInvalid)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max_depth must be >= 0", ErrInvalid)
	case c.Top < 1:
		return fmt.Errorf("%w: top must be >= 1", ErrInvalid)
	case c.CacheSize < 0:
		return fmt.Errorf("%w: cache_size must be >= 0", ErrInvalid)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}
	return nil
}
