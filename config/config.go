package config

import (
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/gostonefire/tablemap/alloc"
	"github.com/gostonefire/tablemap/crt"
	"github.com/gostonefire/tablemap/internal/conf"
	"gopkg.in/yaml.v3"
	"os"
	"path/filepath"
	"strings"
)

// readFile - Reads a whole configuration file, replaced in tests
var readFile = os.ReadFile

// Config - Configuration of a table and of the logging around it
type Config struct {
	Table Table `toml:"table" yaml:"table"`
	Log   Log   `toml:"log" yaml:"log"`
}

// Table - Table configuration
//   - Technique is the collision resolution technique, "separate_chaining" or "linear_probing"
//   - Capacity is the initial number of buckets
//   - MaxLoad is the load factor in integer percent (1 to 100) at which the table doubles its capacity
//   - MemoryLimit is the number of bytes the table may hold at any one time, 0 means no limit
type Table struct {
	Technique   string `toml:"technique" yaml:"technique"`
	Capacity    int    `toml:"capacity" yaml:"capacity"`
	MaxLoad     uint8  `toml:"max_load" yaml:"max_load"`
	MemoryLimit uint64 `toml:"memory_limit" yaml:"memory_limit"`
}

// Log - Logging configuration
//   - Level is one of debug, info, warn or error
//   - Format is either console or json
type Log struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Default - Returns the configuration used when nothing else is given
func Default() Config {
	return Config{
		Table: Table{
			Technique: crt.Name(crt.SeparateChaining),
			Capacity:  conf.DefaultCapacity,
			MaxLoad:   conf.DefaultMaxLoad,
		},
		Log: Log{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load - Reads configuration from a TOML (.toml) or YAML (.yaml, .yml) file.
// Values missing in the file keep their defaults, the result is validated before it is returned.
//   - path is the path to the configuration file
//
// It returns:
//   - cfg is the loaded configuration
//   - err is either of type crt.InvalidConfiguration or a standard error if the file could not be read or parsed
func Load(path string) (cfg Config, err error) {
	cfg = Default()

	data, err := readFile(path)
	if err != nil {
		err = fmt.Errorf("error while reading config file %s: %w", path, err)
		return
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err = toml.Decode(string(data), &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = crt.InvalidConfiguration{Msg: fmt.Sprintf("unsupported config file type %q", filepath.Ext(path))}
		return
	}
	if err != nil {
		err = fmt.Errorf("error while parsing config file %s: %w", path, err)
		return
	}

	err = cfg.Validate()

	return
}

// Validate - Checks every value of the configuration
// It returns an error of type crt.InvalidConfiguration if any value is out of range.
func (C Config) Validate() (err error) {
	err = C.Table.Validate()
	if err != nil {
		return
	}

	switch strings.ToLower(C.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		err = crt.InvalidConfiguration{Msg: fmt.Sprintf("unknown log level %q", C.Log.Level)}
		return
	}

	switch strings.ToLower(C.Log.Format) {
	case "console", "json":
	default:
		err = crt.InvalidConfiguration{Msg: fmt.Sprintf("unknown log format %q", C.Log.Format)}
	}

	return
}

// Validate - Checks every value of the table configuration
// It returns an error of type crt.InvalidConfiguration if any value is out of range.
func (T Table) Validate() (err error) {
	_, err = T.TechniqueID()
	if err != nil {
		return
	}

	if T.Capacity < 1 {
		err = crt.InvalidConfiguration{Msg: fmt.Sprintf("capacity must be a positive value higher than 0 (zero), got %d", T.Capacity)}
		return
	}

	if T.MaxLoad < 1 || T.MaxLoad > conf.MaxLoadCeiling {
		err = crt.InvalidConfiguration{Msg: fmt.Sprintf("max load must be between 1 and %d percent, got %d", conf.MaxLoadCeiling, T.MaxLoad)}
		return
	}

	return
}

// TechniqueID - Returns the crt identifier of the configured technique
func (T Table) TechniqueID() (int, error) {
	return crt.Parse(T.Technique)
}

// Allocator - Returns an alloc.Fixed with the configured memory limit, or an alloc.Heap if there is no limit
func (T Table) Allocator() alloc.Allocator {
	if T.MemoryLimit > 0 {
		return alloc.NewFixed(uintptr(T.MemoryLimit))
	}

	return alloc.NewHeap()
}
