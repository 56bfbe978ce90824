package conf

import (
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/gostonefire/symboltable/crt"
	"strings"
)

// Config - Configuration of the demonstration driver as read from a TOML file
type Config struct {
	HashMap HashMapConfig `toml:"hashmap"`
	Log     LogConfig     `toml:"log"`
}

// HashMapConfig - The [hashmap] section
//   - Technique is one of linear, quadratic, double or twoprobe
//   - TableSize is the fixed number of buckets
type HashMapConfig struct {
	Technique string `toml:"technique"`
	TableSize int64  `toml:"table-size"`
}

// LogConfig - The [log] section
//   - Level is one of debug, info, warn or error
//   - Format is console or json
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default - Returns the configuration used for anything a file leaves out
func Default() Config {
	return Config{
		HashMap: HashMapConfig{
			Technique: crt.TechniqueName(crt.LinearProbing),
			TableSize: crt.DefaultTableSize,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load - Reads a TOML file on top of Default, an empty path gives Default
func Load(path string) (cfg Config, err error) {
	cfg = Default()
	if path == "" {
		return
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		err = fmt.Errorf("error while reading config file %s: %w", path, err)
		return
	}

	err = validate(cfg, md)
	return
}

// Parse - Same as Load but reads the TOML document from data
func Parse(data string) (cfg Config, err error) {
	cfg = Default()

	md, err := toml.Decode(data, &cfg)
	if err != nil {
		err = fmt.Errorf("error while parsing config: %w", err)
		return
	}

	err = validate(cfg, md)
	return
}

// CollisionResolutionTechnique - Returns the configured technique as one of the crt constants
func (C Config) CollisionResolutionTechnique() (technique int, err error) {
	return crt.ParseTechnique(C.HashMap.Technique)
}

func validate(cfg Config, md toml.MetaData) (err error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		err = fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
		return
	}

	if _, err = cfg.CollisionResolutionTechnique(); err != nil {
		return
	}

	if cfg.HashMap.TableSize <= 0 {
		err = fmt.Errorf("table-size must be a positive value higher than 0 (zero)")
		return
	}

	return
}
