// Package config loads the command-line tool's settings from flags,
// ELGAMALBN_ environment variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/f3rmion/elgamal-bn/elgamal"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "ELGAMALBN"

// Keys shared between flag definitions and the config file.
const (
	KeyGroup     = "group"
	KeyHash      = "hash"
	KeyFormat    = "format"
	KeyEncoding  = "encoding"
	KeyCount     = "count"
	KeySeed      = "seed"
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
)

// MaxCount bounds the number of vectors generated in one run.
const MaxCount = 10000

var (
	ErrUnknownGroup    = errors.New("config: unknown group")
	ErrUnknownEncoding = errors.New("config: unknown bundle encoding")
	ErrCount           = fmt.Errorf("config: count must be between 1 and %d", MaxCount)
)

// Config holds resolved settings.
type Config struct {
	Group     string `mapstructure:"group"`
	Hash      string `mapstructure:"hash"`
	Format    string `mapstructure:"format"`
	Encoding  string `mapstructure:"encoding"`
	Count     int    `mapstructure:"count"`
	Seed      string `mapstructure:"seed"`
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
}

// Default returns the settings used when nothing else is given.
func Default() Config {
	return Config{
		Group:     "bn254",
		Hash:      string(elgamal.Keccak256),
		Format:    string(elgamal.FormatHex),
		Encoding:  "json",
		Count:     8,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// NewViper returns a viper instance with defaults and environment
// binding applied. Flags are bound by the caller.
func NewViper() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault(KeyGroup, d.Group)
	v.SetDefault(KeyHash, d.Hash)
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeyEncoding, d.Encoding)
	v.SetDefault(KeyCount, d.Count)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFormat, d.LogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file at path into v and returns the
// validated result.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field and normalizes names to lower case.
func (c *Config) Validate() error {
	c.Group = strings.ToLower(strings.TrimSpace(c.Group))
	switch c.Group {
	case "bn254", "bjj":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGroup, c.Group)
	}

	alg, err := elgamal.ParseHashAlgorithm(c.Hash)
	if err != nil {
		return err
	}
	c.Hash = string(alg)

	format, err := elgamal.ParseCoordinateFormat(c.Format)
	if err != nil {
		return err
	}
	c.Format = string(format)

	c.Encoding = strings.ToLower(strings.TrimSpace(c.Encoding))
	switch c.Encoding {
	case "json", "cbor":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEncoding, c.Encoding)
	}

	if c.Count < 1 || c.Count > MaxCount {
		return fmt.Errorf("%w: got %d", ErrCount, c.Count)
	}
	return nil
}
