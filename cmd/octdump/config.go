package main

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	formatHex    = "hex"
	formatBase64 = "base64"
)

// Config is the octdump configuration file. Command line flags override it.
type Config struct {
	// Format is the text form of encoded data, hex or base64.
	Format string `yaml:"format"`

	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level"`

	// MaxData limits the size of data given to decode, in humanized bytes such as "64KiB".
	MaxData string `yaml:"max_data"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Format:   formatHex,
		LogLevel: zerolog.LevelWarnValue,
		MaxData:  "64KiB",
	}
}

// LoadConfig reads a YAML configuration from path.
// Keys missing from the file keep their default values; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse %v: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field of c.
func (c Config) Validate() error {
	switch c.Format {
	case formatHex, formatBase64:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	if _, err := humanize.ParseBytes(c.MaxData); err != nil {
		return fmt.Errorf("invalid max_data: %w", err)
	}

	return nil
}

// Level returns the parsed log level, or zerolog.WarnLevel if it does not parse.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}

// MaxDataBytes returns the parsed data limit, or 0 if it does not parse.
func (c Config) MaxDataBytes() uint64 {
	n, err := humanize.ParseBytes(c.MaxData)
	if err != nil {
		return 0
	}
	return n
}

// FormatData returns the text form of data.
func (c Config) FormatData(data []byte) string {
	if c.Format == formatBase64 {
		return base64.StdEncoding.EncodeToString(data)
	}
	return hex.EncodeToString(data)
}

// ParseData parses the text form of data.
func (c Config) ParseData(text string) ([]byte, error) {
	if c.Format == formatBase64 {
		return base64.StdEncoding.DecodeString(text)
	}
	return hex.DecodeString(text)
}
