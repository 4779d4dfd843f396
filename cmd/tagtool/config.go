package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/arloliu/halotag/format"
	"golang.org/x/text/encoding/charmap"
	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by every command. Values come from the
// YAML file named by -config and are overridden by command-line flags.
type Config struct {
	LogLevel    string `yaml:"log_level"`
	Charmap     string `yaml:"charmap"`
	Checksum    bool   `yaml:"checksum"`
	Target      string `yaml:"target"`
	Compression string `yaml:"compression"`
	Verify      bool   `yaml:"verify"`
}

func defaultConfig() Config {
	return Config{
		LogLevel:    "info",
		Charmap:     "windows-1252",
		Target:      "BLM!",
		Compression: "Zstd",
		Verify:      true,
	}
}

// loadConfig reads path over the defaults. An empty path yields the
// defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	var errList []error
	if _, err := c.level(); err != nil {
		errList = append(errList, err)
	}
	if _, err := c.charmap(); err != nil {
		errList = append(errList, err)
	}
	if _, err := c.target(); err != nil {
		errList = append(errList, err)
	}
	if _, err := c.compression(); err != nil {
		errList = append(errList, err)
	}

	return errors.Join(errList...)
}

func (c Config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}

	return level, nil
}

var charmaps = map[string]*charmap.Charmap{
	"windows-1252": charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
	"iso-8859-15":  charmap.ISO8859_15,
	"cp437":        charmap.CodePage437,
}

func (c Config) charmap() (*charmap.Charmap, error) {
	cm, ok := charmaps[strings.ToLower(c.Charmap)]
	if !ok {
		return nil, fmt.Errorf("unknown charmap %q", c.Charmap)
	}

	return cm, nil
}

func (c Config) target() (format.Revision, error) {
	return parseRevision(c.Target)
}

func (c Config) compression() (format.CompressionType, error) {
	return format.ParseCompressionType(c.Compression)
}

var revisionNames = map[string]format.Revision{
	"legacy": format.RevisionH2Legacy,
	"vista":  format.RevisionH2Vista,
	"retail": format.RevisionH2Retail,
}

// parseRevision accepts a raw engine tag such as "MLAB" or one of the
// names legacy, vista and retail.
func parseRevision(name string) (format.Revision, error) {
	if rev, ok := revisionNames[strings.ToLower(name)]; ok {
		return rev, nil
	}
	if len(name) != 4 {
		return 0, fmt.Errorf("unknown revision %q", name)
	}

	var tag [4]byte
	copy(tag[:], name)

	return format.ParseEngineTag(tag)
}
