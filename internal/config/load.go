package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a configuration file syntax.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf returns the format implied by the file extension.
func FormatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Load reads the file at path over the defaults, applies CURSORCORE_*
// environment overrides and validates the result.
// A missing file is not an error; an empty path skips the file.
func Load(path string) (Config, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with a custom environment lookup.
func LoadWithEnv(path string, lookup LookupFunc) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Default(), err
		}
	}
	if lookup != nil {
		if err := ApplyEnv(&cfg, lookup); err != nil {
			return Default(), err
		}
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return Decode(data, format, path, cfg)
}

// Decode parses data into cfg. Keys absent from data keep the values
// already in cfg; unknown keys are rejected. path is only used in errors.
func Decode(data []byte, format Format, path string, cfg *Config) error {
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return tomlError(path, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to io.EOF.
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return &ParseError{Path: path, Message: err.Error(), Err: err}
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return nil
}

func tomlError(path string, err error) error {
	pe := &ParseError{Path: path, Message: err.Error(), Err: err}

	var decErr *toml.DecodeError
	if errors.As(err, &decErr) {
		pe.Line, pe.Column = decErr.Position()
	}

	var strictErr *toml.StrictMissingError
	if errors.As(err, &strictErr) && len(strictErr.Errors) > 0 {
		first := strictErr.Errors[0]
		pe.Line, pe.Column = first.Position()
		pe.Message = "unknown key " + strings.Join(first.Key(), ".")
	}
	return pe
}
