package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/BurntSushi/toml"
	"github.com/ytget/image-converter/internal/codec"
	"github.com/ytget/image-converter/internal/model"
)

// DefaultConfigFileName is looked up in the working directory when no path is given
const DefaultConfigFileName = "imgconv.toml"

// FileConfig is the terminal tool configuration stored as TOML
type FileConfig struct {
	Target         string  `toml:"target"`
	JPEGQuality    int     `toml:"jpeg_quality"`
	WebPQuality    int     `toml:"webp_quality"`
	WebPLossless   bool    `toml:"webp_lossless"`
	PNGCompression string  `toml:"png_compression"`
	AutoOrient     bool    `toml:"auto_orient"`
	MaxDimension   int     `toml:"max_dimension"`
	SVGScale       float64 `toml:"svg_scale"`
	IncludeAll     bool    `toml:"include_all_files"`
}

// DefaultFileConfig returns the configuration used when no file exists
func DefaultFileConfig() FileConfig {
	return FileConfig{
		Target:         DefaultTargetFormat.String(),
		JPEGQuality:    codec.DefaultJPEGQuality,
		WebPQuality:    codec.DefaultWebPQuality,
		PNGCompression: DefaultPNGCompression,
		AutoOrient:     DefaultAutoOrient,
		SVGScale:       codec.DefaultSVGScale,
	}
}

// LoadFile reads path over the defaults. A missing file yields the defaults.
func LoadFile(path string) (FileConfig, error) {
	cfg := DefaultFileConfig()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("Config %s not found, using defaults", path)
			return DefaultFileConfig(), nil
		}
		return DefaultFileConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return DefaultFileConfig(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the target format and PNG compression names
func (c FileConfig) Validate() error {
	if _, err := model.ParseTargetFormat(c.Target); err != nil {
		return err
	}
	if _, err := codec.ParsePNGCompression(c.PNGCompression); err != nil {
		return err
	}
	return nil
}

// TargetFormat returns the parsed target, or the default if invalid
func (c FileConfig) TargetFormat() model.TargetFormat {
	format, err := model.ParseTargetFormat(c.Target)
	if err != nil {
		return DefaultTargetFormat
	}
	return format
}

// CodecOptions converts the file configuration to codec options
func (c FileConfig) CodecOptions() codec.Options {
	level, _ := codec.ParsePNGCompression(c.PNGCompression)
	return codec.Options{
		JPEGQuality:    c.JPEGQuality,
		WebPQuality:    c.WebPQuality,
		WebPLossless:   c.WebPLossless,
		PNGCompression: level,
		AutoOrient:     c.AutoOrient,
		MaxDimension:   c.MaxDimension,
		SVGScale:       c.SVGScale,
	}.Normalize()
}
