package codec

import (
	"fmt"
	"image/png"
	"strings"
)

// Option bounds and defaults
const (
	DefaultJPEGQuality  = 90
	DefaultWebPQuality  = 80
	MinQuality          = 1
	MaxQuality          = 100
	DefaultSVGScale     = 1.0
	MinSVGScale         = 0.1
	MaxSVGScale         = 10.0
	MaxDimensionLimit   = 20000
	DefaultSVGDimension = 512
)

// PNG compression names accepted by ParsePNGCompression
const (
	PNGCompressionDefault = "default"
	PNGCompressionNone    = "none"
	PNGCompressionSpeed   = "speed"
	PNGCompressionBest    = "best"
)

// Options tunes decoding and encoding
type Options struct {
	JPEGQuality    int
	WebPQuality    int
	WebPLossless   bool
	PNGCompression png.CompressionLevel
	AutoOrient     bool
	// MaxDimension fits larger images into a square of this size; 0 disables it.
	MaxDimension int
	SVGScale     float64
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		JPEGQuality:    DefaultJPEGQuality,
		WebPQuality:    DefaultWebPQuality,
		PNGCompression: png.DefaultCompression,
		AutoOrient:     true,
		SVGScale:       DefaultSVGScale,
	}
}

// Normalize clamps every field into its valid range
func (o Options) Normalize() Options {
	o.JPEGQuality = clampInt(o.JPEGQuality, MinQuality, MaxQuality)
	o.WebPQuality = clampInt(o.WebPQuality, MinQuality, MaxQuality)
	o.MaxDimension = clampInt(o.MaxDimension, 0, MaxDimensionLimit)
	if o.SVGScale == 0 {
		o.SVGScale = DefaultSVGScale
	}
	if o.SVGScale < MinSVGScale {
		o.SVGScale = MinSVGScale
	}
	if o.SVGScale > MaxSVGScale {
		o.SVGScale = MaxSVGScale
	}
	return o
}

// ParsePNGCompression maps a compression name to a png level
func ParsePNGCompression(name string) (png.CompressionLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PNGCompressionDefault:
		return png.DefaultCompression, nil
	case PNGCompressionNone:
		return png.NoCompression, nil
	case PNGCompressionSpeed:
		return png.BestSpeed, nil
	case PNGCompressionBest:
		return png.BestCompression, nil
	default:
		return png.DefaultCompression, fmt.Errorf("unknown png compression: %q", name)
	}
}

// PNGCompressionNames returns the accepted names in display order
func PNGCompressionNames() []string {
	return []string{PNGCompressionDefault, PNGCompressionNone, PNGCompressionSpeed, PNGCompressionBest}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
