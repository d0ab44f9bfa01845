package codec

import (
	"image/png"
	"testing"
)

func TestParsePNGCompression(t *testing.T) {
	tests := []struct {
		name     string
		expected png.CompressionLevel
		wantErr  bool
	}{
		{"", png.DefaultCompression, false},
		{"default", png.DefaultCompression, false},
		{"NONE", png.NoCompression, false},
		{" speed ", png.BestSpeed, false},
		{"best", png.BestCompression, false},
		{"ultra", png.DefaultCompression, true},
	}

	for _, test := range tests {
		level, err := ParsePNGCompression(test.name)
		if (err != nil) != test.wantErr {
			t.Errorf("ParsePNGCompression(%q) error = %v, wantErr %v", test.name, err, test.wantErr)
		}
		if level != test.expected {
			t.Errorf("ParsePNGCompression(%q) = %v, expected %v", test.name, level, test.expected)
		}
	}

	for _, name := range PNGCompressionNames() {
		if _, err := ParsePNGCompression(name); err != nil {
			t.Errorf("Listed name %q should parse: %v", name, err)
		}
	}
}

func TestOptionsNormalize(t *testing.T) {
	opts := Options{SVGScale: 0.01, MaxDimension: -5, JPEGQuality: 50, WebPQuality: 70}.Normalize()

	if opts.SVGScale != MinSVGScale {
		t.Errorf("Expected SVG scale %v, got %v", MinSVGScale, opts.SVGScale)
	}
	if opts.MaxDimension != 0 {
		t.Errorf("Expected max dimension 0, got %d", opts.MaxDimension)
	}
	if opts.JPEGQuality != 50 || opts.WebPQuality != 70 {
		t.Errorf("Expected in-range qualities kept, got %d %d", opts.JPEGQuality, opts.WebPQuality)
	}

	if got := (Options{}).Normalize().SVGScale; got != DefaultSVGScale {
		t.Errorf("Expected zero SVG scale to become default, got %v", got)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.JPEGQuality != DefaultJPEGQuality || opts.WebPQuality != DefaultWebPQuality {
		t.Errorf("Unexpected default qualities: %+v", opts)
	}
	if !opts.AutoOrient || opts.WebPLossless || opts.MaxDimension != 0 {
		t.Errorf("Unexpected default flags: %+v", opts)
	}
}
