package config

import (
	"image/png"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/ytget/image-converter/internal/codec"
	"github.com/ytget/image-converter/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestTargetFormat(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if got := settings.GetTargetFormat(); got != DefaultTargetFormat {
		t.Errorf("Expected default target %s, got %s", DefaultTargetFormat, got)
	}

	settings.SetTargetFormat(model.FormatPDF)
	if got := settings.GetTargetFormat(); got != model.FormatPDF {
		t.Errorf("Expected target pdf, got %s", got)
	}

	// Stale values fall back to the default
	settings.app.Preferences().SetString(KeyTargetFormat, "heic")
	if got := settings.GetTargetFormat(); got != DefaultTargetFormat {
		t.Errorf("Expected fallback to %s, got %s", DefaultTargetFormat, got)
	}
}

func TestQualities(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if settings.GetJPEGQuality() != codec.DefaultJPEGQuality {
		t.Errorf("Expected default JPEG quality %d, got %d", codec.DefaultJPEGQuality, settings.GetJPEGQuality())
	}
	if settings.GetWebPQuality() != codec.DefaultWebPQuality {
		t.Errorf("Expected default WebP quality %d, got %d", codec.DefaultWebPQuality, settings.GetWebPQuality())
	}

	tests := []struct {
		value    int
		expected int
	}{
		{75, 75},
		{0, 1},
		{150, 100},
	}

	for _, test := range tests {
		settings.SetJPEGQuality(test.value)
		if got := settings.GetJPEGQuality(); got != test.expected {
			t.Errorf("SetJPEGQuality(%d): expected %d, got %d", test.value, test.expected, got)
		}
		settings.SetWebPQuality(test.value)
		if got := settings.GetWebPQuality(); got != test.expected {
			t.Errorf("SetWebPQuality(%d): expected %d, got %d", test.value, test.expected, got)
		}
	}
}

func TestPNGCompression(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if got := settings.GetPNGCompression(); got != DefaultPNGCompression {
		t.Errorf("Expected default %s, got %s", DefaultPNGCompression, got)
	}

	settings.SetPNGCompression(codec.PNGCompressionBest)
	if got := settings.GetPNGCompression(); got != codec.PNGCompressionBest {
		t.Errorf("Expected best, got %s", got)
	}

	settings.SetPNGCompression("extreme")
	if got := settings.GetPNGCompression(); got != DefaultPNGCompression {
		t.Errorf("Expected unknown name to reset to default, got %s", got)
	}
}

func TestMaxDimensionAndSVGScale(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if settings.GetMaxDimension() != 0 {
		t.Errorf("Expected downscale disabled by default, got %d", settings.GetMaxDimension())
	}
	settings.SetMaxDimension(-10)
	if settings.GetMaxDimension() != 0 {
		t.Error("Max dimension should be clamped to 0")
	}
	settings.SetMaxDimension(1_000_000)
	if settings.GetMaxDimension() != codec.MaxDimensionLimit {
		t.Errorf("Max dimension should be clamped to %d", codec.MaxDimensionLimit)
	}

	if settings.GetSVGScale() != codec.DefaultSVGScale {
		t.Errorf("Expected default SVG scale, got %v", settings.GetSVGScale())
	}
	settings.SetSVGScale(2.5)
	if settings.GetSVGScale() != 2.5 {
		t.Errorf("Expected SVG scale 2.5, got %v", settings.GetSVGScale())
	}
	settings.SetSVGScale(100)
	if settings.GetSVGScale() != codec.MaxSVGScale {
		t.Errorf("Expected SVG scale clamped to %v, got %v", codec.MaxSVGScale, settings.GetSVGScale())
	}
}

func TestBooleanSettings(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if settings.GetWebPLossless() {
		t.Error("WebP lossless should be off by default")
	}
	if settings.GetAutoOrient() != DefaultAutoOrient {
		t.Error("Auto-orient should default to on")
	}
	if settings.GetIncludeAllFiles() != DefaultIncludeAllFiles {
		t.Error("Include all files should default to off")
	}
	if settings.GetAutoRevealOnComplete() != DefaultAutoRevealComplete {
		t.Error("Auto-reveal should default to off")
	}

	settings.SetWebPLossless(true)
	settings.SetAutoOrient(false)
	settings.SetIncludeAllFiles(true)
	settings.SetAutoRevealOnComplete(true)

	if !settings.GetWebPLossless() || settings.GetAutoOrient() || !settings.GetIncludeAllFiles() || !settings.GetAutoRevealOnComplete() {
		t.Error("Boolean settings were not persisted")
	}
}

func TestLastFolder(t *testing.T) {
	settings := NewSettings(test.NewApp())
	dir := t.TempDir()

	settings.SetLastFolder(dir)
	if got := settings.GetLastFolder(); got != dir {
		t.Errorf("Expected last folder %s, got %s", dir, got)
	}

	settings.SetLastFolder(dir + "/gone")
	if got := settings.GetLastFolder(); got == dir+"/gone" {
		t.Error("Expected missing folder to be replaced by a fallback")
	}
}

func TestLanguage(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("ru")
	if lang := settings.GetLanguage(); lang != "ru" {
		t.Errorf("Expected language ru, got %s", lang)
	}

	options := settings.GetLanguageOptions()
	for _, lang := range []string{"system", "en", "ru", "pt"} {
		if _, ok := options[lang]; !ok {
			t.Errorf("Language %s should be available", lang)
		}
	}
}

func TestSettingsCodecOptions(t *testing.T) {
	settings := NewSettings(test.NewApp())
	settings.SetJPEGQuality(70)
	settings.SetWebPLossless(true)
	settings.SetPNGCompression(codec.PNGCompressionSpeed)
	settings.SetMaxDimension(1024)

	opts := settings.CodecOptions()
	if opts.JPEGQuality != 70 || !opts.WebPLossless || opts.MaxDimension != 1024 {
		t.Errorf("Unexpected codec options: %+v", opts)
	}
	if opts.PNGCompression != png.BestSpeed {
		t.Errorf("Expected BestSpeed, got %v", opts.PNGCompression)
	}
	if !opts.AutoOrient || opts.SVGScale != codec.DefaultSVGScale {
		t.Errorf("Expected defaults for untouched options: %+v", opts)
	}
}
