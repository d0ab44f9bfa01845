package config

import (
	"image/png"

	"fyne.io/fyne/v2"
	"github.com/ytget/image-converter/internal/codec"
	"github.com/ytget/image-converter/internal/model"
	"github.com/ytget/image-converter/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyTargetFormat       = "target_format"
	KeyJPEGQuality        = "jpeg_quality"
	KeyWebPQuality        = "webp_quality"
	KeyWebPLossless       = "webp_lossless"
	KeyPNGCompression     = "png_compression"
	KeyAutoOrient         = "auto_orient"
	KeyMaxDimension       = "max_dimension"
	KeySVGScale           = "svg_scale"
	KeyIncludeAllFiles    = "include_all_files"
	KeyLastFolder         = "last_folder"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultTargetFormat       = model.DefaultTargetFormat
	DefaultPNGCompression     = codec.PNGCompressionDefault
	DefaultAutoOrient         = true
	DefaultIncludeAllFiles    = false
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetTargetFormat returns the last chosen target format
func (s *Settings) GetTargetFormat() model.TargetFormat {
	value := s.app.Preferences().String(KeyTargetFormat)
	format, err := model.ParseTargetFormat(value)
	if err != nil {
		return DefaultTargetFormat
	}
	return format
}

// SetTargetFormat stores the target format
func (s *Settings) SetTargetFormat(format model.TargetFormat) {
	s.app.Preferences().SetString(KeyTargetFormat, format.String())
}

// GetJPEGQuality returns the JPEG quality, 1 to 100
func (s *Settings) GetJPEGQuality() int {
	return clamp(s.app.Preferences().IntWithFallback(KeyJPEGQuality, codec.DefaultJPEGQuality), codec.MinQuality, codec.MaxQuality)
}

// SetJPEGQuality sets the JPEG quality
func (s *Settings) SetJPEGQuality(quality int) {
	s.app.Preferences().SetInt(KeyJPEGQuality, clamp(quality, codec.MinQuality, codec.MaxQuality))
}

// GetWebPQuality returns the lossy WebP quality, 1 to 100
func (s *Settings) GetWebPQuality() int {
	return clamp(s.app.Preferences().IntWithFallback(KeyWebPQuality, codec.DefaultWebPQuality), codec.MinQuality, codec.MaxQuality)
}

// SetWebPQuality sets the lossy WebP quality
func (s *Settings) SetWebPQuality(quality int) {
	s.app.Preferences().SetInt(KeyWebPQuality, clamp(quality, codec.MinQuality, codec.MaxQuality))
}

// GetWebPLossless returns whether WebP output is lossless
func (s *Settings) GetWebPLossless() bool {
	return s.app.Preferences().BoolWithFallback(KeyWebPLossless, false)
}

// SetWebPLossless sets whether WebP output is lossless
func (s *Settings) SetWebPLossless(lossless bool) {
	s.app.Preferences().SetBool(KeyWebPLossless, lossless)
}

// GetPNGCompression returns the PNG compression name
func (s *Settings) GetPNGCompression() string {
	name := s.app.Preferences().StringWithFallback(KeyPNGCompression, DefaultPNGCompression)
	if _, err := codec.ParsePNGCompression(name); err != nil {
		return DefaultPNGCompression
	}
	return name
}

// SetPNGCompression sets the PNG compression name; unknown names reset to default
func (s *Settings) SetPNGCompression(name string) {
	if _, err := codec.ParsePNGCompression(name); err != nil {
		name = DefaultPNGCompression
	}
	s.app.Preferences().SetString(KeyPNGCompression, name)
}

// GetAutoOrient returns whether EXIF orientation is applied on decode
func (s *Settings) GetAutoOrient() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoOrient, DefaultAutoOrient)
}

// SetAutoOrient sets whether EXIF orientation is applied on decode
func (s *Settings) SetAutoOrient(enabled bool) {
	s.app.Preferences().SetBool(KeyAutoOrient, enabled)
}

// GetMaxDimension returns the downscale limit, 0 when disabled
func (s *Settings) GetMaxDimension() int {
	return clamp(s.app.Preferences().Int(KeyMaxDimension), 0, codec.MaxDimensionLimit)
}

// SetMaxDimension sets the downscale limit
func (s *Settings) SetMaxDimension(limit int) {
	s.app.Preferences().SetInt(KeyMaxDimension, clamp(limit, 0, codec.MaxDimensionLimit))
}

// GetSVGScale returns the SVG rasterization scale
func (s *Settings) GetSVGScale() float64 {
	return clampFloat(s.app.Preferences().FloatWithFallback(KeySVGScale, codec.DefaultSVGScale), codec.MinSVGScale, codec.MaxSVGScale)
}

// SetSVGScale sets the SVG rasterization scale
func (s *Settings) SetSVGScale(scale float64) {
	s.app.Preferences().SetFloat(KeySVGScale, clampFloat(scale, codec.MinSVGScale, codec.MaxSVGScale))
}

// GetIncludeAllFiles returns whether folder scans include non-image files
func (s *Settings) GetIncludeAllFiles() bool {
	return s.app.Preferences().BoolWithFallback(KeyIncludeAllFiles, DefaultIncludeAllFiles)
}

// SetIncludeAllFiles sets whether folder scans include non-image files
func (s *Settings) SetIncludeAllFiles(all bool) {
	s.app.Preferences().SetBool(KeyIncludeAllFiles, all)
}

// GetLastFolder returns the last scanned folder, or the pictures folder
func (s *Settings) GetLastFolder() string {
	dir := s.app.Preferences().String(KeyLastFolder)
	if dir != "" && platform.FileExists(dir) {
		return dir
	}
	pictures, err := platform.GetHomePicturesDir()
	if err != nil {
		return ""
	}
	return pictures
}

// SetLastFolder remembers the last scanned folder
func (s *Settings) SetLastFolder(dir string) {
	s.app.Preferences().SetString(KeyLastFolder, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to reveal the last converted file
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to reveal the last converted file
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// CodecOptions builds codec options from the stored preferences
func (s *Settings) CodecOptions() codec.Options {
	level, err := codec.ParsePNGCompression(s.GetPNGCompression())
	if err != nil {
		level = png.DefaultCompression
	}
	return codec.Options{
		JPEGQuality:    s.GetJPEGQuality(),
		WebPQuality:    s.GetWebPQuality(),
		WebPLossless:   s.GetWebPLossless(),
		PNGCompression: level,
		AutoOrient:     s.GetAutoOrient(),
		MaxDimension:   s.GetMaxDimension(),
		SVGScale:       s.GetSVGScale(),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
