package model

import (
	"fmt"
	"strings"
)

// TargetFormat is an output image format the converter can write
type TargetFormat string

const (
	FormatWebP TargetFormat = "webp"
	FormatJPG  TargetFormat = "jpg"
	FormatPNG  TargetFormat = "png"
	FormatGIF  TargetFormat = "gif"
	FormatBMP  TargetFormat = "bmp"
	FormatTIFF TargetFormat = "tiff"
	FormatPDF  TargetFormat = "pdf"
)

// DefaultTargetFormat is preselected in the format picker
const DefaultTargetFormat = FormatWebP

// supportedTargetFormats keeps picker order
var supportedTargetFormats = []TargetFormat{
	FormatWebP,
	FormatJPG,
	FormatPNG,
	FormatGIF,
	FormatBMP,
	FormatTIFF,
	FormatPDF,
}

// RecognizedSourceExtensions are offered by the file selection surface
// unless the user asks for all files.
var RecognizedSourceExtensions = []string{"webp", "jpg", "jpeg", "png", "svg"}

// SupportedTargetFormats returns the enumerated target formats in picker order
func SupportedTargetFormats() []TargetFormat {
	out := make([]TargetFormat, len(supportedTargetFormats))
	copy(out, supportedTargetFormats)
	return out
}

// ParseTargetFormat validates a user-provided format name.
// Matching is case-insensitive and tolerates a leading dot.
func ParseTargetFormat(name string) (TargetFormat, error) {
	normalized := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))
	for _, f := range supportedTargetFormats {
		if string(f) == normalized {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported target format: %q", name)
}

// String returns the string representation of TargetFormat
func (f TargetFormat) String() string {
	return string(f)
}

// Extension returns the file extension written for this format, without dot
func (f TargetFormat) Extension() string {
	return string(f)
}

// Matches reports whether ext already is this format (case-insensitive)
func (f TargetFormat) Matches(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), string(f))
}

// IsRecognizedSource reports whether ext is one of the recognized image extensions
func IsRecognizedSource(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, known := range RecognizedSourceExtensions {
		if ext == known {
			return true
		}
	}
	return false
}
