package ui

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

const (
	AppIcon = "image-converter.png"
)

//go:embed image-converter.png
var appIconData []byte

// LogoResource returns the embedded application icon
func LogoResource() fyne.Resource {
	return fyne.NewStaticResource(AppIcon, appIconData)
}
