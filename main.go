package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/image-converter/internal/codec"
	"github.com/ytget/image-converter/internal/config"
	"github.com/ytget/image-converter/internal/platform"
	"github.com/ytget/image-converter/internal/session"
	"github.com/ytget/image-converter/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.image-converter"
	AppName = "Image Converter"
)

func main() {
	// Log version information
	fmt.Printf("Image Converter v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	myApp.SetIcon(ui.LogoResource())

	// Initialize services
	settings := config.NewSettings(myApp)
	codecSvc := codec.NewService(settings.CodecOptions())
	conv := session.NewSession(codecSvc)

	// Create and setup UI
	root := ui.NewRootUI(myWindow, settings, conv, codecSvc)

	// Files and folders passed on the command line become the initial selection
	if len(os.Args) > 1 {
		root.SelectPaths(platform.ExpandPaths(os.Args[1:], settings.GetIncludeAllFiles()))
	}

	// Show and run
	myWindow.ShowAndRun()
}
