package ui

import (
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/image-converter/internal/codec"
	"github.com/ytget/image-converter/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	jpegQualityEntry  *widget.Entry
	webpQualityEntry  *widget.Entry
	webpLosslessCheck *widget.Check
	pngSelect         *widget.Select
	autoOrientCheck   *widget.Check
	maxDimensionEntry *widget.Entry
	svgScaleEntry     *widget.Entry
	autoRevealCheck   *widget.Check
	languageSelect    *widget.Select
}

// ShowSettingsDialog opens the settings dialog; onSaved runs after a save
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.jpegQualityEntry = widget.NewEntry()
	sd.jpegQualityEntry.SetPlaceHolder("1-100")
	sd.webpQualityEntry = widget.NewEntry()
	sd.webpQualityEntry.SetPlaceHolder("1-100")
	sd.webpLosslessCheck = widget.NewCheck(text(KeyWebPLossless), func(lossless bool) {
		if lossless {
			sd.webpQualityEntry.Disable()
		} else {
			sd.webpQualityEntry.Enable()
		}
	})
	sd.pngSelect = widget.NewSelect(codec.PNGCompressionNames(), nil)
	sd.autoOrientCheck = widget.NewCheck(text(KeyAutoOrient), nil)
	sd.maxDimensionEntry = widget.NewEntry()
	sd.maxDimensionEntry.SetPlaceHolder("0")
	sd.svgScaleEntry = widget.NewEntry()
	sd.svgScaleEntry.SetPlaceHolder("1.0")
	sd.autoRevealCheck = widget.NewCheck(text(KeyAutoReveal), nil)

	languageOptions := make([]string, 0)
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle(text(KeyConversionOptions), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyJPEGQuality)),
		sd.jpegQualityEntry,

		widget.NewLabel(text(KeyWebPQuality)),
		sd.webpQualityEntry,
		sd.webpLosslessCheck,

		widget.NewLabel(text(KeyPNGCompression)),
		sd.pngSelect,

		widget.NewLabel(text(KeyMaxDimension)),
		sd.maxDimensionEntry,

		widget.NewLabel(text(KeySVGScale)),
		sd.svgScaleEntry,
		sd.autoOrientCheck,

		widget.NewSeparator(),
		widget.NewLabelWithStyle(text(KeyInterfaceOptions), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)),
		sd.languageSelect,
		sd.autoRevealCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.jpegQualityEntry.SetText(strconv.Itoa(sd.settings.GetJPEGQuality()))
	sd.webpQualityEntry.SetText(strconv.Itoa(sd.settings.GetWebPQuality()))
	sd.webpLosslessCheck.SetChecked(sd.settings.GetWebPLossless())
	sd.pngSelect.SetSelected(sd.settings.GetPNGCompression())
	sd.autoOrientCheck.SetChecked(sd.settings.GetAutoOrient())
	sd.maxDimensionEntry.SetText(strconv.Itoa(sd.settings.GetMaxDimension()))
	sd.svgScaleEntry.SetText(strconv.FormatFloat(sd.settings.GetSVGScale(), 'g', -1, 64))
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings. Unparsable numbers keep the stored value.
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if quality, ok := parseInt(sd.jpegQualityEntry.Text); ok {
		sd.settings.SetJPEGQuality(quality)
	}
	if quality, ok := parseInt(sd.webpQualityEntry.Text); ok {
		sd.settings.SetWebPQuality(quality)
	}
	sd.settings.SetWebPLossless(sd.webpLosslessCheck.Checked)
	if sd.pngSelect.Selected != "" {
		sd.settings.SetPNGCompression(sd.pngSelect.Selected)
	}
	sd.settings.SetAutoOrient(sd.autoOrientCheck.Checked)
	if limit, ok := parseInt(sd.maxDimensionEntry.Text); ok {
		sd.settings.SetMaxDimension(limit)
	}
	if scale, err := strconv.ParseFloat(strings.TrimSpace(sd.svgScaleEntry.Text), 64); err == nil {
		sd.settings.SetSVGScale(scale)
	}
	sd.settings.SetAutoRevealOnComplete(sd.autoRevealCheck.Checked)
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

func parseInt(text string) (int, bool) {
	value, err := strconv.Atoi(strings.TrimSpace(text))
	return value, err == nil
}
