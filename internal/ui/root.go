package ui

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/image-converter/internal/codec"
	"github.com/ytget/image-converter/internal/config"
	"github.com/ytget/image-converter/internal/model"
	"github.com/ytget/image-converter/internal/platform"
	"github.com/ytget/image-converter/internal/session"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	session      *session.Session
	codec        *codec.Service

	selectBtn     *widget.Button
	folderBtn     *widget.Button
	allFilesCheck *widget.Check
	formatLabel   *widget.Label
	formatSelect  *widget.Select
	convertBtn    *widget.Button
	cancelBtn     *widget.Button
	clearBtn      *widget.Button
	removeBtn     *widget.Button
	revealBtn     *widget.Button
	openBtn       *widget.Button
	table         *EntryTable
	countLabel    *widget.Label
	statusLabel   *widget.Label
	progressBar   *widget.ProgressBar

	// UI goroutine state
	running       bool
	cancelRun     context.CancelFunc
	statusMessage string
	lastConverted string
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, conv *session.Session, codecSvc *codec.Service) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		session:      conv,
		codec:        codecSvc,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	conv.SetObserver(ui)
	conv.SetConflictResolver(NewConflictPrompt(window, localization))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.selectBtn = widget.NewButton(ui.localization.GetText(KeySelectFiles), ui.onSelectFile)
	ui.selectBtn.Importance = widget.HighImportance
	ui.folderBtn = widget.NewButton(IconFolder+" "+ui.localization.GetText(KeySelectFolder), ui.onSelectFolder)

	ui.allFilesCheck = widget.NewCheck(ui.localization.GetText(KeyAllFiles), ui.settings.SetIncludeAllFiles)
	ui.allFilesCheck.SetChecked(ui.settings.GetIncludeAllFiles())

	formats := make([]string, 0, len(model.SupportedTargetFormats()))
	for _, format := range model.SupportedTargetFormats() {
		formats = append(formats, format.String())
	}
	ui.formatLabel = widget.NewLabel(ui.localization.GetText(KeyTargetFormat))
	ui.formatSelect = widget.NewSelect(formats, func(selected string) {
		if format, err := model.ParseTargetFormat(selected); err == nil {
			ui.settings.SetTargetFormat(format)
		}
	})
	ui.formatSelect.SetSelected(ui.settings.GetTargetFormat().String())

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.convertBtn = widget.NewButton(ui.localization.GetText(KeyConvert), ui.onConvertClick)
	ui.cancelBtn = widget.NewButton(ui.localization.GetText(KeyCancel), ui.onCancelClick)
	ui.clearBtn = widget.NewButton(ui.localization.GetText(KeyClearList), ui.onClearClick)
	ui.removeBtn = widget.NewButton(ui.localization.GetText(KeyRemoveSelected), ui.onRemoveClick)
	ui.revealBtn = widget.NewButton(ui.localization.GetText(KeyReveal), ui.onRevealClick)
	ui.openBtn = widget.NewButton(ui.localization.GetText(KeyOpen), ui.onOpenClick)

	ui.table = NewEntryTable(ui.localization)
	ui.table.SetOnSelect(func(int) { ui.updateButtons() })

	ui.countLabel = widget.NewLabel("")
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis
	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Max = ProgressMax

	logoImage := canvas.NewImageFromResource(LogoResource())
	logoImage.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
	logoImage.FillMode = canvas.ImageFillContain
	left := container.NewHBox(logoImage, ui.selectBtn, ui.folderBtn, ui.allFilesCheck)

	topRow := container.NewBorder(nil, nil, left, settingsBtn,
		container.NewHBox(ui.formatLabel, ui.formatSelect))
	actionRow := container.NewHBox(ui.convertBtn, ui.cancelBtn, ui.clearBtn, ui.removeBtn, ui.revealBtn, ui.openBtn)
	bottom := container.NewVBox(
		container.NewBorder(nil, nil, nil, ui.countLabel, ui.statusLabel),
		ui.progressBar,
	)

	content := container.NewBorder(
		container.NewVBox(topRow, actionRow),
		bottom,
		nil,
		nil,
		ui.table.Widget(),
	)

	ui.window.SetContent(content)
	ui.window.SetOnDropped(ui.onDropped)
	ui.window.SetOnClosed(func() {
		if ui.cancelRun != nil {
			ui.cancelRun()
		}
	})

	ui.reloadEntries()
	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	selectItem := fyne.NewMenuItem(ui.localization.GetText(KeySelectFiles), ui.onSelectFile)
	folderItem := fyne.NewMenuItem(ui.localization.GetText(KeySelectFolder), ui.onSelectFolder)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	available := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(available))
	for code := range available {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(available[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), selectItem, folderItem, settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	text := ui.localization.GetText
	ui.window.SetTitle(text(KeyAppTitle))
	ui.selectBtn.SetText(text(KeySelectFiles))
	ui.folderBtn.SetText(IconFolder + " " + text(KeySelectFolder))
	ui.allFilesCheck.Text = text(KeyAllFiles)
	ui.allFilesCheck.Refresh()
	ui.formatLabel.SetText(text(KeyTargetFormat))
	ui.convertBtn.SetText(text(KeyConvert))
	ui.cancelBtn.SetText(text(KeyCancel))
	ui.clearBtn.SetText(text(KeyClearList))
	ui.removeBtn.SetText(text(KeyRemoveSelected))
	ui.revealBtn.SetText(text(KeyReveal))
	ui.openBtn.SetText(text(KeyOpen))
	ui.statusLabel.SetText(ui.localizeMessage(ui.statusMessage))
	ui.updateCount()
	ui.table.Refresh()
}

// SelectPaths replaces the selection with paths. An empty set keeps the
// current list. Must run on the UI goroutine.
func (ui *RootUI) SelectPaths(paths []string) {
	if len(paths) == 0 {
		log.Printf("Nothing selected, keeping current list")
		return
	}
	if err := ui.session.SelectFiles(paths); err != nil {
		log.Printf("Cannot change selection: %v", err)
		return
	}
	ui.lastConverted = ""
	ui.statusMessage = ""
	ui.statusLabel.SetText("")
	ui.progressBar.SetValue(0)
	ui.reloadEntries()
}

// AddPaths appends paths to the selection. Must run on the UI goroutine.
func (ui *RootUI) AddPaths(paths []string) {
	if err := ui.session.AddFiles(paths); err != nil {
		log.Printf("Cannot add files: %v", err)
		return
	}
	ui.reloadEntries()
}

// onSelectFile appends one picked file, filtered to image types unless all files are shown
func (ui *RootUI) onSelectFile() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		ui.settings.SetLastFolder(filepath.Dir(path))
		log.Printf("Picked %s", path)
		ui.AddPaths([]string{path})
	}, ui.window)

	if !ui.allFilesCheck.Checked {
		fileDialog.SetFilter(storage.NewExtensionFileFilter(sourceFilterExtensions()))
	}
	ui.setDialogLocation(fileDialog)
	fileDialog.Show()
}

// sourceFilterExtensions lists recognized extensions with a dot, in both cases
func sourceFilterExtensions() []string {
	out := make([]string, 0, 2*len(model.RecognizedSourceExtensions))
	for _, ext := range model.RecognizedSourceExtensions {
		out = append(out, "."+ext, "."+strings.ToUpper(ext))
	}
	return out
}

// setDialogLocation opens file dialogs in the last used folder
func (ui *RootUI) setDialogLocation(d *dialog.FileDialog) {
	if dir := ui.settings.GetLastFolder(); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			d.SetLocation(lister)
		}
	}
}

// onSelectFolder scans a chosen folder for images
func (ui *RootUI) onSelectFolder() {
	folderDialog := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if uri == nil {
			return
		}

		dir := uri.Path()
		paths, err := platform.ScanImages(dir, ui.allFilesCheck.Checked)
		if err != nil {
			log.Printf("Error scanning %s: %v", dir, err)
			dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorScanning), err), ui.window)
			return
		}

		ui.settings.SetLastFolder(dir)
		log.Printf("Scanned %s: %d file(s)", dir, len(paths))
		ui.SelectPaths(paths)
	}, ui.window)

	ui.setDialogLocation(folderDialog)
	folderDialog.Show()
}

// onDropped replaces the selection with dropped files; dropped folders are scanned
func (ui *RootUI) onDropped(_ fyne.Position, uris []fyne.URI) {
	if ui.running {
		return
	}
	paths := pathsFromURIs(uris, ui.allFilesCheck.Checked)
	log.Printf("Dropped %d item(s), %d file(s) selected", len(uris), len(paths))
	ui.SelectPaths(paths)
}

// pathsFromURIs expands local file URIs into file paths
func pathsFromURIs(uris []fyne.URI, includeAll bool) []string {
	paths := make([]string, 0, len(uris))
	for _, uri := range uris {
		if uri == nil || uri.Scheme() != "file" {
			continue
		}
		paths = append(paths, uri.Path())
	}
	return platform.ExpandPaths(paths, includeAll)
}

// onConvertClick starts a run on a worker goroutine
func (ui *RootUI) onConvertClick() {
	if ui.running || !ui.session.CanConvert() {
		return
	}

	target, err := model.ParseTargetFormat(ui.formatSelect.Selected)
	if err != nil {
		dialog.ShowError(err, ui.window)
		return
	}

	ui.codec.SetOptions(ui.settings.CodecOptions())
	ui.lastConverted = ""

	ctx, cancel := context.WithCancel(context.Background())
	ui.cancelRun = cancel
	ui.setRunning(true)

	go func() {
		defer cancel()
		result, err := ui.session.Convert(ctx, target)
		fyne.Do(func() {
			ui.onRunFinished(result, err)
		})
	}()
}

// onCancelClick requests cooperative cancellation of the run
func (ui *RootUI) onCancelClick() {
	if !ui.running {
		return
	}
	log.Printf("Cancel requested by user")
	ui.session.RequestCancel()
}

// onClearClick empties the list
func (ui *RootUI) onClearClick() {
	if err := ui.session.ClearAll(); err != nil {
		log.Printf("Cannot clear list: %v", err)
		return
	}
	ui.lastConverted = ""
	ui.reloadEntries()
}

// onRemoveClick removes the selected row, even when another row shares its path
func (ui *RootUI) onRemoveClick() {
	index, ok := ui.table.SelectedIndex()
	if !ok {
		ui.showPopUp(ui.localization.GetText(KeyNoSelection))
		return
	}
	if err := ui.session.RemoveAt(index); err != nil {
		log.Printf("Cannot remove row %d: %v", index, err)
		return
	}
	ui.reloadEntries()
}

// onRevealClick shows the selected entry's output in the file manager
func (ui *RootUI) onRevealClick() {
	if path, ok := ui.selectedOutput(); ok {
		ui.onRevealFile(path)
	}
}

// onOpenClick opens the selected entry's output with the default app
func (ui *RootUI) onOpenClick() {
	path, ok := ui.selectedOutput()
	if !ok {
		return
	}
	if err := platform.OpenFileWithDefaultApp(path); err != nil {
		log.Printf("Error opening file %s: %v", path, err)
		ui.showPopUp(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
		return
	}
	log.Printf("File opened successfully: %s", path)
}

func (ui *RootUI) selectedOutput() (string, bool) {
	entry, ok := ui.table.Selected()
	if !ok {
		ui.showPopUp(ui.localization.GetText(KeyNoSelection))
		return "", false
	}
	if entry.OutputPath == "" {
		ui.showPopUp(ui.localization.GetText(KeyNotConverted))
		return "", false
	}
	return entry.OutputPath, true
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(path string) {
	if err := platform.OpenFileInManager(path); err != nil {
		log.Printf("Error revealing file %s: %v", path, err)
		ui.showPopUp(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
		return
	}
	log.Printf("File revealed successfully: %s", path)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
			ui.localization.SetLanguage(lang)
			ui.refreshUITexts()
			ui.createMenu()
		}
	})
}

// EntryUpdated is called from the converting goroutine
func (ui *RootUI) EntryUpdated(index int, entry *model.FileEntry) {
	fyne.Do(func() {
		if entry.Status == model.EntryStatusConverted {
			ui.lastConverted = entry.OutputPath
		}
		ui.table.UpdateEntry(index, entry)
	})
}

// ProgressChanged is called from the converting goroutine
func (ui *RootUI) ProgressChanged(fraction float64) {
	fyne.Do(func() {
		ui.progressBar.SetValue(fraction * ProgressMax)
	})
}

// StatusMessage is called from the converting goroutine
func (ui *RootUI) StatusMessage(message string) {
	fyne.Do(func() {
		ui.statusMessage = message
		ui.statusLabel.SetText(ui.localizeMessage(message))
	})
}

// onRunFinished runs on the UI goroutine once Convert returns
func (ui *RootUI) onRunFinished(result session.Result, err error) {
	ui.cancelRun = nil
	ui.setRunning(false)

	if err != nil {
		log.Printf("Conversion did not start: %v", err)
		dialog.ShowError(err, ui.window)
		return
	}

	ui.reloadEntries()
	if result.Total == 0 {
		return
	}

	ui.sendCompletionNotification(result)

	if result.Outcome == session.OutcomeCompleted && ui.lastConverted != "" && ui.settings.GetAutoRevealOnComplete() {
		log.Printf("Auto-revealing last converted file: %s", ui.lastConverted)
		ui.onRevealFile(ui.lastConverted)
	}
}

// sendCompletionNotification sends a system notification at the end of a run
func (ui *RootUI) sendCompletionNotification(result session.Result) {
	title := ui.localization.GetText(KeyCompleted)
	if result.Outcome == session.OutcomeCanceled {
		title = ui.localization.GetText(KeyCanceled)
	}

	fyne.CurrentApp().SendNotification(&fyne.Notification{
		Title:   title,
		Content: ui.summaryText(result),
	})
}

func (ui *RootUI) summaryText(result session.Result) string {
	return fmt.Sprintf(ui.localization.GetText(KeySummary), result.Converted, result.Skipped, result.Errors)
}

// localizeMessage maps session status messages to the current language
func (ui *RootUI) localizeMessage(message string) string {
	switch message {
	case session.MessageConverting:
		return ui.localization.GetText(KeyConverting)
	case session.MessageCompleted:
		return ui.localization.GetText(KeyCompleted)
	case session.MessageCanceled:
		return ui.localization.GetText(KeyCanceled)
	default:
		return message
	}
}

// reloadEntries pulls the list from the session into the table
func (ui *RootUI) reloadEntries() {
	ui.table.SetEntries(ui.session.Entries())
	ui.updateCount()
	ui.updateButtons()
}

func (ui *RootUI) updateCount() {
	ui.countLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeySelectedCount), ui.table.Len()))
}

func (ui *RootUI) setRunning(running bool) {
	ui.running = running
	ui.updateButtons()
}

// updateButtons enables controls for the current state
func (ui *RootUI) updateButtons() {
	setEnabled(ui.convertBtn, !ui.running && ui.table.Len() > 0)
	setEnabled(ui.cancelBtn, ui.running)
	setEnabled(ui.clearBtn, !ui.running && ui.table.Len() > 0)
	setEnabled(ui.selectBtn, !ui.running)
	setEnabled(ui.folderBtn, !ui.running)

	_, selected := ui.table.Selected()
	setEnabled(ui.removeBtn, !ui.running && selected)
	setEnabled(ui.revealBtn, selected)
	setEnabled(ui.openBtn, selected)

	if ui.running {
		ui.formatSelect.Disable()
		ui.allFilesCheck.Disable()
	} else {
		ui.formatSelect.Enable()
		ui.allFilesCheck.Enable()
	}
}

func setEnabled(button *widget.Button, enabled bool) {
	if enabled {
		button.Enable()
	} else {
		button.Disable()
	}
}

func (ui *RootUI) showPopUp(message string) {
	popUp := widget.NewPopUp(widget.NewLabel(message), ui.window.Canvas())
	popUp.Show()
	go func() {
		<-time.After(ToastAutoHide)
		fyne.Do(popUp.Hide)
	}()
}
