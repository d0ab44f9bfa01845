package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/image-converter/internal/codec"
	"github.com/ytget/image-converter/internal/config"
	"github.com/ytget/image-converter/internal/model"
	"github.com/ytget/image-converter/internal/session"
)

func newTestRootUI(t *testing.T) (*RootUI, *session.Session) {
	t.Helper()
	app := test.NewApp()
	window := app.NewWindow("test")
	settings := config.NewSettings(app)
	codecSvc := codec.NewService(settings.CodecOptions())
	conv := session.NewSession(codecSvc)
	return NewRootUI(window, settings, conv, codecSvc), conv
}

func TestRootUI_InitialState(t *testing.T) {
	ui, _ := newTestRootUI(t)

	if !ui.convertBtn.Disabled() {
		t.Error("Convert should be disabled with an empty list")
	}
	if !ui.cancelBtn.Disabled() {
		t.Error("Cancel should be disabled when idle")
	}
	if ui.formatSelect.Selected != model.DefaultTargetFormat.String() {
		t.Errorf("Expected default format selected, got %s", ui.formatSelect.Selected)
	}
	if len(ui.formatSelect.Options) != len(model.SupportedTargetFormats()) {
		t.Errorf("Expected %d format options, got %d", len(model.SupportedTargetFormats()), len(ui.formatSelect.Options))
	}
}

func TestRootUI_SelectAndClear(t *testing.T) {
	ui, conv := newTestRootUI(t)

	ui.SelectPaths([]string{"/x/a.png", "/x/b.jpg"})
	if ui.table.Len() != 2 || conv.Len() != 2 {
		t.Fatalf("Expected 2 entries, table=%d session=%d", ui.table.Len(), conv.Len())
	}
	if ui.convertBtn.Disabled() {
		t.Error("Convert should be enabled with files selected")
	}
	if ui.countLabel.Text != "2 file(s) selected" {
		t.Errorf("Unexpected count label: %s", ui.countLabel.Text)
	}

	ui.onClearClick()
	if ui.table.Len() != 0 || conv.Len() != 0 {
		t.Error("Expected list to be cleared")
	}
	if !ui.convertBtn.Disabled() {
		t.Error("Convert should be disabled after clearing")
	}
}

func TestRootUI_EmptySelectionKeepsList(t *testing.T) {
	ui, conv := newTestRootUI(t)
	ui.SelectPaths([]string{"/x/a.png", "/x/b.jpg"})

	remote, err := storage.ParseURI("https://example.com/c.png")
	if err != nil {
		t.Fatalf("ParseURI failed: %v", err)
	}
	ui.SelectPaths(nil)
	ui.onDropped(fyne.NewPos(0, 0), []fyne.URI{remote})

	if ui.table.Len() != 2 || conv.Len() != 2 {
		t.Errorf("Expected 2 entries to remain, table=%d session=%d", ui.table.Len(), conv.Len())
	}
	if ui.convertBtn.Disabled() {
		t.Error("Convert should stay enabled")
	}
}

func TestRootUI_AddPaths(t *testing.T) {
	ui, conv := newTestRootUI(t)
	ui.SelectPaths([]string{"/x/a.png"})

	ui.AddPaths([]string{"/y/b.svg"})

	entries := conv.Entries()
	if len(entries) != 2 || entries[1].Path != "/y/b.svg" {
		t.Fatalf("Expected /y/b.svg appended, got %v", entries)
	}
	if ui.table.Len() != 2 {
		t.Errorf("Expected table to show 2 rows, got %d", ui.table.Len())
	}
}

func TestRootUI_RemoveSelectedDuplicateRow(t *testing.T) {
	ui, conv := newTestRootUI(t)
	ui.SelectPaths([]string{"/x/a.png", "/x/b.png", "/x/a.png"})
	before := conv.Entries()

	ui.table.table.Select(widget.TableCellID{Row: 2, Col: ColumnFilename})
	ui.onRemoveClick()

	entries := conv.Entries()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != before[0].ID || entries[1].ID != before[1].ID {
		t.Error("Expected the selected row to be removed, not the first with the same path")
	}
}

func TestSourceFilterExtensions(t *testing.T) {
	got := sourceFilterExtensions()

	for _, ext := range []string{".png", ".PNG", ".jpeg", ".svg", ".WEBP"} {
		found := false
		for _, candidate := range got {
			if candidate == ext {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected %s in filter %v", ext, got)
		}
	}
	if len(got) != 2*len(model.RecognizedSourceExtensions) {
		t.Errorf("Expected %d extensions, got %d", 2*len(model.RecognizedSourceExtensions), len(got))
	}
}

func TestLogoResource(t *testing.T) {
	logo := LogoResource()

	if logo.Name() != AppIcon {
		t.Errorf("Expected name %s, got %s", AppIcon, logo.Name())
	}
	if !bytes.HasPrefix(logo.Content(), []byte("\x89PNG")) {
		t.Error("Expected embedded PNG data")
	}
}

func TestRootUI_LocalizeMessage(t *testing.T) {
	ui, _ := newTestRootUI(t)
	ui.onLanguageChange("pt")

	tests := map[string]string{
		session.MessageConverting: "Convertendo, aguarde...",
		session.MessageCompleted:  "Conversão concluída",
		session.MessageCanceled:   "Conversão cancelada",
		"":                        "",
	}
	for message, expected := range tests {
		if got := ui.localizeMessage(message); got != expected {
			t.Errorf("localizeMessage(%q) = %q, expected %q", message, got, expected)
		}
	}
	if ui.convertBtn.Text != "Converter para o formato selecionado" {
		t.Errorf("Expected button text to follow language, got %s", ui.convertBtn.Text)
	}
}

func TestRootUI_SummaryText(t *testing.T) {
	ui, _ := newTestRootUI(t)

	got := ui.summaryText(session.Result{Converted: 3, Skipped: 1, Errors: 2})
	if got != "3 converted, 1 skipped, 2 errors" {
		t.Errorf("Unexpected summary: %s", got)
	}
}

func TestPathsFromURIs(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "album")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	for _, path := range []string{filepath.Join(dir, "single.txt"), filepath.Join(sub, "b.png"), filepath.Join(sub, "a.webp"), filepath.Join(sub, "notes.md")} {
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to create %s: %v", path, err)
		}
	}

	missing, _ := storage.ParseURI("file://" + filepath.ToSlash(filepath.Join(dir, "missing.png")))
	uris := []fyne.URI{
		storage.NewFileURI(filepath.Join(dir, "single.txt")),
		storage.NewFileURI(sub),
		missing,
		nil,
	}

	got := pathsFromURIs(uris, false)
	expected := []string{
		filepath.Join(dir, "single.txt"),
		filepath.Join(sub, "a.webp"),
		filepath.Join(sub, "b.png"),
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}

	if got := pathsFromURIs(uris, true); len(got) != 4 {
		t.Errorf("Expected 4 paths with all files, got %v", got)
	}
}

func TestCompactTheme_Sizes(t *testing.T) {
	th := NewCompactTheme()

	if got := th.Size(theme.SizeNamePadding); got != 3 {
		t.Errorf("Expected compact padding 3, got %v", got)
	}
	if got := th.Size(theme.SizeNameText); got != 13 {
		t.Errorf("Expected compact text size 13, got %v", got)
	}
}
