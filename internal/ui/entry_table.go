package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/image-converter/internal/model"
)

// EntryTable renders the selected files with their per-run status
type EntryTable struct {
	table        *widget.Table
	localization *Localization
	entries      []*model.FileEntry
	selected     int
	onSelect     func(index int)
}

// NewEntryTable creates an empty table with Filename/Extension/Status headers
func NewEntryTable(localization *Localization) *EntryTable {
	et := &EntryTable{
		localization: localization,
		selected:     -1,
	}

	et.table = widget.NewTableWithHeaders(
		func() (int, int) { return len(et.entries), ColumnCount },
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		et.updateCell,
	)
	et.table.ShowHeaderColumn = false
	et.table.CreateHeader = func() fyne.CanvasObject {
		label := widget.NewLabel("")
		label.TextStyle = fyne.TextStyle{Bold: true}
		return label
	}
	et.table.UpdateHeader = et.updateHeader
	et.table.OnSelected = func(id widget.TableCellID) {
		et.selected = id.Row
		if et.onSelect != nil {
			et.onSelect(id.Row)
		}
	}
	et.table.OnUnselected = func(widget.TableCellID) {
		et.selected = -1
	}

	et.table.SetColumnWidth(ColumnFilename, ColumnFilenameWidth)
	et.table.SetColumnWidth(ColumnExtension, ColumnExtensionWidth)
	et.table.SetColumnWidth(ColumnStatus, ColumnStatusWidth)

	return et
}

// Widget returns the canvas object to place in a layout
func (et *EntryTable) Widget() fyne.CanvasObject {
	return et.table
}

// SetOnSelect sets the row selection callback
func (et *EntryTable) SetOnSelect(callback func(index int)) {
	et.onSelect = callback
}

// SetEntries replaces all rows and clears the selection
func (et *EntryTable) SetEntries(entries []*model.FileEntry) {
	et.entries = entries
	et.selected = -1
	et.table.UnselectAll()
	et.table.Refresh()
}

// UpdateEntry replaces one row in place
func (et *EntryTable) UpdateEntry(index int, entry *model.FileEntry) {
	if index < 0 || index >= len(et.entries) {
		return
	}
	et.entries[index] = entry
	et.table.Refresh()
}

// Len returns the number of rows
func (et *EntryTable) Len() int {
	return len(et.entries)
}

// Selected returns the selected entry, if any
func (et *EntryTable) Selected() (*model.FileEntry, bool) {
	index, ok := et.SelectedIndex()
	if !ok {
		return nil, false
	}
	return et.entries[index], true
}

// SelectedIndex returns the selected row, if any
func (et *EntryTable) SelectedIndex() (int, bool) {
	if et.selected < 0 || et.selected >= len(et.entries) {
		return -1, false
	}
	return et.selected, true
}

// Refresh redraws headers and cells, e.g. after a language change
func (et *EntryTable) Refresh() {
	et.table.Refresh()
}

func (et *EntryTable) updateHeader(id widget.TableCellID, obj fyne.CanvasObject) {
	label, ok := obj.(*widget.Label)
	if !ok || id.Row != -1 {
		return
	}
	label.SetText(et.headerText(id.Col))
}

func (et *EntryTable) headerText(col int) string {
	switch col {
	case ColumnFilename:
		return et.localization.GetText(KeyColumnFilename)
	case ColumnExtension:
		return et.localization.GetText(KeyColumnExtension)
	case ColumnStatus:
		return et.localization.GetText(KeyColumnStatus)
	default:
		return ""
	}
}

func (et *EntryTable) updateCell(id widget.TableCellID, obj fyne.CanvasObject) {
	label, ok := obj.(*widget.Label)
	if !ok || id.Row < 0 || id.Row >= len(et.entries) {
		return
	}

	entry := et.entries[id.Row]
	label.Importance = widget.MediumImportance
	if id.Col == ColumnStatus {
		label.Importance = statusImportance(entry.Status)
	}
	label.SetText(cellText(entry, id.Col, et.localization))
}

// cellText returns the text shown for entry in column col
func cellText(entry *model.FileEntry, col int, localization *Localization) string {
	switch col {
	case ColumnFilename:
		return entry.DisplayName
	case ColumnExtension:
		if entry.Extension == "" {
			return ExtensionPlaceholder
		}
		return entry.Extension
	case ColumnStatus:
		return statusText(entry, localization)
	default:
		return ""
	}
}

// statusText localizes the entry status; errors carry their message
func statusText(entry *model.FileEntry, localization *Localization) string {
	switch entry.Status {
	case model.EntryStatusPending:
		return ""
	case model.EntryStatusAlreadyTarget:
		return localization.GetText(KeyStatusAlready)
	case model.EntryStatusConverted:
		return localization.GetText(KeyStatusConverted)
	case model.EntryStatusSkipped:
		return localization.GetText(KeyStatusSkipped)
	case model.EntryStatusCanceled:
		return localization.GetText(KeyStatusCanceled)
	case model.EntryStatusError:
		text := localization.GetText(KeyStatusError)
		if entry.LastError != "" {
			text += StatusErrorSeparator + entry.LastError
		}
		return text
	default:
		return entry.Status.DisplayText()
	}
}

func statusImportance(status model.EntryStatus) widget.Importance {
	switch status {
	case model.EntryStatusConverted:
		return widget.SuccessImportance
	case model.EntryStatusError:
		return widget.DangerImportance
	case model.EntryStatusSkipped, model.EntryStatusCanceled:
		return widget.WarningImportance
	case model.EntryStatusAlreadyTarget:
		return widget.LowImportance
	default:
		return widget.MediumImportance
	}
}
