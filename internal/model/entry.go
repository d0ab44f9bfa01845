package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EntryIDPrefix is prepended to every generated entry ID
const EntryIDPrefix = "entry-"

// FileEntry represents one selected image file and its conversion status
type FileEntry struct {
	ID          string      // stable row identity; paths may repeat
	Path        string      // source path as selected
	DisplayName string      // base name of Path
	Extension   string      // lowercase, no leading dot, derived once
	Status      EntryStatus // outcome of the latest run
	OutputPath  string      // written file after a Converted outcome
	LastError   string      // swallowed failure after an Error outcome
	UpdatedAt   time.Time
}

// NewFileEntry creates a pending entry for path.
// The extension is computed here and never recomputed afterwards.
func NewFileEntry(path string) *FileEntry {
	return &FileEntry{
		ID:          generateEntryID(),
		Path:        path,
		DisplayName: filepath.Base(path),
		Extension:   ExtensionOf(path),
		Status:      EntryStatusPending,
		UpdatedAt:   time.Now(),
	}
}

// ExtensionOf returns the lowercase suffix of path without the leading dot.
// A path without an extension yields an empty string.
func ExtensionOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// SetStatus records a new status and clears outcome fields from a previous run
func (e *FileEntry) SetStatus(status EntryStatus) {
	e.Status = status
	e.OutputPath = ""
	e.LastError = ""
	e.UpdatedAt = time.Now()
}

// MarkConverted records a successful conversion to outputPath
func (e *FileEntry) MarkConverted(outputPath string) {
	e.SetStatus(EntryStatusConverted)
	e.OutputPath = outputPath
}

// MarkError records a failed conversion
func (e *FileEntry) MarkError(err error) {
	e.SetStatus(EntryStatusError)
	if err != nil {
		e.LastError = err.Error()
	}
}

// Clone returns a copy that can be handed to the presentation layer
func (e *FileEntry) Clone() *FileEntry {
	c := *e
	return &c
}

// generateEntryID generates a unique, time-ordered entry ID using UUID v7
func generateEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(EntryIDPrefix+"%d", time.Now().UnixNano())
	}
	return EntryIDPrefix + id.String()
}
