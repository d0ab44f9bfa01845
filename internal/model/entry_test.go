package model

import (
	"errors"
	"strings"
	"testing"
)

func TestExtensionOf(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/photos/a.PNG", "png"},
		{"/photos/b.jpg", "jpg"},
		{"c.Jpeg", "jpeg"},
		{"/archive.tar.gz", "gz"},
		{"/no/extension", ""},
		{"/dir.d/file", ""},
		{"trailing.", ""},
	}

	for _, test := range tests {
		result := ExtensionOf(test.path)
		if result != test.expected {
			t.Errorf("ExtensionOf(%s) = %q, expected %q", test.path, result, test.expected)
		}
	}
}

func TestNewFileEntry(t *testing.T) {
	entry := NewFileEntry("/photos/Holiday.WEBP")

	if entry.Path != "/photos/Holiday.WEBP" {
		t.Errorf("Expected path to be kept verbatim, got %s", entry.Path)
	}
	if entry.DisplayName != "Holiday.WEBP" {
		t.Errorf("Expected display name 'Holiday.WEBP', got %s", entry.DisplayName)
	}
	if entry.Extension != "webp" {
		t.Errorf("Expected extension 'webp', got %s", entry.Extension)
	}
	if entry.Status != EntryStatusPending {
		t.Errorf("Expected status Pending, got %s", entry.Status)
	}
	if !strings.HasPrefix(entry.ID, EntryIDPrefix) {
		t.Errorf("Expected ID to start with %q, got %s", EntryIDPrefix, entry.ID)
	}
}

func TestNewFileEntry_UniqueIDs(t *testing.T) {
	a := NewFileEntry("/same.png")
	b := NewFileEntry("/same.png")

	if a.ID == b.ID {
		t.Error("Expected duplicate paths to receive different IDs")
	}
}

func TestFileEntry_Outcomes(t *testing.T) {
	entry := NewFileEntry("/a.png")

	entry.MarkError(errors.New("corrupt"))
	if entry.Status != EntryStatusError || entry.LastError != "corrupt" {
		t.Errorf("Unexpected state after MarkError: %+v", entry)
	}

	entry.MarkConverted("/a.jpg")
	if entry.Status != EntryStatusConverted {
		t.Errorf("Expected Converted, got %s", entry.Status)
	}
	if entry.OutputPath != "/a.jpg" {
		t.Errorf("Expected output path '/a.jpg', got %s", entry.OutputPath)
	}
	if entry.LastError != "" {
		t.Errorf("Expected previous error to be cleared, got %s", entry.LastError)
	}

	entry.SetStatus(EntryStatusSkipped)
	if entry.OutputPath != "" {
		t.Errorf("Expected output path to be cleared, got %s", entry.OutputPath)
	}
}

func TestFileEntry_Clone(t *testing.T) {
	entry := NewFileEntry("/a.png")
	clone := entry.Clone()
	clone.Status = EntryStatusConverted

	if entry.Status != EntryStatusPending {
		t.Error("Expected clone mutation not to affect the original")
	}
}
