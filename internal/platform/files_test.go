package platform

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFileExists(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "a.png")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	tests := []struct {
		path     string
		expected bool
	}{
		{file, true},
		{tempDir, true},
		{filepath.Join(tempDir, "missing.png"), false},
		{"", false},
	}

	for _, test := range tests {
		if got := FileExists(test.path); got != test.expected {
			t.Errorf("FileExists(%q) = %v, expected %v", test.path, got, test.expected)
		}
	}
}

func TestIsImageFile(t *testing.T) {
	tests := map[string]bool{
		"photo.png":     true,
		"photo.JPG":     true,
		"photo.jpeg":    true,
		"icon.svg":      true,
		"banner.WebP":   true,
		"notes.txt":     false,
		"archive.tiff":  false,
		"no_extension":  false,
		"/dir.png/file": false,
	}

	for path, expected := range tests {
		if got := IsImageFile(path); got != expected {
			t.Errorf("IsImageFile(%q) = %v, expected %v", path, got, expected)
		}
	}
}

func TestScanImages(t *testing.T) {
	tempDir := t.TempDir()
	for _, name := range []string{"b.png", "a.JPG", "c.txt", "._a.JPG", ".hidden.png", "d.svg"} {
		if err := os.WriteFile(filepath.Join(tempDir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(tempDir, "sub.png"), 0755); err != nil {
		t.Fatalf("Failed to create subdirectory: %v", err)
	}

	images, err := ScanImages(tempDir, false)
	if err != nil {
		t.Fatalf("ScanImages failed: %v", err)
	}
	expected := []string{
		filepath.Join(tempDir, "a.JPG"),
		filepath.Join(tempDir, "b.png"),
		filepath.Join(tempDir, "d.svg"),
	}
	if !reflect.DeepEqual(images, expected) {
		t.Errorf("Expected %v, got %v", expected, images)
	}

	all, err := ScanImages(tempDir, true)
	if err != nil {
		t.Fatalf("ScanImages failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("Expected 4 files with includeAll, got %v", all)
	}
}

func TestScanImages_MissingDir(t *testing.T) {
	if _, err := ScanImages(filepath.Join(t.TempDir(), "missing"), false); err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestGetHomePicturesDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	dir, err := GetHomePicturesDir()
	if err != nil {
		t.Fatalf("Failed to get pictures directory: %v", err)
	}
	if dir != home {
		t.Errorf("Expected fallback to home %s, got %s", home, dir)
	}

	pictures := filepath.Join(home, PicturesDirName)
	if err := os.Mkdir(pictures, 0755); err != nil {
		t.Fatalf("Failed to create pictures dir: %v", err)
	}
	dir, err = GetHomePicturesDir()
	if err != nil {
		t.Fatalf("Failed to get pictures directory: %v", err)
	}
	if dir != pictures {
		t.Errorf("Expected %s, got %s", pictures, dir)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	nonExistentFile := filepath.Join(t.TempDir(), "nonexistent.png")

	if err := OpenFileInManager(nonExistentFile); err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestOpenFileWithDefaultApp_NonExistentFile(t *testing.T) {
	nonExistentFile := filepath.Join(t.TempDir(), "nonexistent.png")

	if err := OpenFileWithDefaultApp(nonExistentFile); err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestExpandPaths(t *testing.T) {
	tempDir := t.TempDir()
	sub := filepath.Join(tempDir, "album")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	file := filepath.Join(tempDir, "notes.txt")
	for _, path := range []string{file, filepath.Join(sub, "b.png"), filepath.Join(sub, "a.svg"), filepath.Join(sub, "c.doc")} {
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to create %s: %v", path, err)
		}
	}

	got := ExpandPaths([]string{file, sub, filepath.Join(tempDir, "missing.png")}, false)
	expected := []string{file, filepath.Join(sub, "a.svg"), filepath.Join(sub, "b.png")}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}

	if got := ExpandPaths([]string{sub}, true); len(got) != 3 {
		t.Errorf("Expected 3 files with includeAll, got %v", got)
	}
	if got := ExpandPaths(nil, false); len(got) != 0 {
		t.Errorf("Expected no paths, got %v", got)
	}
}
