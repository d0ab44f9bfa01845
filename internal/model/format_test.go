package model

import "testing"

func TestParseTargetFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected TargetFormat
		wantErr  bool
	}{
		{"webp", FormatWebP, false},
		{"JPG", FormatJPG, false},
		{".png", FormatPNG, false},
		{" tiff ", FormatTIFF, false},
		{"pdf", FormatPDF, false},
		{"jpeg", "", true},
		{"svg", "", true},
		{"", "", true},
	}

	for _, test := range tests {
		result, err := ParseTargetFormat(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseTargetFormat(%q) error = %v, wantErr %v", test.input, err, test.wantErr)
			continue
		}
		if result != test.expected {
			t.Errorf("ParseTargetFormat(%q) = %s, expected %s", test.input, result, test.expected)
		}
	}
}

func TestSupportedTargetFormats(t *testing.T) {
	formats := SupportedTargetFormats()
	if len(formats) == 0 {
		t.Fatal("Expected at least one supported format")
	}
	if formats[0] != DefaultTargetFormat {
		t.Errorf("Expected default format first, got %s", formats[0])
	}

	// Returned slice must be a copy
	formats[0] = "mutated"
	if SupportedTargetFormats()[0] != DefaultTargetFormat {
		t.Error("Expected SupportedTargetFormats to return a copy")
	}

	for _, f := range formats[1:] {
		if _, err := ParseTargetFormat(string(f)); err != nil {
			t.Errorf("Supported format %s does not parse: %v", f, err)
		}
	}
}

func TestTargetFormat_Matches(t *testing.T) {
	tests := []struct {
		format   TargetFormat
		ext      string
		expected bool
	}{
		{FormatJPG, "jpg", true},
		{FormatJPG, "JPG", true},
		{FormatJPG, ".jpg", true},
		{FormatJPG, "jpeg", false},
		{FormatPNG, "webp", false},
		{FormatWebP, "", false},
	}

	for _, test := range tests {
		if got := test.format.Matches(test.ext); got != test.expected {
			t.Errorf("%s.Matches(%q) = %v, expected %v", test.format, test.ext, got, test.expected)
		}
	}
}

func TestIsRecognizedSource(t *testing.T) {
	for _, ext := range []string{"webp", ".JPG", "jpeg", "png", "svg"} {
		if !IsRecognizedSource(ext) {
			t.Errorf("Expected %q to be recognized", ext)
		}
	}
	for _, ext := range []string{"txt", "", "gifv"} {
		if IsRecognizedSource(ext) {
			t.Errorf("Expected %q not to be recognized", ext)
		}
	}
}
