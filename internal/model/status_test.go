package model

import "testing"

func TestEntryStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   EntryStatus
		expected bool
	}{
		{EntryStatusPending, false},
		{EntryStatusAlreadyTarget, true},
		{EntryStatusConverted, true},
		{EntryStatusSkipped, true},
		{EntryStatusCanceled, true},
		{EntryStatusError, true},
		{EntryStatus("bogus"), false},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("EntryStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestEntryStatus_IsFailure(t *testing.T) {
	if !EntryStatusError.IsFailure() {
		t.Error("Expected Error to be a failure")
	}
	for _, status := range []EntryStatus{EntryStatusConverted, EntryStatusSkipped, EntryStatusCanceled} {
		if status.IsFailure() {
			t.Errorf("Expected %s not to be a failure", status)
		}
	}
}

func TestEntryStatus_DisplayText(t *testing.T) {
	tests := []struct {
		status   EntryStatus
		expected string
	}{
		{EntryStatusPending, ""},
		{EntryStatusAlreadyTarget, "Already in selected format"},
		{EntryStatusConverted, "Converted"},
		{EntryStatusSkipped, "Skipped"},
		{EntryStatusCanceled, "Canceled"},
		{EntryStatusError, "Error"},
	}

	for _, test := range tests {
		if got := test.status.DisplayText(); got != test.expected {
			t.Errorf("EntryStatus(%s).DisplayText() = %q, expected %q", test.status, got, test.expected)
		}
	}
}

func TestEntryStatus_String(t *testing.T) {
	status := EntryStatusConverted
	expected := "Converted"
	result := status.String()

	if result != expected {
		t.Errorf("EntryStatus.String() = %s, expected %s", result, expected)
	}
}
