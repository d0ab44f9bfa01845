package model

// EntryStatus represents the conversion outcome of a single file entry
type EntryStatus string

const (
	// EntryStatusPending means the entry has not been processed in the current run
	EntryStatusPending EntryStatus = "Pending"

	// EntryStatusAlreadyTarget means the source already has the target extension
	EntryStatusAlreadyTarget EntryStatus = "AlreadyTargetFormat"

	// EntryStatusConverted means a new file was written in the target format
	EntryStatusConverted EntryStatus = "Converted"

	// EntryStatusSkipped means the user chose to skip a colliding output path
	EntryStatusSkipped EntryStatus = "Skipped"

	// EntryStatusCanceled means the run was canceled before this entry was converted
	EntryStatusCanceled EntryStatus = "Canceled"

	// EntryStatusError means decoding or encoding failed
	EntryStatusError EntryStatus = "Error"
)

// String returns the string representation of EntryStatus
func (s EntryStatus) String() string {
	return string(s)
}

// IsFinished returns true once the entry reached a terminal state for the run
func (s EntryStatus) IsFinished() bool {
	switch s {
	case EntryStatusAlreadyTarget, EntryStatusConverted, EntryStatusSkipped,
		EntryStatusCanceled, EntryStatusError:
		return true
	}
	return false
}

// IsFailure returns true for outcomes that did not produce a usable file
func (s EntryStatus) IsFailure() bool {
	return s == EntryStatusError
}

// DisplayText returns the label shown in the status column.
// Pending entries render blank, as they do right after selection.
func (s EntryStatus) DisplayText() string {
	switch s {
	case EntryStatusPending:
		return ""
	case EntryStatusAlreadyTarget:
		return "Already in selected format"
	default:
		return string(s)
	}
}
