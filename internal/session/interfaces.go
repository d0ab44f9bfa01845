package session

import (
	"context"
	"image"

	"github.com/ytget/image-converter/internal/model"
)

// Codec decodes source images and encodes them to a target format.
type Codec interface {
	Decode(path string) (image.Image, error)
	Encode(img image.Image, path string, format model.TargetFormat) error
}

// Decision is the user's answer to an output-path collision.
type Decision int

const (
	// DecisionProceed writes to the synthesized alternate path
	DecisionProceed Decision = iota
	// DecisionSkip leaves the entry unconverted
	DecisionSkip
	// DecisionCancel stops converting the remaining entries
	DecisionCancel
)

// String returns a short name for logs
func (d Decision) String() string {
	switch d {
	case DecisionProceed:
		return "proceed"
	case DecisionSkip:
		return "skip"
	case DecisionCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Conflict describes an occupied output path awaiting a decision.
type Conflict struct {
	Index         int
	Entry         *model.FileEntry
	ExistingPath  string
	AlternatePath string
}

// ConflictResolver is asked once per colliding output path. It blocks the
// conversion loop until the user decides.
type ConflictResolver interface {
	ResolveConflict(ctx context.Context, conflict Conflict) Decision
}

// ConflictResolverFunc adapts a function to ConflictResolver.
type ConflictResolverFunc func(ctx context.Context, conflict Conflict) Decision

// ResolveConflict calls f(ctx, conflict)
func (f ConflictResolverFunc) ResolveConflict(ctx context.Context, conflict Conflict) Decision {
	return f(ctx, conflict)
}

// Observer receives run updates. Calls are made synchronously from the
// goroutine running Convert, after each processed entry.
type Observer interface {
	EntryUpdated(index int, entry *model.FileEntry)
	ProgressChanged(fraction float64)
	StatusMessage(message string)
}
