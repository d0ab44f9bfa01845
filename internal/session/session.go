package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/ytget/image-converter/internal/model"
	"github.com/ytget/image-converter/internal/platform"
)

// Aggregate status messages shown by presentations
const (
	MessageConverting = "Converting, please wait..."
	MessageCompleted  = "Conversion completed"
	MessageCanceled   = "Conversion canceled"
)

// ErrRunning is returned when the list is modified or a second run is
// started while Convert is active.
var ErrRunning = errors.New("conversion in progress")

// ErrNoEntry is returned by RemoveAt for an index outside the list
var ErrNoEntry = errors.New("no such entry")

// Outcome is the aggregate result of a Convert run
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeCanceled  Outcome = "canceled"
)

// Result summarizes a Convert run. Per-entry detail stays on the entries.
type Result struct {
	Outcome       Outcome
	Total         int
	Converted     int
	AlreadyTarget int
	Skipped       int
	Canceled      int
	Errors        int
}

// Session holds the selected files and drives their conversion
type Session struct {
	mu              sync.Mutex
	entries         []*model.FileEntry
	target          model.TargetFormat
	cancelRequested bool
	progress        float64
	running         bool

	codec    Codec
	resolver ConflictResolver
	observer Observer
	exists   func(string) bool
}

// NewSession creates an empty session converting through codec
func NewSession(codec Codec) *Session {
	return &Session{
		target: model.DefaultTargetFormat,
		codec:  codec,
		exists: platform.FileExists,
	}
}

// SetConflictResolver sets who answers output-path collisions.
// Without a resolver collisions proceed with the alternate path.
func (s *Session) SetConflictResolver(resolver ConflictResolver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resolver = resolver
}

// SetObserver sets the receiver of run updates
func (s *Session) SetObserver(observer Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observer = observer
}

// SelectFiles replaces the whole list with pending entries for paths, in order.
// An empty selection leaves the list unchanged.
func (s *Session) SelectFiles(paths []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrRunning
	}
	if len(paths) == 0 {
		log.Printf("Empty selection, keeping %d file(s)", len(s.entries))
		return nil
	}

	entries := make([]*model.FileEntry, 0, len(paths))
	for _, path := range paths {
		entries = append(entries, model.NewFileEntry(path))
	}
	s.entries = entries

	log.Printf("Selected %d file(s)", len(entries))
	return nil
}

// AddFiles appends pending entries for paths after the current ones
func (s *Session) AddFiles(paths []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrRunning
	}
	for _, path := range paths {
		s.entries = append(s.entries, model.NewFileEntry(path))
	}

	log.Printf("Added %d file(s), %d total", len(paths), len(s.entries))
	return nil
}

// RemoveFile removes the first entry whose path equals path.
// Removing an absent path is a no-op.
func (s *Session) RemoveFile(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrRunning
	}

	for i, entry := range s.entries {
		if entry.Path == path {
			s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

// RemoveAt removes the entry at index. Rows sharing a path stay distinct.
func (s *Session) RemoveAt(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrRunning
	}
	if index < 0 || index >= len(s.entries) {
		return fmt.Errorf("%w: %d", ErrNoEntry, index)
	}
	s.entries = append(s.entries[:index:index], s.entries[index+1:]...)
	return nil
}

// ClearAll empties the list and resets the cancel flag and progress
func (s *Session) ClearAll() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrRunning
	}
	s.entries = nil
	s.cancelRequested = false
	s.progress = 0
	s.mu.Unlock()

	s.notifyProgress(0)
	s.notifyStatus("")
	return nil
}

// RequestCancel asks the running conversion to stop. The flag is checked
// before each entry and stays set for the rest of the run.
func (s *Session) RequestCancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelRequested = true
}

// CancelRequested reports whether cancellation is pending or happened in the last run
func (s *Session) CancelRequested() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelRequested
}

// Entries returns copies of the entries in selection order
func (s *Session) Entries() []*model.FileEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.FileEntry, len(s.entries))
	for i, entry := range s.entries {
		out[i] = entry.Clone()
	}
	return out
}

// Len returns the number of selected entries
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Progress returns the fraction of entries processed in the current run
func (s *Session) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress
}

// Target returns the format of the latest run, or the default
func (s *Session) Target() model.TargetFormat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target
}

// IsRunning reports whether Convert is active
func (s *Session) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// CanConvert reports whether a run can be started
func (s *Session) CanConvert() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries) > 0 && !s.running
}

// Convert processes every entry in order and records its status.
// Per-entry failures never abort the run; the returned error is only for
// an invalid target or a run already in progress. Cancelling ctx has the
// same effect as RequestCancel.
func (s *Session) Convert(ctx context.Context, target model.TargetFormat) (Result, error) {
	if _, err := model.ParseTargetFormat(string(target)); err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return Result{}, ErrRunning
	}
	if len(s.entries) == 0 {
		s.mu.Unlock()
		return Result{Outcome: OutcomeCompleted}, nil
	}
	s.running = true
	s.cancelRequested = false
	s.progress = 0
	s.target = target
	// The slice is frozen while running: list mutations return ErrRunning.
	entries := s.entries
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	log.Printf("Converting %d file(s) to %s", len(entries), target)
	s.notifyStatus(MessageConverting)
	s.notifyProgress(0)

	result := Result{Total: len(entries)}
	for i, entry := range entries {
		if ctx.Err() != nil {
			s.RequestCancel()
		}

		if s.CancelRequested() {
			s.update(i, entry, func(e *model.FileEntry) { e.SetStatus(model.EntryStatusCanceled) })
			result.Canceled++
			continue
		}

		status := s.convertEntry(ctx, i, entry, target)
		switch status {
		case model.EntryStatusAlreadyTarget:
			result.AlreadyTarget++
		case model.EntryStatusConverted:
			result.Converted++
		case model.EntryStatusSkipped:
			result.Skipped++
		case model.EntryStatusError:
			result.Errors++
		case model.EntryStatusCanceled:
			// Canceled at the prompt: progress reporting stops here.
			result.Canceled++
			continue
		}

		s.setProgress(float64(i+1) / float64(len(entries)))
	}

	if s.CancelRequested() {
		result.Outcome = OutcomeCanceled
		s.notifyStatus(MessageCanceled)
	} else {
		result.Outcome = OutcomeCompleted
		s.notifyStatus(MessageCompleted)
	}

	log.Printf("Conversion %s: converted=%d already=%d skipped=%d canceled=%d errors=%d",
		result.Outcome, result.Converted, result.AlreadyTarget, result.Skipped, result.Canceled, result.Errors)
	return result, nil
}

// convertEntry applies the per-entry rules and returns the recorded status
func (s *Session) convertEntry(ctx context.Context, index int, entry *model.FileEntry, target model.TargetFormat) model.EntryStatus {
	if target.Matches(entry.Extension) {
		s.update(index, entry, func(e *model.FileEntry) { e.SetStatus(model.EntryStatusAlreadyTarget) })
		return model.EntryStatusAlreadyTarget
	}

	outputPath := OutputPath(entry.Path, target)
	if s.exists(outputPath) {
		alternate := AlternatePath(outputPath, s.exists)
		decision := s.resolve(ctx, Conflict{
			Index:         index,
			Entry:         s.snapshot(entry),
			ExistingPath:  outputPath,
			AlternatePath: alternate,
		})
		log.Printf("Output %s exists, decision: %s", outputPath, decision)

		switch decision {
		case DecisionProceed:
			outputPath = alternate
		case DecisionCancel:
			s.RequestCancel()
			s.update(index, entry, func(e *model.FileEntry) { e.SetStatus(model.EntryStatusCanceled) })
			return model.EntryStatusCanceled
		default:
			s.update(index, entry, func(e *model.FileEntry) { e.SetStatus(model.EntryStatusSkipped) })
			return model.EntryStatusSkipped
		}
	}

	log.Printf("Converting entry %s: %s -> %s", entry.ID, entry.Path, outputPath)
	if err := s.transcode(entry.Path, outputPath, target); err != nil {
		log.Printf("Conversion failed for %s: %v", entry.Path, err)
		s.update(index, entry, func(e *model.FileEntry) { e.MarkError(err) })
		return model.EntryStatusError
	}

	s.update(index, entry, func(e *model.FileEntry) { e.MarkConverted(outputPath) })
	return model.EntryStatusConverted
}

// transcode runs the codec and turns a codec panic into an entry error
func (s *Session) transcode(sourcePath, outputPath string, target model.TargetFormat) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("codec panic: %v", r)
		}
	}()

	img, err := s.codec.Decode(sourcePath)
	if err != nil {
		return err
	}
	return s.codec.Encode(img, outputPath, target)
}

// resolve asks the resolver, defaulting to proceed when none is set
func (s *Session) resolve(ctx context.Context, conflict Conflict) Decision {
	s.mu.Lock()
	resolver := s.resolver
	s.mu.Unlock()

	if resolver == nil {
		return DecisionProceed
	}
	return resolver.ResolveConflict(ctx, conflict)
}

// update mutates entry under the lock and notifies the observer with a copy
func (s *Session) update(index int, entry *model.FileEntry, mutate func(*model.FileEntry)) {
	s.mu.Lock()
	mutate(entry)
	snapshot := entry.Clone()
	observer := s.observer
	s.mu.Unlock()

	if observer != nil {
		observer.EntryUpdated(index, snapshot)
	}
}

func (s *Session) snapshot(entry *model.FileEntry) *model.FileEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return entry.Clone()
}

func (s *Session) setProgress(fraction float64) {
	s.mu.Lock()
	s.progress = fraction
	s.mu.Unlock()

	s.notifyProgress(fraction)
}

func (s *Session) notifyProgress(fraction float64) {
	s.mu.Lock()
	observer := s.observer
	s.mu.Unlock()

	if observer != nil {
		observer.ProgressChanged(fraction)
	}
}

func (s *Session) notifyStatus(message string) {
	s.mu.Lock()
	observer := s.observer
	s.mu.Unlock()

	if observer != nil {
		observer.StatusMessage(message)
	}
}
