package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ytget/image-converter/internal/model"
	"github.com/ytget/image-converter/internal/session"
)

// Message types sent from the converting goroutine
type (
	// EntryMsg carries a finished entry.
	EntryMsg struct {
		Index int
		Entry *model.FileEntry
	}

	// ProgressMsg carries the fraction of processed entries.
	ProgressMsg struct {
		Fraction float64
	}

	// StatusMsg carries an aggregate status message.
	StatusMsg struct {
		Message string
	}

	// ConflictMsg asks the user to resolve an existing output file.
	// Exactly one decision must be sent on Reply.
	ConflictMsg struct {
		Conflict session.Conflict
		Reply    chan<- session.Decision
	}

	// DoneMsg is sent when Convert returns.
	DoneMsg struct {
		Result session.Result
		Err    error
	}

	// interruptMsg is sent when the run context is canceled from outside.
	interruptMsg struct{}
)

// bridge forwards session callbacks into the Bubble Tea event loop
type bridge struct {
	send func(tea.Msg)
}

// EntryUpdated implements session.Observer
func (b *bridge) EntryUpdated(index int, entry *model.FileEntry) {
	b.send(EntryMsg{Index: index, Entry: entry})
}

// ProgressChanged implements session.Observer
func (b *bridge) ProgressChanged(fraction float64) {
	b.send(ProgressMsg{Fraction: fraction})
}

// StatusMessage implements session.Observer
func (b *bridge) StatusMessage(message string) {
	b.send(StatusMsg{Message: message})
}

// ResolveConflict implements session.ConflictResolver by waiting for the prompt answer
func (b *bridge) ResolveConflict(ctx context.Context, conflict session.Conflict) session.Decision {
	reply := make(chan session.Decision, 1)
	b.send(ConflictMsg{Conflict: conflict, Reply: reply})

	select {
	case decision := <-reply:
		return decision
	case <-ctx.Done():
		return session.DecisionCancel
	}
}
