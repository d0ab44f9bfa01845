package ui

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/image-converter/internal/session"
)

// ConflictPrompt asks the user what to do when an output file already exists.
// It is called from the converting goroutine and blocks it until answered.
type ConflictPrompt struct {
	window       fyne.Window
	localization *Localization
}

// NewConflictPrompt creates a prompt attached to window
func NewConflictPrompt(window fyne.Window, localization *Localization) *ConflictPrompt {
	return &ConflictPrompt{
		window:       window,
		localization: localization,
	}
}

// ResolveConflict shows the three-way dialog and waits for the answer.
// Closing the dialog or cancelling ctx stops the conversion.
func (cp *ConflictPrompt) ResolveConflict(ctx context.Context, conflict session.Conflict) session.Decision {
	answers := make(chan session.Decision, 1)
	answer := func(decision session.Decision) {
		select {
		case answers <- decision:
		default:
		}
	}

	var d dialog.Dialog
	fyne.Do(func() {
		d = cp.build(conflict, answer, func() {
			if d != nil {
				d.Hide()
			}
		})
		d.Show()
	})

	select {
	case decision := <-answers:
		log.Printf("Conflict for %s answered: %s", conflict.ExistingPath, decision)
		return decision
	case <-ctx.Done():
		fyne.Do(func() {
			if d != nil {
				d.Hide()
			}
		})
		return session.DecisionCancel
	}
}

// build creates the dialog; answer receives the first choice made
func (cp *ConflictPrompt) build(conflict session.Conflict, answer func(session.Decision), hide func()) dialog.Dialog {
	message := widget.NewLabel(fmt.Sprintf(cp.localization.GetText(KeyConflictMessage), filepath.Base(conflict.ExistingPath)))
	message.Wrapping = fyne.TextWrapWord

	choose := func(decision session.Decision) func() {
		return func() {
			answer(decision)
			hide()
		}
	}

	saveAs := widget.NewButton(
		fmt.Sprintf(cp.localization.GetText(KeySaveAs), filepath.Base(conflict.AlternatePath)),
		choose(session.DecisionProceed),
	)
	saveAs.Importance = widget.HighImportance
	skip := widget.NewButton(cp.localization.GetText(KeySkipFile), choose(session.DecisionSkip))
	stop := widget.NewButton(cp.localization.GetText(KeyStopConverting), choose(session.DecisionCancel))
	stop.Importance = widget.DangerImportance

	content := container.NewVBox(
		message,
		container.NewGridWithColumns(3, saveAs, skip, stop),
	)

	d := dialog.NewCustomWithoutButtons(cp.localization.GetText(KeyConflictTitle), content, cp.window)
	// Answers are first-wins, so this is a no-op after a button press.
	d.SetOnClosed(func() { answer(session.DecisionCancel) })
	return d
}
