// Package tui provides a Bubble Tea terminal user interface for the converter.
package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/image-converter/internal/model"
	"github.com/ytget/image-converter/internal/session"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	promptStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FFE66D")).
			Padding(0, 1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// ErrInterrupted is returned by Run when the user quits before the run ends
var ErrInterrupted = errors.New("interrupted")

// interruptPoll is how often Run checks that an interrupted run has stopped
const interruptPoll = 20 * time.Millisecond

// MaxVisibleEntries limits the entry list to the rows around the current one
const MaxVisibleEntries = 12

// State represents the current UI state.
type State int

const (
	StateRunning State = iota
	StatePrompt
	StateDone
)

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	session  *session.Session
	target   model.TargetFormat
	entries  []*model.FileEntry
	current  int
	spinner  spinner.Model
	progress progress.Model
	fraction float64
	status   string
	conflict *ConflictMsg
	result   session.Result
	err      error

	ctx    context.Context
	cancel context.CancelFunc

	width int
}

// NewModel creates a model that converts the session's entries to target
func NewModel(conv *session.Session, target model.TargetFormat) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:    StateRunning,
		session:  conv,
		target:   target,
		entries:  conv.Entries(),
		spinner:  sp,
		progress: prog,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Init starts the spinner and the conversion.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startConvert())
}

// Result returns the outcome of the finished run
func (m Model) Result() (session.Result, error) {
	return m.result, m.err
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(max(msg.Width-20, 20), 80)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case interruptMsg:
		return m.interrupt()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case EntryMsg:
		if msg.Index >= 0 && msg.Index < len(m.entries) {
			m.entries[msg.Index] = msg.Entry
			m.current = msg.Index
		}

	case ProgressMsg:
		m.fraction = msg.Fraction
		cmds = append(cmds, m.progress.SetPercent(msg.Fraction))

	case StatusMsg:
		m.status = msg.Message

	case ConflictMsg:
		conflict := msg
		m.conflict = &conflict
		m.state = StatePrompt
		m.current = msg.Conflict.Index

	case DoneMsg:
		m.state = StateDone
		m.result = msg.Result
		m.err = msg.Err
		m.entries = m.session.Entries()

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.interrupt()
	}

	switch m.state {
	case StatePrompt:
		switch msg.String() {
		case "y":
			m.answer(session.DecisionProceed)
		case "n":
			m.answer(session.DecisionSkip)
		case "c", "esc":
			m.answer(session.DecisionCancel)
		}

	case StateRunning:
		if msg.String() == "esc" {
			m.session.RequestCancel()
		}

	case StateDone:
		switch msg.String() {
		case "q", "esc", "enter":
			return m, tea.Quit
		}
	}

	return m, nil
}

// interrupt stops the run and quits without waiting for the summary
func (m Model) interrupt() (tea.Model, tea.Cmd) {
	m.cancel()
	m.answer(session.DecisionCancel)
	return m, tea.Quit
}

// answer replies to the pending conflict, if any
func (m *Model) answer(decision session.Decision) {
	if m.conflict == nil {
		return
	}
	m.conflict.Reply <- decision
	m.conflict = nil
	if m.state == StatePrompt {
		m.state = StateRunning
	}
}

// startConvert runs the session on the command goroutine
func (m Model) startConvert() tea.Cmd {
	conv, target, ctx, cancel := m.session, m.target, m.ctx, m.cancel
	return func() tea.Msg {
		defer cancel()
		result, err := conv.Convert(ctx, target)
		return DoneMsg{Result: result, Err: err}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Image Converter"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d/%d file(s) → %s", m.finishedCount(), len(m.entries), m.target)))
	b.WriteString("\n\n")

	b.WriteString(m.renderEntries())
	b.WriteString("\n")

	switch m.state {
	case StateRunning:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render(m.status))
		b.WriteString("\n")
		b.WriteString(m.progress.ViewAs(m.fraction))
		b.WriteString("\n")
	case StatePrompt:
		b.WriteString(m.viewPrompt())
	case StateDone:
		b.WriteString(m.viewDone())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

// finishedCount counts entries with an outcome in this run
func (m Model) finishedCount() int {
	count := 0
	for _, entry := range m.entries {
		if entry.Status.IsFinished() {
			count++
		}
	}
	return count
}

func (m Model) renderEntries() string {
	if len(m.entries) == 0 {
		return dimStyle.Render("No files to convert") + "\n"
	}

	start, end := visibleRange(len(m.entries), m.current, MaxVisibleEntries)

	var b strings.Builder
	if start > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more", start)))
		b.WriteString("\n")
	}
	for _, entry := range m.entries[start:end] {
		b.WriteString(renderEntry(entry))
		b.WriteString("\n")
	}
	if end < len(m.entries) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more", len(m.entries)-end)))
		b.WriteString("\n")
	}
	return b.String()
}

// visibleRange returns a window of at most size rows that contains current
func visibleRange(total, current, size int) (int, int) {
	if total <= size {
		return 0, total
	}
	start := current - size/2
	start = max(0, min(start, total-size))
	return start, start + size
}

func renderEntry(entry *model.FileEntry) string {
	line := fmt.Sprintf("%s %s", statusSymbol(entry.Status), entry.DisplayName)
	if text := entry.Status.DisplayText(); text != "" {
		line += "  " + text
	}
	if entry.Status == model.EntryStatusError && entry.LastError != "" {
		line += ": " + entry.LastError
	}
	if entry.Status == model.EntryStatusConverted && entry.OutputPath != "" {
		line += " → " + filepath.Base(entry.OutputPath)
	}
	return statusStyle(entry.Status).Render(line)
}

func statusSymbol(status model.EntryStatus) string {
	switch status {
	case model.EntryStatusConverted:
		return "✓"
	case model.EntryStatusError:
		return "✗"
	case model.EntryStatusSkipped:
		return "»"
	case model.EntryStatusCanceled:
		return "-"
	case model.EntryStatusAlreadyTarget:
		return "="
	default:
		return "•"
	}
}

func statusStyle(status model.EntryStatus) lipgloss.Style {
	switch status {
	case model.EntryStatusConverted:
		return successStyle
	case model.EntryStatusError:
		return errorStyle
	case model.EntryStatusSkipped, model.EntryStatusCanceled:
		return warningStyle
	default:
		return dimStyle
	}
}

func (m Model) viewPrompt() string {
	if m.conflict == nil {
		return ""
	}
	c := m.conflict.Conflict
	return promptStyle.Render(fmt.Sprintf(
		"%s already exists.\n\n"+
			"y: save as %s\n"+
			"n: skip this file\n"+
			"c: stop converting",
		filepath.Base(c.ExistingPath),
		filepath.Base(c.AlternatePath),
	)) + "\n"
}

func (m Model) viewDone() string {
	if m.err != nil {
		return errorStyle.Render("Error: "+m.err.Error()) + "\n"
	}
	return boxStyle.Render(summaryText(m.result)) + "\n"
}

// summaryText renders the run counters
func summaryText(result session.Result) string {
	heading := session.MessageCompleted
	if result.Outcome == session.OutcomeCanceled {
		heading = session.MessageCanceled
	}
	return fmt.Sprintf(
		"%s\n\n"+
			"Converted: %d\n"+
			"Already in format: %d\n"+
			"Skipped: %d\n"+
			"Canceled: %d\n"+
			"Errors: %d",
		heading,
		result.Converted,
		result.AlreadyTarget,
		result.Skipped,
		result.Canceled,
		result.Errors,
	)
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateRunning:
		return "esc: cancel • ctrl+c: quit"
	case StatePrompt:
		return "y: save as • n: skip • c/esc: stop"
	case StateDone:
		return "q: quit"
	}
	return ""
}

// Run converts every entry of conv to target in a full-screen terminal UI.
// Canceling ctx quits the same way ctrl+c does. When the user quits before
// the run ends, Run waits for the session to stop and returns ErrInterrupted.
func Run(ctx context.Context, conv *session.Session, target model.TargetFormat) (session.Result, error) {
	m := NewModel(conv, target)
	m.cancel()
	m.ctx, m.cancel = context.WithCancel(ctx)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithoutSignalHandler())

	b := &bridge{send: p.Send}
	conv.SetObserver(b)
	conv.SetConflictResolver(b)

	exited := make(chan struct{})
	defer close(exited)
	go func() {
		select {
		case <-ctx.Done():
			p.Send(interruptMsg{})
		case <-exited:
		}
	}()

	final, err := p.Run()
	if err != nil {
		return session.Result{}, err
	}

	finished := final.(Model)
	if finished.state != StateDone {
		for conv.IsRunning() {
			time.Sleep(interruptPoll)
		}
		return session.Result{Outcome: session.OutcomeCanceled, Total: conv.Len()}, ErrInterrupted
	}
	return finished.Result()
}
