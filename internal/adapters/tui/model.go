// Package tui provides the interactive endorsement view.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/endotarter/internal/core/domain"
	"go.trai.ch/endotarter/internal/core/ports"
)

// historySize is how many recent attempts the view keeps on screen.
const historySize = 10

// attemptMsg carries the result of one EndorseNext call back into the model.
type attemptMsg struct {
	attempt domain.Attempt
	err     error
}

// Model represents the interactive endorsement state.
type Model struct {
	ctx      context.Context
	endorser ports.Endorser

	History   []domain.Attempt
	Remaining []domain.Identifier
	Endorsing bool
	ShowList  bool
	Done      bool
	Err       error
	Width     int
}

// NewModel creates a model stepping through endorser.
func NewModel(ctx context.Context, endorser ports.Endorser) *Model {
	remaining := endorser.Remaining()
	return &Model{
		ctx:       ctx,
		endorser:  endorser,
		Remaining: remaining,
		Done:      len(remaining) == 0,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "l":
			m.ShowList = !m.ShowList
		case "enter", " ":
			if m.Endorsing || m.Done {
				return m, nil
			}
			m.Endorsing = true
			return m, m.endorseNext()
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width

	case attemptMsg:
		return m.handleAttempt(msg)
	}

	return m, nil
}

func (m *Model) endorseNext() tea.Cmd {
	ctx, endorser := m.ctx, m.endorser
	return func() tea.Msg {
		attempt, err := endorser.EndorseNext(ctx)
		return attemptMsg{attempt: attempt, err: err}
	}
}

func (m *Model) handleAttempt(msg attemptMsg) (tea.Model, tea.Cmd) {
	m.Endorsing = false
	m.Remaining = m.endorser.Remaining()

	if msg.attempt.Outcome != domain.OutcomeExhausted {
		m.History = append(m.History, msg.attempt)
		if len(m.History) > historySize {
			m.History = m.History[len(m.History)-historySize:]
		}
	}

	if msg.err != nil {
		m.Err = msg.err
		return m, tea.Quit
	}

	if msg.attempt.Outcome == domain.OutcomeExhausted || len(m.Remaining) == 0 {
		m.Done = true
		return m, tea.Quit
	}

	return m, nil
}
