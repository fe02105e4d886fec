package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/endotarter/internal/core/ports"
)

// Driver runs the interactive view as a ports.Driver.
type Driver struct {
	opts []tea.ProgramOption
}

// NewDriver creates a new TUI driver. opts are passed on to the bubbletea program.
func NewDriver(opts ...tea.ProgramOption) *Driver {
	return &Driver{opts: opts}
}

// Run shows the view until the operator quits, the queue is exhausted or an
// endorsement fails.
func (d *Driver) Run(ctx context.Context, endorser ports.Endorser) error {
	model := NewModel(ctx, endorser)

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, d.opts...)
	final, err := tea.NewProgram(model, opts...).Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if err != nil {
		return err
	}

	if m, ok := final.(*Model); ok {
		return m.Err
	}
	return nil
}
