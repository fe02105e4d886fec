// Package linear provides a line-based endorsement driver for non-interactive terminals.
package linear

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/endotarter/internal/core/domain"
	"go.trai.ch/endotarter/internal/core/ports"
	"go.trai.ch/endotarter/internal/ui/output"
	"go.trai.ch/endotarter/internal/ui/style"
)

// Driver implements ports.Driver. Each line read from in endorses the next target;
// "l" lists the remaining targets and "q" quits.
type Driver struct {
	in     io.Reader
	out    *termenv.Output
	writer io.Writer
}

// NewDriver creates a Driver. Nil arguments default to os.Stdin and os.Stdout.
func NewDriver(in io.Reader, out io.Writer) *Driver {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Driver{
		in:     in,
		out:    output.NewWithProfile(out, colorProfile),
		writer: out,
	}
}

// colorProfile uses plain ANSI outside NO_COLOR; line mode commonly ends up in logs.
func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// Run reads commands until the operator quits, input ends, the queue is exhausted
// or ctx is cancelled.
func (d *Driver) Run(ctx context.Context, endorser ports.Endorser) error {
	// Stops the reader goroutine once Run returns.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(d.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	d.printf(style.Muted, "%d nations to endorse. Enter: endorse next, l: list, q: quit\n", len(endorser.Remaining()))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return nil
			}

			switch strings.ToLower(strings.TrimSpace(line)) {
			case "q", "quit":
				return nil
			case "l", "list":
				WriteRemaining(d.writer, endorser.Remaining())
				continue
			}

			attempt, err := endorser.EndorseNext(ctx)
			d.render(attempt)
			if err != nil {
				return err
			}
			if attempt.Outcome == domain.OutcomeExhausted {
				return nil
			}
			if attempt.Remaining == 0 {
				d.render(domain.Attempt{Outcome: domain.OutcomeExhausted})
				return nil
			}
		}
	}
}

func (d *Driver) render(a domain.Attempt) {
	switch a.Outcome {
	case domain.OutcomeEndorsed:
		d.printf(style.Green, "%s Endorsed %s (%d left)\n", style.Check, a.Target, a.Remaining)
	case domain.OutcomeRejected:
		d.printf(style.Yellow, "%s Could not endorse %s: %v (%d left)\n", style.Warning, a.Target, a.Err, a.Remaining)
	case domain.OutcomeFailed:
		d.printf(style.Red, "%s Failed to endorse %s\n", style.Cross, a.Target)
	case domain.OutcomeExhausted:
		d.printf(style.Green, "%s You have endorsed all nations!\n", style.Check)
	}
}

func (d *Driver) printf(color lipgloss.Color, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = d.out.WriteString(d.out.String(msg).Foreground(d.out.Color(string(color))).String())
}

// WriteRemaining prints the remaining targets as a count followed by a comma separated list.
func WriteRemaining(w io.Writer, remaining []domain.Identifier) {
	names := make([]string, len(remaining))
	for i, id := range remaining {
		names[i] = id.String()
	}
	_, _ = fmt.Fprintf(w, "%d nations to endorse:\n %s\n", len(remaining), strings.Join(names, ", "))
}
