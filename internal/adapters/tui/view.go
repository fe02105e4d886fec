package tui

import (
	"fmt"
	"strings"

	"go.trai.ch/endotarter/internal/core/domain"
	"go.trai.ch/endotarter/internal/ui/style"
)

// View renders the UI.
func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(style.Title.Render("ENDORSE"))
	s.WriteString(style.Hint.Render(fmt.Sprintf("  %d left", len(m.Remaining))))
	s.WriteString("\n\n")

	for _, a := range m.History {
		s.WriteString(renderAttempt(a) + "\n")
	}
	if len(m.History) > 0 {
		s.WriteString("\n")
	}

	switch {
	case m.Err != nil:
		s.WriteString(style.Failure.Render(fmt.Sprintf("%s %v", style.Cross, m.Err)) + "\n")
	case m.Done:
		s.WriteString(style.Success.Render(style.Check+" You have endorsed all nations!") + "\n")
	case m.Endorsing:
		s.WriteString(style.Hint.Render(fmt.Sprintf("%s Endorsing %s...", style.Dot, m.Remaining[0])) + "\n")
	default:
		s.WriteString(style.Hint.Render(style.Pointer+" Next: ") + style.Target.Render(m.Remaining[0].String()) + "\n")
	}

	if m.ShowList {
		s.WriteString("\n" + m.remainingList() + "\n")
	}

	s.WriteString("\n" + style.Hint.Render("enter endorse · l list · q quit") + "\n")

	return s.String()
}

func (m *Model) remainingList() string {
	names := make([]string, len(m.Remaining))
	for i, id := range m.Remaining {
		names[i] = id.String()
	}
	list := strings.Join(names, ", ")
	if m.Width > 0 {
		return style.Hint.Width(m.Width).Render(list)
	}
	return style.Hint.Render(list)
}

func renderAttempt(a domain.Attempt) string {
	switch a.Outcome {
	case domain.OutcomeEndorsed:
		return style.Success.Render(fmt.Sprintf("%s Endorsed %s", style.Check, a.Target))
	case domain.OutcomeRejected:
		return style.Attention.Render(fmt.Sprintf("%s Could not endorse %s: %v", style.Warning, a.Target, a.Err))
	default:
		return style.Failure.Render(fmt.Sprintf("%s Failed to endorse %s", style.Cross, a.Target))
	}
}
