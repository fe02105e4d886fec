package logger

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager matches zerr.Error, which can report its own message without the chain.
type messager interface {
	Message() string
	Metadata() map[string]any
}

type multiUnwrapper interface {
	Unwrap() []error
}

type singleUnwrapper interface {
	Unwrap() error
}

// errorEntry is one layer of an error chain.
type errorEntry struct {
	message  string
	metadata map[string]any
}

// collectErrorEntries flattens err into its layers, outermost first.
// zerr layers without a message donate their metadata to the next layer.
// Joined errors contribute each of their members in order.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	pending := map[string]any{}

	var walk func(error)
	walk = func(current error) {
		for current != nil {
			switch e := current.(type) {
			case messager:
				maps.Copy(pending, e.Metadata())
				if e.Message() != "" {
					entries = append(entries, errorEntry{message: e.Message(), metadata: pending})
					pending = map[string]any{}
				}
				u, ok := current.(singleUnwrapper)
				if !ok {
					return
				}
				current = u.Unwrap()
			case multiUnwrapper:
				for _, member := range e.Unwrap() {
					walk(member)
				}
				return
			default:
				entries = append(entries, errorEntry{message: current.Error(), metadata: pending})
				pending = map[string]any{}
				return
			}
		}
	}
	walk(err)

	return entries
}

// formatErrorEntries renders entries as a headline followed by an indented cause list.
func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.message+formatMetadata(entry.metadata), "\n")

		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
	}

	return strings.Join(lines, "\n")
}

func formatMetadata(metadata map[string]any) string {
	if len(metadata) == 0 {
		return ""
	}

	parts := make([]string, 0, len(metadata))
	for _, key := range slices.Sorted(maps.Keys(metadata)) {
		parts = append(parts, fmt.Sprintf("%s=%v", key, metadata[key]))
	}
	return " (" + strings.Join(parts, ", ") + ")"
}
