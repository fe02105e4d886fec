// export_test.go exports private functions for white-box testing.
package logger

// ErrorEntry is the exported view of errorEntry.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// CollectErrorEntries exposes collectErrorEntries for testing.
func CollectErrorEntries(err error) []ErrorEntry {
	var out []ErrorEntry
	for _, e := range collectErrorEntries(err) {
		out = append(out, ErrorEntry{Message: e.message, Metadata: e.metadata})
	}
	return out
}
