package app

import "strings"

// missingFieldsMessage builds the status text for a rejected submission,
// e.g. "Please fill in: Title, Problem".
func missingFieldsMessage(missing []string) string {
	labels := make([]string, len(missing))
	for i, f := range missing {
		labels[i] = strings.ToUpper(f[:1]) + f[1:]
	}
	return "Please fill in: " + strings.Join(labels, ", ")
}
