package ui

import "strings"

// helpLine builds the footer key hints for the active resource. Hints for
// delete and transitions only show where the resource supports them.
func helpLine(r Resource) string {
	hints := []string{
		"tab switch",
		"enter view",
		"/ search",
		"n/p page",
		"s status",
		"r refresh",
	}
	if len(r.Actions()) > 0 {
		hints = append(hints, "a act")
	}
	if !r.ReadOnly() {
		hints = append(hints, "d delete")
	}
	hints = append(hints, "t theme", "q quit")
	return strings.Join(hints, " · ")
}
