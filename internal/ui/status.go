package ui

import (
	"fmt"

	"life-ca/internal/core"
)

// KeyHelp lists the bindings shared by the GUI and terminal front-ends.
var KeyHelp = []string{
	"click   toggle cell",
	"rclick  stamp pattern",
	"tab     next pattern",
	"1-5     pick pattern",
	"g       stamp preview",
	"space   play/pause",
	"n       single step",
	"c       clear",
	"r       reset",
	"s       reseed",
	"q       quit",
}

// StatusLines formats the board parameters and session state for display.
func StatusLines(snap core.ParameterSnapshot, paused bool, stamp string) []string {
	var lines []string
	for _, group := range snap.Groups {
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("%-11s %s", p.Label, p.Value))
		}
	}
	mode := "running"
	if paused {
		mode = "paused"
	}
	lines = append(lines,
		fmt.Sprintf("%-11s %s", "Mode", mode),
		fmt.Sprintf("%-11s %s", "Stamp", stamp),
	)
	return lines
}
