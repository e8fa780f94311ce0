package ui

import (
	"image"

	"gravfield/internal/core"
)

// snapshotLines flattens a parameter snapshot into HUD text lines.
func snapshotLines(title string, s core.ParameterSnapshot) []string {
	lines := []string{title, ""}
	for _, g := range s.Groups {
		lines = append(lines, "["+g.Name+"]")
		for _, p := range g.Params {
			lines = append(lines, "  "+p.Label+": "+p.Value)
		}
	}
	return lines
}

func rectFor(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}
