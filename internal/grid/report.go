package grid

import (
	"fmt"
	"strings"
)

// Lines renders the result as human-readable report lines, one per color
// found, followed by a summary line.
func (r *Result) Lines() []string {
	if !r.Detected {
		return []string{fmt.Sprintf("Grid not detected: found %d slots.", r.SlotCount)}
	}

	var lines []string
	for _, s := range r.Slots {
		for _, c := range s.Colors {
			lines = append(lines, fmt.Sprintf("Grid %d contains %s color.", s.Label, strings.ToLower(c)))
		}
	}
	lines = append(lines, "Right amount of grid slots detected! proceed...")
	return lines
}

// Summary returns a compact one-line description, e.g. for camera mode
// where a line per frame is printed.
func (r *Result) Summary() string {
	if !r.Detected {
		return fmt.Sprintf("no grid (%d slots)", r.SlotCount)
	}
	parts := make([]string, len(r.Slots))
	for i, s := range r.Slots {
		colors := "-"
		if len(s.Colors) > 0 {
			colors = strings.Join(s.Colors, "+")
		}
		parts[i] = fmt.Sprintf("%d:%s", s.Label, colors)
	}
	return strings.Join(parts, " ")
}
