// Package viz renders workload runs in the terminal: static length and
// capacity plots, and a live Bubble Tea view that replays a workload
// one operation per frame.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/penev-ff/dynarr/internal/workload"
)

// PlotSamples renders length and capacity series for a recorded run.
func PlotSamples(samples []workload.Sample, width, height int) string {
	if len(samples) < 2 {
		return "not enough samples to plot"
	}

	lens := make([]float64, len(samples))
	caps := make([]float64, len(samples))
	for i, s := range samples {
		lens[i] = float64(s.Len)
		caps[i] = float64(s.Cap)
	}

	var sb strings.Builder
	sb.WriteString(asciigraph.Plot(lens,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("length vs operation"),
	))
	sb.WriteString("\n\n")
	sb.WriteString(asciigraph.Plot(caps,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("capacity vs operation"),
	))
	return sb.String()
}

// OccupancyBar renders size/capacity as a fixed-width cell bar.
func OccupancyBar(length, capacity, width int) string {
	if width < 1 {
		width = 1
	}
	if capacity == 0 {
		return freeCellStyle.Render(strings.Repeat("·", width)) + "  0/0"
	}

	filled := length * width / capacity
	if filled > width {
		filled = width
	}

	bar := usedCellStyle.Render(strings.Repeat("█", filled)) +
		freeCellStyle.Render(strings.Repeat("·", width-filled))
	return fmt.Sprintf("%s  %d/%d", bar, length, capacity)
}

// Summary renders a styled metric panel for a finished run.
func Summary(name string, metrics map[string]float64) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(strings.ToUpper(name)) + "\n")

	for _, key := range []string{"grows", "copied_elements", "final_len", "final_cap", "peak_cap", "load_factor", "underflows"} {
		v, ok := metrics[key]
		if !ok {
			continue
		}
		sb.WriteString(labelStyle.Render(key) + valueStyle.Render(fmt.Sprintf("%.3f", v)) + "\n")
	}
	return panelStyle.Render(sb.String())
}
