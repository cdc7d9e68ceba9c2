package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
)

type TracerStat struct {
	// The tracer id.
	Id string

	// The block rows and the percentage of total frame area they represent.
	BlockY       int
	BlockH       int
	FramePercent float32

	// The number of primary rays traced for the block.
	Samples int

	// Render time for assigned block
	RenderTime time.Duration
}

type FrameStats struct {
	// Frame dims.
	FrameW int
	FrameH int

	// Individual tracer stats.
	Tracers []TracerStat

	// Total render time for entire frame.
	RenderTime time.Duration
}

// Format the frame statistics as a table.
func (stats FrameStats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Tracer", "Rows", "% of frame", "Samples", "Render time"})
	totalSamples := 0
	for _, stat := range stats.Tracers {
		table.Append([]string{
			stat.Id,
			fmt.Sprintf("%d - %d", stat.BlockY, stat.BlockY+stat.BlockH-1),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			fmt.Sprintf("%d", stat.Samples),
			stat.RenderTime.String(),
		})
		totalSamples += stat.Samples
	}
	table.SetFooter([]string{"", fmt.Sprintf("%d x %d", stats.FrameW, stats.FrameH), "TOTAL", fmt.Sprintf("%d", totalSamples), stats.RenderTime.String()})

	table.Render()
	return buf.String()
}
