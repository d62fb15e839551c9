package cli

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/mgpai22/srtedit/internal/timing"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// renderCueTable lists the cues whose timing moved.
func renderCueTable(cues []timing.Cue) string {
	rows := make([][]string, 0, len(cues))
	for _, cue := range cues {
		if !cue.Changed() {
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(cue.Line),
			cue.Before.String(),
			cue.After.String(),
		})
	}
	return renderTable(
		[]string{"Line", "Before", "After"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft},
	)
}

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
