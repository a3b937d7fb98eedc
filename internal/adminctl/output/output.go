// Package output provides terminal formatting for adminctl.
package output

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Printer writes formatted messages to the terminal.
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

// NewPrinter creates a printer. Colors are suppressed when useColors is
// false or the NO_COLOR convention is in effect.
func NewPrinter(useColors bool) *Printer {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		useColors = false
	}
	return &Printer{out: os.Stdout, err: os.Stderr, useColors: useColors}
}

func (p *Printer) Info(format string, args ...any) {
	color.New().Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) Success(format string, args ...any) {
	if p.useColors {
		color.New(color.FgGreen).Fprintf(p.out, "✓ "+format+"\n", args...)
		return
	}
	color.New().Fprintf(p.out, "✓ "+format+"\n", args...)
}

func (p *Printer) Warn(format string, args ...any) {
	if p.useColors {
		color.New(color.FgYellow).Fprintf(p.err, "⚠ "+format+"\n", args...)
		return
	}
	color.New().Fprintf(p.err, "⚠ "+format+"\n", args...)
}

func (p *Printer) Bold(text string) string {
	if p.useColors {
		return color.New(color.Bold).Sprint(text)
	}
	return text
}

// MessageStatus renders an inquiry status with a conventional color.
func (p *Printer) MessageStatus(status string) string {
	if !p.useColors {
		return status
	}
	switch status {
	case "new":
		return color.YellowString(status)
	case "replied":
		return color.GreenString(status)
	default:
		return status
	}
}

// Table renders tabular output without borders.
type Table struct {
	table  *tablewriter.Table
	header []string
	rows   [][]string
}

// NewTable creates a table writing to stdout.
func NewTable(headers []string) *Table {
	return NewTableWithWriter(os.Stdout, headers)
}

// NewTableWithWriter creates a table with a custom writer.
func NewTableWithWriter(w io.Writer, headers []string) *Table {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.Off},
			},
		}),
	)
	return &Table{table: table, header: headers}
}

// AddRow appends a row.
func (t *Table) AddRow(row []string) {
	t.rows = append(t.rows, row)
}

// Render writes the table.
func (t *Table) Render() {
	t.table.Header(t.header)
	t.table.Bulk(t.rows)
	t.table.Render()
}
