package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/tagtidy/internal/cleaner"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))
)

// printer writes progress events and the run summary.
type printer struct {
	out    io.Writer
	styled bool
}

func newPrinter(out io.Writer, styled bool) *printer {
	return &printer{out: out, styled: styled}
}

func (p *printer) progress(event cleaner.ProgressEvent) {
	if !p.styled {
		fmt.Fprintln(p.out, event.Message)
		return
	}

	var style lipgloss.Style
	switch event.Level {
	case cleaner.LevelError:
		style = errorStyle
	case cleaner.LevelWarning:
		style = warningStyle
	case cleaner.LevelSuccess:
		style = successStyle
	case cleaner.LevelVerbose:
		style = dimStyle
	default:
		style = infoStyle
	}
	fmt.Fprintln(p.out, style.Render(event.Message))
}

func (p *printer) summary(report *cleaner.Report) {
	files := report.Files()
	if len(files) == 0 {
		return
	}

	tw := table.NewWriter()
	if p.styled {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleLight)
	}
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Format.Footer = text.FormatDefault

	tw.AppendHeader(table.Row{"File", "Removed", "Saves"})
	for _, f := range files {
		removed := "-"
		if len(f.Removed) > 0 {
			removed = strings.Join(f.Removed, ", ")
		}
		tw.AppendRow(table.Row{f.Path, removed, strconv.Itoa(f.Saves)})
	}
	tw.AppendFooter(table.Row{"", fmt.Sprintf("%d removed", report.Removed()), ""})

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, tw.Render())
}
