package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

// printer writes command output either styled for a terminal or as plain
// tab separated lines for scripts.
type printer struct {
	w      io.Writer
	styled bool
	num    *message.Printer
}

func newPrinter(w io.Writer, plain bool) *printer {
	styled := false
	if f, ok := w.(*os.File); ok && !plain {
		styled = term.IsTerminal(int(f.Fd()))
	}
	return &printer{
		w:      w,
		styled: styled,
		num:    message.NewPrinter(language.English),
	}
}

// number formats v, with digit grouping when styled.
func (p *printer) number(v uint64) string {
	if p.styled {
		return p.num.Sprintf("%d", v)
	}
	return fmt.Sprint(v)
}

// row is one label/value line of a table.
type row struct {
	label string
	value string
	err   bool
}

// table prints a titled block of rows.
func (p *printer) table(title string, rows []row) {
	if !p.styled {
		for _, r := range rows {
			fmt.Fprintf(p.w, "%s\t%s\t%s\n", title, r.label, r.value)
		}
		return
	}

	width := 0
	for _, r := range rows {
		width = max(width, len(r.label))
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(title))
	sb.WriteByte('\n')
	for _, r := range rows {
		style := valueStyle
		if r.err {
			style = errorStyle
		}
		sb.WriteString(labelStyle.Render(fmt.Sprintf("  %-*s", width, r.label)))
		sb.WriteString("  ")
		sb.WriteString(style.Render(r.value))
		sb.WriteByte('\n')
	}
	fmt.Fprint(p.w, sb.String())
}
