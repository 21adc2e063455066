package ui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Printer provides methods for printing styled output outside of a running
// Bubble Tea program (subcommands that print and exit).
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// Width returns the current terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintDetails prints a titled block of key/value pairs, keys sorted.
func (p *Printer) PrintDetails(title string, details map[string]string) {
	p.Print(RenderDetails(title, details, p.width))
	p.Newline()
}

// RenderDetails renders a title, a divider and sorted key/value lines.
func RenderDetails(title string, details map[string]string, width int) string {
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := []string{TitleStyle.Render(title), RenderHorizontalDivider(width-2, "─")}
	for _, k := range keys {
		lines = append(lines, KeyStyle.Render("  "+k+":")+" "+ValueStyle.Render(details[k]))
	}
	return strings.Join(lines, "\n")
}
