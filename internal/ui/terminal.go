// Package ui provides styled console output for the cycleops CLI.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Terminal provides structured and styled output to the console.
type Terminal struct {
	out    io.Writer
	errOut io.Writer
	isTTY  bool
}

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	accentColor  = color.New(color.FgBlue, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

// NewTerminal initializes a terminal linked to standard output.
func NewTerminal() *Terminal {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	color.NoColor = !isTTY

	return &Terminal{
		out:    os.Stdout,
		errOut: os.Stderr,
		isTTY:  isTTY,
	}
}

// NewTerminalWithWriter allows injecting custom writers for testing or
// redirection.
func NewTerminalWithWriter(out, errOut io.Writer, isTTY bool) *Terminal {
	return &Terminal{out: out, errOut: errOut, isTTY: isTTY}
}

func (t *Terminal) IsTTY() bool { return t.isTTY }

func (t *Terminal) Success(message string) { t.printMsg(successColor, "SUCCESS", message) }
func (t *Terminal) Error(message string)   { t.printMsg(errorColor, "ERROR", message) }
func (t *Terminal) Warning(message string) { t.printMsg(warningColor, "WARNING", message) }
func (t *Terminal) Info(message string)    { t.printMsg(infoColor, "INFO", message) }

func (t *Terminal) printMsg(c *color.Color, label, msg string) {
	if t.isTTY {
		c.Fprintln(t.out, msg)
	} else {
		fmt.Fprintf(t.out, "%s: %s\n", label, msg)
	}
}

func (t *Terminal) Printf(format string, args ...interface{}) { fmt.Fprintf(t.out, format, args...) }
func (t *Terminal) Println(args ...interface{})               { fmt.Fprintln(t.out, args...) }

func (t *Terminal) DimSprint(text string) string {
	if t.isTTY {
		return dimColor.Sprint(text)
	}
	return text
}

// Table prints rows under headers, boxed with accent-colored borders on a
// TTY and as aligned plain text otherwise.
func (t *Terminal) Table(headers []string, rows [][]string) {
	widths := columnWidths(headers, rows)
	if t.isTTY {
		t.printTableTTY(headers, rows, widths)
	} else {
		t.printTablePlain(headers, rows, widths)
	}
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = len(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

func (t *Terminal) printTableTTY(headers []string, rows [][]string, widths []int) {
	border := func(left, mid, right string) {
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strings.Repeat("─", w+2)
		}
		accentColor.Fprintln(t.out, left+strings.Join(parts, mid)+right)
	}
	printRow := func(cells []string) {
		accentColor.Fprint(t.out, "│")
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			fmt.Fprintf(t.out, " %-*s ", widths[i], cell)
			accentColor.Fprint(t.out, "│")
		}
		fmt.Fprintln(t.out)
	}

	border("┌", "┬", "┐")
	printRow(headers)
	border("├", "┼", "┤")
	for _, row := range rows {
		printRow(row)
	}
	border("└", "┴", "┘")
}

func (t *Terminal) printTablePlain(headers []string, rows [][]string, widths []int) {
	printRow := func(cells []string) {
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			fmt.Fprintf(t.out, "%-*s  ", widths[i], cell)
		}
		fmt.Fprintln(t.out)
	}

	printRow(headers)
	for i, w := range widths {
		fmt.Fprint(t.out, strings.Repeat("-", w))
		if i < len(widths)-1 {
			fmt.Fprint(t.out, "  ")
		}
	}
	fmt.Fprintln(t.out)
	for _, row := range rows {
		printRow(row)
	}
}
