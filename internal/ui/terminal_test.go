package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestMessagesCarryLabelsWithoutTTY(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminalWithWriter(&buf, &buf, false)

	term.Success("deployed")
	term.Error("boom")
	term.Warning("slow")
	term.Info("polling")

	got := buf.String()
	for _, want := range []string{"SUCCESS: deployed", "ERROR: boom", "WARNING: slow", "INFO: polling"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q should contain %q", got, want)
		}
	}
}

func TestTablePlainAlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminalWithWriter(&buf, &buf, false)

	term.Table([]string{"ID", "NAME"}, [][]string{
		{"1", "web-1"},
		{"23", "db"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, separator and 2 rows, got %d lines: %q", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "ID") || !strings.Contains(lines[0], "NAME") {
		t.Errorf("header line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "--") {
		t.Errorf("separator line = %q", lines[1])
	}
	if !strings.Contains(lines[2], "web-1") || !strings.Contains(lines[3], "db") {
		t.Errorf("rows = %q", lines[2:])
	}
}

func TestColumnWidthsTracksWidestCell(t *testing.T) {
	widths := columnWidths([]string{"ID", "NAME"}, [][]string{
		{"12345", "x"},
		{"1", "longer-name"},
	})
	if widths[0] != 5 {
		t.Errorf("widths[0] = %d, want 5", widths[0])
	}
	if widths[1] != 11 {
		t.Errorf("widths[1] = %d, want 11", widths[1])
	}
}

func TestDimSprintPassthroughWithoutTTY(t *testing.T) {
	term := NewTerminalWithWriter(&bytes.Buffer{}, &bytes.Buffer{}, false)
	if got := term.DimSprint("hint"); got != "hint" {
		t.Errorf("DimSprint = %q, want passthrough", got)
	}
}
