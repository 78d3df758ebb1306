package output

import (
	"strings"
	"testing"
)

func TestVisualLen_PlainText(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"hello", 5},
		{"", 0},
		{"abc def", 7},
	}

	for _, tc := range tests {
		got := visualLen(tc.input)
		if got != tc.want {
			t.Errorf("visualLen(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestVisualLen_StripsANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{
			name:  "bold",
			input: "\x1b[1mhello\x1b[0m",
			want:  5,
		},
		{
			name:  "color",
			input: "\x1b[31mred\x1b[0m",
			want:  3,
		},
		{
			name:  "multiple sequences",
			input: "\x1b[1m\x1b[34mblue bold\x1b[0m",
			want:  9,
		},
		{
			name:  "no ansi",
			input: "plain text",
			want:  10,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := visualLen(tc.input)
			if got != tc.want {
				t.Errorf("visualLen() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  int // expected length of output
	}{
		{"needs padding", "hi", 10, 10},
		{"exact width", "hello", 5, 5},
		{"over width", "toolong", 3, 7}, // no truncation
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := pad(tc.input, tc.width)
			if len(got) != tc.want {
				t.Errorf("pad(%q, %d) len = %d, want %d", tc.input, tc.width, len(got), tc.want)
			}
		})
	}
}

func TestTable_Render(t *testing.T) {
	// Disable color so we get predictable output.
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Name", "Score")
	tbl.AddRow("Alice", "95")
	tbl.AddRow("Bob", "87")

	output := tbl.Render()

	// Should contain headers.
	if !strings.Contains(output, "Name") {
		t.Error("expected header 'Name' in output")
	}
	if !strings.Contains(output, "Score") {
		t.Error("expected header 'Score' in output")
	}

	// Should contain data.
	if !strings.Contains(output, "Alice") {
		t.Error("expected 'Alice' in output")
	}
	if !strings.Contains(output, "Bob") {
		t.Error("expected 'Bob' in output")
	}

	// Should have separator line.
	if !strings.Contains(output, "─") {
		t.Error("expected separator character in output")
	}

	// Count lines: header + separator + 2 data rows = 4 lines.
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 4 {
		t.Errorf("expected 4 lines, got %d", len(lines))
	}
}

func TestTable_EmptyHeaders(t *testing.T) {
	tbl := NewTable()
	output := tbl.Render()
	if output != "" {
		t.Errorf("expected empty output for empty table, got %q", output)
	}
}

func TestTable_ColumnWidths(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("A", "LongHeader")
	tbl.AddRow("VeryLongValue", "X")

	output := tbl.Render()
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")

	if len(lines) < 3 {
		t.Fatalf("expected at least 3 lines, got %d", len(lines))
	}

	// The data row should be padded so columns align.
	dataLine := lines[2]
	if !strings.Contains(dataLine, "VeryLongValue") {
		t.Error("expected data row to contain 'VeryLongValue'")
	}
}

func TestTable_String(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Col1")
	tbl.AddRow("Val1")

	// String() should equal Render().
	if tbl.String() != tbl.Render() {
		t.Error("String() != Render()")
	}
}

func TestSetNoColor(t *testing.T) {
	SetNoColor(true)
	if !IsNoColor() {
		t.Error("expected IsNoColor() after SetNoColor(true)")
	}
	rendered := StyleHeader.Render("test")
	if strings.Contains(rendered, "\x1b[") {
		t.Error("expected no ANSI codes after SetNoColor(true)")
	}

	// Re-enabling must restore the styled palette.
	SetNoColor(false)
	if IsNoColor() {
		t.Error("expected color enabled after SetNoColor(false)")
	}
	if StyleHeader.GetForeground() != ColorPrimary {
		t.Error("expected StyleHeader foreground restored")
	}
}

func TestPad_IgnoresANSI(t *testing.T) {
	styled := "\x1b[31mred\x1b[0m"
	got := pad(styled, 6)
	if visualLen(got) != 6 {
		t.Errorf("visualLen(pad(styled, 6)) = %d, want 6", visualLen(got))
	}
}

func TestScoreBar(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tests := []struct {
		score  int
		filled int
		label  string
	}{
		{0, 0, "0/100"},
		{50, 5, "50/100"},
		{100, 10, "100/100"},
		{130, 10, "130/100"},
		{-5, 0, "-5/100"},
	}
	for _, tc := range tests {
		got := ScoreBar(tc.score, 10)
		if n := strings.Count(got, "█"); n != tc.filled {
			t.Errorf("ScoreBar(%d) filled = %d, want %d", tc.score, n, tc.filled)
		}
		if n := strings.Count(got, "█") + strings.Count(got, "░"); n != 10 {
			t.Errorf("ScoreBar(%d) width = %d, want 10", tc.score, n)
		}
		if !strings.HasSuffix(got, tc.label) {
			t.Errorf("ScoreBar(%d) = %q, want suffix %q", tc.score, got, tc.label)
		}
	}
}

func TestScoreStyle(t *testing.T) {
	SetNoColor(false)
	if ScoreStyle(85).GetForeground() != ColorSuccess {
		t.Error("expected success color for 85")
	}
	if ScoreStyle(55).GetForeground() != ColorWarning {
		t.Error("expected warning color for 55")
	}
	if ScoreStyle(10).GetForeground() != ColorError {
		t.Error("expected error color for 10")
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("one two three four five six", 14, 4)
	for _, line := range strings.Split(got, "\n") {
		if !strings.HasPrefix(line, "    ") {
			t.Errorf("line %q is not indented", line)
		}
		if visualLen(line) > 14 {
			t.Errorf("line %q exceeds width", line)
		}
	}
	if !strings.Contains(got, "six") {
		t.Error("expected all words to survive wrapping")
	}
}

func TestSection(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	got := Section("Scores", 10)
	if !strings.Contains(got, "Scores") {
		t.Error("expected title in section")
	}
	if strings.Count(got, "─") != 10 {
		t.Errorf("expected 10 rule characters, got %d", strings.Count(got, "─"))
	}
}
