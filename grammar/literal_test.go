package grammar

import "testing"

func TestScanNumber(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"123abc", 3},
		{"0x1F ", 4},
		{"0b101,", 5},
		{"0o17 ", 4},
		{"3.14159", 7},
		{"2.5e10x", 6},
		{"1e-3 rest", 4},
		{"0x", 1}, // bare prefix with no digits: only the leading 0 is a number
		{"abc", 0},
		{"", 0},
	}
	for _, c := range cases {
		if got := scanNumber(c.in); got != c.want {
			t.Errorf("scanNumber(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestScanQuotedString(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{`"hello" rest`, 7},
		{`"esc\"aped" rest`, 11},
		{`"unterminated`, 0},
		{"\"newline\nnotok\"", 0},
		{`no quote here`, 0},
	}
	for _, c := range cases {
		if got := scanQuotedString(c.in); got != c.want {
			t.Errorf("scanQuotedString(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestBuiltinTerminalDef(t *testing.T) {
	d := &TerminalDef{Name: "NUMBER", Kind: Builtin, Pattern: "number"}
	if err := d.compile(); err != nil {
		t.Fatalf("compile: %v", err)
	}
	if n := d.match("42 + 1"); n != 2 {
		t.Errorf("match = %d, want 2", n)
	}
	if !d.Extensible() {
		t.Errorf("builtin number terminal should be extensible")
	}
}
