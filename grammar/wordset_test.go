package grammar

import "testing"

func TestWordTrieLongestMatch(t *testing.T) {
	root := newWordTrie([]string{"if", "in", "int"})

	cases := []struct {
		in   string
		want int
	}{
		{"if x", 2},
		{"interest", 3}, // "int" wins over "in", longest match
		{"inline", 2},   // "in" matches, "int" does not
		{"ifx", 2},
		{"elsewhere", 0},
		{"", 0},
	}
	for _, c := range cases {
		if got := root.longestMatch(c.in); got != c.want {
			t.Errorf("longestMatch(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}
