package grammar

// wordNode is a node in the trie used to find the longest member of a fixed
// word set matching the head of an input string. Adapted from a Lang.Match
// token-search tree: that type indexed StateFn
// values by rune path; this one only needs to know whether a path is a
// complete word, since a matched Wordset terminal carries no payload beyond
// its matched length.
type wordNode struct {
	children map[byte]*wordNode
	terminal bool // true if the path from the root to this node is a complete word
}

func newWordTrie(words []string) *wordNode {
	root := &wordNode{children: make(map[byte]*wordNode)}
	for _, w := range words {
		n := root
		for i := 0; i < len(w); i++ {
			b := w[i]
			c, ok := n.children[b]
			if !ok {
				c = &wordNode{children: make(map[byte]*wordNode)}
				n.children[b] = c
			}
			n = c
		}
		n.terminal = true
	}
	return root
}

// longestMatch returns the length of the longest word whose path from the
// trie root is a prefix of s, or 0 if none matches.
func (root *wordNode) longestMatch(s string) int {
	n := root
	best := 0
	for i := 0; i < len(s); i++ {
		c, ok := n.children[s[i]]
		if !ok {
			break
		}
		n = c
		if n.terminal {
			best = i + 1
		}
	}
	return best
}
