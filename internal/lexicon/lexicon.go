// Package lexicon stores the puzzle dictionary as a prefix tree and
// supports incremental prefix walks during the board search.
package lexicon

// MinWordLen is the shortest word the puzzle accepts.
const MinWordLen = 4

// Node represents one prefix position in the tree. The path of letters
// from the root to a node spells a prefix; terminal marks it as a
// complete dictionary word.
type Node struct {
	children map[byte]*Node
	terminal bool
}

// Terminal reports whether the prefix ending at this node is a complete word.
func (n *Node) Terminal() bool {
	return n.terminal
}

// Lexicon is the root of the prefix tree.
type Lexicon struct {
	root *Node
}

// New returns an empty Lexicon.
func New() *Lexicon {
	return &Lexicon{root: newNode()}
}

func newNode() *Node {
	return &Node{children: make(map[byte]*Node)}
}

// Root returns the starting node for a prefix walk.
func (l *Lexicon) Root() *Node {
	return l.root
}

// Add inserts a word, creating any missing intermediate nodes and marking
// the final node terminal. Adding the same word twice is a no-op. The
// caller is responsible for lowercasing and filtering; Add does not
// validate its input.
func (l *Lexicon) Add(word string) {
	n := l.root
	for i := 0; i < len(word); i++ {
		ch := word[i]
		next, ok := n.children[ch]
		if !ok {
			next = newNode()
			n.children[ch] = next
		}
		n = next
	}
	n.terminal = true
}

// Step returns the child of n reached by ch, or nil when no dictionary
// word continues the current prefix with that letter. A nil result is the
// expected pruning signal, not an error.
func (l *Lexicon) Step(n *Node, ch byte) *Node {
	return n.children[ch]
}
