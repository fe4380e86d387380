// Package trie implements the prefix trie backing the segmenter lexicon.
//
// Child storage is mixed: a node keeps up to three children in a sorted
// array probed by binary search, and promotes one-way to a map when a
// fourth child arrives. The degree distribution of a CJK lexicon makes
// the array form the common case, at roughly half the memory of a map.
//
// Insertion is only legal during dictionary load. Once loaded, the trie
// is never mutated and is safe for any number of concurrent readers.
package trie

import (
	"errors"
	"sort"
)

// maxArrayChildren is the promotion threshold: inserting a child into a
// node that already holds this many switches the node to map storage.
const maxArrayChildren = 3

// ErrNullCharacter is returned when a word to insert contains U+0000,
// which is reserved for the root node.
var ErrNullCharacter = errors.New("trie: word contains NUL character")

// Node is one trie node. The zero-rune node acts as root and is never
// a word terminal.
type Node struct {
	char     rune
	terminal bool
	children []*Node       // sorted ascending by char while count <= maxArrayChildren
	childMap map[rune]*Node // active after promotion; children is nil then
}

// NewRoot returns an empty lexicon root.
func NewRoot() *Node {
	return &Node{char: 0}
}

// Char returns the rune this node stands for.
func (n *Node) Char() rune { return n.char }

// HasChildren reports whether any longer word passes through this node.
func (n *Node) HasChildren() bool {
	return len(n.children) > 0 || len(n.childMap) > 0
}

func (n *Node) child(c rune) *Node {
	if n.childMap != nil {
		return n.childMap[c]
	}
	i := sort.Search(len(n.children), func(i int) bool {
		return n.children[i].char >= c
	})
	if i < len(n.children) && n.children[i].char == c {
		return n.children[i]
	}
	return nil
}

// lookforChild returns the child for c, creating it if absent.
func (n *Node) lookforChild(c rune) *Node {
	if n.childMap != nil {
		ds := n.childMap[c]
		if ds == nil {
			ds = &Node{char: c}
			n.childMap[c] = ds
		}
		return ds
	}
	i := sort.Search(len(n.children), func(i int) bool {
		return n.children[i].char >= c
	})
	if i < len(n.children) && n.children[i].char == c {
		return n.children[i]
	}
	ds := &Node{char: c}
	if len(n.children) < maxArrayChildren {
		n.children = append(n.children, nil)
		copy(n.children[i+1:], n.children[i:])
		n.children[i] = ds
		return ds
	}
	// fourth distinct child: promote to map, release the array
	n.childMap = make(map[rune]*Node, maxArrayChildren*2)
	for _, child := range n.children {
		n.childMap[child.char] = child
	}
	n.childMap[c] = ds
	n.children = nil
	return ds
}

// Insert adds word to the trie, marking its last node terminal.
// Inserting the same word twice, or an empty word, is a no-op.
func (n *Node) Insert(word []rune) error {
	if len(word) == 0 {
		return nil
	}
	for _, c := range word {
		if c == 0 {
			return ErrNullCharacter
		}
	}
	node := n
	for _, c := range word {
		node = node.lookforChild(c)
	}
	node.terminal = true
	return nil
}

// Disable clears the terminal flag along word without creating nodes.
// Words never inserted are ignored.
func (n *Node) Disable(word []rune) {
	node := n
	for _, c := range word {
		node = node.child(c)
		if node == nil {
			return
		}
	}
	node.terminal = false
}

// Match walks length characters of buf starting at begin and reports
// how far the lexicon agrees. The result's End is the last examined
// position; Match and Prefix may both be set when a word ends at a
// node that still has children.
func (n *Node) Match(buf []rune, begin, length int) Hit {
	hit := Hit{Begin: begin, End: begin}
	node := n
	for i := 0; i < length; i++ {
		hit.End = begin + i
		node = node.child(buf[begin+i])
		if node == nil {
			return hit
		}
	}
	if node.terminal {
		hit.state |= hitMatch
	}
	if node.HasChildren() {
		hit.state |= hitPrefix
	}
	return hit
}
