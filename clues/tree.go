package clues

import "iter"

// Tree is a binary search tree of clue texts, ordered by byte-wise string
// comparison. The nil *Tree is the empty tree.
type Tree struct {
	text  string
	left  *Tree
	right *Tree
}

func NewTree() *Tree {
	var t *Tree
	return t
}

func singletonTree(text string) *Tree {
	return &Tree{text: text}
}

// Insert adds text and returns the (possibly new) root. The boolean is false
// if text was already present, in which case the tree is unchanged.
func (t *Tree) Insert(text string) (*Tree, bool) {
	if t == nil {
		return singletonTree(text), true
	}
	var inserted bool
	// modify in-place
	if text < t.text {
		t.left, inserted = t.left.Insert(text)
	} else if t.text < text {
		t.right, inserted = t.right.Insert(text)
	}
	// if t.text == text then text is already present
	return t, inserted
}

func (t *Tree) Contains(text string) bool {
	if t == nil {
		return false
	}
	if text == t.text {
		return true
	}
	if text < t.text {
		return t.left.Contains(text)
	}
	return t.right.Contains(text)
}

func (t *Tree) Empty() bool {
	return t == nil
}

func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return t.left.Len() + 1 + t.right.Len()
}

// All returns the clues in ascending order. The sequence can be ranged over
// any number of times.
func (t *Tree) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		t.inOrder(yield)
	}
}

// inOrder reports whether the walk should continue.
func (t *Tree) inOrder(yield func(string) bool) bool {
	if t == nil {
		return true
	}
	return t.left.inOrder(yield) && yield(t.text) && t.right.inOrder(yield)
}

// Destroy detaches every node, children before parents, and returns the
// number of nodes released.
func (t *Tree) Destroy() int {
	if t == nil {
		return 0
	}
	n := t.left.Destroy() + t.right.Destroy()
	t.left = nil
	t.right = nil
	return n + 1
}
