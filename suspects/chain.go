package suspects

// entry is one link in a bucket's chain. The nil *entry is the empty chain.
type entry struct {
	clue    string
	suspect string
	next    *entry
}

func (e *entry) insert(clue string, suspect string) *entry {
	return &entry{clue: clue, suspect: suspect, next: e}
}

// find returns the suspect of the entry for clue nearest the head.
func (e *entry) find(clue string) (string, bool) {
	var n = e
	for n != nil {
		if n.clue == clue {
			return n.suspect, true
		}
		n = n.next
	}
	return "", false
}

func (e *entry) len() int {
	var l = 0
	for n := e; n != nil; n = n.next {
		l++
	}
	return l
}

func (e *entry) each(f func(clue string, suspect string)) {
	for n := e; n != nil; n = n.next {
		f(n.clue, n.suspect)
	}
}
