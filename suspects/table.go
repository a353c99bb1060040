package suspects

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// NumBuckets is the fixed number of chains in a Table.
const NumBuckets = 7

const (
	// NoAssociation is returned by Lookup for a clue with no suspect.
	NoAssociation = "No Associated Suspect"
	// Neutral marks clues that point at nobody.
	Neutral = "Neutral"
)

// Hash sums the bytes of key modulo NumBuckets. It is not meant to spread
// keys well; collisions are resolved by chaining.
func Hash(key string) uint64 {
	var sum = uint64(0)
	for i := 0; i < len(key); i++ {
		sum += uint64(key[i])
	}
	return sum % NumBuckets
}

// Table maps clue text to a suspect name. It is filled once and then only
// read; it is not safe for concurrent use while being filled.
type Table struct {
	buckets []*entry
}

func NewTable() *Table {
	return &Table{buckets: make([]*entry, NumBuckets)}
}

// Insert prepends clue -> suspect to the clue's chain. Duplicate keys are kept;
// the most recent one wins on Lookup. The result reports whether an earlier
// entry for clue is now shadowed.
func (t *Table) Insert(clue string, suspect string) bool {
	i := Hash(clue)
	_, shadowed := t.buckets[i].find(clue)
	t.buckets[i] = t.buckets[i].insert(clue, suspect)
	return shadowed
}

// Lookup returns the suspect for clue, or NoAssociation.
func (t *Table) Lookup(clue string) string {
	suspect, ok := t.buckets[Hash(clue)].find(clue)
	if !ok {
		return NoAssociation
	}
	return suspect
}

// Len counts all entries, shadowed ones included.
func (t *Table) Len() int {
	var n = 0
	for _, b := range t.buckets {
		n += b.len()
	}
	return n
}

// Suspects returns the distinct accusable suspects, sorted.
func (t *Table) Suspects() []string {
	seen := mapset.New[string]()
	for _, b := range t.buckets {
		b.each(func(_ string, suspect string) {
			if suspect != Neutral {
				seen.Put(suspect)
			}
		})
	}
	names := make([]string, 0, seen.Size())
	seen.Each(func(name string) {
		names = append(names, name)
	})
	sort.Strings(names)
	return names
}
