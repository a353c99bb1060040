package mansion

// Limits of the fixed-width room records; longer names and clues are truncated.
const (
	MaxNameLen = 49
	MaxClueLen = 99
)

// Room is a node of the mansion map. The nil *Room is the empty map.
type Room struct {
	name  string
	clue  string
	left  *Room
	right *Room
}

func NewRoom(name string, clue string) *Room {
	return &Room{
		name: truncate(name, MaxNameLen),
		clue: truncate(clue, MaxClueLen),
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func (r *Room) Name() string {
	return r.name
}

func (r *Room) Left() *Room {
	return r.left
}

func (r *Room) Right() *Room {
	return r.right
}

// Clue returns the clue still waiting in the room, if any, without taking it.
func (r *Room) Clue() string {
	return r.clue
}

func (r *Room) IsLeaf() bool {
	return r.left == nil && r.right == nil
}

// Visit hands out the room's clue and clears it, so only the first visit
// finds anything.
func (r *Room) Visit() (string, bool) {
	clue := r.clue
	r.clue = ""
	return clue, clue != ""
}

// Len counts the rooms reachable from r.
func (r *Room) Len() int {
	if r == nil {
		return 0
	}
	return r.left.Len() + 1 + r.right.Len()
}

// Destroy detaches every room, children before parents, and returns the
// number of rooms released.
func (r *Room) Destroy() int {
	if r == nil {
		return 0
	}
	n := r.left.Destroy() + r.right.Destroy()
	r.left = nil
	r.right = nil
	return n + 1
}
