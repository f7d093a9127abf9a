package jsondelta

// Stats holds operation counts for a computed patch
type Stats struct {
	Adds     int `json:"adds,omitempty"`     // number of add operations
	Removes  int `json:"removes,omitempty"`  // number of remove operations
	Replaces int `json:"replaces,omitempty"` // number of replace operations
	Moves    int `json:"moves,omitempty"`    // number of move operations
}

// Total returns the number of counted operations
func (s Stats) Total() int {
	return s.Adds + s.Removes + s.Replaces + s.Moves
}

// Stats tallies the patch by operation kind. copy & test operations are
// never produced by the differ & aren't counted
func (p Patch) Stats() *Stats {
	s := &Stats{}
	for _, op := range p {
		switch op.Type {
		case OpAdd:
			s.Adds++
		case OpRemove:
			s.Removes++
		case OpReplace:
			s.Replaces++
		case OpMove:
			s.Moves++
		}
	}
	return s
}
