package team

// PositionUpdate is one row of a batched position write, the wire shape of
// the update_positions call.
type PositionUpdate struct {
	ID       string `json:"id"`
	Position int    `json:"position"`
}

// MoveAndRenumber moves the element at fromIndex to toIndex and renumbers
// every element's Position by its final array index. Pure function, shared
// by members and tags, independent of any persistence.
//
// Returns a new slice; the input is not modified.
func MoveAndRenumber(members []TeamMember, fromIndex, toIndex int) ([]TeamMember, error) {
	n := len(members)
	if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n {
		return nil, ErrInvalidMove
	}

	moved := make([]TeamMember, 0, n)
	moved = append(moved, members[:fromIndex]...)
	moved = append(moved, members[fromIndex+1:]...)

	// Insert at the target index of the shortened list: this matches the
	// remove-then-insert semantics of a drag gesture.
	moved = append(moved[:toIndex], append([]TeamMember{members[fromIndex]}, moved[toIndex:]...)...)

	for i := range moved {
		moved[i].Position = i
	}

	return moved, nil
}

// MoveAndRenumberTags is MoveAndRenumber for the tag list
func MoveAndRenumberTags(tags []Tag, fromIndex, toIndex int) ([]Tag, error) {
	n := len(tags)
	if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n {
		return nil, ErrInvalidMove
	}

	moved := make([]Tag, 0, n)
	moved = append(moved, tags[:fromIndex]...)
	moved = append(moved, tags[fromIndex+1:]...)
	moved = append(moved[:toIndex], append([]Tag{tags[fromIndex]}, moved[toIndex:]...)...)

	for i := range moved {
		moved[i].Position = i
	}

	return moved, nil
}

// PositionUpdates extracts the batched write for a renumbered member list
func PositionUpdates(members []TeamMember) []PositionUpdate {
	updates := make([]PositionUpdate, len(members))
	for i, m := range members {
		updates[i] = PositionUpdate{ID: m.ID.String(), Position: m.Position}
	}
	return updates
}

// TagPositionUpdates extracts the batched write for a renumbered tag list
func TagPositionUpdates(tags []Tag) []PositionUpdate {
	updates := make([]PositionUpdate, len(tags))
	for i, t := range tags {
		updates[i] = PositionUpdate{ID: t.ID.String(), Position: t.Position}
	}
	return updates
}
