package team

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeMembers(names ...string) []TeamMember {
	members := make([]TeamMember, len(names))
	for i, n := range names {
		members[i] = TeamMember{ID: uuid.New(), Name: n, Position: i}
	}
	return members
}

func namesOf(members []TeamMember) []string {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name
	}
	return names
}

func TestMoveAndRenumber_Forward(t *testing.T) {
	members := makeMembers("a", "b", "c", "d")

	moved, err := MoveAndRenumber(members, 0, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "c", "a", "d"}, namesOf(moved))
	for i, m := range moved {
		assert.Equal(t, i, m.Position)
	}
}

func TestMoveAndRenumber_Backward(t *testing.T) {
	members := makeMembers("a", "b", "c", "d")

	moved, err := MoveAndRenumber(members, 3, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"d", "a", "b", "c"}, namesOf(moved))
	for i, m := range moved {
		assert.Equal(t, i, m.Position)
	}
}

func TestMoveAndRenumber_SamePosition(t *testing.T) {
	members := makeMembers("a", "b", "c")

	moved, err := MoveAndRenumber(members, 1, 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, namesOf(moved))
}

func TestMoveAndRenumber_OutOfRange(t *testing.T) {
	members := makeMembers("a", "b")

	cases := []struct {
		name     string
		from, to int
	}{
		{"negative from", -1, 0},
		{"from past end", 2, 0},
		{"negative to", 0, -1},
		{"to past end", 0, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := MoveAndRenumber(members, tc.from, tc.to)
			assert.ErrorIs(t, err, ErrInvalidMove)
		})
	}
}

func TestMoveAndRenumber_DoesNotModifyInput(t *testing.T) {
	members := makeMembers("a", "b", "c")

	_, err := MoveAndRenumber(members, 0, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, namesOf(members))
	for i, m := range members {
		assert.Equal(t, i, m.Position)
	}
}

func TestMoveAndRenumberTags(t *testing.T) {
	tags := []Tag{
		{ID: uuid.New(), Name: "math", Position: 0},
		{ID: uuid.New(), Name: "physics", Position: 1},
		{ID: uuid.New(), Name: "chemistry", Position: 2},
	}

	moved, err := MoveAndRenumberTags(tags, 2, 0)
	require.NoError(t, err)

	assert.Equal(t, "chemistry", moved[0].Name)
	assert.Equal(t, "math", moved[1].Name)
	assert.Equal(t, "physics", moved[2].Name)
	for i, tag := range moved {
		assert.Equal(t, i, tag.Position)
	}
}

func TestPositionUpdates(t *testing.T) {
	members := makeMembers("a", "b")

	updates := PositionUpdates(members)
	require.Len(t, updates, 2)
	assert.Equal(t, members[0].ID.String(), updates[0].ID)
	assert.Equal(t, 0, updates[0].Position)
	assert.Equal(t, 1, updates[1].Position)
}
