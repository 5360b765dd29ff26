package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edubright-backend/internal/domains/team"
)

// mockRepository implements team.Repository with overridable funcs
type mockRepository struct {
	listMembersFunc           func(ctx context.Context) ([]team.TeamMember, error)
	getMemberFunc             func(ctx context.Context, id uuid.UUID) (*team.TeamMember, error)
	createMemberFunc          func(ctx context.Context, m *team.TeamMember) (*team.TeamMember, error)
	updateMemberFunc          func(ctx context.Context, m *team.TeamMember) (*team.TeamMember, error)
	deleteMemberFunc          func(ctx context.Context, id uuid.UUID) error
	setMemberTagsFunc         func(ctx context.Context, memberID uuid.UUID, tagIDs []uuid.UUID) error
	updateMemberPositionsFunc func(ctx context.Context, updates []team.PositionUpdate) error
	listTagsFunc              func(ctx context.Context) ([]team.Tag, error)
	createTagFunc             func(ctx context.Context, t *team.Tag) (*team.Tag, error)
	updateTagFunc             func(ctx context.Context, t *team.Tag) (*team.Tag, error)
	deleteTagFunc             func(ctx context.Context, id uuid.UUID) error
	updateTagPositionsFunc    func(ctx context.Context, updates []team.PositionUpdate) error
	countTagReferencesFunc    func(ctx context.Context, tagID uuid.UUID) (int, error)
}

func (m *mockRepository) ListMembers(ctx context.Context) ([]team.TeamMember, error) {
	return m.listMembersFunc(ctx)
}

func (m *mockRepository) GetMember(ctx context.Context, id uuid.UUID) (*team.TeamMember, error) {
	return m.getMemberFunc(ctx, id)
}

func (m *mockRepository) CreateMember(ctx context.Context, member *team.TeamMember) (*team.TeamMember, error) {
	return m.createMemberFunc(ctx, member)
}

func (m *mockRepository) UpdateMember(ctx context.Context, member *team.TeamMember) (*team.TeamMember, error) {
	return m.updateMemberFunc(ctx, member)
}

func (m *mockRepository) DeleteMember(ctx context.Context, id uuid.UUID) error {
	return m.deleteMemberFunc(ctx, id)
}

func (m *mockRepository) SetMemberTags(ctx context.Context, memberID uuid.UUID, tagIDs []uuid.UUID) error {
	return m.setMemberTagsFunc(ctx, memberID, tagIDs)
}

func (m *mockRepository) UpdateMemberPositions(ctx context.Context, updates []team.PositionUpdate) error {
	return m.updateMemberPositionsFunc(ctx, updates)
}

func (m *mockRepository) ListTags(ctx context.Context) ([]team.Tag, error) {
	return m.listTagsFunc(ctx)
}

func (m *mockRepository) CreateTag(ctx context.Context, t *team.Tag) (*team.Tag, error) {
	return m.createTagFunc(ctx, t)
}

func (m *mockRepository) UpdateTag(ctx context.Context, t *team.Tag) (*team.Tag, error) {
	return m.updateTagFunc(ctx, t)
}

func (m *mockRepository) DeleteTag(ctx context.Context, id uuid.UUID) error {
	return m.deleteTagFunc(ctx, id)
}

func (m *mockRepository) UpdateTagPositions(ctx context.Context, updates []team.PositionUpdate) error {
	return m.updateTagPositionsFunc(ctx, updates)
}

func (m *mockRepository) CountTagReferences(ctx context.Context, tagID uuid.UUID) (int, error) {
	return m.countTagReferencesFunc(ctx, tagID)
}

func fixtureMembers(n int) []team.TeamMember {
	members := make([]team.TeamMember, n)
	for i := range members {
		members[i] = team.TeamMember{ID: uuid.New(), Name: "m", Title: "t", Position: i}
	}
	return members
}

func TestReorderMembers_PersistsRenumberedPositions(t *testing.T) {
	members := fixtureMembers(3)
	var persisted []team.PositionUpdate

	repo := &mockRepository{
		listMembersFunc: func(ctx context.Context) ([]team.TeamMember, error) {
			return members, nil
		},
		updateMemberPositionsFunc: func(ctx context.Context, updates []team.PositionUpdate) error {
			persisted = updates
			return nil
		},
	}

	svc := NewTeamService(repo)
	moved, err := svc.ReorderMembers(context.Background(), 2, 0)
	require.NoError(t, err)

	require.Len(t, moved, 3)
	assert.Equal(t, members[2].ID, moved[0].ID)
	assert.Equal(t, members[0].ID, moved[1].ID)
	assert.Equal(t, members[1].ID, moved[2].ID)

	require.Len(t, persisted, 3)
	for i, u := range persisted {
		assert.Equal(t, i, u.Position)
		assert.Equal(t, moved[i].ID.String(), u.ID)
	}
}

func TestReorderMembers_PersistFailureReturnsAuthoritativeList(t *testing.T) {
	members := fixtureMembers(3)
	writeErr := errors.New("write failed")
	calls := 0

	repo := &mockRepository{
		listMembersFunc: func(ctx context.Context) ([]team.TeamMember, error) {
			calls++
			return members, nil
		},
		updateMemberPositionsFunc: func(ctx context.Context, updates []team.PositionUpdate) error {
			return writeErr
		},
	}

	svc := NewTeamService(repo)
	got, err := svc.ReorderMembers(context.Background(), 0, 2)

	assert.ErrorIs(t, err, writeErr)
	// second list read is the authoritative reload after the failed write
	assert.Equal(t, 2, calls)
	require.Len(t, got, 3)
	assert.Equal(t, members[0].ID, got[0].ID)
}

func TestReorderMembers_OutOfRange(t *testing.T) {
	repo := &mockRepository{
		listMembersFunc: func(ctx context.Context) ([]team.TeamMember, error) {
			return fixtureMembers(2), nil
		},
	}

	svc := NewTeamService(repo)
	_, err := svc.ReorderMembers(context.Background(), 0, 5)
	assert.ErrorIs(t, err, team.ErrInvalidMove)
}

func TestCreateMember_Validation(t *testing.T) {
	svc := NewTeamService(&mockRepository{})

	_, err := svc.CreateMember(context.Background(), &team.CreateMemberRequest{
		Name: "", Title: "Tutor",
	})
	assert.Error(t, err)
}

func TestCreateMember_AppliesTags(t *testing.T) {
	memberID := uuid.New()
	tagID := uuid.New()
	var appliedTags []uuid.UUID

	repo := &mockRepository{
		createMemberFunc: func(ctx context.Context, m *team.TeamMember) (*team.TeamMember, error) {
			m.ID = memberID
			return m, nil
		},
		setMemberTagsFunc: func(ctx context.Context, id uuid.UUID, tagIDs []uuid.UUID) error {
			appliedTags = tagIDs
			return nil
		},
		getMemberFunc: func(ctx context.Context, id uuid.UUID) (*team.TeamMember, error) {
			return &team.TeamMember{ID: id, Tags: []team.Tag{{ID: tagID}}}, nil
		},
	}

	svc := NewTeamService(repo)
	created, err := svc.CreateMember(context.Background(), &team.CreateMemberRequest{
		Name:   "Alex",
		Title:  "Lead Tutor",
		TagIDs: []uuid.UUID{tagID},
	})
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{tagID}, appliedTags)
	require.Len(t, created.Tags, 1)
	assert.Equal(t, tagID, created.Tags[0].ID)
}

func TestDeleteTag_BlockedWhenReferenced(t *testing.T) {
	repo := &mockRepository{
		countTagReferencesFunc: func(ctx context.Context, tagID uuid.UUID) (int, error) {
			return 2, nil
		},
	}

	svc := NewTeamService(repo)
	err := svc.DeleteTag(context.Background(), uuid.New())
	assert.ErrorIs(t, err, team.ErrTagInUse)
}

func TestDeleteTag_Unreferenced(t *testing.T) {
	deleted := false
	repo := &mockRepository{
		countTagReferencesFunc: func(ctx context.Context, tagID uuid.UUID) (int, error) {
			return 0, nil
		},
		deleteTagFunc: func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}

	svc := NewTeamService(repo)
	require.NoError(t, svc.DeleteTag(context.Background(), uuid.New()))
	assert.True(t, deleted)
}

func TestCreateTag_RejectsBadColor(t *testing.T) {
	svc := NewTeamService(&mockRepository{})

	_, err := svc.CreateTag(context.Background(), &team.CreateTagRequest{
		Name:  "math",
		Color: "red",
	})
	assert.Error(t, err)
}
