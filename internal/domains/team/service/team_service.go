package service

import (
	"context"

	"github.com/google/uuid"

	"edubright-backend/internal/domains/team"
	"edubright-backend/pkg/logger"
)

type teamService struct {
	repo team.Repository
}

func NewTeamService(repo team.Repository) team.Service {
	return &teamService{repo: repo}
}

func (s *teamService) ListMembers(ctx context.Context) ([]team.TeamMember, error) {
	return s.repo.ListMembers(ctx)
}

func (s *teamService) GetMember(ctx context.Context, id uuid.UUID) (*team.TeamMember, error) {
	return s.repo.GetMember(ctx, id)
}

func (s *teamService) CreateMember(ctx context.Context, req *team.CreateMemberRequest) (*team.TeamMember, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateMember(ctx, req.ToEntity())
	if err != nil {
		logger.Error("failed to create team member", err)
		return nil, err
	}

	if len(req.TagIDs) > 0 {
		if err := s.repo.SetMemberTags(ctx, created.ID, req.TagIDs); err != nil {
			logger.Error("failed to set tags on new team member", err)
			return nil, err
		}
		return s.repo.GetMember(ctx, created.ID)
	}

	return created, nil
}

func (s *teamService) UpdateMember(ctx context.Context, id uuid.UUID, req *team.UpdateMemberRequest) (*team.TeamMember, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetMember(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyToEntity(existing)

	if _, err := s.repo.UpdateMember(ctx, existing); err != nil {
		logger.Error("failed to update team member", err)
		return nil, err
	}

	// Tag edits ride along with the member edit, replace-all
	if err := s.repo.SetMemberTags(ctx, id, req.TagIDs); err != nil {
		logger.Error("failed to replace team member tags", err)
		return nil, err
	}

	return s.repo.GetMember(ctx, id)
}

func (s *teamService) DeleteMember(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteMember(ctx, id)
}

// ReorderMembers computes the new ordering in memory and persists every
// changed position in one batched write. If the write fails, the
// authoritative list is re-read so the caller can roll the UI back.
func (s *teamService) ReorderMembers(ctx context.Context, fromIndex, toIndex int) ([]team.TeamMember, error) {
	members, err := s.repo.ListMembers(ctx)
	if err != nil {
		return nil, err
	}

	moved, err := team.MoveAndRenumber(members, fromIndex, toIndex)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateMemberPositions(ctx, team.PositionUpdates(moved)); err != nil {
		logger.Error("failed to persist member reorder, reloading", err)
		authoritative, readErr := s.repo.ListMembers(ctx)
		if readErr != nil {
			return nil, err
		}
		return authoritative, err
	}

	return moved, nil
}

func (s *teamService) SetMemberTags(ctx context.Context, memberID uuid.UUID, tagIDs []uuid.UUID) error {
	if _, err := s.repo.GetMember(ctx, memberID); err != nil {
		return err
	}
	return s.repo.SetMemberTags(ctx, memberID, tagIDs)
}

func (s *teamService) ListTags(ctx context.Context) ([]team.Tag, error) {
	return s.repo.ListTags(ctx)
}

func (s *teamService) CreateTag(ctx context.Context, req *team.CreateTagRequest) (*team.Tag, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.CreateTag(ctx, &team.Tag{
		Name:  req.Name,
		Color: req.Color,
	})
}

func (s *teamService) UpdateTag(ctx context.Context, id uuid.UUID, req *team.UpdateTagRequest) (*team.Tag, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.UpdateTag(ctx, &team.Tag{
		ID:    id,
		Name:  req.Name,
		Color: req.Color,
	})
}

func (s *teamService) DeleteTag(ctx context.Context, id uuid.UUID) error {
	refs, err := s.repo.CountTagReferences(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return team.ErrTagInUse
	}

	return s.repo.DeleteTag(ctx, id)
}

func (s *teamService) ReorderTags(ctx context.Context, fromIndex, toIndex int) ([]team.Tag, error) {
	tags, err := s.repo.ListTags(ctx)
	if err != nil {
		return nil, err
	}

	moved, err := team.MoveAndRenumberTags(tags, fromIndex, toIndex)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateTagPositions(ctx, team.TagPositionUpdates(moved)); err != nil {
		logger.Error("failed to persist tag reorder, reloading", err)
		authoritative, readErr := s.repo.ListTags(ctx)
		if readErr != nil {
			return nil, err
		}
		return authoritative, err
	}

	return moved, nil
}
