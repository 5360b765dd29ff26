package service

import (
	"context"

	"github.com/google/uuid"

	"edubright-backend/internal/domains/careers"
)

type careersService struct {
	repo careers.Repository
}

func NewCareersService(repo careers.Repository) careers.Service {
	return &careersService{repo: repo}
}

func (s *careersService) ListPublicJobs(ctx context.Context) ([]careers.JobPosting, error) {
	return s.repo.ListJobs(ctx, true)
}

func (s *careersService) ListAllJobs(ctx context.Context) ([]careers.JobPosting, error) {
	return s.repo.ListJobs(ctx, false)
}

func (s *careersService) GetJob(ctx context.Context, id uuid.UUID) (*careers.JobPosting, error) {
	return s.repo.GetJob(ctx, id)
}

func (s *careersService) CreateJob(ctx context.Context, req *careers.CreateJobRequest) (*careers.JobPosting, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.CreateJob(ctx, req.ToEntity())
}

func (s *careersService) UpdateJob(ctx context.Context, id uuid.UUID, req *careers.UpdateJobRequest) (*careers.JobPosting, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyToEntity(existing)

	return s.repo.UpdateJob(ctx, existing)
}

func (s *careersService) DeleteJob(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteJob(ctx, id)
}
