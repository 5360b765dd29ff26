package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edubright-backend/internal/domains/careers"
)

type mockRepository struct {
	listJobsFunc  func(ctx context.Context, activeOnly bool) ([]careers.JobPosting, error)
	getJobFunc    func(ctx context.Context, id uuid.UUID) (*careers.JobPosting, error)
	createJobFunc func(ctx context.Context, j *careers.JobPosting) (*careers.JobPosting, error)
	updateJobFunc func(ctx context.Context, j *careers.JobPosting) (*careers.JobPosting, error)
	deleteJobFunc func(ctx context.Context, id uuid.UUID) error
}

func (m *mockRepository) ListJobs(ctx context.Context, activeOnly bool) ([]careers.JobPosting, error) {
	return m.listJobsFunc(ctx, activeOnly)
}

func (m *mockRepository) GetJob(ctx context.Context, id uuid.UUID) (*careers.JobPosting, error) {
	return m.getJobFunc(ctx, id)
}

func (m *mockRepository) CreateJob(ctx context.Context, j *careers.JobPosting) (*careers.JobPosting, error) {
	return m.createJobFunc(ctx, j)
}

func (m *mockRepository) UpdateJob(ctx context.Context, j *careers.JobPosting) (*careers.JobPosting, error) {
	return m.updateJobFunc(ctx, j)
}

func (m *mockRepository) DeleteJob(ctx context.Context, id uuid.UUID) error {
	return m.deleteJobFunc(ctx, id)
}

func TestListPublicJobs_ActiveOnly(t *testing.T) {
	var requestedActiveOnly bool
	repo := &mockRepository{
		listJobsFunc: func(ctx context.Context, activeOnly bool) ([]careers.JobPosting, error) {
			requestedActiveOnly = activeOnly
			return []careers.JobPosting{{Status: careers.StatusActive}}, nil
		},
	}

	svc := NewCareersService(repo)
	_, err := svc.ListPublicJobs(context.Background())
	require.NoError(t, err)
	assert.True(t, requestedActiveOnly)

	_, err = svc.ListAllJobs(context.Background())
	require.NoError(t, err)
	assert.False(t, requestedActiveOnly)
}

func TestCreateJob_DefaultsToDraft(t *testing.T) {
	var created *careers.JobPosting
	repo := &mockRepository{
		createJobFunc: func(ctx context.Context, j *careers.JobPosting) (*careers.JobPosting, error) {
			created = j
			return j, nil
		},
	}

	svc := NewCareersService(repo)
	_, err := svc.CreateJob(context.Background(), &careers.CreateJobRequest{
		Title: "Math Tutor",
		Type:  careers.TypePartTime,
	})
	require.NoError(t, err)
	assert.Equal(t, careers.StatusDraft, created.Status)
}

func TestCreateJob_RejectsUnknownType(t *testing.T) {
	svc := NewCareersService(&mockRepository{})

	_, err := svc.CreateJob(context.Background(), &careers.CreateJobRequest{
		Title: "Math Tutor",
		Type:  "Freelance",
	})
	assert.Error(t, err)
}

func TestCreateJob_RejectsUnknownStatus(t *testing.T) {
	svc := NewCareersService(&mockRepository{})

	_, err := svc.CreateJob(context.Background(), &careers.CreateJobRequest{
		Title:  "Math Tutor",
		Type:   careers.TypeFullTime,
		Status: "archived",
	})
	assert.Error(t, err)
}
