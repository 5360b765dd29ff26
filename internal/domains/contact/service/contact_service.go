package service

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"

	"edubright-backend/internal/domains/contact"
	"edubright-backend/internal/shared"
	"edubright-backend/pkg/logger"
)

// Enqueuer is the slice of asynq.Client the service needs
type Enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type contactService struct {
	repo     contact.Repository
	enqueuer Enqueuer
}

func NewContactService(repo contact.Repository, enqueuer Enqueuer) contact.Service {
	return &contactService{
		repo:     repo,
		enqueuer: enqueuer,
	}
}

func (s *contactService) Submit(ctx context.Context, req *contact.SubmitRequest) (*contact.Submission, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateSubmission(ctx, req.ToEntity())
	if err != nil {
		logger.Error("failed to persist contact submission", err)
		return nil, err
	}

	s.enqueueNotify(created)

	return created, nil
}

func (s *contactService) ListSubmissions(ctx context.Context) ([]contact.Submission, error) {
	return s.repo.ListSubmissions(ctx)
}

// enqueueNotify hands the admin notification to the worker.
// Best-effort: a queue failure never fails the submission.
func (s *contactService) enqueueNotify(sub *contact.Submission) {
	if s.enqueuer == nil {
		return
	}

	payload, err := json.Marshal(shared.ContactNotifyPayload{
		SubmissionID: sub.ID.String(),
		Name:         sub.Name,
		Email:        sub.Email,
		Phone:        sub.Phone,
		Location:     sub.Location,
		GradeLevel:   sub.GradeLevel,
		Message:      sub.Message,
	})
	if err != nil {
		logger.Error("failed to marshal contact notification payload", err)
		return
	}

	if _, err := s.enqueuer.Enqueue(asynq.NewTask(shared.TypeContactNotify, payload)); err != nil {
		logger.Error("failed to enqueue contact notification", err)
	}
}
