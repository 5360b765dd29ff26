package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"edubright-backend/internal/domains/user"
	"edubright-backend/pkg/jwt"
	"edubright-backend/pkg/logger"
)

type userService struct {
	repo user.Repository
	jwt  *jwt.Manager
}

func NewUserService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &userService{
		repo: repo,
		jwt:  jwtManager,
	}
}

func (s *userService) Register(ctx context.Context, req *user.RegisterRequest) (*user.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.CreateUser(ctx, &user.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         user.RoleUser,
	})
	if err != nil {
		return nil, err
	}

	return s.issueTokens(created)
}

func (s *userService) Login(ctx context.Context, req *user.LoginRequest) (*user.AuthResponse, error) {
	account, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	return s.issueTokens(account)
}

func (s *userService) Me(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *userService) issueTokens(account *user.User) (*user.AuthResponse, error) {
	access, err := s.jwt.GenerateAccessToken(account.ID.String(), account.Email, account.Role)
	if err != nil {
		logger.Error("failed to generate access token", err)
		return nil, err
	}

	refresh, err := s.jwt.GenerateRefreshToken(account.ID.String())
	if err != nil {
		logger.Error("failed to generate refresh token", err)
		return nil, err
	}

	return &user.AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         account,
	}, nil
}
