package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/vinhph2/quizhub-api/internal/api/dto"
	"github.com/vinhph2/quizhub-api/internal/domain"
	"github.com/vinhph2/quizhub-api/internal/repository"
	"github.com/vinhph2/quizhub-api/pkg/digest"
	"github.com/vinhph2/quizhub-api/pkg/logger"
)

type AccountService struct {
	repo     repository.Repository
	digester digest.Digester
	logger   *logger.Logger
}

func NewAccountService(repo repository.Repository, digester digest.Digester, logger *logger.Logger) *AccountService {
	return &AccountService{
		repo:     repo,
		digester: digester,
		logger:   logger,
	}
}

func (s *AccountService) Signup(ctx context.Context, req dto.AuthRequest) (dto.SignupResponse, error) {
	tenant, err := resolveTenant(ctx, s.repo, req.Tenant)
	if err != nil {
		return dto.SignupResponse{}, err
	}

	username := strings.TrimSpace(req.Username)
	usernameKey := strings.ToLower(username)

	// The same username is fine in another tenant; only this tenant's
	// namespace is checked.
	_, err = s.repo.User().GetByUsernameKey(ctx, tenant.ID, usernameKey)
	if err == nil {
		return dto.SignupResponse{}, ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return dto.SignupResponse{}, fmt.Errorf("failed to check username: %w", err)
	}

	passwordDigest, err := s.digester.Hash(strings.TrimSpace(req.Password))
	if err != nil {
		return dto.SignupResponse{}, fmt.Errorf("failed to digest password: %w", err)
	}

	user := &domain.User{
		TenantID:       tenant.ID,
		Username:       username,
		UsernameKey:    usernameKey,
		PasswordDigest: passwordDigest,
	}

	if err := s.repo.User().Create(ctx, user); err != nil {
		// a concurrent signup with the same (username, tenant) won the insert
		if errors.Is(err, repository.ErrDuplicate) {
			return dto.SignupResponse{}, ErrUsernameTaken
		}
		return dto.SignupResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return dto.SignupResponse{
		Message:  "Signup successful",
		Tenant:   tenant.Name,
		Username: username,
	}, nil
}

func (s *AccountService) Login(ctx context.Context, req dto.AuthRequest) (dto.MessageResponse, error) {
	tenant, err := resolveTenant(ctx, s.repo, req.Tenant)
	if err != nil {
		return dto.MessageResponse{}, err
	}

	usernameKey := strings.ToLower(strings.TrimSpace(req.Username))

	// An unknown user and a wrong password both answer ErrInvalidCredentials
	// so the response does not reveal which part failed.
	user, err := s.repo.User().GetByUsernameKey(ctx, tenant.ID, usernameKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.MessageResponse{}, ErrInvalidCredentials
		}
		return dto.MessageResponse{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.digester.Verify(strings.TrimSpace(req.Password), user.PasswordDigest) {
		return dto.MessageResponse{}, ErrInvalidCredentials
	}

	s.logger.Info("Successful login",
		zap.String("tenant", tenant.Name),
		zap.String("username", user.Username))

	return dto.MessageResponse{Message: "Login successful"}, nil
}
