package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vinhph2/quizhub-api/internal/domain"
	"github.com/vinhph2/quizhub-api/internal/repository"
)

type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
	args := m.Called(ctx, tenant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsernameKey(ctx context.Context, tenantID, usernameKey string) (*domain.User, error) {
	args := m.Called(ctx, tenantID, usernameKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) CreateBatch(ctx context.Context, questions []domain.Question) error {
	args := m.Called(ctx, questions)
	return args.Error(0)
}

func (m *MockQuestionRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.Question, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) CountByTenant(ctx context.Context, tenantID string) (int64, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(int64), args.Error(1)
}

type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) Create(ctx context.Context, submission *domain.Submission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Tenant() repository.TenantRepository {
	return m.Called().Get(0).(repository.TenantRepository)
}

func (m *MockRepository) User() repository.UserRepository {
	return m.Called().Get(0).(repository.UserRepository)
}

func (m *MockRepository) Question() repository.QuestionRepository {
	return m.Called().Get(0).(repository.QuestionRepository)
}

func (m *MockRepository) Submission() repository.SubmissionRepository {
	return m.Called().Get(0).(repository.SubmissionRepository)
}
