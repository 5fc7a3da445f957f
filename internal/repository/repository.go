package repository

import (
	"context"
	"errors"

	"github.com/vinhph2/quizhub-api/internal/domain"
)

// Storage errors surfaced by all implementations. Uniqueness violations are
// translated here once so callers never see driver-level constraint detail.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}

//go:generate mockery --name UserRepository --output ../mocks
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsernameKey(ctx context.Context, tenantID, usernameKey string) (*domain.User, error)
}

//go:generate mockery --name QuestionRepository --output ../mocks
type QuestionRepository interface {
	// CreateBatch inserts a tenant's question set in one transaction: all
	// questions appear, or none.
	CreateBatch(ctx context.Context, questions []domain.Question) error
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Question, error)
	CountByTenant(ctx context.Context, tenantID string) (int64, error)
}

//go:generate mockery --name SubmissionRepository --output ../mocks
type SubmissionRepository interface {
	Create(ctx context.Context, submission *domain.Submission) error
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	Tenant() TenantRepository
	User() UserRepository
	Question() QuestionRepository
	Submission() SubmissionRepository
}
