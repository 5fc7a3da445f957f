package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vinhph2/quizhub-api/internal/domain"
)

type UserRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewUserRepository(writerDB, readerDB *gorm.DB) *UserRepository {
	return &UserRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	return translateError(r.writerDB.WithContext(ctx).Create(user).Error)
}

func (r *UserRepository) GetByUsernameKey(ctx context.Context, tenantID, usernameKey string) (*domain.User, error) {
	var user domain.User
	err := r.readerDB.WithContext(ctx).
		First(&user, "tenant_id = ? AND username_key = ?", tenantID, usernameKey).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}
