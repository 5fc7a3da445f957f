package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vinhph2/quizhub-api/internal/domain"
)

type TenantRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewTenantRepository(writerDB, readerDB *gorm.DB) *TenantRepository {
	return &TenantRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *TenantRepository) Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
	if tenant.ID == "" {
		tenant.ID = uuid.New().String()
	}

	if err := r.writerDB.WithContext(ctx).Create(tenant).Error; err != nil {
		return nil, translateError(err)
	}
	return tenant, nil
}

func (r *TenantRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	if err := r.readerDB.WithContext(ctx).First(&tenant, "slug = ?", slug).Error; err != nil {
		return nil, translateError(err)
	}
	return &tenant, nil
}

func (r *TenantRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.readerDB.WithContext(ctx).Model(&domain.Tenant{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}
