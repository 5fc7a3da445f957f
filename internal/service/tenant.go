package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vinhph2/quizhub-api/internal/api/dto"
	"github.com/vinhph2/quizhub-api/internal/domain"
	"github.com/vinhph2/quizhub-api/internal/repository"
)

// tenantSlug normalizes a tenant name for comparison: surrounding whitespace
// trimmed, lowercased. The stored Name keeps the trimmed, case-preserved
// form.
func tenantSlug(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// resolveTenant looks a tenant up by normalized name. Every tenant-scoped
// operation goes through here before touching any other entity.
func resolveTenant(ctx context.Context, repo repository.Repository, name string) (*domain.Tenant, error) {
	tenant, err := repo.Tenant().GetBySlug(ctx, tenantSlug(name))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to resolve tenant: %w", err)
	}
	return tenant, nil
}

type TenantService struct {
	repo repository.Repository
}

func NewTenantService(repo repository.Repository) *TenantService {
	return &TenantService{repo: repo}
}

func (s *TenantService) Create(ctx context.Context, req dto.CreateTenantRequest) (dto.CreateTenantResponse, error) {
	name := strings.TrimSpace(req.Name)
	slug := tenantSlug(req.Name)

	exists, err := s.repo.Tenant().ExistsBySlug(ctx, slug)
	if err != nil {
		return dto.CreateTenantResponse{}, fmt.Errorf("failed to check tenant existence: %w", err)
	}
	if exists {
		return dto.CreateTenantResponse{}, ErrTenantExists
	}

	tenant := &domain.Tenant{
		Name:        name,
		Slug:        slug,
		DisplayName: strings.TrimSpace(req.DisplayName),
	}

	created, err := s.repo.Tenant().Create(ctx, tenant)
	if err != nil {
		// a concurrent create with the same slug won the insert
		if errors.Is(err, repository.ErrDuplicate) {
			return dto.CreateTenantResponse{}, ErrTenantExists
		}
		return dto.CreateTenantResponse{}, fmt.Errorf("failed to create tenant: %w", err)
	}

	return dto.CreateTenantResponse{
		Message:  "Tenant created successfully",
		TenantID: created.ID,
		Name:     created.Name,
	}, nil
}

// Exists reports whether a tenant with the given normalized name is
// registered. Absence is the answer, not an error.
func (s *TenantService) Exists(ctx context.Context, name string) (bool, error) {
	exists, err := s.repo.Tenant().ExistsBySlug(ctx, tenantSlug(name))
	if err != nil {
		return false, fmt.Errorf("failed to check tenant existence: %w", err)
	}
	return exists, nil
}
