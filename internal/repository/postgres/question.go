package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vinhph2/quizhub-api/internal/domain"
)

type QuestionRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewQuestionRepository(writerDB, readerDB *gorm.DB) *QuestionRepository {
	return &QuestionRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

// CreateBatch inserts all questions in a single transaction. A concurrent
// insert for the same tenant collides on the (tenant_id, position) unique
// index, so the losing batch rolls back whole and surfaces ErrDuplicate.
func (r *QuestionRepository) CreateBatch(ctx context.Context, questions []domain.Question) error {
	if len(questions) == 0 {
		return nil
	}

	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = uuid.New().String()
		}
	}

	err := r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&questions).Error
	})
	return translateError(err)
}

func (r *QuestionRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.Question, error) {
	var questions []domain.Question
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("position ASC").
		Find(&questions).Error
	if err != nil {
		return nil, translateError(err)
	}
	return questions, nil
}

func (r *QuestionRepository) CountByTenant(ctx context.Context, tenantID string) (int64, error) {
	var count int64
	err := r.readerDB.WithContext(ctx).
		Model(&domain.Question{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error
	if err != nil {
		return 0, translateError(err)
	}
	return count, nil
}
