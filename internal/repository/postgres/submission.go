package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vinhph2/quizhub-api/internal/domain"
)

type SubmissionRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewSubmissionRepository(writerDB, readerDB *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *SubmissionRepository) Create(ctx context.Context, submission *domain.Submission) error {
	if submission.ID == "" {
		submission.ID = uuid.New().String()
	}

	return translateError(r.writerDB.WithContext(ctx).Create(submission).Error)
}
