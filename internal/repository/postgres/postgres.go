package postgres

import (
	"gorm.io/gorm"

	"github.com/vinhph2/quizhub-api/internal/repository"
)

type postgresRepository struct {
	writerDB       *gorm.DB
	readerDB       *gorm.DB
	tenantRepo     repository.TenantRepository
	userRepo       repository.UserRepository
	questionRepo   repository.QuestionRepository
	submissionRepo repository.SubmissionRepository
}

func NewPostgresRepository(writerDB, readerDB *gorm.DB) repository.Repository {
	return &postgresRepository{
		writerDB:       writerDB,
		readerDB:       readerDB,
		tenantRepo:     NewTenantRepository(writerDB, readerDB),
		userRepo:       NewUserRepository(writerDB, readerDB),
		questionRepo:   NewQuestionRepository(writerDB, readerDB),
		submissionRepo: NewSubmissionRepository(writerDB, readerDB),
	}
}

func (r *postgresRepository) Tenant() repository.TenantRepository {
	return r.tenantRepo
}

func (r *postgresRepository) User() repository.UserRepository {
	return r.userRepo
}

func (r *postgresRepository) Question() repository.QuestionRepository {
	return r.questionRepo
}

func (r *postgresRepository) Submission() repository.SubmissionRepository {
	return r.submissionRepo
}
