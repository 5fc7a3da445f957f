package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vinhph2/quizhub-api/internal/config"
	"github.com/vinhph2/quizhub-api/internal/domain"
	"github.com/vinhph2/quizhub-api/internal/repository"
)

// The repositories run against in-memory sqlite here; gorm's TranslateError
// normalizes unique violations across drivers, so the constraint behavior
// under test is the same one postgres enforces in production.
type RepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo repository.Repository
}

func (s *RepositoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	s.Require().NoError(err)
	s.Require().NoError(config.Migrate(db))

	s.db = db
	s.repo = NewPostgresRepository(db, db)
}

func TestRepository(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func (s *RepositoryTestSuite) createTenant(name, slug string) *domain.Tenant {
	tenant, err := s.repo.Tenant().Create(context.Background(), &domain.Tenant{
		Name:        name,
		Slug:        slug,
		DisplayName: name,
	})
	s.Require().NoError(err)
	return tenant
}

func (s *RepositoryTestSuite) TestTenant_CreateAndGetBySlug() {
	ctx := context.Background()
	created := s.createTenant("Acme", "acme")
	s.NotEmpty(created.ID)

	found, err := s.repo.Tenant().GetBySlug(ctx, "acme")
	s.NoError(err)
	s.Equal(created.ID, found.ID)
	// stored name keeps its original case
	s.Equal("Acme", found.Name)
}

func (s *RepositoryTestSuite) TestTenant_DuplicateSlug() {
	ctx := context.Background()
	s.createTenant("Acme", "acme")

	_, err := s.repo.Tenant().Create(ctx, &domain.Tenant{Name: "ACME", Slug: "acme", DisplayName: "x"})
	s.ErrorIs(err, repository.ErrDuplicate)
}

func (s *RepositoryTestSuite) TestTenant_GetBySlugMissing() {
	_, err := s.repo.Tenant().GetBySlug(context.Background(), "nowhere")
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *RepositoryTestSuite) TestTenant_ExistsBySlug() {
	ctx := context.Background()
	s.createTenant("Acme", "acme")

	exists, err := s.repo.Tenant().ExistsBySlug(ctx, "acme")
	s.NoError(err)
	s.True(exists)

	exists, err = s.repo.Tenant().ExistsBySlug(ctx, "nowhere")
	s.NoError(err)
	s.False(exists)
}

func (s *RepositoryTestSuite) TestUser_UsernameUniquePerTenant() {
	ctx := context.Background()
	acme := s.createTenant("Acme", "acme")
	globex := s.createTenant("Globex", "globex")

	err := s.repo.User().Create(ctx, &domain.User{
		TenantID: acme.ID, Username: "Alice", UsernameKey: "alice", PasswordDigest: "d",
	})
	s.Require().NoError(err)

	// same normalized username in the same tenant conflicts
	err = s.repo.User().Create(ctx, &domain.User{
		TenantID: acme.ID, Username: "ALICE", UsernameKey: "alice", PasswordDigest: "d",
	})
	s.ErrorIs(err, repository.ErrDuplicate)

	// the same username under a different tenant is fine
	err = s.repo.User().Create(ctx, &domain.User{
		TenantID: globex.ID, Username: "Alice", UsernameKey: "alice", PasswordDigest: "d",
	})
	s.NoError(err)
}

func (s *RepositoryTestSuite) TestUser_GetByUsernameKey() {
	ctx := context.Background()
	acme := s.createTenant("Acme", "acme")

	err := s.repo.User().Create(ctx, &domain.User{
		TenantID: acme.ID, Username: "Alice", UsernameKey: "alice", PasswordDigest: "d",
	})
	s.Require().NoError(err)

	user, err := s.repo.User().GetByUsernameKey(ctx, acme.ID, "alice")
	s.NoError(err)
	s.Equal("Alice", user.Username)

	_, err = s.repo.User().GetByUsernameKey(ctx, acme.ID, "bob")
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *RepositoryTestSuite) TestQuestion_BatchInsertAndOrderedRead() {
	ctx := context.Background()
	acme := s.createTenant("Acme", "acme")

	batch := []domain.Question{
		{TenantID: acme.ID, Position: 0, Text: "first", Answer: true},
		{TenantID: acme.ID, Position: 1, Text: "second", Answer: false},
		{TenantID: acme.ID, Position: 2, Text: "third", Answer: true},
	}
	s.Require().NoError(s.repo.Question().CreateBatch(ctx, batch))

	questions, err := s.repo.Question().ListByTenant(ctx, acme.ID)
	s.NoError(err)
	s.Require().Len(questions, 3)
	s.Equal("first", questions[0].Text)
	s.Equal("second", questions[1].Text)
	s.Equal("third", questions[2].Text)

	count, err := s.repo.Question().CountByTenant(ctx, acme.ID)
	s.NoError(err)
	s.Equal(int64(3), count)
}

func (s *RepositoryTestSuite) TestQuestion_SecondBatchRollsBackWhole() {
	ctx := context.Background()
	acme := s.createTenant("Acme", "acme")

	first := []domain.Question{
		{TenantID: acme.ID, Position: 0, Text: "first", Answer: true},
		{TenantID: acme.ID, Position: 1, Text: "second", Answer: false},
	}
	s.Require().NoError(s.repo.Question().CreateBatch(ctx, first))

	// collides on (tenant_id, position); none of its rows may survive
	second := []domain.Question{
		{TenantID: acme.ID, Position: 0, Text: "usurper", Answer: false},
		{TenantID: acme.ID, Position: 2, Text: "extra", Answer: true},
	}
	err := s.repo.Question().CreateBatch(ctx, second)
	s.ErrorIs(err, repository.ErrDuplicate)

	count, err := s.repo.Question().CountByTenant(ctx, acme.ID)
	s.NoError(err)
	s.Equal(int64(2), count)
}

func (s *RepositoryTestSuite) TestQuestion_TenantIsolation() {
	ctx := context.Background()
	acme := s.createTenant("Acme", "acme")
	globex := s.createTenant("Globex", "globex")

	s.Require().NoError(s.repo.Question().CreateBatch(ctx, []domain.Question{
		{TenantID: acme.ID, Position: 0, Text: "acme question", Answer: true},
	}))

	questions, err := s.repo.Question().ListByTenant(ctx, globex.ID)
	s.NoError(err)
	s.Empty(questions)
}

func (s *RepositoryTestSuite) TestSubmission_CreateAndRoundTrip() {
	ctx := context.Background()
	acme := s.createTenant("Acme", "acme")

	user := &domain.User{TenantID: acme.ID, Username: "Alice", UsernameKey: "alice", PasswordDigest: "d"}
	s.Require().NoError(s.repo.User().Create(ctx, user))

	submission := &domain.Submission{
		TenantID: acme.ID,
		UserID:   user.ID,
		Answers:  domain.AnswerList{true, false, true, true},
		Score:    2,
	}
	s.Require().NoError(s.repo.Submission().Create(ctx, submission))
	s.NotEmpty(submission.ID)

	var stored domain.Submission
	s.Require().NoError(s.db.First(&stored, "id = ?", submission.ID).Error)
	s.Equal(domain.AnswerList{true, false, true, true}, stored.Answers)
	s.Equal(2, stored.Score)
	s.Equal(user.ID, stored.UserID)
}

func (s *RepositoryTestSuite) TestSubmission_MultiplePerUser() {
	ctx := context.Background()
	acme := s.createTenant("Acme", "acme")

	user := &domain.User{TenantID: acme.ID, Username: "Alice", UsernameKey: "alice", PasswordDigest: "d"}
	s.Require().NoError(s.repo.User().Create(ctx, user))

	// no uniqueness constraint: every attempt is its own row
	for i := 0; i < 3; i++ {
		err := s.repo.Submission().Create(ctx, &domain.Submission{
			TenantID: acme.ID,
			UserID:   user.ID,
			Answers:  domain.AnswerList{true},
			Score:    i,
		})
		s.NoError(err)
	}

	var count int64
	s.Require().NoError(s.db.Model(&domain.Submission{}).Where("user_id = ?", user.ID).Count(&count).Error)
	s.Equal(int64(3), count)
}
