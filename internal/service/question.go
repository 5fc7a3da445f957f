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
	"github.com/vinhph2/quizhub-api/pkg/logger"
)

type QuestionService struct {
	repo   repository.Repository
	logger *logger.Logger
}

func NewQuestionService(repo repository.Repository, logger *logger.Logger) *QuestionService {
	return &QuestionService{
		repo:   repo,
		logger: logger,
	}
}

// SetQuestions populates a tenant's question set exactly once. If the set
// already exists it is returned unchanged and the submitted questions are
// discarded without error, even when an admin intends an overwrite.
func (s *QuestionService) SetQuestions(ctx context.Context, tenantName string, req dto.SetQuestionsRequest) (dto.SetQuestionsResponse, error) {
	tenant, err := resolveTenant(ctx, s.repo, tenantName)
	if err != nil {
		return dto.SetQuestionsResponse{}, err
	}

	existing, err := s.repo.Question().ListByTenant(ctx, tenant.ID)
	if err != nil {
		return dto.SetQuestionsResponse{}, fmt.Errorf("failed to list questions: %w", err)
	}
	if len(existing) > 0 {
		return existingQuestionsResponse(existing), nil
	}

	questions := make([]domain.Question, len(req.Questions))
	for i, q := range req.Questions {
		questions[i] = domain.Question{
			TenantID: tenant.ID,
			Position: i,
			Text:     strings.TrimSpace(q.Question),
			Answer:   *q.Answer,
		}
	}

	if err := s.repo.Question().CreateBatch(ctx, questions); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// a concurrent first-time set won; hand back the winning set
			winners, listErr := s.repo.Question().ListByTenant(ctx, tenant.ID)
			if listErr != nil {
				return dto.SetQuestionsResponse{}, fmt.Errorf("failed to list questions: %w", listErr)
			}
			return existingQuestionsResponse(winners), nil
		}
		return dto.SetQuestionsResponse{}, fmt.Errorf("failed to create questions: %w", err)
	}

	s.logger.Info("Admin set questions",
		zap.String("tenant", tenant.Name),
		zap.Int("count", len(questions)))

	return dto.SetQuestionsResponse{
		Message: fmt.Sprintf("%d questions set for %s", len(questions), tenant.Name),
	}, nil
}

func existingQuestionsResponse(questions []domain.Question) dto.SetQuestionsResponse {
	return dto.SetQuestionsResponse{
		Message:   "Questions already exist for this tenant",
		Questions: dto.FromQuestionsAdmin(questions),
	}
}

// StudentQuestions returns the tenant's questions in insertion order with
// the answer key withheld.
func (s *QuestionService) StudentQuestions(ctx context.Context, tenantName string) ([]dto.StudentQuestion, error) {
	questions, err := s.questionsForTenant(ctx, tenantName)
	if err != nil {
		return nil, err
	}
	return dto.FromQuestionsStudent(questions), nil
}

// AdminQuestions returns the tenant's questions in insertion order with the
// answer key included.
func (s *QuestionService) AdminQuestions(ctx context.Context, tenantName string) ([]dto.AdminQuestion, error) {
	questions, err := s.questionsForTenant(ctx, tenantName)
	if err != nil {
		return nil, err
	}
	return dto.FromQuestionsAdmin(questions), nil
}

func (s *QuestionService) questionsForTenant(ctx context.Context, tenantName string) ([]domain.Question, error) {
	tenant, err := resolveTenant(ctx, s.repo, tenantName)
	if err != nil {
		return nil, err
	}

	questions, err := s.repo.Question().ListByTenant(ctx, tenant.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}
