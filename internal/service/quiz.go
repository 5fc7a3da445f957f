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

type QuizService struct {
	repo   repository.Repository
	logger *logger.Logger
}

func NewQuizService(repo repository.Repository, logger *logger.Logger) *QuizService {
	return &QuizService{
		repo:   repo,
		logger: logger,
	}
}

// Submit scores one quiz attempt against the tenant's question set and
// records it. Questions and users are read, never modified.
func (s *QuizService) Submit(ctx context.Context, tenantName string, req dto.QuizSubmissionRequest) (dto.QuizResultResponse, error) {
	tenant, err := resolveTenant(ctx, s.repo, tenantName)
	if err != nil {
		return dto.QuizResultResponse{}, err
	}

	usernameKey := strings.ToLower(strings.TrimSpace(req.Username))
	user, err := s.repo.User().GetByUsernameKey(ctx, tenant.ID, usernameKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.QuizResultResponse{}, ErrUserNotFound
		}
		return dto.QuizResultResponse{}, fmt.Errorf("failed to look up user: %w", err)
	}

	questions, err := s.repo.Question().ListByTenant(ctx, tenant.ID)
	if err != nil {
		return dto.QuizResultResponse{}, fmt.Errorf("failed to list questions: %w", err)
	}
	if len(questions) == 0 {
		return dto.QuizResultResponse{}, ErrNoQuestions
	}

	score := scoreAnswers(questions, req.Answers)

	submission := &domain.Submission{
		TenantID: tenant.ID,
		UserID:   user.ID,
		Answers:  domain.AnswerList(req.Answers),
		Score:    score,
	}
	if err := s.repo.Submission().Create(ctx, submission); err != nil {
		return dto.QuizResultResponse{}, fmt.Errorf("failed to record submission: %w", err)
	}

	s.logger.Info("Quiz submitted",
		zap.String("tenant", tenant.Name),
		zap.String("username", user.Username),
		zap.Int("score", score),
		zap.Int("total", len(questions)))

	return dto.QuizResultResponse{
		Message:  fmt.Sprintf("You scored %d/%d", score, len(questions)),
		Username: user.Username,
		Score:    score,
		Total:    len(questions),
	}, nil
}

// scoreAnswers counts matches over the provided prefix. A short submission
// is scored over the answers it has with no penalty; entries beyond the
// question count are ignored.
func scoreAnswers(questions []domain.Question, answers []bool) int {
	score := 0
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.Answer {
			score++
		}
	}
	return score
}
