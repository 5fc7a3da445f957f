package dto

import (
	"github.com/vinhph2/quizhub-api/internal/domain"
)

// FromQuestionAdmin converts a Question domain model to its admin view
func FromQuestionAdmin(q *domain.Question) AdminQuestion {
	return AdminQuestion{
		ID:       q.ID,
		Question: q.Text,
		Answer:   q.Answer,
	}
}

func FromQuestionsAdmin(questions []domain.Question) []AdminQuestion {
	views := make([]AdminQuestion, len(questions))
	for i := range questions {
		views[i] = FromQuestionAdmin(&questions[i])
	}
	return views
}

// FromQuestionsStudent converts Question domain models to the answerless
// student view
func FromQuestionsStudent(questions []domain.Question) []StudentQuestion {
	views := make([]StudentQuestion, len(questions))
	for i := range questions {
		views[i] = StudentQuestion{
			ID:       questions[i].ID,
			Question: questions[i].Text,
		}
	}
	return views
}
