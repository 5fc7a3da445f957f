package dto

// CreateTenantResponse represents the response after registering a tenant
type CreateTenantResponse struct {
	Message  string `json:"message" example:"Tenant created successfully"`
	TenantID string `json:"tenant_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name     string `json:"name" example:"acme"`
}

type TenantCheckResponse struct {
	Exists bool `json:"exists" example:"true"`
}

type SignupResponse struct {
	Message  string `json:"message" example:"Signup successful"`
	Tenant   string `json:"tenant" example:"acme"`
	Username string `json:"username" example:"alice"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Login successful"`
}

// StudentQuestion is the student view of a question: the correct answer is
// deliberately absent from the type, not just omitted from the payload.
type StudentQuestion struct {
	ID       string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Question string `json:"question" example:"The sky is blue"`
}

// AdminQuestion is the admin view, answer included.
type AdminQuestion struct {
	ID       string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Question string `json:"question" example:"The sky is blue"`
	Answer   bool   `json:"answer" example:"true"`
}

// SetQuestionsResponse carries either a plain confirmation or, when the
// tenant's set already exists, the frozen questions unchanged.
type SetQuestionsResponse struct {
	Message   string          `json:"message" example:"3 questions set for acme"`
	Questions []AdminQuestion `json:"questions,omitempty"`
}

type QuizResultResponse struct {
	Message  string `json:"message" example:"You scored 2/3"`
	Username string `json:"username" example:"alice"`
	Score    int    `json:"score" example:"2"`
	Total    int    `json:"total" example:"3"`
}
