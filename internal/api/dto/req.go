package dto

type CreateTenantRequest struct {
	Name        string `json:"name" binding:"required" example:"acme"`
	DisplayName string `json:"display_name" binding:"required" example:"Acme Corp"`
}

// AuthRequest carries signup and login credentials. Tenant is the tenant
// name, not an id; auth routes take it in the body while quiz routes take it
// as a path segment (kept for wire compatibility with existing clients).
type AuthRequest struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"s3cret"`
	Tenant   string `json:"tenant" binding:"required" example:"acme"`
}

// QuestionInput is one true/false question. Answer is a pointer so that an
// explicit false passes required validation.
type QuestionInput struct {
	Question string `json:"question" binding:"required" example:"The sky is blue"`
	Answer   *bool  `json:"answer" binding:"required" example:"true"`
}

type SetQuestionsRequest struct {
	Questions []QuestionInput `json:"questions" binding:"required,dive"`
}

type QuizSubmissionRequest struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Answers  []bool `json:"answers" example:"true,false,true"`
}
