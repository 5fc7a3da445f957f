package dto

// Error represents a standard error response
type Error struct {
	Detail string `json:"detail" example:"error message"`
}
