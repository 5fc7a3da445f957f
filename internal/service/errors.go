package service

import "errors"

var (
	// Tenant errors
	ErrTenantNotFound = errors.New("tenant not found")
	ErrTenantExists   = errors.New("tenant already exists")

	// Account errors
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists in this tenant")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Quiz errors
	ErrNoQuestions = errors.New("no questions found for this tenant")
)
