package domain

import "errors"

var (
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so the response never reveals which part failed.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrTitleRequired    = errors.New("title is required")
	ErrInvalidFrequency = errors.New("frequency must be Daily, Weekly, or Monthly")

	// ErrTaskNotFound is returned both when no task has the given id and when
	// the task exists but belongs to another user.
	ErrTaskNotFound = errors.New("task not found")
)

// ErrorResponse is the JSON body sent with every non-2xx status.
type ErrorResponse struct {
	Message string `json:"message"`
}
