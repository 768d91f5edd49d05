package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
)

const (
	// MaxCommentLength is the maximum allowed characters in a comment body
	MaxCommentLength = 1000

	// MinUsernameLength and MaxUsernameLength bound the username field
	MinUsernameLength = 3
	MaxUsernameLength = 50

	// MinPasswordLength is the minimum accepted password length
	MinPasswordLength = 8
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// FieldMap flattens a list of validation errors into field -> message
func FieldMap(errs []ValidationError) map[string]string {
	if len(errs) == 0 {
		return nil
	}
	m := make(map[string]string, len(errs))
	for _, e := range errs {
		if _, ok := m[e.Field]; !ok {
			m[e.Field] = e.Message
		}
	}
	return m
}

// ValidateCommentContent validates a comment body. The content is
// expected to be trimmed already; length is counted in characters,
// not bytes.
func ValidateCommentContent(content string) []ValidationError {
	var errors []ValidationError

	if content == "" {
		errors = append(errors, ValidationError{Field: "content", Message: "content is required"})
		return errors
	}

	if n := utf8.RuneCountInString(content); n > MaxCommentLength {
		errors = append(errors, ValidationError{
			Field:   "content",
			Message: fmt.Sprintf("content must be at most %d characters", MaxCommentLength),
			Value:   n,
		})
	}

	return errors
}

// ValidateRegistration validates a signup request
func ValidateRegistration(username, email, password string) []ValidationError {
	var errors []ValidationError

	username = strings.TrimSpace(username)
	if username == "" {
		errors = append(errors, ValidationError{Field: "username", Message: "username is required"})
	} else {
		if len(username) < MinUsernameLength || len(username) > MaxUsernameLength {
			errors = append(errors, ValidationError{
				Field:   "username",
				Message: fmt.Sprintf("username must be between %d and %d characters", MinUsernameLength, MaxUsernameLength),
				Value:   username,
			})
		}
		if !usernameRegex.MatchString(username) {
			errors = append(errors, ValidationError{
				Field:   "username",
				Message: "username may only contain letters, numbers, dots, hyphens and underscores",
				Value:   username,
			})
		}
	}

	if email == "" {
		errors = append(errors, ValidationError{Field: "email", Message: "email is required"})
	} else if !emailRegex.MatchString(email) {
		errors = append(errors, ValidationError{Field: "email", Message: "invalid email format", Value: email})
	}

	if password == "" {
		errors = append(errors, ValidationError{Field: "password", Message: "password is required"})
	} else if len(password) < MinPasswordLength {
		errors = append(errors, ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("password must be at least %d characters", MinPasswordLength),
		})
	}

	return errors
}
