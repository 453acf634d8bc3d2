package models

import (
	"fmt"
	"strings"
	"time"
)

// MaxTitleLength is the longest title accepted after trimming.
const MaxTitleLength = 500

// Todo represents a single todo item.
type Todo struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ValidationError describes a rejected field value.
type ValidationError struct {
	Field         string `json:"field"`
	RejectedValue string `json:"rejectedValue"`
	Message       string `json:"message"`
	Code          string `json:"code"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NormalizeTitle trims the candidate title and checks it against the
// title constraints. It returns the trimmed title, or a ValidationError
// when the trimmed title is blank or longer than MaxTitleLength.
func NormalizeTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", &ValidationError{
			Field:         "title",
			RejectedValue: title,
			Message:       "title must not be blank",
			Code:          "NotBlank",
		}
	}
	if len([]rune(trimmed)) > MaxTitleLength {
		return "", &ValidationError{
			Field:         "title",
			RejectedValue: trimmed,
			Message:       fmt.Sprintf("title must be %d characters or fewer", MaxTitleLength),
			Code:          "Size",
		}
	}
	return trimmed, nil
}
