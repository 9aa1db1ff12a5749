package essay

import (
	"fmt"
	"strings"
)

const (
	minTitleLen   = 5
	minContentLen = 100
)

// ValidationError reports the first field that failed submission rules.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type CreateInput struct {
	Title      string  `json:"title"`
	College    string  `json:"college"`
	Prompt     string  `json:"prompt"`
	Major      string  `json:"major"`
	Content    string  `json:"content"`
	Year       int     `json:"year"`
	AuthorName *string `json:"author_name"`
}

// UpdateInput carries a partial edit; nil fields are left untouched.
// Verified and ownership are never updatable through this path.
type UpdateInput struct {
	Title   *string `json:"title"`
	College *string `json:"college"`
	Prompt  *string `json:"prompt"`
	Major   *string `json:"major"`
	Content *string `json:"content"`
	Year    *int    `json:"year"`
}

func (in *CreateInput) Validate() error {
	if len(strings.TrimSpace(in.Title)) < minTitleLen {
		return &ValidationError{Field: "title", Message: fmt.Sprintf("must be at least %d characters", minTitleLen)}
	}
	if len(strings.TrimSpace(in.Content)) < minContentLen {
		return &ValidationError{Field: "content", Message: fmt.Sprintf("must be at least %d characters", minContentLen)}
	}
	if strings.TrimSpace(in.College) == "" {
		return &ValidationError{Field: "college", Message: "is required"}
	}
	if strings.TrimSpace(in.Prompt) == "" {
		return &ValidationError{Field: "prompt", Message: "is required"}
	}
	if strings.TrimSpace(in.Major) == "" {
		return &ValidationError{Field: "major", Message: "is required"}
	}
	if in.Year < 1000 || in.Year > 9999 {
		return &ValidationError{Field: "year", Message: "must be a 4-digit year"}
	}
	return nil
}

func (in *UpdateInput) Validate() error {
	if in.Title != nil && len(strings.TrimSpace(*in.Title)) < minTitleLen {
		return &ValidationError{Field: "title", Message: fmt.Sprintf("must be at least %d characters", minTitleLen)}
	}
	if in.Content != nil && len(strings.TrimSpace(*in.Content)) < minContentLen {
		return &ValidationError{Field: "content", Message: fmt.Sprintf("must be at least %d characters", minContentLen)}
	}
	if in.College != nil && strings.TrimSpace(*in.College) == "" {
		return &ValidationError{Field: "college", Message: "is required"}
	}
	if in.Prompt != nil && strings.TrimSpace(*in.Prompt) == "" {
		return &ValidationError{Field: "prompt", Message: "is required"}
	}
	if in.Major != nil && strings.TrimSpace(*in.Major) == "" {
		return &ValidationError{Field: "major", Message: "is required"}
	}
	if in.Year != nil && (*in.Year < 1000 || *in.Year > 9999) {
		return &ValidationError{Field: "year", Message: "must be a 4-digit year"}
	}
	return nil
}
