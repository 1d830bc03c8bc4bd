package service

import "fmt"

// ValidationError is bad user input, caught before any store call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// DuplicateEmailError means the waitlist already holds this email.
type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("email %s is already on the waitlist", e.Email)
}

// QuestionLoadError wraps a store failure while fetching quiz questions. The caller is
// expected to offer a manual retry; nothing retries automatically.
type QuestionLoadError struct {
	LanguageCode string
	Err          error
}

func (e *QuestionLoadError) Error() string {
	return fmt.Sprintf("failed to load quiz questions for language %q: %v", e.LanguageCode, e.Err)
}

func (e *QuestionLoadError) Unwrap() error {
	return e.Err
}

// GenerationError covers any failure of the remote generation workflow before the
// response was normalized. It is never surfaced to callers directly; the generation
// service masks it with the fallback character.
type GenerationError struct {
	StatusCode int
	Err        error
}

func (e *GenerationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("generation workflow returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("generation workflow call failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NotFoundError carries the NotFound marker checked at the controller boundary.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

func (e *NotFoundError) NotFound() {}
