package domain

import "errors"

var (
	// ErrSessionNotFound is returned when the user has no stored session yet.
	ErrSessionNotFound = errors.New("session not found")
	// ErrCatalogNotFound indicates the catalog content could not be loaded.
	ErrCatalogNotFound = errors.New("catalog not found")
	// ErrCategoryNotFound indicates a category name missing from the session.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrQuestionNotFound indicates a question or correlation id is unknown.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrQuestionBusy is returned when another question is still in progress.
	ErrQuestionBusy = errors.New("another question is in progress")
	// ErrQuestionNotStartable is returned when a question was already started
	// or answered and cannot be started again.
	ErrQuestionNotStartable = errors.New("question cannot be started")
	// ErrQuestionFinished rejects answers for questions already resolved.
	ErrQuestionFinished = errors.New("question already finished")
)
