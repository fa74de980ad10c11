package service

import (
	"errors"

	"github.com/alexanderramin/pathwise/internal/repository"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("invalid credentials")
	ErrForbidden    = errors.New("forbidden")

	// ErrPrerequisite is returned when a use case depends on data the user
	// has not produced yet, such as a roadmap request before an assessment.
	ErrPrerequisite = errors.New("prerequisite not met")

	ErrRateLimited = errors.New("too many failed attempts")

	// ErrGeneration wraps every failure of the roadmap text generator.
	ErrGeneration = errors.New("roadmap generation failed")

	ErrNotFound = repository.ErrNotFound
	ErrConflict = repository.ErrConflict
)
