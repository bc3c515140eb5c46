package scaffold

import (
	"errors"
	"regexp"
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

var (
	ErrNameRequired = errors.New("Project name is required")
	ErrNameInvalid  = errors.New("Project name can only contain letters, numbers, hyphens, and underscores")
)

// ValidateName checks a project name entered at the prompt.
func ValidateName(name string) error {
	if name == "" {
		return ErrNameRequired
	}
	if !namePattern.MatchString(name) {
		return ErrNameInvalid
	}
	return nil
}
