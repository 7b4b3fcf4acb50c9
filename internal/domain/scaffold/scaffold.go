// Where: internal/domain/scaffold/scaffold.go
// What: Scaffold options, feature toggles, and project name rules.
// Why: Keep the inputs of generation free of CLI and filesystem concerns.
package scaffold

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidName reports a project name that cannot be used as a directory
// and compose container prefix.
var ErrInvalidName = errors.New("invalid project name")

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// Features holds the optional scaffolding toggles.
type Features struct {
	Database bool
	Auth     bool
}

// Options describes one generation run.
type Options struct {
	Name     string
	Features Features
}

// ValidateName checks that name is usable as a single path segment.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidName)
	}
	if trimmed != name {
		return fmt.Errorf("%w: %q has surrounding whitespace", ErrInvalidName, name)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q (use letters, digits, '.', '_' or '-')", ErrInvalidName, name)
	}
	return nil
}

// Labels returns the enabled toggle names in a stable order.
func (f Features) Labels() []string {
	labels := []string{}
	if f.Database {
		labels = append(labels, "database")
	}
	if f.Auth {
		labels = append(labels, "auth")
	}
	return labels
}

// String renders the toggles for summaries, "none" when nothing is enabled.
func (f Features) String() string {
	labels := f.Labels()
	if len(labels) == 0 {
		return "none"
	}
	return strings.Join(labels, ", ")
}
