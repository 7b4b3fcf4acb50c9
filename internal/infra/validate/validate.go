// Where: internal/infra/validate/validate.go
// What: Format checks for rendered build files and manifests.
// Why: Reject malformed output before anything reaches the destination.
package validate

import (
	"errors"
	"fmt"

	"github.com/poruru-code/flaskgen/internal/domain/scaffold"
	"github.com/poruru-code/flaskgen/internal/domain/template"
)

// FileError ties a validation failure to the rendered file that caused it.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

type checker func(content string) error

var checkers = map[scaffold.FileKind]checker{
	scaffold.KindCompose:      Compose,
	scaffold.KindDockerfile:   Dockerfile,
	scaffold.KindRequirements: Requirements,
	scaffold.KindEnvExample:   EnvExample,
}

// Validator checks rendered files. The zero value is ready to use.
type Validator struct{}

// Files runs every applicable check and joins all failures.
func (Validator) Files(files []template.RenderedFile) error {
	return Files(files)
}

// Files runs every applicable check and joins all failures.
func Files(files []template.RenderedFile) error {
	var errs []error
	for _, file := range files {
		check, ok := checkers[file.Kind]
		if !ok {
			continue
		}
		if err := check(file.Content); err != nil {
			errs = append(errs, &FileError{Path: file.Path, Err: err})
		}
	}
	return errors.Join(errs...)
}
