// Where: internal/usecase/create/create.go
// What: Project creation workflow orchestration.
// Why: Keep plan/render/validate/write ordering out of the CLI layer.
package create

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/poruru-code/flaskgen/internal/domain/scaffold"
	"github.com/poruru-code/flaskgen/internal/domain/template"
	diaglog "github.com/poruru-code/flaskgen/internal/infra/logger"
	"github.com/poruru-code/flaskgen/internal/infra/ui"
)

var (
	errWriterNotConfigured    = errors.New("writer is not configured")
	errValidatorNotConfigured = errors.New("validator is not configured")
)

// Request captures the inputs of one generation.
type Request struct {
	Name      string
	ParentDir string
	Features  scaffold.Features
	DryRun    bool
}

// Result describes what was (or, for a dry run, would be) generated.
type Result struct {
	Root     string
	Plan     scaffold.Plan
	Files    []template.RenderedFile
	DryRun   bool
	Recorded bool
}

// Writer materializes a rendered project.
type Writer interface {
	Materialize(root string, dirs []string, files []template.RenderedFile) error
}

// Validator checks rendered content before anything touches the disk.
type Validator interface {
	Files(files []template.RenderedFile) error
}

// Recorder remembers generated projects. Failures are reported, not fatal.
type Recorder interface {
	Record(name, root string, features []string, createdAt time.Time) error
}

// Workflow generates a Flask project.
type Workflow struct {
	Writer        Writer
	Validator     Validator
	Recorder      Recorder
	UserInterface ui.UserInterface
	Logger        *slog.Logger
	Now           func() time.Time
}

// NewWorkflow constructs a Workflow using the wall clock.
func NewWorkflow(
	writer Writer,
	validator Validator,
	recorder Recorder,
	userInterface ui.UserInterface,
	logger *slog.Logger,
) Workflow {
	return Workflow{
		Writer:        writer,
		Validator:     validator,
		Recorder:      recorder,
		UserInterface: userInterface,
		Logger:        logger,
		Now:           time.Now,
	}
}

// Run executes the creation workflow.
func (w Workflow) Run(req Request) (Result, error) {
	if w.Writer == nil && !req.DryRun {
		return Result{}, errWriterNotConfigured
	}
	if w.Validator == nil {
		return Result{}, errValidatorNotConfigured
	}
	logger := w.logger()
	now := w.now()

	if err := scaffold.ValidateName(req.Name); err != nil {
		return Result{}, err
	}
	root, err := ResolveRoot(req.ParentDir, req.Name)
	if err != nil {
		return Result{}, err
	}

	opts := scaffold.Options{Name: req.Name, Features: req.Features}
	plan := scaffold.BuildPlan(opts)
	logger.Debug("planned project", "root", root, "dirs", len(plan.Dirs), "files", len(plan.Files), "features", req.Features.String())

	files, err := template.RenderPlan(plan, template.NewData(opts, now.Year()))
	if err != nil {
		return Result{}, err
	}
	if err := w.Validator.Files(files); err != nil {
		return Result{}, fmt.Errorf("validate generated files: %w", err)
	}

	result := Result{Root: root, Plan: plan, Files: files, DryRun: req.DryRun}
	if req.DryRun {
		w.reportDryRun(result)
		return result, nil
	}

	if err := w.Writer.Materialize(root, plan.Dirs, files); err != nil {
		return result, err
	}
	logger.Debug("materialized project", "root", root)

	result.Recorded = w.record(req, root, now)
	w.reportCreated(req, root)
	return result, nil
}

// ResolveRoot returns the absolute project root <parent>/<name>.
func ResolveRoot(parentDir, name string) (string, error) {
	parent := strings.TrimSpace(parentDir)
	if parent == "" {
		parent = "."
	}
	root, err := filepath.Abs(filepath.Join(parent, name))
	if err != nil {
		return "", fmt.Errorf("resolve project root: %w", err)
	}
	return root, nil
}

func (w Workflow) record(req Request, root string, now time.Time) bool {
	if w.Recorder == nil {
		return false
	}
	if err := w.Recorder.Record(req.Name, root, req.Features.Labels(), now); err != nil {
		w.logger().Debug("record project failed", "root", root, "error", err)
		if w.UserInterface != nil {
			w.UserInterface.Warn(fmt.Sprintf("Could not record project in user config: %v", err))
		}
		return false
	}
	return true
}

func (w Workflow) reportCreated(req Request, root string) {
	if w.UserInterface == nil {
		return
	}
	w.UserInterface.Success(fmt.Sprintf("Created Flask project %s at %s", req.Name, root))
	w.UserInterface.Block("🧩", "Features", []ui.KeyValue{
		{Key: "Database", Value: enabledLabel(req.Features.Database)},
		{Key: "Authentication", Value: enabledLabel(req.Features.Auth)},
	})
	w.UserInterface.List("👉", "Next steps", scaffold.NextSteps(root))
}

func (w Workflow) reportDryRun(result Result) {
	if w.UserInterface == nil {
		return
	}
	w.UserInterface.Info(fmt.Sprintf("Dry run: nothing written to %s", result.Root))
	w.UserInterface.List("🗂", "Planned files", result.Plan.Paths())
}

func (w Workflow) logger() *slog.Logger {
	if w.Logger == nil {
		return diaglog.Discard()
	}
	return w.Logger
}

func (w Workflow) now() time.Time {
	if w.Now == nil {
		return time.Now()
	}
	return w.Now()
}

func enabledLabel(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
