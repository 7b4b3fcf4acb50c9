// Where: internal/command/new.go
// What: new command adapter.
// Why: Resolve flags, config defaults, and prompts into a create request.
package command

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru-code/flaskgen/internal/domain/scaffold"
	"github.com/poruru-code/flaskgen/internal/infra/config"
	"github.com/poruru-code/flaskgen/internal/infra/interaction"
	"github.com/poruru-code/flaskgen/internal/infra/projectfs"
	"github.com/poruru-code/flaskgen/internal/infra/validate"
	"github.com/poruru-code/flaskgen/internal/usecase/create"
)

var errProjectNameRequired = errors.New("project name is required")

func runNew(cli CLI, deps Dependencies, out io.Writer) int {
	log := commandLogger(deps, cli)
	userInterface := commandUI(out, cli)

	cfg := config.DefaultGlobalConfig()
	var recorder create.Recorder
	if path, err := deps.ConfigPath(); err != nil {
		log.Warn("user config unavailable", "error", err)
	} else {
		loaded, err := config.LoadGlobalConfigOrDefault(path)
		if err != nil {
			log.Warn("user config ignored", "path", path, "error", err)
		} else {
			cfg = loaded
		}
		if !cli.New.DryRun {
			recorder = config.ProjectRecorder{Path: path}
		}
	}

	req, err := resolveNewRequest(cli.New, cfg, deps)
	if err != nil {
		if errors.Is(err, errProjectNameRequired) {
			cmd := cliName()
			return exitWithSuggestion(deps.ErrOut, "Project name is required.", []string{
				fmt.Sprintf("%s new <project_name> [--path DIR] [--with-database] [--with-auth]", cmd),
				fmt.Sprintf("Run %s from a terminal without arguments for interactive mode.", cmd),
			})
		}
		return exitWithError(deps.ErrOut, err)
	}

	workflow := create.NewWorkflow(
		projectfs.NewWriter(log),
		validate.Validator{},
		recorder,
		userInterface,
		log,
	)
	if deps.Now != nil {
		workflow.Now = deps.Now
	}

	if _, err := workflow.Run(req); err != nil {
		switch {
		case errors.Is(err, projectfs.ErrDestinationExists):
			return exitWithSuggestion(deps.ErrOut, err.Error(), []string{
				"Choose another project name or a different --path.",
			})
		case errors.Is(err, scaffold.ErrInvalidName):
			return exitWithSuggestion(deps.ErrOut, err.Error(), []string{
				"Use letters, digits, '.', '_' or '-', starting with a letter or digit.",
			})
		}
		return exitWithError(deps.ErrOut, err)
	}
	return 0
}

// resolveNewRequest merges flags, config defaults, and interactive answers.
func resolveNewRequest(cmd NewCmd, cfg config.GlobalConfig, deps Dependencies) (create.Request, error) {
	req := create.Request{
		Name:      strings.TrimSpace(cmd.Name),
		ParentDir: resolveParentDir(cmd.Path, cfg.Defaults.Path),
		Features: scaffold.Features{
			Database: cmd.WithDatabase,
			Auth:     cmd.WithAuth,
		},
		DryRun: cmd.DryRun,
	}
	if req.Name != "" {
		return req, nil
	}
	if deps.Prompter == nil || !interaction.IsTerminal(deps.In) {
		return create.Request{}, errProjectNameRequired
	}

	name, err := deps.Prompter.Input("Project name", nil)
	if err != nil {
		return create.Request{}, err
	}
	req.Name = strings.TrimSpace(name)
	if req.Name == "" {
		return create.Request{}, errProjectNameRequired
	}
	if req.Features.Database, err = deps.Prompter.Confirm("Add database support (SQLAlchemy + migrations)?", req.Features.Database); err != nil {
		return create.Request{}, err
	}
	if req.Features.Auth, err = deps.Prompter.Confirm("Add user authentication (Flask-Login)?", req.Features.Auth); err != nil {
		return create.Request{}, err
	}
	return req, nil
}

// resolveParentDir prefers the flag, then the configured default, then ".".
func resolveParentDir(flagValue, configured string) string {
	for _, candidate := range []string{flagValue, configured} {
		if trimmed := strings.TrimSpace(candidate); trimmed != "" {
			return expandHome(trimmed)
		}
	}
	return "."
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
