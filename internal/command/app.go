// Where: internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/poruru-code/flaskgen/internal/infra/config"
	"github.com/poruru-code/flaskgen/internal/infra/docker"
	"github.com/poruru-code/flaskgen/internal/infra/interaction"
	"github.com/poruru-code/flaskgen/internal/meta"
)

// Dependencies holds all injected dependencies required for CLI command execution.
// Nil fields fall back to process defaults so tests only set what they exercise.
type Dependencies struct {
	Out          io.Writer
	ErrOut       io.Writer
	In           *os.File
	Prompter     interaction.Prompter
	Now          func() time.Time
	ConfigPath   func() (string, error)
	DockerClient DockerClientFactory
}

// DockerClientFactory creates the client used by the doctor command.
type DockerClientFactory func() (docker.DaemonClient, error)

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	EnvFile  string      `name:"env-file" help:"Path to .env file (default: ./.env when present)"`
	Verbose  bool        `short:"v" help:"Write debug diagnostics to stderr"`
	NoEmoji  bool        `name:"no-emoji" help:"Disable emoji output"`
	NoColor  bool        `name:"no-color" help:"Disable colored output"`
	New      NewCmd      `cmd:"" default:"withargs" help:"Create a new Flask project (default command)"`
	Projects ProjectsCmd `cmd:"" help:"List projects created by this tool"`
	Doctor   DoctorCmd   `cmd:"" help:"Check that a Docker daemon is reachable"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
}

type (
	// NewCmd defines the new command flags.
	NewCmd struct {
		Name         string `arg:"" optional:"" help:"Project name (prompted for when omitted on a terminal)"`
		Path         string `short:"p" env:"FLASKGEN_PATH" help:"Parent directory for the project (default: config defaults.path or .)"`
		WithDatabase bool   `name:"with-database" env:"FLASKGEN_WITH_DATABASE" help:"Include SQLAlchemy models and migrations"`
		WithAuth     bool   `name:"with-auth" env:"FLASKGEN_WITH_AUTH" help:"Include Flask-Login authentication"`
		DryRun       bool   `name:"dry-run" help:"Print the planned files without writing anything"`
	}

	ProjectsCmd struct{}

	DoctorCmd struct{}

	VersionCmd struct{}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.In == nil {
		deps.In = os.Stdin
	}
	if deps.ConfigPath == nil {
		deps.ConfigPath = config.GlobalConfigPath
	}
	if deps.DockerClient == nil {
		deps.DockerClient = docker.NewDockerClient
	}

	// kong reads env tags during Parse, so the dotenv file must be loaded first.
	loadEnvFile(envFileArg(args), deps.ErrOut)
	unsetEmptyEnv(meta.EnvPrefix + "_")

	// kong exits the process after --help unless Exit is overridden.
	helpExit := -1
	cli := CLI{}
	parser, err := kong.New(
		&cli,
		kong.Name(cliName()),
		kong.Description("Generate a Flask project scaffold."),
		kong.Writers(out, deps.ErrOut),
		kong.Exit(func(code int) { helpExit = code }),
	)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	ctx, err := parser.Parse(args)
	if helpExit >= 0 {
		return helpExit
	}
	if err != nil {
		return handleParseError(err, deps.ErrOut)
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	return exitWithError(deps.ErrOut, fmt.Errorf("unknown command %q", command))
}

type commandHandler func(CLI, Dependencies, io.Writer) int

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"new":      runNew,
		"projects": runProjects,
		"doctor":   runDoctor,
		"version":  func(cli CLI, _ Dependencies, out io.Writer) int { return runVersion(cli, out) },
	}
	prefixHandlers := []struct {
		prefix  string
		handler commandHandler
	}{
		{prefix: "new ", handler: runNew},
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}
	for _, entry := range prefixHandlers {
		if strings.HasPrefix(command, entry.prefix) {
			return entry.handler(cli, deps, out), true
		}
	}
	return 1, false
}

// envFileArg extracts the --env-file value ahead of kong parsing.
func envFileArg(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			return ""
		}
		if value, ok := strings.CutPrefix(arg, "--env-file="); ok {
			return value
		}
		if arg == "--env-file" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// loadEnvFile loads an explicit env file, or ./.env when it exists.
// Existing process variables win over file values.
func loadEnvFile(path string, errOut io.Writer) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			warnLine(errOut, fmt.Sprintf("failed to load env file %s: %v", path, err))
		}
		return
	}
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			warnLine(errOut, fmt.Sprintf("failed to load .env: %v", err))
		}
	}
}

// unsetEmptyEnv drops empty variables under prefix so kong treats them as unset
// instead of failing to parse "" as a bool.
func unsetEmptyEnv(prefix string) {
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if ok && value == "" && strings.HasPrefix(key, prefix) {
			_ = os.Unsetenv(key)
		}
	}
}

// handleParseError provides user-friendly error messages for parse failures.
func handleParseError(err error, errOut io.Writer) int {
	msg := err.Error()
	cmd := cliName()
	if strings.Contains(msg, "expected string value") || strings.Contains(msg, "expected a value") {
		switch {
		case strings.Contains(msg, "--path"):
			return exitWithSuggestion(errOut, "`-p/--path` expects a directory.", []string{
				fmt.Sprintf("%s new myapp --path ./projects", cmd),
			})
		case strings.Contains(msg, "--env-file"):
			return exitWithSuggestion(errOut, "`--env-file` expects a value. Provide a file path.", []string{
				fmt.Sprintf("%s --env-file .env.local new myapp", cmd),
			})
		}
	}
	if strings.Contains(msg, "unexpected argument") {
		return exitWithSuggestion(errOut, msg, []string{
			fmt.Sprintf("%s new <project_name> [--path DIR] [--with-database] [--with-auth]", cmd),
			fmt.Sprintf("%s --help", cmd),
		})
	}
	return exitWithError(errOut, err)
}
