// Where: cmd/flaskgen/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"
	"time"

	"github.com/poruru-code/flaskgen/internal/command"
	"github.com/poruru-code/flaskgen/internal/infra/config"
	"github.com/poruru-code/flaskgen/internal/infra/docker"
	"github.com/poruru-code/flaskgen/internal/infra/interaction"
)

var (
	globalConfigPath = config.GlobalConfigPath
	newDockerClient  = docker.NewDockerClient
)

// buildDependencies constructs the runtime dependencies required by the CLI.
// The Docker client is created lazily so only `doctor` needs a daemon config.
func buildDependencies() command.Dependencies {
	return command.Dependencies{
		Out:        os.Stdout,
		ErrOut:     os.Stderr,
		In:         os.Stdin,
		Prompter:   interaction.HuhPrompter{},
		Now:        time.Now,
		ConfigPath: func() (string, error) { return globalConfigPath() },
		DockerClient: func() (docker.DaemonClient, error) {
			return newDockerClient()
		},
	}
}
