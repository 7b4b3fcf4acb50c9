// Where: internal/command/doctor.go
// What: doctor command adapter.
// Why: Check the Docker daemon that generated projects rely on.
package command

import (
	"context"
	"fmt"
	"io"

	"github.com/poruru-code/flaskgen/internal/infra/docker"
	"github.com/poruru-code/flaskgen/internal/infra/ui"
)

func runDoctor(cli CLI, deps Dependencies, out io.Writer) int {
	client, err := deps.DockerClient()
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	defer client.Close()

	status, err := docker.Probe{Client: client}.Check(context.Background())
	if err != nil {
		return exitWithSuggestion(deps.ErrOut, fmt.Sprintf("Docker daemon not reachable: %v", err), []string{
			"Start Docker Desktop or the docker service.",
			"Check DOCKER_HOST if you use a remote daemon.",
		})
	}

	userInterface := commandUI(out, cli)
	userInterface.Block("🐳", "Docker", []ui.KeyValue{
		{Key: "Server version", Value: status.ServerVersion},
		{Key: "API version", Value: status.APIVersion},
		{Key: "Platform", Value: status.OSType + "/" + status.Arch},
	})
	userInterface.Success("Docker is ready for docker-compose up")
	return 0
}
