// Where: internal/infra/docker/client.go
// What: Docker client constructor.
// Why: Centralize Docker SDK initialization for the daemon probe.
package docker

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/client"
)

// DaemonClient is the subset of Docker SDK methods used by this package.
type DaemonClient interface {
	Ping(ctx context.Context) (types.Ping, error)
	ServerVersion(ctx context.Context) (types.Version, error)
	Close() error
}

// NewDockerClient constructs a Docker SDK client using environment defaults.
func NewDockerClient() (DaemonClient, error) {
	dockerClient, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("create docker client: %w", err)
	}
	return dockerClient, nil
}
