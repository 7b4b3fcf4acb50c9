// Where: internal/infra/docker/probe.go
// What: Docker daemon reachability check.
// Why: Tell users whether `docker-compose up` from a generated README can work.
package docker

import (
	"context"
	"fmt"
	"time"
)

// DefaultProbeTimeout bounds a single probe when the caller sets no deadline.
const DefaultProbeTimeout = 5 * time.Second

// Status summarizes what the daemon reported.
type Status struct {
	Reachable     bool
	ServerVersion string
	APIVersion    string
	OSType        string
	Arch          string
}

// Probe asks a Docker daemon for its identity.
type Probe struct {
	Client  DaemonClient
	Timeout time.Duration
}

// Check pings the daemon and, when it answers, reads its version.
// An unreachable daemon is reported through the error; Status stays zero.
func (p Probe) Check(ctx context.Context) (Status, error) {
	if p.Client == nil {
		return Status{}, fmt.Errorf("docker client is required")
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ping, err := p.Client.Ping(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("ping docker daemon: %w", err)
	}
	status := Status{
		Reachable:  true,
		APIVersion: ping.APIVersion,
		OSType:     ping.OSType,
	}

	version, err := p.Client.ServerVersion(ctx)
	if err != nil {
		return status, fmt.Errorf("read docker server version: %w", err)
	}
	status.ServerVersion = version.Version
	status.Arch = version.Arch
	if version.APIVersion != "" {
		status.APIVersion = version.APIVersion
	}
	if version.Os != "" {
		status.OSType = version.Os
	}
	return status, nil
}
