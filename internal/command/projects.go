// Where: internal/command/projects.go
// What: projects command adapter.
// Why: Show which projects were generated and whether they still exist.
package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/poruru-code/flaskgen/internal/infra/config"
	"github.com/poruru-code/flaskgen/internal/infra/fileops"
	"github.com/poruru-code/flaskgen/internal/infra/ui"
)

func runProjects(cli CLI, deps Dependencies, out io.Writer) int {
	path, err := deps.ConfigPath()
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	cfg, err := config.LoadGlobalConfigOrDefault(path)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	userInterface := commandUI(out, cli)
	entries := cfg.SortedProjects()
	if len(entries) == 0 {
		userInterface.Info(fmt.Sprintf("No projects recorded yet. Try: %s new myapp", cliName()))
		return 0
	}
	for _, entry := range entries {
		features := "none"
		if len(entry.Features) > 0 {
			features = strings.Join(entry.Features, ", ")
		}
		status := "present"
		if !fileops.DirExists(entry.Path) {
			status = "missing"
		}
		userInterface.Block("📦", entry.Name, []ui.KeyValue{
			{Key: "Path", Value: entry.Path},
			{Key: "Features", Value: features},
			{Key: "Created", Value: entry.CreatedAt},
			{Key: "Status", Value: status},
		})
	}
	return 0
}
