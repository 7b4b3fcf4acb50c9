// Where: internal/command/version.go
// What: version command adapter.
// Why: Print build information.
package command

import (
	"io"

	"github.com/poruru-code/flaskgen/internal/version"
)

// runVersion prints the version information of the CLI.
func runVersion(cli CLI, out io.Writer) int {
	commandUI(out, cli).Info(version.GetVersion())
	return 0
}
