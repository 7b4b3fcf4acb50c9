// Where: internal/command/output.go
// What: Output helpers for command adapters.
// Why: Centralize UserInterface and logger construction from global flags.
package command

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/poruru-code/flaskgen/internal/infra/interaction"
	"github.com/poruru-code/flaskgen/internal/infra/logger"
	"github.com/poruru-code/flaskgen/internal/infra/ui"
)

func commandUI(out io.Writer, cli CLI) ui.UserInterface {
	return ui.NewConsoleUI(out, !cli.NoEmoji, colorEnabled(out, cli))
}

func commandLogger(deps Dependencies, cli CLI) *slog.Logger {
	return logger.New(deps.ErrOut, cli.Verbose)
}

// colorEnabled is true only for a terminal without --no-color or NO_COLOR.
func colorEnabled(out io.Writer, cli CLI) bool {
	if cli.NoColor || strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		return false
	}
	file, ok := out.(*os.File)
	return ok && interaction.IsTerminal(file)
}
