// Where: internal/command/error_helpers.go
// What: Shared CLI error output.
// Why: Print each failure once on the error stream and map it to exit code 1.
package command

import (
	"io"

	"github.com/poruru-code/flaskgen/internal/infra/ui"
)

// exitWithError prints an error message to the output writer and returns
// exit code 1 for CLI error handling.
func exitWithError(out io.Writer, err error) int {
	ui.New(out).Error(err.Error())
	return 1
}

// exitWithSuggestion prints a warning followed by suggested commands.
func exitWithSuggestion(out io.Writer, message string, suggestions []string) int {
	console := ui.New(out)
	console.Warn(message)
	if len(suggestions) > 0 {
		console.Info("Next steps:")
		for _, suggestion := range suggestions {
			console.ItemPlain(suggestion)
		}
	}
	return 1
}

func warnLine(out io.Writer, message string) {
	ui.New(out).Warn(message)
}
