// Where: cmd/flaskgen/main.go
// What: CLI entrypoint.
// Why: Execute flaskgen commands with configured dependencies.
package main

import (
	"os"

	"github.com/poruru-code/flaskgen/internal/command"
)

func main() {
	os.Exit(command.Run(os.Args[1:], buildDependencies()))
}
