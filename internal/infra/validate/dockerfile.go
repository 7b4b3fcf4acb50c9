// Where: internal/infra/validate/dockerfile.go
// What: Dockerfile parse and stage checks.
// Why: The compose file targets the development stage by name.
package validate

import (
	"fmt"
	"strings"

	"github.com/moby/buildkit/frontend/dockerfile/parser"
)

var requiredStages = []string{"development", "production"}

// Dockerfile parses content with the BuildKit parser, requires FROM as the
// first instruction, and requires the development and production stages.
func Dockerfile(content string) error {
	result, err := parser.Parse(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("parse dockerfile: %w", err)
	}
	if result.AST == nil || len(result.AST.Children) == 0 {
		return fmt.Errorf("dockerfile has no instructions")
	}
	if first := result.AST.Children[0]; !strings.EqualFold(first.Value, "from") {
		return fmt.Errorf("first instruction is %s, want FROM", strings.ToUpper(first.Value))
	}

	stages := map[string]struct{}{}
	for _, node := range result.AST.Children {
		if !strings.EqualFold(node.Value, "from") {
			continue
		}
		if name := stageName(node); name != "" {
			stages[strings.ToLower(name)] = struct{}{}
		}
	}
	for _, stage := range requiredStages {
		if _, ok := stages[stage]; !ok {
			return fmt.Errorf("dockerfile is missing stage %q", stage)
		}
	}
	return nil
}

// stageName reads "FROM image AS name".
func stageName(node *parser.Node) string {
	var args []string
	for next := node.Next; next != nil; next = next.Next {
		args = append(args, next.Value)
	}
	if len(args) == 3 && strings.EqualFold(args[1], "as") {
		return args[2]
	}
	return ""
}
