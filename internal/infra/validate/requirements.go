// Where: internal/infra/validate/requirements.go
// What: requirements.txt pin checks.
// Why: Generated projects pin every dependency exactly.
package validate

import (
	"fmt"
	"regexp"
	"strings"
)

var pinPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*==[0-9][0-9A-Za-z.+!-]*$`)

// Requirements accepts blank lines, comments and "name==version" pins only.
func Requirements(content string) error {
	seen := map[string]int{}
	pins := 0
	for i, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !pinPattern.MatchString(line) {
			return fmt.Errorf("line %d: %q is not a name==version pin", i+1, line)
		}
		name := strings.ToLower(strings.SplitN(line, "==", 2)[0])
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("line %d: %s already pinned on line %d", i+1, name, prev)
		}
		seen[name] = i + 1
		pins++
	}
	if pins == 0 {
		return fmt.Errorf("no requirements declared")
	}
	return nil
}
