// Where: internal/infra/validate/env.go
// What: .env.example parse checks.
// Why: docker-compose and python-dotenv both read the copied .env file.
package validate

import (
	"fmt"

	"github.com/joho/godotenv"
)

var requiredEnvKeys = []string{"FLASK_ENV", "FLASK_APP", "SECRET_KEY"}

// EnvExample parses content as a dotenv file and checks the keys the
// generated app reads.
func EnvExample(content string) error {
	values, err := godotenv.Unmarshal(content)
	if err != nil {
		return fmt.Errorf("parse env file: %w", err)
	}
	for _, key := range requiredEnvKeys {
		if _, ok := values[key]; !ok {
			return fmt.Errorf("missing %s", key)
		}
	}
	return nil
}
