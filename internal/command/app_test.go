// Where: internal/command/app_test.go
// What: Tests for CLI run behavior.
// Why: Ensure command routing and env handling remain stable.
package command

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunVersion(t *testing.T) {
	env := newTestEnv(t)
	if code := Run([]string{"version"}, env.deps); code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr %q)", code, env.errOut.String())
	}
	if strings.TrimSpace(env.out.String()) == "" {
		t.Fatalf("expected version output")
	}
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	env := newTestEnv(t)
	if code := Run([]string{"new", "shop", "--with-redis"}, env.deps); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if env.errOut.Len() == 0 {
		t.Fatalf("expected parse error on stderr")
	}
	if env.out.Len() != 0 {
		t.Fatalf("expected nothing on stdout, got %q", env.out.String())
	}
}

func TestRunPathFlagWithoutValue(t *testing.T) {
	env := newTestEnv(t)
	if code := Run([]string{"new", "shop", "--path"}, env.deps); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(env.errOut.String(), "--path") {
		t.Fatalf("expected --path hint, got %q", env.errOut.String())
	}
}

func TestEnvFileArg(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "absent", args: []string{"new", "shop"}, want: ""},
		{name: "separate", args: []string{"--env-file", "local.env", "shop"}, want: "local.env"},
		{name: "equals", args: []string{"--env-file=ci.env", "shop"}, want: "ci.env"},
		{name: "missing value", args: []string{"shop", "--env-file"}, want: ""},
		{name: "after terminator", args: []string{"--", "--env-file", "x"}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := envFileArg(tt.args); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRunLoadsExplicitEnvFileBeforeParsing(t *testing.T) {
	env := newTestEnv(t)
	parent := t.TempDir()
	envFile := filepath.Join(t.TempDir(), "local.env")
	content := "FLASKGEN_PATH=" + parent + "\nFLASKGEN_WITH_AUTH=true\n"
	if err := os.WriteFile(envFile, []byte(content), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	if code := Run([]string{"--env-file", envFile, "shop"}, env.deps); code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr %q)", code, env.errOut.String())
	}
	if _, err := os.Stat(filepath.Join(parent, "shop", "app", "auth", "routes.py")); err != nil {
		t.Fatalf("expected auth project under env path: %v", err)
	}
}

func TestRunLoadsDotEnvFromWorkingDir(t *testing.T) {
	env := newTestEnv(t)
	if err := os.WriteFile(".env", []byte("FLASKGEN_WITH_DATABASE=true\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	if code := Run([]string{"shop"}, env.deps); code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr %q)", code, env.errOut.String())
	}
	if _, err := os.Stat(filepath.Join("shop", "app", "models", "user.py")); err != nil {
		t.Fatalf("expected database project: %v", err)
	}
}

func TestRunIgnoresEmptyDotEnvValues(t *testing.T) {
	env := newTestEnv(t)
	if err := os.WriteFile(".env", []byte("FLASKGEN_WITH_AUTH=\nFLASKGEN_WITH_DATABASE=\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Unsetenv("FLASKGEN_WITH_AUTH")
		_ = os.Unsetenv("FLASKGEN_WITH_DATABASE")
	})
	if code := Run([]string{"shop"}, env.deps); code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr %q)", code, env.errOut.String())
	}
	if _, err := os.Stat(filepath.Join("shop", "app", "auth")); !os.IsNotExist(err) {
		t.Fatalf("auth must stay disabled for an empty value")
	}
}

func TestRunHelpReturnsZero(t *testing.T) {
	env := newTestEnv(t)
	if code := Run([]string{"--help"}, env.deps); code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr %q)", code, env.errOut.String())
	}
	if !strings.Contains(env.out.String(), "Usage:") {
		t.Fatalf("expected usage on stdout, got %q", env.out.String())
	}
}

func TestRunWarnsOnMissingEnvFile(t *testing.T) {
	env := newTestEnv(t)
	if code := Run([]string{"--env-file", "nope.env", "version"}, env.deps); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(env.errOut.String(), "failed to load env file nope.env") {
		t.Fatalf("expected env file warning, got %q", env.errOut.String())
	}
}

func TestColorEnabled(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	setTerminal(t, true)

	var buf strings.Builder
	if colorEnabled(&buf, CLI{}) {
		t.Fatalf("non-file writers never get color")
	}
	if !colorEnabled(os.Stdout, CLI{}) {
		t.Fatalf("expected color for a terminal")
	}
	if colorEnabled(os.Stdout, CLI{NoColor: true}) {
		t.Fatalf("--no-color must win")
	}
	t.Setenv("NO_COLOR", "1")
	if colorEnabled(os.Stdout, CLI{}) {
		t.Fatalf("NO_COLOR must win")
	}
}
