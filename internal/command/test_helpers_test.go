package command

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/poruru-code/flaskgen/internal/infra/interaction"
)

type testEnv struct {
	out        *bytes.Buffer
	errOut     *bytes.Buffer
	configPath string
	deps       Dependencies
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	for _, key := range []string{"FLASKGEN_PATH", "FLASKGEN_WITH_DATABASE", "FLASKGEN_WITH_AUTH", "CLI_CMD"} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
	setWorkingDir(t, t.TempDir())
	setTerminal(t, false)

	env := &testEnv{
		out:        &bytes.Buffer{},
		errOut:     &bytes.Buffer{},
		configPath: filepath.Join(t.TempDir(), "home", "config.yaml"),
	}
	env.deps = Dependencies{
		Out:        env.out,
		ErrOut:     env.errOut,
		ConfigPath: func() (string, error) { return env.configPath, nil },
		Now:        func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) },
	}
	return env
}

func setWorkingDir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore cwd %s: %v", prev, err)
		}
	})
}

func setTerminal(t *testing.T, value bool) {
	t.Helper()
	orig := interaction.IsTerminal
	interaction.IsTerminal = func(*os.File) bool { return value }
	t.Cleanup(func() { interaction.IsTerminal = orig })
}

type scriptedPrompter struct {
	inputs   []string
	confirms []bool
	titles   []string
}

func (p *scriptedPrompter) Input(title string, _ []string) (string, error) {
	p.titles = append(p.titles, title)
	value := p.inputs[0]
	p.inputs = p.inputs[1:]
	return value, nil
}

func (p *scriptedPrompter) Confirm(title string, _ bool) (bool, error) {
	p.titles = append(p.titles, title)
	value := p.confirms[0]
	p.confirms = p.confirms[1:]
	return value, nil
}

func writeRaw(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o600)
}
