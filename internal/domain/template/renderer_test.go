// Where: internal/domain/template/renderer_test.go
// What: Tests for generated file rendering.
// Why: Ensure toggle-gated sections appear exactly when enabled.
package template

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poruru-code/flaskgen/internal/domain/scaffold"
)

func TestRendererSnapshots(t *testing.T) {
	tests := []struct {
		name     string
		kind     scaffold.FileKind
		features scaffold.Features
	}{
		{name: "app_factory_none.golden", kind: scaffold.KindAppFactory},
		{name: "app_factory_database_auth.golden", kind: scaffold.KindAppFactory, features: scaffold.Features{Database: true, Auth: true}},
		{name: "requirements_database_auth.golden", kind: scaffold.KindRequirements, features: scaffold.Features{Database: true, Auth: true}},
		{name: "readme_database.golden", kind: scaffold.KindReadme, features: scaffold.Features{Database: true}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := NewData(scaffold.Options{Name: "demo", Features: tc.features}, 2024)
			content, err := Render(tc.kind, data)
			if err != nil {
				t.Fatalf("Render(%s): %v", tc.kind, err)
			}
			assertSnapshot(t, tc.name, content)
		})
	}
}

func TestRenderPlanCoversEveryFile(t *testing.T) {
	combos := []scaffold.Features{
		{},
		{Database: true},
		{Auth: true},
		{Database: true, Auth: true},
	}
	for _, features := range combos {
		opts := scaffold.Options{Name: "demo", Features: features}
		plan := scaffold.BuildPlan(opts)
		files, err := RenderPlan(plan, NewData(opts, 2024))
		if err != nil {
			t.Fatalf("RenderPlan(%s): %v", features, err)
		}
		if len(files) != len(plan.Files) {
			t.Fatalf("rendered %d files, planned %d", len(files), len(plan.Files))
		}
		for i, file := range files {
			if file.Path != plan.Files[i].Path {
				t.Fatalf("file %d path = %s, want %s", i, file.Path, plan.Files[i].Path)
			}
			if strings.Contains(file.Content, leftDelim) || strings.Contains(file.Content, rightDelim) {
				t.Fatalf("%s: unrendered delimiter in output", file.Path)
			}
			if file.Kind != scaffold.KindPackageMarker && strings.TrimSpace(file.Content) == "" {
				t.Fatalf("%s: empty content", file.Path)
			}
			if file.Kind == scaffold.KindPackageMarker && file.Content != "" {
				t.Fatalf("%s: package marker must be empty", file.Path)
			}
		}
	}
}

func TestRenderReadmeFeatureBullets(t *testing.T) {
	tests := []struct {
		name     string
		features scaffold.Features
		present  []string
		absent   []string
	}{
		{
			name:   "none",
			absent: []string{"- SQLAlchemy ORM with migrations", "- User authentication", "Initialize database"},
		},
		{
			name:     "auth",
			features: scaffold.Features{Auth: true},
			present:  []string{"- User authentication\n- Flask-Login integration\n"},
			absent:   []string{"- Database support"},
		},
		{
			name:     "both",
			features: scaffold.Features{Database: true, Auth: true},
			present: []string{
				"- Database support\n- User authentication\n",
				"5. Initialize database:",
				"6. Run development server:",
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			content, err := Render(scaffold.KindReadme, NewData(scaffold.Options{Name: "demo", Features: tc.features}, 2024))
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			for _, want := range tc.present {
				if !strings.Contains(content, want) {
					t.Fatalf("README missing %q:\n%s", want, content)
				}
			}
			for _, unwanted := range tc.absent {
				if strings.Contains(content, unwanted) {
					t.Fatalf("README unexpectedly contains %q", unwanted)
				}
			}
			if got := strings.Count(content, "\n- "); got != len(scaffold.FeatureBullets(tc.features)) {
				t.Fatalf("README has %d bullets, want %d", got, len(scaffold.FeatureBullets(tc.features)))
			}
		})
	}
}

func TestRenderComposeUsesProjectName(t *testing.T) {
	content, err := Render(scaffold.KindCompose, NewData(scaffold.Options{Name: "shop"}, 2024))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(content, "container_name: shop_dev") {
		t.Fatalf("expected container name, got:\n%s", content)
	}
}

func TestRenderBaseTemplateKeepsJinjaBlocks(t *testing.T) {
	content, err := Render(scaffold.KindBaseTemplate, NewData(scaffold.Options{Name: "shop", Features: scaffold.Features{Auth: true}}, 2031))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, want := range []string{
		"{% block title %}{% endblock %} - shop",
		"{% block content %}{% endblock %}",
		"{{ url_for('auth.login') }}",
		"&copy; 2031 shop",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("base template missing %q:\n%s", want, content)
		}
	}
}

func TestRenderUserModelMixinFollowsAuth(t *testing.T) {
	withoutAuth, err := Render(scaffold.KindUserModel, NewData(scaffold.Options{Name: "demo", Features: scaffold.Features{Database: true}}, 2024))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(withoutAuth, "flask_login") {
		t.Fatalf("user model must not import flask_login without auth")
	}
	if !strings.Contains(withoutAuth, "class User(db.Model):") {
		t.Fatalf("unexpected class line:\n%s", withoutAuth)
	}

	withAuth, err := Render(scaffold.KindUserModel, NewData(scaffold.Options{Name: "demo", Features: scaffold.Features{Database: true, Auth: true}}, 2024))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(withAuth, "class User(UserMixin, db.Model):") {
		t.Fatalf("unexpected class line:\n%s", withAuth)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	if _, err := Render(scaffold.FileKind("nope"), Data{}); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func assertSnapshot(t *testing.T, name, content string) {
	t.Helper()
	path := filepath.Join("testdata", "renderer", name)
	if os.Getenv("UPDATE_SNAPSHOTS") == "1" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir snapshot dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write snapshot: %v", err)
		}
		return
	}

	expected, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("snapshot missing %s (set UPDATE_SNAPSHOTS=1): %v", path, err)
	}
	if content != string(expected) {
		t.Fatalf("snapshot mismatch for %s\n---want\n%s\n---got\n%s", path, expected, content)
	}
}
