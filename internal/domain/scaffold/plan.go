// Where: internal/domain/scaffold/plan.go
// What: Structure planner for generated projects.
// Why: Compute the exact directory and file set for a toggle combination.
package scaffold

import (
	"path"
	"sort"
)

// FileKind identifies which content generator produces a file.
type FileKind string

const (
	KindAppFactory    FileKind = "app-factory"
	KindMainBlueprint FileKind = "main-blueprint"
	KindModelsPackage FileKind = "models-package"
	KindUserModel     FileKind = "user-model"
	KindAuthRoutes    FileKind = "auth-routes"
	KindLoginTemplate FileKind = "login-template"
	KindConfig        FileKind = "config"
	KindWSGI          FileKind = "wsgi"
	KindRequirements  FileKind = "requirements"
	KindEnvExample    FileKind = "env-example"
	KindDockerignore  FileKind = "dockerignore"
	KindDockerfile    FileKind = "dockerfile"
	KindCompose       FileKind = "compose"
	KindHealthcheck   FileKind = "healthcheck"
	KindBaseTemplate  FileKind = "base-template"
	KindIndexTemplate FileKind = "index-template"
	KindConftest      FileKind = "conftest"
	KindTestMain      FileKind = "test-main"
	KindGitignore     FileKind = "gitignore"
	KindReadme        FileKind = "readme"
	KindPackageMarker FileKind = "package-marker"
)

// File is a planned file, relative to the project root with slash separators.
type File struct {
	Path string
	Kind FileKind
}

// Plan is the ordered set of directories and files to materialize.
type Plan struct {
	Dirs  []string
	Files []File
}

// BuildPlan returns the directories and files for opts. Directories are
// listed before files and the order is stable for a given toggle pair.
func BuildPlan(opts Options) Plan {
	features := opts.Features
	plan := Plan{
		Dirs: []string{
			"app",
			"app/templates",
			"app/static/css",
			"app/static/js",
			"tests",
		},
	}
	if features.Database {
		plan.Dirs = append(plan.Dirs, "migrations", "app/models")
	}
	if features.Auth {
		plan.Dirs = append(plan.Dirs, "app/auth", "app/templates/auth")
	}

	plan.add("app/__init__.py", KindAppFactory)
	plan.add("tests/__init__.py", KindPackageMarker)
	plan.add("tests/conftest.py", KindConftest)

	if features.Database {
		plan.add("app/models/__init__.py", KindModelsPackage)
		plan.add("app/models/user.py", KindUserModel)
	}
	if features.Auth {
		plan.add("app/auth/__init__.py", KindPackageMarker)
		plan.add("app/auth/routes.py", KindAuthRoutes)
		plan.add("app/templates/auth/login.html", KindLoginTemplate)
	}

	plan.add("app/main.py", KindMainBlueprint)
	plan.add("config.py", KindConfig)
	plan.add("wsgi.py", KindWSGI)
	plan.add("requirements.txt", KindRequirements)
	plan.add(".env.example", KindEnvExample)
	plan.add(".dockerignore", KindDockerignore)
	plan.add("Dockerfile", KindDockerfile)
	plan.add("docker-compose.yml", KindCompose)
	plan.add("healthcheck.py", KindHealthcheck)
	plan.add("app/templates/base.html", KindBaseTemplate)
	plan.add("app/templates/index.html", KindIndexTemplate)
	plan.add("tests/test_main.py", KindTestMain)
	plan.add(".gitignore", KindGitignore)
	plan.add("README.md", KindReadme)
	return plan
}

func (p *Plan) add(rel string, kind FileKind) {
	p.Files = append(p.Files, File{Path: rel, Kind: kind})
}

// Paths returns every directory and file path in the plan, sorted.
// Parent directories implied by nested entries are included.
func (p Plan) Paths() []string {
	seen := map[string]struct{}{}
	addWithParents := func(rel string) {
		for rel != "." && rel != "" {
			seen[rel] = struct{}{}
			rel = path.Dir(rel)
		}
	}
	for _, dir := range p.Dirs {
		addWithParents(dir)
	}
	for _, file := range p.Files {
		addWithParents(file.Path)
	}
	out := make([]string, 0, len(seen))
	for rel := range seen {
		out = append(out, rel)
	}
	sort.Strings(out)
	return out
}
