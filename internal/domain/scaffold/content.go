// Where: internal/domain/scaffold/content.go
// What: Toggle-dependent content lists (dependencies, README bullets, setup steps).
// Why: Keep conditional inclusion rules testable apart from template text.
package scaffold

// Requirement is a pinned Python dependency.
type Requirement struct {
	Name    string
	Version string
}

// Line renders the requirement in pip's "name==version" form.
func (r Requirement) Line() string {
	return r.Name + "==" + r.Version
}

var (
	baseRequirements = []Requirement{
		{Name: "Flask", Version: "3.0.0"},
		{Name: "gunicorn", Version: "21.2.0"},
		{Name: "python-dotenv", Version: "1.0.0"},
	}
	databaseRequirements = []Requirement{
		{Name: "Flask-SQLAlchemy", Version: "3.1.1"},
		{Name: "Flask-Migrate", Version: "4.0.5"},
		{Name: "alembic", Version: "1.13.0"},
	}
	authRequirements = []Requirement{
		{Name: "Flask-Login", Version: "0.6.3"},
		{Name: "WTForms", Version: "3.1.1"},
		{Name: "email-validator", Version: "2.1.0"},
	}
)

// Requirements returns the pinned dependencies for the enabled features.
func Requirements(f Features) []Requirement {
	reqs := append([]Requirement{}, baseRequirements...)
	if f.Database {
		reqs = append(reqs, databaseRequirements...)
	}
	if f.Auth {
		reqs = append(reqs, authRequirements...)
	}
	return reqs
}

var (
	baseBullets = []string{
		"Application factory pattern",
		"Blueprints for modular routing",
		"Environment-based configuration",
		"Docker & docker-compose setup",
		"Production-ready with gunicorn",
		"Security best practices",
	}
	databaseBullets = []string{
		"SQLAlchemy ORM with migrations",
		"Database support",
	}
	authBullets = []string{
		"User authentication",
		"Flask-Login integration",
	}
)

// FeatureBullets returns the README feature list for the enabled features.
func FeatureBullets(f Features) []string {
	bullets := append([]string{}, baseBullets...)
	if f.Database {
		bullets = append(bullets, databaseBullets...)
	}
	if f.Auth {
		bullets = append(bullets, authBullets...)
	}
	return bullets
}

// SetupStep is one numbered entry of the README development setup.
type SetupStep struct {
	Number   int
	Title    string
	Commands []string
}

// SetupSteps returns consecutively numbered README setup steps for name.
func SetupSteps(name string, f Features) []SetupStep {
	steps := []SetupStep{
		{Title: "Clone and enter the project", Commands: []string{"cd " + name}},
		{Title: "Create and activate virtual environment", Commands: []string{
			"python -m venv venv",
			`source venv/bin/activate  # On Windows: venv\Scripts\activate`,
		}},
		{Title: "Install dependencies", Commands: []string{"pip install -r requirements.txt"}},
		{Title: "Set up environment", Commands: []string{"cp .env.example .env"}},
	}
	if f.Database {
		steps = append(steps, SetupStep{Title: "Initialize database", Commands: []string{
			"flask db init",
			`flask db migrate -m "Initial migration"`,
			"flask db upgrade",
		}})
	}
	steps = append(steps, SetupStep{Title: "Run development server", Commands: []string{"flask run"}})
	for i := range steps {
		steps[i].Number = i + 1
	}
	return steps
}

// NextSteps lists the shell commands printed after a successful run.
func NextSteps(root string) []string {
	return []string{
		"cd " + root,
		"python -m venv venv",
		"source venv/bin/activate",
		"pip install -r requirements.txt",
		"flask run",
	}
}
