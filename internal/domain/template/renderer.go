// Where: internal/domain/template/renderer.go
// What: Render generated project files from embedded templates.
// Why: Keep file text as data and the conditional inclusion rules in one place.
package template

import (
	"bytes"
	"embed"
	"fmt"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/poruru-code/flaskgen/internal/domain/scaffold"
)

// Generated Jinja and Python text uses {{ }} and {% %}, so the Go side
// uses a delimiter pair that never appears in it.
const (
	leftDelim  = "[["
	rightDelim = "]]"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

// Data is the input shared by every file template.
type Data struct {
	ProjectName    string
	Features       scaffold.Features
	Requirements   []scaffold.Requirement
	FeatureBullets []string
	SetupSteps     []scaffold.SetupStep
	Year           int
}

// NewData derives the template input for opts.
func NewData(opts scaffold.Options, year int) Data {
	return Data{
		ProjectName:    opts.Name,
		Features:       opts.Features,
		Requirements:   scaffold.Requirements(opts.Features),
		FeatureBullets: scaffold.FeatureBullets(opts.Features),
		SetupSteps:     scaffold.SetupSteps(opts.Name, opts.Features),
		Year:           year,
	}
}

// RenderedFile is a planned file together with its content.
type RenderedFile struct {
	Path    string
	Kind    scaffold.FileKind
	Content string
}

// Render produces the content of a single file kind.
func Render(kind scaffold.FileKind, data Data) (string, error) {
	if kind == scaffold.KindPackageMarker {
		return "", nil
	}
	return renderTemplate(string(kind)+".tmpl", data)
}

// RenderPlan renders every file of plan in plan order.
func RenderPlan(plan scaffold.Plan, data Data) ([]RenderedFile, error) {
	files := make([]RenderedFile, 0, len(plan.Files))
	for _, file := range plan.Files {
		content, err := Render(file.Kind, data)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", file.Path, err)
		}
		files = append(files, RenderedFile{
			Path:    file.Path,
			Kind:    file.Kind,
			Content: content,
		})
	}
	return files, nil
}

func renderTemplate(name string, data any) (string, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		cached, ok := value.(*template.Template)
		if !ok {
			return nil, fmt.Errorf("template cache type mismatch for %s", name)
		}
		return cached, nil
	}
	tmpl, err := template.New(name).
		Delims(leftDelim, rightDelim).
		Option("missingkey=error").
		Funcs(sprig.TxtFuncMap()).
		ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, err
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}
