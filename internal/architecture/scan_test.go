// Where: internal/architecture/scan_test.go
// What: Shared source walker for architecture tests.
// Why: Parse every non-test file under internal/ once per test with the same filters.
package architecture

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const internalImportPrefix = "github.com/poruru-code/flaskgen/internal/"

type sourceFile struct {
	rel  string
	pkg  string
	fset *token.FileSet
	file *ast.File
}

func scanInternalSources(t *testing.T, mode parser.Mode) []sourceFile {
	t.Helper()
	internalRoot := resolveInternalRoot(t)
	fset := token.NewFileSet()
	sources := []sourceFile{}

	err := filepath.WalkDir(internalRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "testdata" {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".go") || strings.HasSuffix(d.Name(), "_test.go") {
			return nil
		}
		rel, err := filepath.Rel(internalRoot, path)
		if err != nil {
			return err
		}
		file, err := parser.ParseFile(fset, path, nil, mode)
		if err != nil {
			return err
		}
		sources = append(sources, sourceFile{
			rel:  filepath.ToSlash(rel),
			pkg:  filepath.ToSlash(filepath.Dir(rel)),
			fset: fset,
			file: file,
		})
		return nil
	})
	if err != nil {
		t.Fatalf("scan internal packages: %v", err)
	}
	if len(sources) == 0 {
		t.Fatalf("no sources found under %s", internalRoot)
	}
	return sources
}

func resolveInternalRoot(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	return filepath.Clean(filepath.Join(wd, ".."))
}

func importPaths(file *ast.File) []string {
	paths := make([]string, 0, len(file.Imports))
	for _, imp := range file.Imports {
		paths = append(paths, strings.Trim(imp.Path.Value, "\""))
	}
	return paths
}
