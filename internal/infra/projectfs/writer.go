// Where: internal/infra/projectfs/writer.go
// What: Materialize a rendered scaffold onto disk.
// Why: Own the "destination must not exist" guard and the write order.
package projectfs

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/poruru-code/flaskgen/internal/domain/template"
	"github.com/poruru-code/flaskgen/internal/infra/fileops"
	diaglog "github.com/poruru-code/flaskgen/internal/infra/logger"
)

// ErrDestinationExists is returned before any write when the project root is occupied.
var ErrDestinationExists = errors.New("destination already exists")

var (
	ensureDir  = fileops.EnsureDir
	writeFile  = fileops.WriteFile
	pathExists = fileops.PathExists
)

// Writer creates project directories and files.
// A failed write leaves earlier output in place.
type Writer struct {
	logger *slog.Logger
}

// NewWriter returns a Writer that reports each created path at debug level.
func NewWriter(logger *slog.Logger) *Writer {
	if logger == nil {
		logger = diaglog.Discard()
	}
	return &Writer{logger: logger}
}

// Materialize writes dirs and files (slash-separated, relative) under root.
func (w *Writer) Materialize(root string, dirs []string, files []template.RenderedFile) error {
	if root == "" {
		return fmt.Errorf("project root is required")
	}
	if pathExists(root) {
		return fmt.Errorf("%w: %s", ErrDestinationExists, root)
	}

	if err := ensureDir(root); err != nil {
		return fmt.Errorf("create %s: %w", root, err)
	}
	w.logger.Debug("created project root", "path", root)

	for _, dir := range dirs {
		target := filepath.Join(root, filepath.FromSlash(dir))
		if err := ensureDir(target); err != nil {
			return fmt.Errorf("create %s: %w", target, err)
		}
		w.logger.Debug("created directory", "path", dir)
	}

	for _, file := range files {
		target := filepath.Join(root, filepath.FromSlash(file.Path))
		if err := writeFile(target, file.Content); err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}
		w.logger.Debug("wrote file", "path", file.Path, "bytes", len(file.Content))
	}
	return nil
}
