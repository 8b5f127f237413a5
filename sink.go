package asciiart

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const (
	DefaultOutputDir  = "output"
	DefaultOutputName = "ASCII_Art.txt"
)

// FileSink writes grids to Dir/Name, or to FallbackDir/Name when the preferred
// file cannot be created.
type FileSink struct {
	Dir         string
	Name        string
	FallbackDir string
	Logger      *log.Logger // Warnings; nil discards them
}

func NewFileSink(dir, name string) *FileSink {
	return &FileSink{
		Dir:         dir,
		Name:        name,
		FallbackDir: ".",
	}
}

// WriteGrid writes g, one row per line, and returns the path written.
// Failing to create Dir is only a warning. ErrOutputOpen is returned when
// neither path can be created.
func (s *FileSink) WriteGrid(g Grid) (string, error) {
	f, path, err := s.create()
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := g.WriteTo(w); err != nil {
		return path, fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return path, fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return path, fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

func (s *FileSink) create() (*os.File, string, error) {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		s.warnf("cannot create directory %s: %v; using %s for output", s.Dir, err, s.FallbackDir)
	}

	path := filepath.Join(s.Dir, s.Name)
	f, err := os.Create(path)
	if err == nil {
		return f, path, nil
	}

	fallback := filepath.Join(s.FallbackDir, s.Name)
	f, ferr := os.Create(fallback)
	if ferr != nil {
		return nil, "", fmt.Errorf("%w: %v; %v", ErrOutputOpen, err, ferr)
	}
	return f, fallback, nil
}

func (s *FileSink) warnf(format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger.Printf("Warning: "+format, args...)
	}
}
