package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"rewindfinds/shopflow/internal/models"
)

// pathsFile is the on-disk shape of the canonical category path list. YAML
// sequences keep document order, which is the nav order every tool depends on.
type pathsFile struct {
	Paths [][]string `yaml:"paths"`
}

// LoadPaths reads the canonical ordered category path list.
func LoadPaths(path string) ([]models.CategoryPath, error) {
	log.WithField("file", path).Info("Loading category paths")

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading paths file: %w", err)
	}

	var file pathsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("error parsing paths file %s: %w", path, err)
	}

	paths := make([]models.CategoryPath, 0, len(file.Paths))
	for _, p := range file.Paths {
		paths = append(paths, models.CategoryPath(p))
	}
	log.WithField("count", len(paths)).Info("Successfully loaded category paths")
	return paths, nil
}

// WritePaths persists the canonical path list, preserving order.
func WritePaths(paths []models.CategoryPath, path string) error {
	file := pathsFile{Paths: make([][]string, 0, len(paths))}
	for _, p := range paths {
		file.Paths = append(file.Paths, []string(p))
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("error encoding paths: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing paths file: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  path,
		"count": len(paths),
	}).Info("Wrote category paths")
	return nil
}
