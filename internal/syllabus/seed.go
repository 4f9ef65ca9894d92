// Package syllabus loads syllabus seed files into the record store.
package syllabus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/amitrd/revtrack/internal/model"
	"github.com/amitrd/revtrack/internal/tracker"
)

// SeedFile is the on-disk YAML shape of a syllabus seed.
type SeedFile struct {
	Name   string   `yaml:"name"`
	Stream string   `yaml:"stream"`
	Topics []string `yaml:"topics"`
}

// LoadSeedFile parses a single syllabus seed file.
func LoadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("unmarshal syllabus seed %s: %w", path, err)
	}
	if seed.Name == "" {
		return nil, fmt.Errorf("syllabus seed %s has no name", path)
	}
	return &seed, nil
}

// Seed imports every *.yml and *.yaml seed in the directory, skipping any
// syllabus whose name is already present. Returns the imported syllabi.
func Seed(ctx context.Context, store tracker.Store, directory string) ([]model.Syllabus, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("os.ReadDir(%s) > %w", directory, err)
	}

	existing := map[string]struct{}{}
	for _, syllabus := range store.Syllabi(ctx) {
		existing[syllabus.Name] = struct{}{}
	}

	var imported []model.Syllabus
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yml" && ext != ".yaml" {
			continue
		}

		seed, err := LoadSeedFile(filepath.Join(directory, entry.Name()))
		if err != nil {
			return imported, err
		}
		if _, ok := existing[seed.Name]; ok {
			continue
		}

		topics := make([]model.Topic, 0, len(seed.Topics))
		for _, name := range seed.Topics {
			topics = append(topics, model.Topic{Name: name})
		}
		added := store.AddSyllabus(ctx, model.Syllabus{
			Name:   seed.Name,
			Stream: seed.Stream,
			Topics: topics,
		})
		imported = append(imported, added)
	}
	return imported, nil
}
