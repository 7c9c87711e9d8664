// Package content holds the seed content compiled into the binary: the project
// catalog and the profile shown around it. A file on disk can replace either
// document, provided it has the same shape.
package content

import (
	"bytes"
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"skullfire.dev/internal/models"
)

//go:embed data/projects.yaml data/profile.yaml
var seed embed.FS

const (
	projectsFile = "data/projects.yaml"
	profileFile  = "data/profile.yaml"
)

// LoadProjects reads the project catalog from path, or the embedded seed when
// path is empty
func LoadProjects(path string) (*models.ProjectList, error) {
	data, err := read(path, projectsFile)
	if err != nil {
		return nil, err
	}

	var projects models.ProjectList
	if err := decode(data, &projects); err != nil {
		return nil, fmt.Errorf("failed to parse projects: %w", err)
	}
	return &projects, nil
}

// LoadProfile reads the profile from path, or the embedded seed when path is
// empty
func LoadProfile(path string) (*models.Profile, error) {
	data, err := read(path, profileFile)
	if err != nil {
		return nil, err
	}

	var profile models.Profile
	if err := decode(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &profile, nil
}

func read(path, embedded string) ([]byte, error) {
	if path == "" {
		data, err := seed.ReadFile(embedded)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded %s: %w", embedded, err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// decode rejects unknown keys so typos in hand-edited content fail loudly
func decode(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(out)
}
