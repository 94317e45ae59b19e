package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// DefaultManifestFilename is the default manifest filename.
const DefaultManifestFilename = "stackrm.yaml"

var appNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// Manifest describes the deployed application.
type Manifest struct {
	App string      `yaml:"app"`
	AWS AWSSettings `yaml:"aws"`
}

// AWSSettings holds where the application is deployed.
// Empty values fall back to the AWS SDK default chain.
type AWSSettings struct {
	Region  string `yaml:"region"`
	Profile string `yaml:"profile"`
}

// Validate checks that the manifest names a usable application.
func (m *Manifest) Validate() error {
	if m.App == "" {
		return errors.New("app is required")
	}
	if !appNamePattern.MatchString(m.App) {
		return fmt.Errorf("invalid app name %q: use letters, digits, '-' and '_'", m.App)
	}
	return nil
}

// LoadManifest loads and validates a manifest from a file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	return LoadManifestFromBytes(data)
}

// LoadManifestFromBytes loads and validates a manifest from bytes.
func LoadManifestFromBytes(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("manifest validation failed: %w", err)
	}

	return &m, nil
}

// FindManifest searches for the manifest in the current directory and
// then in each parent directory up to the filesystem root.
func FindManifest() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return findManifestFrom(cwd)
}

func findManifestFrom(dir string) (string, error) {
	for {
		path := filepath.Join(dir, DefaultManifestFilename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("manifest %s not found", DefaultManifestFilename)
}
